package service

import (
	"context"

	"github.com/Umar-Zak/lyospot/internal/domain"
	"github.com/Umar-Zak/lyospot/internal/dto"
	"github.com/Umar-Zak/lyospot/internal/repository"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryServiceImpl struct {
	repo repository.CategoryRepository
}

func CreateCategoryService(repo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{repo: repo}
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.GetCategories(ctx)
}

func (s *CategoryServiceImpl) GetCategoryByID(ctx context.Context, id string) (category domain.Category, err error) {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return category, errs.ErrClient
	}

	return s.repo.GetCategoryByID(ctx, categoryID)
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, payload dto.CategoryRequest) (category domain.Category, err error) {
	category = domain.Category{Title: payload.Title}

	categoryID, err := s.repo.AddCategory(ctx, category)
	if err != nil {
		return category, err
	}
	category.ID = categoryID

	return category, nil
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, id string, payload dto.CategoryRequest) (category domain.Category, err error) {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return category, errs.ErrClient
	}

	category, err = s.repo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return category, err
	}

	category.Title = payload.Title

	if err = s.repo.UpdateCategory(ctx, category); err != nil {
		return category, err
	}

	return category, nil
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	if _, err = s.repo.GetCategoryByID(ctx, categoryID); err != nil {
		return err
	}

	return s.repo.DeleteCategory(ctx, categoryID)
}

type ShippingServiceImpl struct {
	repo repository.ShippingRepository
}

func CreateShippingService(repo repository.ShippingRepository) ShippingService {
	return &ShippingServiceImpl{repo: repo}
}

func (s *ShippingServiceImpl) GetShippings(ctx context.Context) ([]domain.Shipping, error) {
	return s.repo.GetShippings(ctx)
}

func (s *ShippingServiceImpl) GetShippingByID(ctx context.Context, id string) (shipping domain.Shipping, err error) {
	shippingID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return shipping, errs.ErrClient
	}

	return s.repo.GetShippingByID(ctx, shippingID)
}

func (s *ShippingServiceImpl) AddShipping(ctx context.Context, payload dto.ShippingRequest) (shipping domain.Shipping, err error) {
	shipping = domain.Shipping{Type: payload.Type}

	shippingID, err := s.repo.AddShipping(ctx, shipping)
	if err != nil {
		return shipping, err
	}
	shipping.ID = shippingID

	return shipping, nil
}

func (s *ShippingServiceImpl) UpdateShipping(ctx context.Context, id string, payload dto.ShippingRequest) (shipping domain.Shipping, err error) {
	shippingID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return shipping, errs.ErrClient
	}

	shipping, err = s.repo.GetShippingByID(ctx, shippingID)
	if err != nil {
		return shipping, err
	}

	shipping.Type = payload.Type

	if err = s.repo.UpdateShipping(ctx, shipping); err != nil {
		return shipping, err
	}

	return shipping, nil
}

func (s *ShippingServiceImpl) DeleteShipping(ctx context.Context, id string) error {
	shippingID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	if _, err = s.repo.GetShippingByID(ctx, shippingID); err != nil {
		return err
	}

	return s.repo.DeleteShipping(ctx, shippingID)
}
