package service

import (
	"context"

	"github.com/Umar-Zak/lyospot/internal/domain"
	"github.com/Umar-Zak/lyospot/internal/dto"
	"github.com/Umar-Zak/lyospot/internal/repository"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductServiceImpl struct {
	repo         repository.ProductRepository
	storeRepo    repository.StoreRepository
	categoryRepo repository.CategoryRepository
	shippingRepo repository.ShippingRepository
}

func CreateProductService(repo repository.ProductRepository, storeRepo repository.StoreRepository, categoryRepo repository.CategoryRepository, shippingRepo repository.ShippingRepository) ProductService {
	return &ProductServiceImpl{repo: repo, storeRepo: storeRepo, categoryRepo: categoryRepo, shippingRepo: shippingRepo}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.GetProducts(ctx)
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrClient
	}

	return s.repo.GetProductByID(ctx, productID)
}

func (s *ProductServiceImpl) GetProductsByStore(ctx context.Context, storeID string) (data []domain.Product, err error) {
	id, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return data, errs.ErrClient
	}

	return s.repo.GetProductsByStoreID(ctx, id)
}

// AddProduct resolves the shipping option, category and owning store and
// persists the product with snapshots of all three embedded.
func (s *ProductServiceImpl) AddProduct(ctx context.Context, payload dto.ProductRequest) (product domain.Product, err error) {
	product, err = s.resolveReferences(ctx, payload)
	if err != nil {
		return product, err
	}

	productID, err := s.repo.AddProduct(ctx, product)
	if err != nil {
		return product, err
	}
	product.ID = productID

	return product, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, payload dto.ProductRequest) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(payload.ID)
	if err != nil {
		return product, errs.ErrClient
	}

	existing, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return product, err
	}

	product, err = s.resolveReferences(ctx, payload)
	if err != nil {
		return product, err
	}
	product.ID = productID
	product.Sold = existing.Sold

	if err = s.repo.UpdateProduct(ctx, product); err != nil {
		return product, err
	}

	return product, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	if _, err = s.repo.GetProductByID(ctx, productID); err != nil {
		return err
	}

	return s.repo.DeleteProduct(ctx, productID)
}

func (s *ProductServiceImpl) resolveReferences(ctx context.Context, payload dto.ProductRequest) (product domain.Product, err error) {
	shippingID, err := primitive.ObjectIDFromHex(payload.ShippingID)
	if err != nil {
		return product, errs.ErrClient
	}

	categoryID, err := primitive.ObjectIDFromHex(payload.CategoryID)
	if err != nil {
		return product, errs.ErrClient
	}

	shipping, err := s.shippingRepo.GetShippingByID(ctx, shippingID)
	if err != nil {
		return product, err
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return product, err
	}

	store, err := s.storeRepo.GetStoreByOwnerEmail(ctx, payload.Store)
	if err != nil {
		return product, err
	}

	product = domain.Product{
		Name:        payload.Name,
		Price:       payload.Price,
		Quantity:    payload.Quantity,
		Description: payload.Description,
		Specs:       payload.Specs,
		ShippingFee: payload.ShippingFee,
		Store: domain.StoreRef{
			ID:   store.ID,
			Name: store.Name,
		},
		Category: category,
		Shipping: shipping,
		Profile1: payload.Images["image1"],
		Profile2: payload.Images["image2"],
		Profile3: payload.Images["image3"],
		Profile4: payload.Images["image4"],
	}

	return product, nil
}
