package service

import (
	"context"

	"github.com/Umar-Zak/lyospot/internal/domain"
	"github.com/Umar-Zak/lyospot/internal/dto"
	"github.com/Umar-Zak/lyospot/internal/repository"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishlistServiceImpl struct {
	repo        repository.WishlistRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

func CreateWishlistService(repo repository.WishlistRepository, userRepo repository.UserRepository, productRepo repository.ProductRepository) WishlistService {
	return &WishlistServiceImpl{repo: repo, userRepo: userRepo, productRepo: productRepo}
}

func (s *WishlistServiceImpl) GetWishlists(ctx context.Context) ([]domain.Wishlist, error) {
	return s.repo.GetWishlists(ctx)
}

func (s *WishlistServiceImpl) GetWishlistByID(ctx context.Context, id string) (wishlist domain.Wishlist, err error) {
	wishlistID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return wishlist, errs.ErrClient
	}

	return s.repo.GetWishlistByID(ctx, wishlistID)
}

func (s *WishlistServiceImpl) GetUserWishlists(ctx context.Context, userID string) (data []domain.Wishlist, err error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return data, errs.ErrClient
	}

	return s.repo.GetWishlistsByUserID(ctx, id)
}

// AddWishlist resolves the user and the product and stores snapshots of both.
func (s *WishlistServiceImpl) AddWishlist(ctx context.Context, payload dto.WishlistRequest) (wishlist domain.Wishlist, err error) {
	user, err := s.userRepo.GetUserByEmail(ctx, payload.UserEmail)
	if err != nil {
		return wishlist, err
	}

	productID, err := primitive.ObjectIDFromHex(payload.ProductID)
	if err != nil {
		return wishlist, errs.ErrClient
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return wishlist, err
	}

	wishlist = domain.Wishlist{
		User: domain.UserRef{
			ID:    user.ID,
			Email: user.Email,
		},
		Product: product,
	}

	wishlistID, err := s.repo.AddWishlist(ctx, wishlist)
	if err != nil {
		return wishlist, err
	}
	wishlist.ID = wishlistID

	return wishlist, nil
}

func (s *WishlistServiceImpl) DeleteWishlist(ctx context.Context, id string) error {
	wishlistID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	if _, err = s.repo.GetWishlistByID(ctx, wishlistID); err != nil {
		return err
	}

	return s.repo.DeleteWishlist(ctx, wishlistID)
}

func (s *WishlistServiceImpl) DeleteWishlistByProduct(ctx context.Context, productID string) error {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return errs.ErrClient
	}

	deleted, err := s.repo.DeleteWishlistByProductID(ctx, id)
	if err != nil {
		return err
	}

	if deleted == 0 {
		return errs.ErrNotFound
	}

	return nil
}
