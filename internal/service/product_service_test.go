package service

import (
	"context"
	"testing"

	"github.com/Umar-Zak/lyospot/internal/domain"
	"github.com/Umar-Zak/lyospot/internal/dto"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddProduct(t *testing.T) {
	ctx := context.Background()

	shipping := domain.Shipping{ID: primitive.NewObjectID(), Type: "Express"}
	category := domain.Category{ID: primitive.NewObjectID(), Title: "Electronics"}
	store := domain.Store{
		ID:   primitive.NewObjectID(),
		Name: "Gadget Hub",
		Owner: domain.UserRef{
			ID:    primitive.NewObjectID(),
			Email: "owner@mail.com",
		},
	}

	request := dto.ProductRequest{
		Name:       "Keyboard",
		Price:      45,
		Quantity:   10,
		Store:      "owner@mail.com",
		CategoryID: category.ID.Hex(),
		ShippingID: shipping.ID.Hex(),
		Images: map[string]string{
			"image1": "/assets/product/kb1.png",
			"image2": "/assets/product/kb2.png",
			"image3": "/assets/product/kb3.png",
		},
	}

	t.Run("embeds shipping, category and store snapshots", func(t *testing.T) {
		repo := new(productRepositoryMock)
		storeRepo := new(storeRepositoryMock)
		categoryRepo := new(categoryRepositoryMock)
		shippingRepo := new(shippingRepositoryMock)
		svc := CreateProductService(repo, storeRepo, categoryRepo, shippingRepo)

		shippingRepo.On("GetShippingByID", ctx, shipping.ID).Return(shipping, nil)
		categoryRepo.On("GetCategoryByID", ctx, category.ID).Return(category, nil)
		storeRepo.On("GetStoreByOwnerEmail", ctx, "owner@mail.com").Return(store, nil)
		repo.On("AddProduct", ctx, mock.AnythingOfType("domain.Product")).Return(primitive.NewObjectID(), nil)

		product, err := svc.AddProduct(ctx, request)

		assert.NoError(t, err)
		assert.Equal(t, shipping, product.Shipping)
		assert.Equal(t, category, product.Category)
		assert.Equal(t, store.ID, product.Store.ID)
		assert.Equal(t, store.Name, product.Store.Name)
		assert.Equal(t, "/assets/product/kb1.png", product.Profile1)
		assert.Empty(t, product.Profile4)
	})

	t.Run("fails when the shipping option is absent", func(t *testing.T) {
		repo := new(productRepositoryMock)
		shippingRepo := new(shippingRepositoryMock)
		svc := CreateProductService(repo, new(storeRepositoryMock), new(categoryRepositoryMock), shippingRepo)

		shippingRepo.On("GetShippingByID", ctx, shipping.ID).Return(domain.Shipping{}, errs.ErrNotFound)

		_, err := svc.AddProduct(ctx, request)

		assert.ErrorIs(t, err, errs.ErrNotFound)
		repo.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
	})

	t.Run("fails when the owner has no store", func(t *testing.T) {
		repo := new(productRepositoryMock)
		storeRepo := new(storeRepositoryMock)
		categoryRepo := new(categoryRepositoryMock)
		shippingRepo := new(shippingRepositoryMock)
		svc := CreateProductService(repo, storeRepo, categoryRepo, shippingRepo)

		shippingRepo.On("GetShippingByID", ctx, shipping.ID).Return(shipping, nil)
		categoryRepo.On("GetCategoryByID", ctx, category.ID).Return(category, nil)
		storeRepo.On("GetStoreByOwnerEmail", ctx, "owner@mail.com").Return(domain.Store{}, errs.ErrNotFound)

		_, err := svc.AddProduct(ctx, request)

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("rejects a malformed category id", func(t *testing.T) {
		svc := CreateProductService(new(productRepositoryMock), new(storeRepositoryMock), new(categoryRepositoryMock), new(shippingRepositoryMock))

		bad := request
		bad.CategoryID = "garbage"

		_, err := svc.AddProduct(ctx, bad)

		assert.ErrorIs(t, err, errs.ErrClient)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	shipping := domain.Shipping{ID: primitive.NewObjectID(), Type: "Express"}
	category := domain.Category{ID: primitive.NewObjectID(), Title: "Electronics"}
	store := domain.Store{ID: primitive.NewObjectID(), Name: "Gadget Hub"}

	t.Run("preserves the sold counter", func(t *testing.T) {
		repo := new(productRepositoryMock)
		storeRepo := new(storeRepositoryMock)
		categoryRepo := new(categoryRepositoryMock)
		shippingRepo := new(shippingRepositoryMock)
		svc := CreateProductService(repo, storeRepo, categoryRepo, shippingRepo)

		productID := primitive.NewObjectID()
		repo.On("GetProductByID", ctx, productID).Return(domain.Product{ID: productID, Sold: 37}, nil)
		shippingRepo.On("GetShippingByID", ctx, shipping.ID).Return(shipping, nil)
		categoryRepo.On("GetCategoryByID", ctx, category.ID).Return(category, nil)
		storeRepo.On("GetStoreByOwnerEmail", ctx, "owner@mail.com").Return(store, nil)
		repo.On("UpdateProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil)

		product, err := svc.UpdateProduct(ctx, dto.ProductRequest{
			ID:         productID.Hex(),
			Name:       "Keyboard v2",
			Store:      "owner@mail.com",
			CategoryID: category.ID.Hex(),
			ShippingID: shipping.ID.Hex(),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(37), product.Sold)
		assert.Equal(t, productID, product.ID)
	})

	t.Run("fails when the product is absent", func(t *testing.T) {
		repo := new(productRepositoryMock)
		svc := CreateProductService(repo, new(storeRepositoryMock), new(categoryRepositoryMock), new(shippingRepositoryMock))

		productID := primitive.NewObjectID()
		repo.On("GetProductByID", ctx, productID).Return(domain.Product{}, errs.ErrNotFound)

		_, err := svc.UpdateProduct(ctx, dto.ProductRequest{ID: productID.Hex()})

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestGetProductByID(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a malformed id", func(t *testing.T) {
		svc := CreateProductService(new(productRepositoryMock), new(storeRepositoryMock), new(categoryRepositoryMock), new(shippingRepositoryMock))

		_, err := svc.GetProductByID(ctx, "xyz")

		assert.ErrorIs(t, err, errs.ErrClient)
	})
}
