package service

import (
	"context"
	"testing"

	"github.com/Umar-Zak/lyospot/config"
	"github.com/Umar-Zak/lyospot/internal/domain"
	"github.com/Umar-Zak/lyospot/internal/dto"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func orderServiceForTest(repo *orderRepositoryMock, userRepo *userRepositoryMock, productRepo *productRepositoryMock) OrderService {
	return CreateOrderService(repo, userRepo, productRepo, config.Config{}, nil, nil)
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	buyer := domain.User{
		ID:    primitive.NewObjectID(),
		Email: "buyer@mail.com",
		Name:  "Buyer",
	}

	productA := domain.Product{
		ID:       primitive.NewObjectID(),
		Name:     "Keyboard",
		Price:    45,
		Quantity: 10,
		Store:    domain.StoreRef{ID: primitive.NewObjectID(), Name: "Gadget Hub"},
	}
	productB := domain.Product{
		ID:       primitive.NewObjectID(),
		Name:     "Mouse",
		Price:    20,
		Quantity: 7,
		Store:    productA.Store,
	}

	t.Run("creates one order per line item and adjusts stock", func(t *testing.T) {
		repo := new(orderRepositoryMock)
		userRepo := new(userRepositoryMock)
		productRepo := new(productRepositoryMock)
		svc := orderServiceForTest(repo, userRepo, productRepo)

		userRepo.On("GetUserByEmail", ctx, buyer.Email).Return(buyer, nil)
		productRepo.On("GetProductByID", ctx, productA.ID).Return(productA, nil)
		productRepo.On("GetProductByID", ctx, productB.ID).Return(productB, nil)
		repo.On("AddOrder", ctx, mock.AnythingOfType("domain.Order")).Return(primitive.NewObjectID(), nil).Twice()
		productRepo.On("AdjustProductStock", ctx, productA.ID, int64(2)).Return(nil)
		productRepo.On("AdjustProductStock", ctx, productB.ID, int64(1)).Return(nil)

		orders, err := svc.PlaceOrder(ctx, dto.OrderRequest{
			OrderCode: "ORD-1",
			OrderBy:   buyer.Email,
			Address:   "12 Main St",
			Products: []dto.OrderItem{
				{ID: productA.ID.Hex(), Quantity: 2, Amount: 90},
				{ID: productB.ID.Hex(), Quantity: 1, Amount: 20},
			},
		})

		assert.NoError(t, err)
		assert.Len(t, orders, 2)

		first := orders[0]
		assert.Equal(t, "ORD-1", first.OrderCode)
		assert.Equal(t, domain.OrderStatusReceived, first.Status)
		assert.Equal(t, buyer.ID, first.BoughtBy.ID)
		assert.Equal(t, productA.ID, first.Product.ID)
		assert.Equal(t, int64(2), first.Product.Quantity)
		assert.Equal(t, float64(90), first.Product.Amount)
		assert.Equal(t, productA.Store, first.Product.Store)

		repo.AssertNumberOfCalls(t, "AddOrder", 2)
		productRepo.AssertNumberOfCalls(t, "AdjustProductStock", 2)
	})

	t.Run("fails when the buyer does not exist", func(t *testing.T) {
		repo := new(orderRepositoryMock)
		userRepo := new(userRepositoryMock)
		productRepo := new(productRepositoryMock)
		svc := orderServiceForTest(repo, userRepo, productRepo)

		userRepo.On("GetUserByEmail", ctx, "ghost@mail.com").Return(domain.User{}, errs.ErrNotFound)

		_, err := svc.PlaceOrder(ctx, dto.OrderRequest{
			OrderBy:  "ghost@mail.com",
			Products: []dto.OrderItem{{ID: productA.ID.Hex(), Quantity: 1}},
		})

		assert.ErrorIs(t, err, errs.ErrNotFound)
		repo.AssertNotCalled(t, "AddOrder", mock.Anything, mock.Anything)
	})

	t.Run("rejects a malformed product id", func(t *testing.T) {
		repo := new(orderRepositoryMock)
		userRepo := new(userRepositoryMock)
		productRepo := new(productRepositoryMock)
		svc := orderServiceForTest(repo, userRepo, productRepo)

		userRepo.On("GetUserByEmail", ctx, buyer.Email).Return(buyer, nil)

		_, err := svc.PlaceOrder(ctx, dto.OrderRequest{
			OrderBy:  buyer.Email,
			Products: []dto.OrderItem{{ID: "not-hex", Quantity: 1}},
		})

		assert.ErrorIs(t, err, errs.ErrClient)
	})

	t.Run("fails when a product is absent", func(t *testing.T) {
		repo := new(orderRepositoryMock)
		userRepo := new(userRepositoryMock)
		productRepo := new(productRepositoryMock)
		svc := orderServiceForTest(repo, userRepo, productRepo)

		missingID := primitive.NewObjectID()
		userRepo.On("GetUserByEmail", ctx, buyer.Email).Return(buyer, nil)
		productRepo.On("GetProductByID", ctx, missingID).Return(domain.Product{}, errs.ErrNotFound)

		_, err := svc.PlaceOrder(ctx, dto.OrderRequest{
			OrderBy:  buyer.Email,
			Products: []dto.OrderItem{{ID: missingID.Hex(), Quantity: 1}},
		})

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestRejectOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("copies the order into the rejected history before deleting it", func(t *testing.T) {
		repo := new(orderRepositoryMock)
		svc := orderServiceForTest(repo, new(userRepositoryMock), new(productRepositoryMock))

		orderID := primitive.NewObjectID()
		order := domain.Order{
			ID:        orderID,
			OrderCode: "ORD-9",
			Status:    domain.OrderStatusReceived,
			Product:   domain.OrderProduct{Name: "Keyboard"},
		}

		repo.On("GetOrderByID", ctx, orderID).Return(order, nil)
		repo.On("AddRejectedOrder", ctx, mock.AnythingOfType("domain.Order")).Return(primitive.NewObjectID(), nil)
		repo.On("DeleteOrder", ctx, orderID).Return(nil)

		_, err := svc.RejectOrder(ctx, orderID.Hex())

		assert.NoError(t, err)

		copied := repo.Calls[1].Arguments.Get(1).(domain.Order)
		assert.Equal(t, domain.OrderStatusRejected, copied.Status)
		assert.Equal(t, "ORD-9", copied.OrderCode)
		assert.True(t, copied.ID.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("does not delete when the copy fails", func(t *testing.T) {
		repo := new(orderRepositoryMock)
		svc := orderServiceForTest(repo, new(userRepositoryMock), new(productRepositoryMock))

		orderID := primitive.NewObjectID()
		repo.On("GetOrderByID", ctx, orderID).Return(domain.Order{ID: orderID}, nil)
		repo.On("AddRejectedOrder", ctx, mock.AnythingOfType("domain.Order")).Return(primitive.NilObjectID, errs.ErrInternalServer)

		_, err := svc.RejectOrder(ctx, orderID.Hex())

		assert.Error(t, err)
		repo.AssertNotCalled(t, "DeleteOrder", mock.Anything, mock.Anything)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		repo := new(orderRepositoryMock)
		svc := orderServiceForTest(repo, new(userRepositoryMock), new(productRepositoryMock))

		_, err := svc.RejectOrder(ctx, "nope")

		assert.ErrorIs(t, err, errs.ErrClient)
	})
}

func TestMarkShipped(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the refreshed order", func(t *testing.T) {
		repo := new(orderRepositoryMock)
		svc := orderServiceForTest(repo, new(userRepositoryMock), new(productRepositoryMock))

		orderID := primitive.NewObjectID()
		repo.On("MarkOrderShipped", ctx, orderID).Return(nil)
		repo.On("GetOrderByID", ctx, orderID).Return(domain.Order{ID: orderID, Status: domain.OrderStatusInTransit}, nil)

		order, err := svc.MarkShipped(ctx, orderID.Hex())

		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusInTransit, order.Status)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(orderRepositoryMock)
		svc := orderServiceForTest(repo, new(userRepositoryMock), new(productRepositoryMock))

		orderID := primitive.NewObjectID()
		repo.On("MarkOrderShipped", ctx, orderID).Return(errs.ErrNotFound)

		_, err := svc.MarkShipped(ctx, orderID.Hex())

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
