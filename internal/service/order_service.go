package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Umar-Zak/lyospot/config"
	"github.com/Umar-Zak/lyospot/internal/domain"
	"github.com/Umar-Zak/lyospot/internal/dto"
	"github.com/Umar-Zak/lyospot/internal/repository"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderServiceImpl struct {
	repo           repository.OrderRepository
	userRepo       repository.UserRepository
	productRepo    repository.ProductRepository
	config         config.Config
	midtransClient *coreapi.Client
	chargeBreaker  *gobreaker.CircuitBreaker[*coreapi.ChargeResponse]
}

func CreateOrderService(repo repository.OrderRepository, userRepo repository.UserRepository, productRepo repository.ProductRepository, config config.Config, midtransClient *coreapi.Client, chargeBreaker *gobreaker.CircuitBreaker[*coreapi.ChargeResponse]) OrderService {
	return &OrderServiceImpl{
		repo:           repo,
		userRepo:       userRepo,
		productRepo:    productRepo,
		config:         config,
		midtransClient: midtransClient,
		chargeBreaker:  chargeBreaker,
	}
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.GetOrders(ctx)
}

func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, id string) (order domain.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return order, errs.ErrClient
	}

	return s.repo.GetOrderByID(ctx, orderID)
}

func (s *OrderServiceImpl) GetCustomerOrders(ctx context.Context, customerID string) (data []domain.Order, err error) {
	id, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return data, errs.ErrClient
	}

	return s.repo.GetOrdersByCustomerID(ctx, id)
}

func (s *OrderServiceImpl) GetStoreSales(ctx context.Context, storeID string) (data []domain.Order, err error) {
	id, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return data, errs.ErrClient
	}

	return s.repo.GetOrdersByStoreID(ctx, id)
}

func (s *OrderServiceImpl) GetRejectedOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.GetRejectedOrders(ctx)
}

func (s *OrderServiceImpl) GetRejectedOrderByID(ctx context.Context, id string) (order domain.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return order, errs.ErrClient
	}

	return s.repo.GetRejectedOrderByID(ctx, orderID)
}

// PlaceOrder resolves the buyer, then materializes one order document per
// line item and moves the ordered count from the product's stock to its sold
// counter. The per-item writes are sequential and not wrapped in a
// transaction; a failure mid-loop leaves the earlier items in place.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, payload dto.OrderRequest) (orders []domain.Order, err error) {
	user, err := s.userRepo.GetUserByEmail(ctx, payload.OrderBy)
	if err != nil {
		return nil, err
	}

	buyer := domain.UserRef{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}

	for _, item := range payload.Products {
		productID, err := primitive.ObjectIDFromHex(item.ID)
		if err != nil {
			return orders, errs.ErrClient
		}

		product, err := s.productRepo.GetProductByID(ctx, productID)
		if err != nil {
			return orders, err
		}

		order := domain.Order{
			OrderCode: payload.OrderCode,
			OrderDate: time.Now(),
			Address:   payload.Address,
			BoughtBy:  buyer,
			Status:    domain.OrderStatusReceived,
			Product:   buildOrderProduct(product, item),
		}

		orderID, err := s.repo.AddOrder(ctx, order)
		if err != nil {
			return orders, err
		}
		order.ID = orderID

		if err = s.productRepo.AdjustProductStock(ctx, productID, item.Quantity); err != nil {
			return orders, err
		}

		orders = append(orders, order)
	}

	return orders, nil
}

func (s *OrderServiceImpl) MarkShipped(ctx context.Context, id string) (order domain.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return order, errs.ErrClient
	}

	if err = s.repo.MarkOrderShipped(ctx, orderID); err != nil {
		return order, err
	}

	return s.repo.GetOrderByID(ctx, orderID)
}

func (s *OrderServiceImpl) MarkDelivered(ctx context.Context, id string) (order domain.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return order, errs.ErrClient
	}

	if err = s.repo.MarkOrderDelivered(ctx, orderID); err != nil {
		return order, err
	}

	return s.repo.GetOrderByID(ctx, orderID)
}

// RejectOrder copies the order into the rejected history and removes the
// original. The copy and the delete are two independent writes.
func (s *OrderServiceImpl) RejectOrder(ctx context.Context, id string) (order domain.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return order, errs.ErrClient
	}

	order, err = s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return order, err
	}

	reject := domain.Order{
		OrderCode: order.OrderCode,
		OrderDate: order.OrderDate,
		Address:   order.Address,
		BoughtBy:  order.BoughtBy,
		Status:    domain.OrderStatusRejected,
		Tracking:  order.Tracking,
		Product:   order.Product,
	}

	if _, err = s.repo.AddRejectedOrder(ctx, reject); err != nil {
		return order, err
	}

	if err = s.repo.DeleteOrder(ctx, orderID); err != nil {
		return order, err
	}

	return order, nil
}

// ProcessPayment captures a charge against a tokenized card through the
// gateway, behind a circuit breaker. Gateway failures surface as 502s.
func (s *OrderServiceImpl) ProcessPayment(ctx context.Context, payload dto.PaymentRequest) error {
	chargeReq := &coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeCreditCard,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  fmt.Sprintf("lyospot-%d", time.Now().UnixNano()),
			GrossAmt: payload.Amount,
		},
		CreditCard: &coreapi.CreditCardDetails{
			TokenID: payload.Token,
		},
		CustomerDetails: &midtrans.CustomerDetails{
			Email: payload.Email,
		},
	}

	_, err := s.chargeBreaker.Execute(func() (*coreapi.ChargeResponse, error) {
		response, chargeErr := s.midtransClient.ChargeTransaction(chargeReq)
		if chargeErr != nil {
			return nil, chargeErr
		}
		return response, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ProcessPayment").Msg("")
		return errs.ErrGateway
	}

	return nil
}

func buildOrderProduct(product domain.Product, item dto.OrderItem) domain.OrderProduct {
	return domain.OrderProduct{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Quantity:    item.Quantity,
		Store:       product.Store,
		Category:    product.Category,
		Shipping:    product.Shipping,
		Description: product.Description,
		Specs:       product.Specs,
		Sold:        product.Sold,
		Profile1:    product.Profile1,
		Profile2:    product.Profile2,
		Profile3:    product.Profile3,
		Profile4:    product.Profile4,
		Amount:      item.Amount,
		ShippingFee: product.ShippingFee,
	}
}
