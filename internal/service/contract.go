package service

import (
	"context"

	"github.com/Umar-Zak/lyospot/internal/domain"
	"github.com/Umar-Zak/lyospot/internal/dto"
)

type UserService interface {
	GetUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetProfile(ctx context.Context, email string) (domain.User, error)
	Register(ctx context.Context, payload dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, payload dto.LoginRequest) (string, error)
	ConfirmPassword(ctx context.Context, payload dto.PasswordRequest) (string, error)
	ChangePassword(ctx context.Context, payload dto.PasswordRequest) (domain.User, error)
	SendConfirmationEmail(ctx context.Context, payload dto.ConfirmEmailRequest) error
	UpdateUser(ctx context.Context, payload dto.UpdateUserRequest) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type StoreService interface {
	GetStores(ctx context.Context) ([]domain.Store, error)
	GetStoreByID(ctx context.Context, id string) (domain.Store, error)
	GetStoreByOwner(ctx context.Context, ownerID string) (domain.Store, error)
	GetStoreByOwnerEmail(ctx context.Context, payload dto.StoreProfileRequest) (domain.Store, error)
	CreateStore(ctx context.Context, payload dto.StoreRequest) (domain.Store, string, error)
	FollowStore(ctx context.Context, payload dto.FollowRequest) (domain.Store, error)
	UpdateStore(ctx context.Context, payload dto.StoreRequest) (domain.Store, error)
	DeleteStore(ctx context.Context, id string) error
	SendConfirmationSMS(ctx context.Context, payload dto.SMSRequest) error
}

type ProductService interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
	GetProductsByStore(ctx context.Context, storeID string) ([]domain.Product, error)
	AddProduct(ctx context.Context, payload dto.ProductRequest) (domain.Product, error)
	UpdateProduct(ctx context.Context, payload dto.ProductRequest) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type CategoryService interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, id string) (domain.Category, error)
	AddCategory(ctx context.Context, payload dto.CategoryRequest) (domain.Category, error)
	UpdateCategory(ctx context.Context, id string, payload dto.CategoryRequest) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type ShippingService interface {
	GetShippings(ctx context.Context) ([]domain.Shipping, error)
	GetShippingByID(ctx context.Context, id string) (domain.Shipping, error)
	AddShipping(ctx context.Context, payload dto.ShippingRequest) (domain.Shipping, error)
	UpdateShipping(ctx context.Context, id string, payload dto.ShippingRequest) (domain.Shipping, error)
	DeleteShipping(ctx context.Context, id string) error
}

type OrderService interface {
	GetOrders(ctx context.Context) ([]domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (domain.Order, error)
	GetCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error)
	GetStoreSales(ctx context.Context, storeID string) ([]domain.Order, error)
	GetRejectedOrders(ctx context.Context) ([]domain.Order, error)
	GetRejectedOrderByID(ctx context.Context, id string) (domain.Order, error)
	PlaceOrder(ctx context.Context, payload dto.OrderRequest) ([]domain.Order, error)
	MarkShipped(ctx context.Context, id string) (domain.Order, error)
	MarkDelivered(ctx context.Context, id string) (domain.Order, error)
	RejectOrder(ctx context.Context, id string) (domain.Order, error)
	ProcessPayment(ctx context.Context, payload dto.PaymentRequest) error
}

type WishlistService interface {
	GetWishlists(ctx context.Context) ([]domain.Wishlist, error)
	GetWishlistByID(ctx context.Context, id string) (domain.Wishlist, error)
	GetUserWishlists(ctx context.Context, userID string) ([]domain.Wishlist, error)
	AddWishlist(ctx context.Context, payload dto.WishlistRequest) (domain.Wishlist, error)
	DeleteWishlist(ctx context.Context, id string) error
	DeleteWishlistByProduct(ctx context.Context, productID string) error
}

type TestimonialService interface {
	GetTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	GetTestimonialByID(ctx context.Context, id string) (domain.Testimonial, error)
	AddTestimonial(ctx context.Context, payload dto.TestimonialRequest) (domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
}
