package repository

import (
	"context"

	"github.com/Umar-Zak/lyospot/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	GetUsers(ctx context.Context) ([]domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error)
	UpdateUser(ctx context.Context, data domain.User) error
	UpdatePassword(ctx context.Context, email string, hashedPassword string) error
	SetStoreOwnership(ctx context.Context, id primitive.ObjectID, storeName string) error
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

type StoreRepository interface {
	GetStores(ctx context.Context) ([]domain.Store, error)
	GetStoreByID(ctx context.Context, id primitive.ObjectID) (domain.Store, error)
	GetStoreByOwnerID(ctx context.Context, ownerID primitive.ObjectID) (domain.Store, error)
	GetStoreByOwnerEmail(ctx context.Context, email string) (domain.Store, error)
	AddStore(ctx context.Context, data domain.Store) (primitive.ObjectID, error)
	AddFollower(ctx context.Context, id primitive.ObjectID, email string) error
	UpdateStore(ctx context.Context, data domain.Store) error
	DeleteStore(ctx context.Context, id primitive.ObjectID) error
}

type ProductRepository interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error)
	GetProductsByStoreID(ctx context.Context, storeID primitive.ObjectID) ([]domain.Product, error)
	AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error)
	UpdateProduct(ctx context.Context, data domain.Product) error
	AdjustProductStock(ctx context.Context, id primitive.ObjectID, quantity int64) error
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
}

type CategoryRepository interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, id primitive.ObjectID) (domain.Category, error)
	AddCategory(ctx context.Context, data domain.Category) (primitive.ObjectID, error)
	UpdateCategory(ctx context.Context, data domain.Category) error
	DeleteCategory(ctx context.Context, id primitive.ObjectID) error
}

type ShippingRepository interface {
	GetShippings(ctx context.Context) ([]domain.Shipping, error)
	GetShippingByID(ctx context.Context, id primitive.ObjectID) (domain.Shipping, error)
	AddShipping(ctx context.Context, data domain.Shipping) (primitive.ObjectID, error)
	UpdateShipping(ctx context.Context, data domain.Shipping) error
	DeleteShipping(ctx context.Context, id primitive.ObjectID) error
}

type OrderRepository interface {
	GetOrders(ctx context.Context) ([]domain.Order, error)
	GetOrderByID(ctx context.Context, id primitive.ObjectID) (domain.Order, error)
	GetOrdersByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]domain.Order, error)
	GetOrdersByStoreID(ctx context.Context, storeID primitive.ObjectID) ([]domain.Order, error)
	AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error)
	MarkOrderShipped(ctx context.Context, id primitive.ObjectID) error
	MarkOrderDelivered(ctx context.Context, id primitive.ObjectID) error
	DeleteOrder(ctx context.Context, id primitive.ObjectID) error
	AddRejectedOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error)
	GetRejectedOrders(ctx context.Context) ([]domain.Order, error)
	GetRejectedOrderByID(ctx context.Context, id primitive.ObjectID) (domain.Order, error)
}

type WishlistRepository interface {
	GetWishlists(ctx context.Context) ([]domain.Wishlist, error)
	GetWishlistByID(ctx context.Context, id primitive.ObjectID) (domain.Wishlist, error)
	GetWishlistsByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Wishlist, error)
	AddWishlist(ctx context.Context, data domain.Wishlist) (primitive.ObjectID, error)
	DeleteWishlist(ctx context.Context, id primitive.ObjectID) error
	DeleteWishlistByProductID(ctx context.Context, productID primitive.ObjectID) (int64, error)
}

type TestimonialRepository interface {
	GetTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	GetTestimonialByID(ctx context.Context, id primitive.ObjectID) (domain.Testimonial, error)
	AddTestimonial(ctx context.Context, data domain.Testimonial) (primitive.ObjectID, error)
	DeleteTestimonial(ctx context.Context, id primitive.ObjectID) error
}
