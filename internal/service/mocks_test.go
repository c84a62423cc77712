package service

import (
	"context"

	"github.com/Umar-Zak/lyospot/internal/domain"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) GetUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *userRepositoryMock) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *userRepositoryMock) GetUserByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *userRepositoryMock) UpdateUser(ctx context.Context, data domain.User) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *userRepositoryMock) UpdatePassword(ctx context.Context, email string, hashedPassword string) error {
	args := m.Called(ctx, email, hashedPassword)
	return args.Error(0)
}

func (m *userRepositoryMock) SetStoreOwnership(ctx context.Context, id primitive.ObjectID, storeName string) error {
	args := m.Called(ctx, id, storeName)
	return args.Error(0)
}

func (m *userRepositoryMock) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type storeRepositoryMock struct {
	mock.Mock
}

func (m *storeRepositoryMock) GetStores(ctx context.Context) ([]domain.Store, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Store), args.Error(1)
}

func (m *storeRepositoryMock) GetStoreByID(ctx context.Context, id primitive.ObjectID) (domain.Store, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Store), args.Error(1)
}

func (m *storeRepositoryMock) GetStoreByOwnerID(ctx context.Context, ownerID primitive.ObjectID) (domain.Store, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.Store), args.Error(1)
}

func (m *storeRepositoryMock) GetStoreByOwnerEmail(ctx context.Context, email string) (domain.Store, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.Store), args.Error(1)
}

func (m *storeRepositoryMock) AddStore(ctx context.Context, data domain.Store) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *storeRepositoryMock) AddFollower(ctx context.Context, id primitive.ObjectID, email string) error {
	args := m.Called(ctx, id, email)
	return args.Error(0)
}

func (m *storeRepositoryMock) UpdateStore(ctx context.Context, data domain.Store) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *storeRepositoryMock) DeleteStore(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type productRepositoryMock struct {
	mock.Mock
}

func (m *productRepositoryMock) GetProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *productRepositoryMock) GetProductByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *productRepositoryMock) GetProductsByStoreID(ctx context.Context, storeID primitive.ObjectID) ([]domain.Product, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *productRepositoryMock) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *productRepositoryMock) UpdateProduct(ctx context.Context, data domain.Product) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *productRepositoryMock) AdjustProductStock(ctx context.Context, id primitive.ObjectID, quantity int64) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *productRepositoryMock) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type categoryRepositoryMock struct {
	mock.Mock
}

func (m *categoryRepositoryMock) GetCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) AddCategory(ctx context.Context, data domain.Category) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *categoryRepositoryMock) UpdateCategory(ctx context.Context, data domain.Category) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *categoryRepositoryMock) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type shippingRepositoryMock struct {
	mock.Mock
}

func (m *shippingRepositoryMock) GetShippings(ctx context.Context) ([]domain.Shipping, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Shipping), args.Error(1)
}

func (m *shippingRepositoryMock) GetShippingByID(ctx context.Context, id primitive.ObjectID) (domain.Shipping, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Shipping), args.Error(1)
}

func (m *shippingRepositoryMock) AddShipping(ctx context.Context, data domain.Shipping) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *shippingRepositoryMock) UpdateShipping(ctx context.Context, data domain.Shipping) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *shippingRepositoryMock) DeleteShipping(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type orderRepositoryMock struct {
	mock.Mock
}

func (m *orderRepositoryMock) GetOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *orderRepositoryMock) GetOrderByID(ctx context.Context, id primitive.ObjectID) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *orderRepositoryMock) GetOrdersByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *orderRepositoryMock) GetOrdersByStoreID(ctx context.Context, storeID primitive.ObjectID) ([]domain.Order, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *orderRepositoryMock) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *orderRepositoryMock) MarkOrderShipped(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *orderRepositoryMock) MarkOrderDelivered(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *orderRepositoryMock) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *orderRepositoryMock) AddRejectedOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *orderRepositoryMock) GetRejectedOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *orderRepositoryMock) GetRejectedOrderByID(ctx context.Context, id primitive.ObjectID) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}

type wishlistRepositoryMock struct {
	mock.Mock
}

func (m *wishlistRepositoryMock) GetWishlists(ctx context.Context) ([]domain.Wishlist, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Wishlist), args.Error(1)
}

func (m *wishlistRepositoryMock) GetWishlistByID(ctx context.Context, id primitive.ObjectID) (domain.Wishlist, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Wishlist), args.Error(1)
}

func (m *wishlistRepositoryMock) GetWishlistsByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Wishlist, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Wishlist), args.Error(1)
}

func (m *wishlistRepositoryMock) AddWishlist(ctx context.Context, data domain.Wishlist) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *wishlistRepositoryMock) DeleteWishlist(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *wishlistRepositoryMock) DeleteWishlistByProductID(ctx context.Context, productID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}
