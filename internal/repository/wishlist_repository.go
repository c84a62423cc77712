package repository

import (
	"context"

	"github.com/Umar-Zak/lyospot/internal/domain"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBWishlistRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewWishlistRepository(db *mongo.Database) WishlistRepository {
	return &MongoDBWishlistRepositoryImpl{db: db}
}

func (r *MongoDBWishlistRepositoryImpl) GetWishlists(ctx context.Context) (data []domain.Wishlist, err error) {
	cursor, err := r.db.Collection("wishlists").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWishlists").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWishlists").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBWishlistRepositoryImpl) GetWishlistByID(ctx context.Context, id primitive.ObjectID) (wishlist domain.Wishlist, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("wishlists").FindOne(ctx, filter).Decode(&wishlist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return wishlist, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWishlistByID").Msg("")

		return wishlist, err
	}

	return wishlist, nil
}

func (r *MongoDBWishlistRepositoryImpl) GetWishlistsByUserID(ctx context.Context, userID primitive.ObjectID) (data []domain.Wishlist, err error) {
	filter := bson.D{{Key: "user._id", Value: userID}}

	cursor, err := r.db.Collection("wishlists").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWishlistsByUserID").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWishlistsByUserID").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBWishlistRepositoryImpl) AddWishlist(ctx context.Context, data domain.Wishlist) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("wishlists").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddWishlist").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBWishlistRepositoryImpl) DeleteWishlist(ctx context.Context, id primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	_, err = r.db.Collection("wishlists").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteWishlist").Msg("")
		return
	}

	return
}

func (r *MongoDBWishlistRepositoryImpl) DeleteWishlistByProductID(ctx context.Context, productID primitive.ObjectID) (deleted int64, err error) {
	filter := bson.D{{Key: "product._id", Value: productID}}

	result, err := r.db.Collection("wishlists").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteWishlistByProductID").Msg("")
		return
	}

	return result.DeletedCount, nil
}
