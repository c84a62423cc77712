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

type MongoDBCategoryRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoDBCategoryRepositoryImpl{db: db}
}

func (r *MongoDBCategoryRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	cursor, err := r.db.Collection("categories").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (category domain.Category, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("categories").FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return category, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryByID").Msg("")

		return category, err
	}

	return category, nil
}

func (r *MongoDBCategoryRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("categories").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCategory").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBCategoryRepositoryImpl) UpdateCategory(ctx context.Context, data domain.Category) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "title", Value: data.Title}}}}

	result, err := r.db.Collection("categories").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateCategory").Msg("Failed to update category")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBCategoryRepositoryImpl) DeleteCategory(ctx context.Context, id primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	_, err = r.db.Collection("categories").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCategory").Msg("")
		return
	}

	return
}

type MongoDBShippingRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewShippingRepository(db *mongo.Database) ShippingRepository {
	return &MongoDBShippingRepositoryImpl{db: db}
}

func (r *MongoDBShippingRepositoryImpl) GetShippings(ctx context.Context) (data []domain.Shipping, err error) {
	cursor, err := r.db.Collection("shippings").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetShippings").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetShippings").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBShippingRepositoryImpl) GetShippingByID(ctx context.Context, id primitive.ObjectID) (shipping domain.Shipping, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("shippings").FindOne(ctx, filter).Decode(&shipping)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return shipping, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetShippingByID").Msg("")

		return shipping, err
	}

	return shipping, nil
}

func (r *MongoDBShippingRepositoryImpl) AddShipping(ctx context.Context, data domain.Shipping) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("shippings").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddShipping").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBShippingRepositoryImpl) UpdateShipping(ctx context.Context, data domain.Shipping) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "type", Value: data.Type}}}}

	result, err := r.db.Collection("shippings").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateShipping").Msg("Failed to update shipping")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBShippingRepositoryImpl) DeleteShipping(ctx context.Context, id primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	_, err = r.db.Collection("shippings").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteShipping").Msg("")
		return
	}

	return
}
