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

type MongoDBStoreRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewStoreRepository(db *mongo.Database) StoreRepository {
	return &MongoDBStoreRepositoryImpl{db: db}
}

func (r *MongoDBStoreRepositoryImpl) GetStores(ctx context.Context) (data []domain.Store, err error) {
	cursor, err := r.db.Collection("stores").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetStores").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetStores").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBStoreRepositoryImpl) GetStoreByID(ctx context.Context, id primitive.ObjectID) (store domain.Store, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("stores").FindOne(ctx, filter).Decode(&store)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return store, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetStoreByID").Msg("")

		return store, err
	}

	return store, nil
}

func (r *MongoDBStoreRepositoryImpl) GetStoreByOwnerID(ctx context.Context, ownerID primitive.ObjectID) (store domain.Store, err error) {
	filter := bson.D{{Key: "owner._id", Value: ownerID}}

	err = r.db.Collection("stores").FindOne(ctx, filter).Decode(&store)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return store, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetStoreByOwnerID").Msg("")

		return store, err
	}

	return store, nil
}

func (r *MongoDBStoreRepositoryImpl) GetStoreByOwnerEmail(ctx context.Context, email string) (store domain.Store, err error) {
	filter := bson.D{{Key: "owner.email", Value: email}}

	err = r.db.Collection("stores").FindOne(ctx, filter).Decode(&store)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return store, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetStoreByOwnerEmail").Msg("")

		return store, err
	}

	return store, nil
}

func (r *MongoDBStoreRepositoryImpl) AddStore(ctx context.Context, data domain.Store) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("stores").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddStore").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBStoreRepositoryImpl) AddFollower(ctx context.Context, id primitive.ObjectID, email string) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	update := bson.D{{Key: "$push", Value: bson.D{{Key: "follows", Value: email}}}}

	result, err := r.db.Collection("stores").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddFollower").Msg("Failed to update store")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBStoreRepositoryImpl) UpdateStore(ctx context.Context, data domain.Store) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "contact", Value: data.Contact},
		{Key: "address", Value: data.Address},
		{Key: "country", Value: data.Country},
		{Key: "account", Value: data.Account},
		{Key: "description", Value: data.Description},
		{Key: "owner", Value: data.Owner},
	}}}

	result, err := r.db.Collection("stores").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateStore").Msg("Failed to update store")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBStoreRepositoryImpl) DeleteStore(ctx context.Context, id primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	_, err = r.db.Collection("stores").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteStore").Msg("")
		return
	}

	return
}
