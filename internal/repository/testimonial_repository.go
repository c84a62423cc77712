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

type MongoDBTestimonialRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewTestimonialRepository(db *mongo.Database) TestimonialRepository {
	return &MongoDBTestimonialRepositoryImpl{db: db}
}

func (r *MongoDBTestimonialRepositoryImpl) GetTestimonials(ctx context.Context) (data []domain.Testimonial, err error) {
	cursor, err := r.db.Collection("testimonials").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTestimonials").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTestimonials").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBTestimonialRepositoryImpl) GetTestimonialByID(ctx context.Context, id primitive.ObjectID) (testimonial domain.Testimonial, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("testimonials").FindOne(ctx, filter).Decode(&testimonial)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return testimonial, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTestimonialByID").Msg("")

		return testimonial, err
	}

	return testimonial, nil
}

func (r *MongoDBTestimonialRepositoryImpl) AddTestimonial(ctx context.Context, data domain.Testimonial) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("testimonials").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddTestimonial").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBTestimonialRepositoryImpl) DeleteTestimonial(ctx context.Context, id primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	_, err = r.db.Collection("testimonials").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteTestimonial").Msg("")
		return
	}

	return
}
