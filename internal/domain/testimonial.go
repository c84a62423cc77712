package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Testimonial struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User    UserRef            `bson:"user" json:"user"`
	Message string             `bson:"message" json:"message"`
}
