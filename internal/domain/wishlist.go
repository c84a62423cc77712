package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Wishlist struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User    UserRef            `bson:"user" json:"user"`
	Product Product            `bson:"product" json:"product"`
}
