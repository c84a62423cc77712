package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Shipping struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Type string             `bson:"type" json:"type"`
}
