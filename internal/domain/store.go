package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Store struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Address     string             `bson:"address" json:"address"`
	Contact     string             `bson:"contact" json:"contact"`
	Account     string             `bson:"account" json:"account"`
	Country     string             `bson:"country" json:"country"`
	Owner       UserRef            `bson:"owner" json:"owner"`
	Follows     []string           `bson:"follows" json:"follows"`
	Feedbacks   []Feedback         `bson:"feedbacks" json:"feedbacks"`
	Description string             `bson:"description" json:"description"`
	Profile     string             `bson:"profile" json:"profile"`
}

type Feedback struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Profile string `bson:"profile" json:"profile"`
}

type StoreRef struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string             `bson:"name" json:"name"`
}
