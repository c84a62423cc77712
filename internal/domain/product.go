package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int64              `bson:"quantity" json:"quantity"`
	Store       StoreRef           `bson:"store" json:"store"`
	Category    Category           `bson:"category" json:"category"`
	Shipping    Shipping           `bson:"shipping" json:"shipping"`
	Description string             `bson:"description" json:"description"`
	Specs       string             `bson:"specs" json:"specs"`
	Sold        int64              `bson:"sold" json:"sold"`
	Profile1    string             `bson:"profile1" json:"profile1"`
	Profile2    string             `bson:"profile2" json:"profile2"`
	Profile3    string             `bson:"profile3" json:"profile3"`
	Profile4    string             `bson:"profile4,omitempty" json:"profile4,omitempty"`
	ShippingFee float64            `bson:"shippingFee" json:"shippingFee"`
}
