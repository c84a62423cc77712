package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusReceived  = "Order received"
	OrderStatusInTransit = "In Transit"
	OrderStatusDelivered = "Delivered"
	OrderStatusRejected  = "Rejected"
)

// Order holds a single line item: a multi-item checkout is split into one
// document per product. The same shape is stored in the rejected-orders
// collection when an order is removed.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrderCode string             `bson:"orderCode" json:"orderCode"`
	OrderDate time.Time          `bson:"orderDate" json:"orderDate"`
	Address   string             `bson:"address" json:"address"`
	BoughtBy  UserRef            `bson:"boughtBy" json:"boughtBy"`
	Status    string             `bson:"status" json:"status"`
	Tracking  string             `bson:"tracking" json:"tracking"`
	Product   OrderProduct       `bson:"product" json:"product"`
}

// OrderProduct is the product snapshot captured at checkout. Quantity is the
// ordered count, not the stock level; Amount is the charged total for the
// line item.
type OrderProduct struct {
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
	Amount      float64            `bson:"amount" json:"amount"`
	ShippingFee float64            `bson:"shippingFee" json:"shippingFee"`
}
