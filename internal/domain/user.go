package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Password  string             `bson:"password" json:"-"`
	DOB       string             `bson:"dob" json:"dob"`
	Profile   string             `bson:"profile" json:"profile"`
	Gender    string             `bson:"gender" json:"gender"`
	Phone     string             `bson:"phone" json:"phone"`
	IsAdmin   bool               `bson:"isAdmin" json:"isAdmin"`
	Following []string           `bson:"following" json:"following"`
	Address   string             `bson:"address" json:"address"`
	HasStore  bool               `bson:"hasStore" json:"hasStore"`
	StoreName string             `bson:"storeName" json:"storeName"`
}

// UserRef is the snapshot of a user embedded into other documents at write
// time. It does not follow later edits to the user.
type UserRef struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email   string             `bson:"email" json:"email"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Profile string             `bson:"profile,omitempty" json:"profile,omitempty"`
}
