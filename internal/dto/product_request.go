package dto

// ProductRequest arrives as a multipart form: the scalar fields are bound
// from the form values and Images is filled in by the upload middleware.
// Store is the owner email used to resolve the store snapshot.
type ProductRequest struct {
	ID          string            `json:"-" form:"-"`
	Name        string            `json:"name" form:"name" validate:"required"`
	Price       float64           `json:"price" form:"price" validate:"required"`
	Quantity    int64             `json:"quantity" form:"quantity" validate:"required"`
	Store       string            `json:"store" form:"store" validate:"required,email"`
	CategoryID  string            `json:"categoryId" form:"categoryId" validate:"required"`
	ShippingID  string            `json:"shippingId" form:"shippingId" validate:"required"`
	Description string            `json:"description" form:"description"`
	Specs       string            `json:"specs" form:"specs"`
	ShippingFee float64           `json:"shippingFee" form:"shippingFee"`
	Images      map[string]string `json:"-" form:"-"`
}
