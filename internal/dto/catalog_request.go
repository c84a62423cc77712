package dto

type CategoryRequest struct {
	Title string `json:"title" validate:"required"`
}

type ShippingRequest struct {
	Type string `json:"type" validate:"required"`
}
