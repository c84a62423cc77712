package dto

type WishlistRequest struct {
	UserEmail string `json:"useremail" validate:"required,email"`
	ProductID string `json:"id" validate:"required"`
}
