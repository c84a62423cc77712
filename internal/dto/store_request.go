package dto

type StoreRequest struct {
	ID          string `json:"-" form:"-"`
	Name        string `json:"name" form:"name" validate:"required"`
	Address     string `json:"address" form:"address" validate:"required"`
	Contact     string `json:"contact" form:"contact" validate:"required"`
	Account     string `json:"account" form:"account" validate:"required"`
	Country     string `json:"country" form:"country" validate:"required"`
	Owner       string `json:"owner" form:"owner" validate:"required,email"`
	Description string `json:"description" form:"description" validate:"required"`
	Profile     string `json:"-" form:"-"`
}

type FollowRequest struct {
	Store string `json:"store" validate:"required"`
	User  string `json:"user" validate:"required,email"`
}

type StoreProfileRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SMSRequest struct {
	Receiver string `json:"receiver" validate:"required"`
	Message  string `json:"message" validate:"required"`
}
