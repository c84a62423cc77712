package dto

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
	DOB      string `json:"dob"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone" validate:"omitempty,min=10,max=15"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ConfirmEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	HTML  string `json:"html" validate:"required"`
}

// PasswordRequest backs both the password-confirmation and password-change
// endpoints.
type PasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest arrives as a multipart form alongside an optional profile
// image; Profile is filled in by the upload middleware, not the client.
type UpdateUserRequest struct {
	ID      string `json:"-" form:"-"`
	Email   string `json:"email" form:"email"`
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
	Gender  string `json:"gender" form:"gender"`
	DOB     string `json:"dob" form:"dob"`
	Profile string `json:"-" form:"-"`
}
