package dto

type OrderRequest struct {
	OrderCode string      `json:"orderCode" validate:"required"`
	OrderBy   string      `json:"orderBy" validate:"required,email"`
	Address   string      `json:"address" validate:"required"`
	Products  []OrderItem `json:"products" validate:"required,min=1,dive"`
}

// OrderItem is one line item of a checkout: the product snapshot is rebuilt
// from the stored product, so only the id and the ordered count travel here.
type OrderItem struct {
	ID       string  `json:"_id" validate:"required"`
	Quantity int64   `json:"quantity" validate:"required,gt=0"`
	Amount   float64 `json:"amount"`
}

// PaymentRequest carries a tokenized card reference; the raw card never
// reaches this service.
type PaymentRequest struct {
	Token  string `json:"token" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
}
