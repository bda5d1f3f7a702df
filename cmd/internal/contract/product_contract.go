package contract

import "github.com/shopspring/decimal"

type ProductResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type ProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required,gt=0"`
	Quantity    *int            `json:"quantity" validate:"required"`
}

// ProductEvent is published on the product channel after every product write.
type ProductEvent struct {
	Action string `json:"action"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
}
