package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo da loja.
type Product struct {
	ID        string
	CompanyID string
	Name      string
	Category  string
	Price     decimal.Decimal // preço unitário em AOA
	Stock     int
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
