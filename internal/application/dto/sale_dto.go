package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest venda recebida do checkout. Customer e Items aceitam
// qualquer um dos formatos históricos e são guardados tal como chegam; a
// normalização é feita apenas na geração do recibo.
type CreateSaleRequest struct {
	Date          time.Time       `json:"date"`
	Total         decimal.Decimal `json:"total"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Change        decimal.Decimal `json:"change"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
	Customer      any             `json:"customer"`
	Items         any             `json:"items"`
}

// SaleResponse projecção de uma venda.
type SaleResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	Date          time.Time       `json:"date"`
	Total         decimal.Decimal `json:"total"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Change        decimal.Decimal `json:"change"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
	Customer      any             `json:"customer,omitempty"`
	Items         any             `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
