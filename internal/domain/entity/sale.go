package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa uma venda concluída no ponto de venda.
//
// Customer e Items chegam do checkout em formatos que mudaram ao longo da
// história da aplicação e são persistidos como JSONB sem normalização:
//
//   - Customer: string com o nome, ou objecto {name, email, phone, address, nif}
//   - Items: lista de entradas de carrinho {product:{...}, quantity},
//     lista plana {productName, price, quantity},
//     objecto {products:[...]}, ou (legado) apenas o número de artigos
//
// A normalização para linhas de recibo é responsabilidade exclusiva de
// receipt.ExtractItems; o resto do sistema trata estes campos como opacos.
type Sale struct {
	ID            string
	CompanyID     string
	Date          time.Time
	Total         decimal.Decimal
	AmountPaid    decimal.Decimal
	Change        decimal.Decimal
	PaymentMethod string
	Notes         string
	Customer      any // string | map[string]any | nil
	Items         any // []any | map[string]any | float64 | nil
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
