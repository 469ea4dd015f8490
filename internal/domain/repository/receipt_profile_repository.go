package repository

import "github.com/kitadi/kitadi-pos/internal/domain/receipt"

// ReceiptProfileRepository persistência do perfil de recibo por loja.
// GetByCompany devolve (nil, nil) quando a loja ainda não configurou perfil;
// os renderers recebem então os valores por omissão via receipt.Resolve.
type ReceiptProfileRepository interface {
	GetByCompany(companyID string) (*receipt.Config, error)
	Upsert(companyID string, profile *receipt.Config) error
}
