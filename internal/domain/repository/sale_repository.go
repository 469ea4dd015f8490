package repository

import "github.com/kitadi/kitadi-pos/internal/domain/entity"

// SaleRepository persistência de vendas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Sale, error)
}
