package repository

import "github.com/kitadi/kitadi-pos/internal/domain/entity"

// ProductRepository persistência do catálogo de produtos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
}
