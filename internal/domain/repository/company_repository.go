package repository

import "github.com/kitadi/kitadi-pos/internal/domain/entity"

// CompanyRepository persistência de lojas/tenants.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}
