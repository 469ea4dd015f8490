package products

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kitadi/kitadi-pos/internal/domain"
	"github.com/kitadi/kitadi-pos/internal/domain/entity"
	"github.com/kitadi/kitadi-pos/internal/domain/repository"
)

// CreateInput dados para criar um produto.
type CreateInput struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

// UseCase casos de uso do catálogo de produtos.
type UseCase struct {
	productRepo repository.ProductRepository
}

// NewUseCase constrói o caso de uso de produtos.
func NewUseCase(productRepo repository.ProductRepository) *UseCase {
	return &UseCase{productRepo: productRepo}
}

// Create regista um produto no catálogo da loja.
func (uc *UseCase) Create(companyID string, in CreateInput) (*entity.Product, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: preço negativo", domain.ErrInvalidInput)
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Stock:     in.Stock,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("produtos: criar: %w", err)
	}
	return product, nil
}

// List devolve o catálogo paginado da loja.
func (uc *UseCase) List(companyID string, limit, offset int) ([]*entity.Product, error) {
	list, err := uc.productRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("produtos: listar: %w", err)
	}
	return list, nil
}

// GetByID devolve um produto da loja.
func (uc *UseCase) GetByID(companyID, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("produtos: obter: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}
