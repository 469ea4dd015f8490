package companies

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kitadi/kitadi-pos/internal/domain"
	"github.com/kitadi/kitadi-pos/internal/domain/entity"
	"github.com/kitadi/kitadi-pos/internal/domain/repository"
)

// CreateInput dados para registar uma loja.
type CreateInput struct {
	Name    string `json:"name"`
	NIF     string `json:"nif"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// UseCase casos de uso de lojas/tenants.
type UseCase struct {
	companyRepo repository.CompanyRepository
}

// NewUseCase constrói o caso de uso de lojas.
func NewUseCase(companyRepo repository.CompanyRepository) *UseCase {
	return &UseCase{companyRepo: companyRepo}
}

// Create regista uma nova loja.
func (uc *UseCase) Create(in CreateInput) (*entity.Company, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		NIF:       in.NIF,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, fmt.Errorf("lojas: criar: %w", err)
	}
	return company, nil
}

// GetByID devolve uma loja.
func (uc *UseCase) GetByID(id string) (*entity.Company, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("lojas: obter: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

// List devolve lojas com paginação.
func (uc *UseCase) List(limit, offset int) ([]*entity.Company, error) {
	list, err := uc.companyRepo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("lojas: listar: %w", err)
	}
	return list, nil
}
