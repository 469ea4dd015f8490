package sales

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kitadi/kitadi-pos/internal/application/dto"
	"github.com/kitadi/kitadi-pos/internal/domain"
	"github.com/kitadi/kitadi-pos/internal/domain/entity"
	"github.com/kitadi/kitadi-pos/internal/domain/repository"
)

// UseCase casos de uso de vendas: registo do checkout, consulta e histórico.
type UseCase struct {
	saleRepo repository.SaleRepository
}

// NewUseCase constrói o caso de uso de vendas.
func NewUseCase(saleRepo repository.SaleRepository) *UseCase {
	return &UseCase{saleRepo: saleRepo}
}

// RegisterSale persiste uma venda concluída no checkout. Customer e Items
// são guardados tal como chegam (JSONB); nenhuma normalização acontece aqui.
func (uc *UseCase) RegisterSale(companyID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Total.IsNegative() {
		return nil, fmt.Errorf("%w: total negativo", domain.ErrInvalidInput)
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Date:          date,
		Total:         in.Total,
		AmountPaid:    in.AmountPaid,
		Change:        in.Change,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		Customer:      in.Customer,
		Items:         in.Items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, fmt.Errorf("vendas: registar: %w", err)
	}
	return toSaleResponse(sale), nil
}

// GetSale devolve o detalhe de uma venda da loja.
func (uc *UseCase) GetSale(companyID, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, fmt.Errorf("vendas: obter: %w", err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toSaleResponse(sale), nil
}

// ListSales devolve o histórico paginado de vendas da loja.
func (uc *UseCase) ListSales(companyID string, limit, offset int) ([]*dto.SaleResponse, error) {
	sales, err := uc.saleRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("vendas: listar: %w", err)
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:            s.ID,
		CompanyID:     s.CompanyID,
		Date:          s.Date,
		Total:         s.Total,
		AmountPaid:    s.AmountPaid,
		Change:        s.Change,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
		Customer:      s.Customer,
		Items:         s.Items,
		CreatedAt:     s.CreatedAt,
	}
}
