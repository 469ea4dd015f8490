package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kitadi/kitadi-pos/internal/domain/entity"
	"github.com/kitadi/kitadi-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação do porto SaleRepository sobre PostgreSQL.
// Customer e Items são persistidos como JSONB sem normalização: os formatos
// históricos descritos em entity.Sale fazem round-trip intactos e só o motor
// de recibos os interpreta.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository constrói o adaptador de persistência para vendas.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// Create persiste uma nova venda.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	customer, err := json.Marshal(sale.Customer)
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	query := `
		INSERT INTO sales (id, company_id, date, total, amount_paid, change, payment_method, notes, customer, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.pool.Exec(context.Background(), query,
		sale.ID, sale.CompanyID, sale.Date,
		sale.Total, sale.AmountPaid, sale.Change,
		sale.PaymentMethod, sale.Notes,
		customer, items,
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtém uma venda por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, company_id, date, total, amount_paid, change, payment_method, notes, customer, items, created_at, updated_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	var customer, items []byte
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.Date,
		&s.Total, &s.AmountPaid, &s.Change,
		&s.PaymentMethod, &s.Notes,
		&customer, &items,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if err := unmarshalOpaque(customer, &s.Customer); err != nil {
		return nil, fmt.Errorf("unmarshal customer: %w", err)
	}
	if err := unmarshalOpaque(items, &s.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return &s, nil
}

// ListByCompany lista vendas de uma loja, da mais recente para a mais antiga.
func (r *SaleRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, company_id, date, total, amount_paid, change, payment_method, notes, customer, items, created_at, updated_at
		FROM sales WHERE company_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var customer, items []byte
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.Date,
			&s.Total, &s.AmountPaid, &s.Change,
			&s.PaymentMethod, &s.Notes,
			&customer, &items,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if err := unmarshalOpaque(customer, &s.Customer); err != nil {
			return nil, fmt.Errorf("unmarshal customer: %w", err)
		}
		if err := unmarshalOpaque(items, &s.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// unmarshalOpaque repõe um campo JSONB opaco no seu valor dinâmico.
// NULL na coluna resulta em nil no campo.
func unmarshalOpaque(data []byte, dst *any) error {
	if len(data) == 0 {
		*dst = nil
		return nil
	}
	return json.Unmarshal(data, dst)
}
