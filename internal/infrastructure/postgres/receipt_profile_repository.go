package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kitadi/kitadi-pos/internal/domain/receipt"
	"github.com/kitadi/kitadi-pos/internal/domain/repository"
)

var _ repository.ReceiptProfileRepository = (*ReceiptProfileRepo)(nil)

// ReceiptProfileRepo implementação do porto ReceiptProfileRepository sobre
// PostgreSQL. O perfil é uma coluna JSONB única por loja: os campos são todos
// opcionais e evoluem juntos, não justificam colunas próprias.
type ReceiptProfileRepo struct {
	pool *pgxpool.Pool
}

// NewReceiptProfileRepository constrói o adaptador de persistência de perfis de recibo.
func NewReceiptProfileRepository(pool *pgxpool.Pool) *ReceiptProfileRepo {
	return &ReceiptProfileRepo{pool: pool}
}

// GetByCompany devolve o perfil da loja, ou (nil, nil) se nunca foi configurado.
func (r *ReceiptProfileRepo) GetByCompany(companyID string) (*receipt.Config, error) {
	var data []byte
	err := r.pool.QueryRow(context.Background(),
		`SELECT profile FROM receipt_profiles WHERE company_id = $1`, companyID,
	).Scan(&data)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt profile: %w", err)
	}

	var cfg receipt.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal receipt profile: %w", err)
	}
	return &cfg, nil
}

// Upsert cria ou substitui o perfil da loja.
func (r *ReceiptProfileRepo) Upsert(companyID string, profile *receipt.Config) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal receipt profile: %w", err)
	}

	query := `
		INSERT INTO receipt_profiles (company_id, profile, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (company_id) DO UPDATE SET profile = EXCLUDED.profile, updated_at = EXCLUDED.updated_at`
	_, err = r.pool.Exec(context.Background(), query, companyID, data, time.Now())
	if err != nil {
		return fmt.Errorf("upsert receipt profile: %w", err)
	}
	return nil
}
