package receipts

import (
	"fmt"

	"github.com/kitadi/kitadi-pos/internal/domain/receipt"
)

// GetProfile devolve o perfil de recibo efectivo da loja: o perfil guardado
// resolvido sobre os valores por omissão. Uma loja sem perfil recebe os
// defaults completos.
func (uc *UseCase) GetProfile(companyID string) (receipt.Config, error) {
	stored, err := uc.profileRepo.GetByCompany(companyID)
	if err != nil {
		return receipt.Config{}, fmt.Errorf("recibo: obter perfil: %w", err)
	}
	return receipt.Resolve(stored), nil
}

// SaveProfile guarda o perfil parcial da loja. Campos vazios continuam a
// cair nos valores por omissão na próxima renderização.
func (uc *UseCase) SaveProfile(companyID string, profile *receipt.Config) error {
	if err := uc.profileRepo.Upsert(companyID, profile); err != nil {
		return fmt.Errorf("recibo: guardar perfil: %w", err)
	}
	return nil
}
