package receipts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kitadi/kitadi-pos/internal/domain"
	"github.com/kitadi/kitadi-pos/internal/domain/entity"
	"github.com/kitadi/kitadi-pos/internal/domain/receipt"
	"github.com/kitadi/kitadi-pos/internal/domain/repository"
)

// UseCase orquestra a geração de recibos: carrega a venda e o perfil,
// resolve o perfil sobre os defaults, renderiza e entrega ao destino de
// saída. Cada operação re-deriva tudo do zero; não há cache nem estado
// partilhado entre invocações, e nada muta a venda nem o perfil.
type UseCase struct {
	saleRepo    repository.SaleRepository
	profileRepo repository.ReceiptProfileRepository
	pdf         PDFGenerator
	thermal     ThermalRenderer
	sink        Sink
}

// NewUseCase constrói o caso de uso injectando todas as dependências.
func NewUseCase(
	saleRepo repository.SaleRepository,
	profileRepo repository.ReceiptProfileRepository,
	pdf PDFGenerator,
	thermal ThermalRenderer,
	sink Sink,
) *UseCase {
	return &UseCase{
		saleRepo:    saleRepo,
		profileRepo: profileRepo,
		pdf:         pdf,
		thermal:     thermal,
		sink:        sink,
	}
}

// Download gera o documento vectorial e devolve os bytes mais o nome de
// ficheiro receipt-sale-<id>.pdf para o caller iniciar a gravação.
func (uc *UseCase) Download(ctx context.Context, companyID, saleID string) ([]byte, string, error) {
	sale, cfg, err := uc.load(companyID, saleID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.buildPDF(ctx, sale, cfg)
	if err != nil {
		return nil, "", err
	}
	return data, pdfFilename(sale), nil
}

// Print renderiza o recibo térmico e envia-o ao mecanismo de impressão.
// A recusa do diálogo de impressão pelo utilizador não chega aqui como erro.
func (uc *UseCase) Print(ctx context.Context, companyID, saleID string) error {
	sale, cfg, err := uc.load(companyID, saleID)
	if err != nil {
		return err
	}
	text := uc.thermal.Render(sale, cfg)
	if err := uc.sink.Present(ctx, text); err != nil {
		return fmt.Errorf("recibo: imprimir: %w", err)
	}
	return nil
}

// ThermalDownload gera o recibo térmico e devolve o texto mais o nome de
// ficheiro receipt-thermal-<id>.txt.
func (uc *UseCase) ThermalDownload(_ context.Context, companyID, saleID string) (string, string, error) {
	sale, cfg, err := uc.load(companyID, saleID)
	if err != nil {
		return "", "", err
	}
	return uc.thermal.Render(sale, cfg), thermalFilename(sale), nil
}

// Share tenta partilhar o documento vectorial como anexo. Se o mecanismo de
// partilha estiver indisponível, grava o ficheiro como download e devolve
// fellBack=true — o fallback é um resultado, nunca uma excepção.
func (uc *UseCase) Share(ctx context.Context, companyID, saleID string) (fellBack bool, filename string, err error) {
	sale, cfg, err := uc.load(companyID, saleID)
	if err != nil {
		return false, "", err
	}
	data, err := uc.buildPDF(ctx, sale, cfg)
	if err != nil {
		return false, "", err
	}
	filename = pdfFilename(sale)
	caption := "Recibo da venda " + receipt.DocumentNumber(sale.ID, sale.Date)

	shareErr := uc.sink.Share(ctx, data, filename, caption)
	if shareErr == nil {
		return false, filename, nil
	}
	if !errors.Is(shareErr, ErrShareUnavailable) {
		return false, "", fmt.Errorf("recibo: partilhar: %w", shareErr)
	}
	if err := uc.sink.Persist(data, filename); err != nil {
		return false, "", fmt.Errorf("recibo: fallback para download: %w", err)
	}
	return true, filename, nil
}

// load carrega a venda e o perfil resolvido da loja. Um perfil ausente ou
// ilegível nunca impede a geração: usa-se o perfil por omissão.
func (uc *UseCase) load(companyID, saleID string) (*entity.Sale, receipt.Config, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, receipt.Config{}, fmt.Errorf("recibo: obter venda: %w", err)
	}
	if sale == nil {
		return nil, receipt.Config{}, domain.ErrNotFound
	}
	if sale.CompanyID != "" && companyID != "" && sale.CompanyID != companyID {
		return nil, receipt.Config{}, domain.ErrForbidden
	}

	profile, err := uc.profileRepo.GetByCompany(companyID)
	if err != nil {
		profile = nil
	}
	return sale, receipt.Resolve(profile), nil
}

// buildPDF constrói o documento e serializa-o. Qualquer falha aqui é o único
// erro terminal da geração: domain.ErrDocumentBuild.
func (uc *UseCase) buildPDF(ctx context.Context, sale *entity.Sale, cfg receipt.Config) ([]byte, error) {
	doc, err := uc.pdf.Generate(ctx, sale, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentBuild, err)
	}
	data, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: serializar: %v", domain.ErrDocumentBuild, err)
	}
	return data, nil
}

// fileToken identifica o ficheiro: ID da venda, ou timestamp quando não há ID.
func fileToken(sale *entity.Sale) string {
	if sale.ID != "" {
		return sale.ID
	}
	return fmt.Sprintf("%d", time.Now().UnixMilli())
}

func pdfFilename(sale *entity.Sale) string {
	return fmt.Sprintf("receipt-sale-%s.pdf", fileToken(sale))
}

func thermalFilename(sale *entity.Sale) string {
	return fmt.Sprintf("receipt-thermal-%s.txt", fileToken(sale))
}
