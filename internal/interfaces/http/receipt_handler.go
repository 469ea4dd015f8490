package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kitadi/kitadi-pos/internal/application/dto"
	"github.com/kitadi/kitadi-pos/internal/application/receipts"
	"github.com/kitadi/kitadi-pos/internal/domain"
)

// ReceiptHandler expõe as operações de recibo de uma venda: download do
// documento vectorial, versão térmica, impressão e partilha.
type ReceiptHandler struct {
	uc *receipts.UseCase
}

// NewReceiptHandler constrói o handler de recibos.
func NewReceiptHandler(uc *receipts.UseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// DownloadPDF devolve o recibo vectorial como anexo.
// GET /api/sales/:id/receipt/pdf
func (h *ReceiptHandler) DownloadPDF(c *fiber.Ctx) error {
	companyID, saleID, ok, err := h.params(c)
	if !ok {
		return err
	}
	data, filename, err := h.uc.Download(c.Context(), companyID, saleID)
	if err != nil {
		return receiptError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// DownloadThermal devolve o recibo térmico (texto de 32 colunas) como anexo.
// GET /api/sales/:id/receipt/thermal
func (h *ReceiptHandler) DownloadThermal(c *fiber.Ctx) error {
	companyID, saleID, ok, err := h.params(c)
	if !ok {
		return err
	}
	text, filename, err := h.uc.ThermalDownload(c.Context(), companyID, saleID)
	if err != nil {
		return receiptError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(text)
}

// Print envia o recibo térmico ao spool de impressão do servidor.
// POST /api/sales/:id/receipt/print
func (h *ReceiptHandler) Print(c *fiber.Ctx) error {
	companyID, saleID, ok, err := h.params(c)
	if !ok {
		return err
	}
	if err := h.uc.Print(c.Context(), companyID, saleID); err != nil {
		return receiptError(c, err)
	}
	return c.JSON(fiber.Map{"printed": true})
}

// Share partilha o recibo vectorial; se a plataforma de partilha estiver
// indisponível o documento fica gravado como download e fell_back=true.
// POST /api/sales/:id/receipt/share
func (h *ReceiptHandler) Share(c *fiber.Ctx) error {
	companyID, saleID, ok, err := h.params(c)
	if !ok {
		return err
	}
	fellBack, filename, err := h.uc.Share(c.Context(), companyID, saleID)
	if err != nil {
		return receiptError(c, err)
	}
	return c.JSON(dto.ShareReceiptResponse{FellBack: fellBack, Filename: filename})
}

// params valida o token e o parâmetro :id. Quando ok=false a resposta de
// erro já foi escrita e o handler devolve err tal como está.
func (h *ReceiptHandler) params(c *fiber.Ctx) (companyID, saleID string, ok bool, err error) {
	companyID = GetCompanyID(c)
	if companyID == "" {
		return "", "", false, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	saleID = c.Params("id")
	if saleID == "" {
		return "", "", false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id obrigatório"})
	}
	return companyID, saleID, true, nil
}

func receiptError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venda não encontrada"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado ao recurso"})
	}
	if errors.Is(err, domain.ErrDocumentBuild) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DOCUMENT_BUILD", Message: "falha na construção do documento"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
