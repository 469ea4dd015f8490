package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kitadi/kitadi-pos/internal/application/dto"
	"github.com/kitadi/kitadi-pos/internal/application/receipts"
)

// ReceiptProfileHandler trata a configuração do perfil de recibo da loja.
type ReceiptProfileHandler struct {
	uc *receipts.UseCase
}

// NewReceiptProfileHandler constrói o handler do perfil de recibo.
func NewReceiptProfileHandler(uc *receipts.UseCase) *ReceiptProfileHandler {
	return &ReceiptProfileHandler{uc: uc}
}

// Get devolve o perfil efectivo (guardado + valores por omissão).
// GET /api/receipt-profile
func (h *ReceiptProfileHandler) Get(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	profile, err := h.uc.GetProfile(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(profile)
}

// Put cria ou substitui o perfil da loja.
// PUT /api/receipt-profile
func (h *ReceiptProfileHandler) Put(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ReceiptProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.SaveProfile(companyID, in.ToProfile()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
