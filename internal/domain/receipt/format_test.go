package receipt_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kitadi/kitadi-pos/internal/domain/receipt"
)

func TestFormatAmount_VirgulaDecimalEPrefixoDeMoeda(t *testing.T) {
	assert.Equal(t, "AOA 1500,00", receipt.FormatAmount(decimal.NewFromInt(1500), "AOA"))
	assert.Equal(t, "AOA 0,50", receipt.FormatAmount(decimal.RequireFromString("0.5"), "AOA"))
	assert.Equal(t, "USD 10,99", receipt.FormatAmount(decimal.RequireFromString("10.99"), "USD"))
}

func TestFormatDateTime_FormatoDiaMesAno(t *testing.T) {
	ts := time.Date(2025, 1, 10, 10, 30, 45, 0, time.UTC)
	assert.Equal(t, "10-01-2025 10:30:45", receipt.FormatDateTime(ts))
}

func TestFormatTaxRate(t *testing.T) {
	assert.Equal(t, "0%", receipt.FormatTaxRate(0))
	assert.Equal(t, "14%", receipt.FormatTaxRate(14))
	assert.Equal(t, "6.5%", receipt.FormatTaxRate(6.5))
}

func TestDocumentNumber_PrefixoMaisPrimeiros8Caracteres(t *testing.T) {
	num := receipt.DocumentNumber("a1b2c3d4e5f6", time.Now())
	assert.Equal(t, "FR-a1b2c3d4", num)
}

func TestDocumentNumber_IDCurtoUsadoInteiro(t *testing.T) {
	assert.Equal(t, "FR-s1", receipt.DocumentNumber("s1", time.Now()))
}

func TestDocumentNumber_SemIDUsaTimestamp(t *testing.T) {
	ts := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	num := receipt.DocumentNumber("", ts)
	assert.NotEqual(t, "FR-", num)
	assert.Contains(t, num, "FR-")
}

// ── Resolução do cliente ──────────────────────────────────────────────────────

func TestCustomerName_PrecedenciaEstruturadoStringFallback(t *testing.T) {
	// registo estruturado: ganha o campo name
	structured := map[string]any{"name": "Maria João", "nif": "500123"}
	assert.Equal(t, "Maria João", receipt.CustomerName(structured))

	// string simples
	assert.Equal(t, "José", receipt.CustomerName("José"))

	// ausente ou irreconhecível: literal de fallback
	assert.Equal(t, receipt.FallbackCustomerName, receipt.CustomerName(nil))
	assert.Equal(t, receipt.FallbackCustomerName, receipt.CustomerName(""))
	assert.Equal(t, receipt.FallbackCustomerName, receipt.CustomerName(map[string]any{"email": "x@y.ao"}))
}

func TestCustomerNIF_ComEFallback(t *testing.T) {
	assert.Equal(t, "5001234567", receipt.CustomerNIF(map[string]any{"nif": "5001234567"}))
	assert.Equal(t, receipt.FallbackCustomerNIF, receipt.CustomerNIF("Maria"))
	assert.Equal(t, receipt.FallbackCustomerNIF, receipt.CustomerNIF(nil))
}

// ── Merge do perfil ───────────────────────────────────────────────────────────

func TestResolve_NilDevolveDefaults(t *testing.T) {
	cfg := receipt.Resolve(nil)
	assert.Equal(t, receipt.DefaultCompanyName, cfg.CompanyName)
	assert.Equal(t, receipt.DefaultCurrency, cfg.Currency)
	assert.Equal(t, receipt.DefaultFontSizes(), cfg.FontSizes)
	assert.False(t, cfg.ShowBarcode)
}

func TestResolve_CamposFornecidosGanhamAosDefaults(t *testing.T) {
	cfg := receipt.Resolve(&receipt.Config{
		CompanyName: "Mercearia Kifica",
		Currency:    "USD",
		TaxRate:     14,
		ShowBarcode: true,
	})
	assert.Equal(t, "Mercearia Kifica", cfg.CompanyName)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, 14.0, cfg.TaxRate)
	assert.True(t, cfg.ShowBarcode)
	// os não fornecidos continuam com defaults
	assert.Equal(t, receipt.DefaultThankYouMessage, cfg.ThankYouMessage)
	assert.Equal(t, receipt.DefaultCertificateNumber, cfg.CertificateNumber)
}

func TestResolve_CamposDeContactoVaziosFicamVazios(t *testing.T) {
	cfg := receipt.Resolve(&receipt.Config{CompanyName: "Loja"})
	assert.Empty(t, cfg.Address)
	assert.Empty(t, cfg.Phone)
	assert.Empty(t, cfg.Email)
}
