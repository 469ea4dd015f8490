// Package thermal implementa o renderer de recibos para impressoras térmicas
// de 32 colunas: texto puro UTF-8, uma linha por entrada, com as mesmas
// secções e o mesmo conteúdo lógico do renderer vectorial.
package thermal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kitadi/kitadi-pos/internal/domain/entity"
	"github.com/kitadi/kitadi-pos/internal/domain/receipt"
)

// Width largura fixa do papel térmico, em caracteres.
const Width = receipt.WrapWidthThermal

// Renderer implementa receipts.ThermalRenderer.
type Renderer struct{}

// NewRenderer constrói o renderer térmico.
func NewRenderer() *Renderer { return &Renderer{} }

// Render produz o recibo como texto de largura fixa, separado por \n.
// Não há estimativa de altura: um stream de texto não tem página. A ordem
// das secções e o conteúdo das linhas de artigos são os mesmos do renderer
// vectorial.
func (r *Renderer) Render(sale *entity.Sale, cfg receipt.Config) string {
	b := &builder{}

	// Cabeçalho da empresa
	b.center(cfg.CompanyName)
	if cfg.NIF != "" {
		b.center("NIF: " + cfg.NIF)
	}
	if cfg.Address != "" {
		b.center(cfg.Address)
	}
	if cfg.Neighborhood != "" {
		b.center(cfg.Neighborhood)
	}
	if cfg.City != "" {
		b.center(cfg.City)
	}
	if cfg.Phone != "" {
		b.center("Tel: " + cfg.Phone)
	}
	if cfg.Email != "" {
		b.center(cfg.Email)
	}
	if cfg.SocialHandle != "" {
		b.center(cfg.SocialHandle)
	}
	b.rule()

	// Metadados do documento
	issued := receipt.FormatDateTime(sale.Date)
	b.center(receipt.DocumentKind)
	b.line("Data: " + issued)
	b.line("Entrega: " + issued)
	b.line("Documento: " + receipt.DocumentNumber(sale.ID, sale.Date))
	b.rule()

	// Cliente
	b.line("Cliente: " + receipt.CustomerName(sale.Customer))
	b.line("NIF: " + receipt.CustomerNIF(sale.Customer))
	b.rule()

	// Artigos: nome numa linha, valores na seguinte
	for _, item := range receipt.ExtractItems(sale) {
		b.line(item.Name)
		b.right(fmt.Sprintf("%d x %s = %s",
			item.Quantity,
			receipt.FormatAmount(item.UnitPrice, cfg.Currency),
			receipt.FormatAmount(item.LineTotal, cfg.Currency),
		))
	}
	b.rule()

	// Totais e pagamento
	b.right("TOTAL: " + receipt.FormatAmount(sale.Total, cfg.Currency))
	if sale.PaymentMethod != "" {
		b.line("Pagamento: " + sale.PaymentMethod)
	}
	if sale.AmountPaid.IsPositive() {
		b.line("Valor entregue: " + receipt.FormatAmount(sale.AmountPaid, cfg.Currency))
	}
	if sale.Change.IsPositive() {
		b.line("Troco: " + receipt.FormatAmount(sale.Change, cfg.Currency))
	}
	b.rule()

	// Cláusulas e rodapé
	b.line(cfg.ExemptionClause)
	b.center(cfg.ThankYouMessage)
	b.center(cfg.FooterText + " - " + issued)
	b.center(cfg.CertificationText)
	b.center(cfg.CertificateNumber)

	if cfg.ShowSignature {
		b.blank()
		b.rule()
		b.center("Assinatura")
	}

	return b.String()
}

// ── Construção linha a linha ──────────────────────────────────────────────────

type builder struct {
	lines []string
}

func (b *builder) String() string {
	return strings.Join(b.lines, "\n") + "\n"
}

// line acrescenta texto alinhado à esquerda, quebrado à largura do papel.
func (b *builder) line(s string) {
	b.lines = append(b.lines, receipt.Wrap(s, Width)...)
}

// center acrescenta texto centrado por preenchimento simétrico; texto maior
// que o papel é quebrado primeiro e cada linha centrada.
func (b *builder) center(s string) {
	for _, line := range receipt.Wrap(s, Width) {
		pad := (Width - utf8.RuneCountInString(line)) / 2
		if pad > 0 {
			line = strings.Repeat(" ", pad) + line
		}
		b.lines = append(b.lines, line)
	}
}

// right acrescenta texto alinhado à direita.
func (b *builder) right(s string) {
	wrapped := receipt.Wrap(s, Width)
	for _, line := range wrapped {
		pad := Width - utf8.RuneCountInString(line)
		if pad > 0 {
			line = strings.Repeat(" ", pad) + line
		}
		b.lines = append(b.lines, line)
	}
}

// rule acrescenta uma linha separadora a toda a largura.
func (b *builder) rule() {
	b.lines = append(b.lines, strings.Repeat("-", Width))
}

func (b *builder) blank() {
	b.lines = append(b.lines, "")
}
