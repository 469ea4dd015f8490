// Package pdf implementa o renderer vectorial do recibo de venda sobre
// go-pdf/fpdf: uma página de rolo de 80 mm cuja altura é dimensionada pela
// estimativa pré-renderização, desenhada de cima para baixo com um cursor
// vertical.
//
// Layout da página:
//
//	┌──────────────────────────────┐
//	│   NOME DA EMPRESA (centrado) │
//	│   NIF / morada / contactos   │
//	│  ──────────────────────────  │
//	│   FACTURA-RECIBO + datas     │
//	│   Documento: FR-xxxxxxxx     │
//	│   Cliente + NIF              │
//	│  ──────────────────────────  │
//	│   Artigo                     │
//	│   Preço   Qtd   IVA   Total  │
//	│   ... uma entrada por linha  │
//	│  ──────────────────────────  │
//	│   TOTAL / pagamento / troco  │
//	│   cláusula de não sujeição   │
//	│   agradecimento + rodapé     │
//	│   certificação (itálico)     │
//	│   [QR opcional]              │
//	└──────────────────────────────┘
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"

	"github.com/kitadi/kitadi-pos/internal/application/receipts"
	"github.com/kitadi/kitadi-pos/internal/domain/entity"
	"github.com/kitadi/kitadi-pos/internal/domain/receipt"
)

// Geometria da página (mm).
const (
	pageWidth          = 80.0
	marginX            = 5.0
	marginTop          = 12.0
	bottomMargin       = 10.0
	standardPageHeight = 297.0
	lineSpacing        = receipt.DefaultLineSpacing
	titleSpacing       = lineSpacing + 2
	ruleSpacing        = 3.0
	qrSide             = 24.0
)

// Offsets horizontais fixos da tabela de artigos (mm). A página de detalhe
// da venda e a pré-visualização do checkout assumem exactamente estas
// colunas: são um contrato de compatibilidade, não uma escolha estética.
const (
	colItem  = marginX
	colPrice = 38.0
	colQty   = 54.0
	colTax   = 62.0
	colTotal = pageWidth - marginX // alinhado à direita
)

// Generator implementa receipts.PDFGenerator usando go-pdf/fpdf.
type Generator struct{}

// NewGenerator constrói o gerador.
func NewGenerator() *Generator { return &Generator{} }

// Generate desenha o recibo da venda numa página dimensionada por
// receipt.EstimateHeight. Campos opcionais ausentes são simplesmente
// omitidos; a função só devolve erro se o documento em si não puder ser
// construído.
func (g *Generator) Generate(_ context.Context, sale *entity.Sale, cfg receipt.Config) (receipts.Document, error) {
	estimated := receipt.EstimateHeight(sale, cfg, lineSpacing)
	pageHeight := standardPageHeight
	if estimated+bottomMargin > pageHeight {
		pageHeight = estimated + bottomMargin
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	doc.SetMargins(marginX, marginTop, marginX)
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle("Recibo de venda", true)
	doc.SetAuthor(cfg.CompanyName, true)
	doc.AddPage()

	r := &renderer{
		pdf: doc,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
		cfg: cfg,
		y:   marginTop,
	}

	items := receipt.ExtractItems(sale)
	r.drawHeader()
	r.drawMetadata(sale)
	r.drawCustomer(sale)
	r.drawItems(items)
	r.drawTotals(sale)
	r.drawFooter(sale)

	if doc.Err() {
		return nil, fmt.Errorf("pdf: construir documento: %w", doc.Error())
	}
	return &Document{pdf: doc, height: r.y}, nil
}

// ── Documento ─────────────────────────────────────────────────────────────────

// Document documento vectorial gerado. Height devolve a extensão vertical
// realmente consumida, que por contrato nunca excede a estimativa.
type Document struct {
	pdf    *fpdf.Fpdf
	height float64
}

// Bytes serializa o documento para PDF.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveTo grava o documento no caminho indicado.
func (d *Document) SaveTo(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Height extensão vertical consumida pelo conteúdo (mm).
func (d *Document) Height() float64 { return d.height }

// ── Renderer com cursor vertical ──────────────────────────────────────────────

type renderer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	cfg receipt.Config
	y   float64
}

func (r *renderer) setFont(style string, size float64) {
	r.pdf.SetFont("Helvetica", style, size)
}

// textLeft escreve texto em x fixo sem avançar o cursor.
func (r *renderer) textLeft(x float64, s string) {
	r.pdf.Text(x, r.y, r.tr(s))
}

// textRight escreve texto terminando em xRight sem avançar o cursor.
func (r *renderer) textRight(xRight float64, s string) {
	w := r.pdf.GetStringWidth(r.tr(s))
	r.pdf.Text(xRight-w, r.y, r.tr(s))
}

// lineLeft escreve uma linha na margem esquerda e avança o cursor.
func (r *renderer) lineLeft(s string, style string, size float64) {
	r.setFont(style, size)
	r.textLeft(marginX, s)
	r.y += lineSpacing
}

// lineCenter escreve uma linha centrada e avança o cursor.
func (r *renderer) lineCenter(s string, style string, size float64) {
	r.setFont(style, size)
	w := r.pdf.GetStringWidth(r.tr(s))
	r.pdf.Text((pageWidth-w)/2, r.y, r.tr(s))
	r.y += lineSpacing
}

// rule desenha uma régua horizontal e avança o cursor.
func (r *renderer) rule() {
	r.pdf.SetLineWidth(0.2)
	r.pdf.Line(marginX, r.y, pageWidth-marginX, r.y)
	r.y += ruleSpacing
}

// ── Secções ───────────────────────────────────────────────────────────────────

// drawHeader: nome da empresa centrado mais os campos opcionais presentes,
// cada um na sua linha.
func (r *renderer) drawHeader() {
	cfg := r.cfg
	fs := cfg.FontSizes

	r.setFont("B", fs.Title)
	w := r.pdf.GetStringWidth(r.tr(cfg.CompanyName))
	r.pdf.Text((pageWidth-w)/2, r.y, r.tr(cfg.CompanyName))
	r.y += titleSpacing

	if cfg.NIF != "" {
		r.lineCenter("NIF: "+cfg.NIF, "", fs.Body)
	}
	if cfg.Address != "" {
		for _, line := range receipt.Wrap(cfg.Address, receipt.WrapWidthDocument) {
			r.lineCenter(line, "", fs.Body)
		}
	}
	if cfg.Neighborhood != "" {
		r.lineCenter(cfg.Neighborhood, "", fs.Body)
	}
	if cfg.City != "" {
		r.lineCenter(cfg.City, "", fs.Body)
	}
	if cfg.Phone != "" {
		r.lineCenter("Tel: "+cfg.Phone, "", fs.Body)
	}
	if cfg.Email != "" {
		r.lineCenter(cfg.Email, "", fs.Body)
	}
	if cfg.SocialHandle != "" {
		r.lineCenter(cfg.SocialHandle, "", fs.Body)
	}
	r.rule()
}

// drawMetadata: tipo de documento, datas e número do documento.
func (r *renderer) drawMetadata(sale *entity.Sale) {
	fs := r.cfg.FontSizes
	issued := receipt.FormatDateTime(sale.Date)

	r.lineLeft(receipt.DocumentKind, "B", fs.Section)
	r.lineLeft("Data de emissão: "+issued, "", fs.Body)
	r.lineLeft("Data de entrega: "+issued, "", fs.Body)
	r.lineLeft("Documento: "+receipt.DocumentNumber(sale.ID, sale.Date), "", fs.Body)
}

// drawCustomer: nome resolvido do cliente e NIF (ou consumidor final).
func (r *renderer) drawCustomer(sale *entity.Sale) {
	fs := r.cfg.FontSizes

	r.lineLeft("Cliente: "+receipt.CustomerName(sale.Customer), "", fs.Body)
	r.lineLeft("NIF: "+receipt.CustomerNIF(sale.Customer), "", fs.Body)
	r.rule()
}

// drawItems: cabeçalho de duas linhas mais um bloco por artigo — nome
// quebrado a 38 caracteres e linha numérica nos quatro offsets fixos.
func (r *renderer) drawItems(items []receipt.LineItem) {
	cfg := r.cfg
	fs := cfg.FontSizes

	r.setFont("B", fs.Small)
	r.textLeft(colItem, "Artigo")
	r.y += lineSpacing
	r.textLeft(colPrice, "Preço")
	r.textLeft(colQty, "Qtd")
	r.textLeft(colTax, "IVA")
	r.textRight(colTotal, "Total")
	r.y += lineSpacing
	r.rule()

	r.setFont("", fs.Small)
	for _, item := range items {
		for _, line := range receipt.Wrap(item.Name, receipt.WrapWidthDocument) {
			r.textLeft(colItem, line)
			r.y += lineSpacing
		}
		r.textLeft(colPrice, receipt.FormatAmount(item.UnitPrice, cfg.Currency))
		r.textLeft(colQty, fmt.Sprintf("%d", item.Quantity))
		r.textLeft(colTax, receipt.FormatTaxRate(cfg.TaxRate))
		r.textRight(colTotal, receipt.FormatAmount(item.LineTotal, cfg.Currency))
		r.y += lineSpacing + 2
	}
}

// drawTotals: total a negrito, pagamento e troco quando presentes.
func (r *renderer) drawTotals(sale *entity.Sale) {
	cfg := r.cfg
	fs := cfg.FontSizes

	r.rule()
	r.setFont("B", fs.Section)
	r.textLeft(marginX, "TOTAL")
	r.textRight(colTotal, receipt.FormatAmount(sale.Total, cfg.Currency))
	r.y += titleSpacing

	if sale.PaymentMethod != "" {
		r.lineLeft("Pagamento: "+sale.PaymentMethod, "", fs.Body)
	}
	if sale.AmountPaid.IsPositive() {
		r.lineLeft("Valor entregue: "+receipt.FormatAmount(sale.AmountPaid, cfg.Currency), "", fs.Body)
	}
	if sale.Change.IsPositive() {
		r.lineLeft("Troco: "+receipt.FormatAmount(sale.Change, cfg.Currency), "", fs.Body)
	}
}

// drawFooter: cláusula de não sujeição, mensagens, certificação e QR.
func (r *renderer) drawFooter(sale *entity.Sale) {
	cfg := r.cfg
	fs := cfg.FontSizes

	r.lineLeft(cfg.ExemptionClause, "", fs.Footer)
	r.lineCenter(cfg.ThankYouMessage, "", fs.Body)
	r.lineCenter(cfg.FooterText+" - "+receipt.FormatDateTime(sale.Date), "", fs.Footer)

	r.lineCenter(cfg.CertificationText, "I", fs.Footer)
	r.lineCenter(cfg.CertificateNumber, "I", fs.Footer)

	if cfg.ShowSignature {
		r.y += 4
		r.pdf.SetLineWidth(0.2)
		r.pdf.Line(pageWidth/4, r.y, pageWidth*3/4, r.y)
		r.y += ruleSpacing
		r.lineCenter("Assinatura", "", fs.Footer)
	}

	if cfg.ShowBarcode {
		r.drawQR(sale)
	}
}

// drawQR: código QR com o número do documento, centrado.
func (r *renderer) drawQR(sale *entity.Sale) {
	payload := receipt.DocumentNumber(sale.ID, sale.Date)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		// Um QR impossível de gerar não pode inutilizar o recibo.
		return
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	r.pdf.RegisterImageOptionsReader("receipt-qr", opts, bytes.NewReader(png))
	r.pdf.ImageOptions("receipt-qr", (pageWidth-qrSide)/2, r.y, qrSide, qrSide, false, opts, 0, "")
	r.y += qrSide + 2
}
