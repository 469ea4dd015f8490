package receipt

import (
	"unicode/utf8"

	"github.com/kitadi/kitadi-pos/internal/domain/entity"
)

// Constantes da estimativa de altura (unidades verticais, mm no documento).
//
// A estimativa tem de ser sempre >= à altura realmente consumida pelo
// renderer vectorial: subestimar corta conteúdo; sobrestimar desperdiça
// apenas papel. Os valores base foram aferidos contra o layout real.
const (
	baseAllowance   = 150.0 // cabeçalho, bloco da empresa, metadados, tabela
	totalsAllowance = 100.0 // totais, pagamento, cláusulas, rodapé
	perItemMargin   = 2.0
	qrAllowance     = 30.0
)

// DefaultLineSpacing avanço vertical entre linhas, partilhado com o renderer.
const DefaultLineSpacing = 6.0

// EstimateHeight prediz a altura vertical total que o recibo da venda vai
// ocupar no documento vectorial, antes de o desenhar. É monótona não
// decrescente no número de artigos e no comprimento dos nomes.
func EstimateHeight(sale *entity.Sale, cfg Config, lineSpacing float64) float64 {
	if lineSpacing <= 0 {
		lineSpacing = DefaultLineSpacing
	}

	h := baseAllowance

	// Cada artigo ocupa a linha numérica mais as linhas do nome quebrado.
	// Usa-se o pior caso entre a fórmula de tecto e a quebra real, porque a
	// quebra greedy por palavras pode produzir mais linhas do que
	// ceil(len/38) quando as palavras não encaixam exactamente.
	for _, item := range ExtractItems(sale) {
		extra := extraNameLines(item.Name)
		h += (2+float64(extra))*lineSpacing + perItemMargin
	}

	h += totalsAllowance

	// Cada campo opcional do perfil presente rende uma linha própria no
	// cabeçalho; a morada pode quebrar em várias.
	if cfg.Address != "" {
		h += float64(len(Wrap(cfg.Address, WrapWidthDocument))) * lineSpacing
	}
	for _, field := range []string{cfg.Email, cfg.Phone, cfg.Neighborhood, cfg.City, cfg.SocialHandle} {
		if field != "" {
			h += lineSpacing
		}
	}

	if cfg.ShowBarcode {
		h += qrAllowance
	}

	return h
}

// extraNameLines devolve quantas linhas além da primeira o nome do artigo
// ocupa depois de quebrado à largura do documento.
func extraNameLines(name string) int {
	n := utf8.RuneCountInString(name)
	ceil := (n + WrapWidthDocument - 1) / WrapWidthDocument
	if ceil < 1 {
		ceil = 1
	}
	wrapped := len(Wrap(name, WrapWidthDocument))
	if wrapped > ceil {
		ceil = wrapped
	}
	return ceil - 1
}
