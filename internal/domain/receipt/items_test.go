package receipt_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitadi/kitadi-pos/internal/domain/entity"
	"github.com/kitadi/kitadi-pos/internal/domain/receipt"
)

// saleWithItems constrói uma venda com o campo Items tal como viria do JSONB.
func saleWithItems(items any) *entity.Sale {
	return &entity.Sale{ID: "venda-1", Items: items}
}

// ──────────────────────────────────────────────────────────────────────────────
// Os quatro formatos históricos de Items
// ──────────────────────────────────────────────────────────────────────────────

func TestExtractItems_FormatoCarrinhoComProdutoAninhado(t *testing.T) {
	sale := saleWithItems([]any{
		map[string]any{
			"product":  map[string]any{"id": "p1", "name": "Pão", "price": 500.0, "category": "padaria"},
			"quantity": 2.0,
		},
	})

	items := receipt.ExtractItems(sale)

	require.Len(t, items, 1)
	assert.Equal(t, "Pão", items[0].Name)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].LineTotal.Equal(decimal.NewFromInt(1000)),
		"total da linha = preço x quantidade")
}

func TestExtractItems_FormatoPlanoComProductName(t *testing.T) {
	sale := saleWithItems([]any{
		map[string]any{"productName": "Leite", "price": 350.0, "quantity": 3.0},
	})

	items := receipt.ExtractItems(sale)

	require.Len(t, items, 1)
	assert.Equal(t, "Leite", items[0].Name)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, 3, items[0].Quantity)
}

func TestExtractItems_FormatoWrapperComProducts(t *testing.T) {
	sale := saleWithItems(map[string]any{
		"products": []any{
			map[string]any{"productName": "Arroz", "price": 1200.0, "quantity": 1.0},
			map[string]any{"productName": "Feijão", "price": 900.0, "quantity": 2.0},
		},
	})

	items := receipt.ExtractItems(sale)

	require.Len(t, items, 2)
	assert.Equal(t, "Arroz", items[0].Name)
	assert.Equal(t, "Feijão", items[1].Name)
	assert.True(t, items[1].LineTotal.Equal(decimal.NewFromInt(1800)))
}

func TestExtractItems_FormatoLegadoNumeroDevolveVazio(t *testing.T) {
	// Vendas antigas guardavam apenas a contagem de artigos; não há detalhe
	// recuperável e o recibo renderiza a secção com zero linhas.
	sale := saleWithItems(5.0)

	items := receipt.ExtractItems(sale)

	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestExtractItems_FormatoIrreconhecivelDevolveVazio(t *testing.T) {
	cases := map[string]any{
		"string":               "três artigos",
		"nil":                  nil,
		"objecto sem products": map[string]any{"count": 3.0},
	}
	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			got := receipt.ExtractItems(saleWithItems(items))
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestExtractItems_VendaNilDevolveVazio(t *testing.T) {
	assert.Empty(t, receipt.ExtractItems(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalização: chão de preço e quantidade
// ──────────────────────────────────────────────────────────────────────────────

func TestExtractItems_PrecoInvalidoDegradaParaZero(t *testing.T) {
	cases := map[string]any{
		"texto":    "grátis",
		"negativo": -100.0,
		"nil":      nil,
		"booleano": true,
	}
	for name, price := range cases {
		t.Run(name, func(t *testing.T) {
			sale := saleWithItems([]any{
				map[string]any{"productName": "Sabão", "price": price, "quantity": 1.0},
			})
			items := receipt.ExtractItems(sale)
			require.Len(t, items, 1)
			assert.True(t, items[0].UnitPrice.GreaterThanOrEqual(decimal.Zero),
				"o preço normalizado nunca é negativo")
			assert.True(t, items[0].UnitPrice.IsZero())
		})
	}
}

func TestExtractItems_QuantidadeInvalidaDegradaParaUm(t *testing.T) {
	cases := map[string]any{
		"texto":    "muitos",
		"zero":     0.0,
		"negativa": -4.0,
		"nil":      nil,
	}
	for name, qty := range cases {
		t.Run(name, func(t *testing.T) {
			sale := saleWithItems([]any{
				map[string]any{"productName": "Açúcar", "price": 200.0, "quantity": qty},
			})
			items := receipt.ExtractItems(sale)
			require.Len(t, items, 1)
			assert.GreaterOrEqual(t, items[0].Quantity, 1,
				"a quantidade normalizada é sempre >= 1")
		})
	}
}

func TestExtractItems_PrecoComoStringNumerica(t *testing.T) {
	sale := saleWithItems([]any{
		map[string]any{"productName": "Óleo", "price": "1500.50", "quantity": "2"},
	})

	items := receipt.ExtractItems(sale)

	require.Len(t, items, 1)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("1500.50")))
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].LineTotal.Equal(decimal.RequireFromString("3001.00")))
}

func TestExtractItems_EntradaSemNomeUsaFallback(t *testing.T) {
	sale := saleWithItems([]any{
		map[string]any{"price": 100.0},
	})

	items := receipt.ExtractItems(sale)

	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].Name)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestExtractItems_PreservaOrdem(t *testing.T) {
	sale := saleWithItems([]any{
		map[string]any{"productName": "Primeiro", "price": 1.0},
		map[string]any{"productName": "Segundo", "price": 2.0},
		map[string]any{"productName": "Terceiro", "price": 3.0},
	})

	items := receipt.ExtractItems(sale)

	require.Len(t, items, 3)
	assert.Equal(t, "Primeiro", items[0].Name)
	assert.Equal(t, "Segundo", items[1].Name)
	assert.Equal(t, "Terceiro", items[2].Name)
}
