package pdf_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitadi/kitadi-pos/internal/domain/entity"
	"github.com/kitadi/kitadi-pos/internal/domain/receipt"
	"github.com/kitadi/kitadi-pos/internal/infrastructure/pdf"
)

func buildSale(n int, name string) *entity.Sale {
	entries := make([]any, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, map[string]any{
			"product":  map[string]any{"name": name, "price": 500.0},
			"quantity": 2.0,
		})
	}
	return &entity.Sale{
		ID:            "a1b2c3d4e5f6",
		CompanyID:     "loja-1",
		Date:          time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		Total:         decimal.NewFromInt(int64(n) * 1000),
		PaymentMethod: "Dinheiro",
		Items:         entries,
	}
}

func fullProfile() receipt.Config {
	cfg := receipt.Defaults()
	cfg.NIF = "5417000123"
	cfg.Address = "Rua Amílcar Cabral, n.º 27, r/c esquerdo, junto ao mercado"
	cfg.Neighborhood = "Maianga"
	cfg.City = "Luanda"
	cfg.Phone = "+244 923 000 000"
	cfg.Email = "loja@exemplo.ao"
	cfg.SocialHandle = "@minhaloja"
	cfg.TaxRate = 14
	return cfg
}

func generate(t *testing.T, sale *entity.Sale, cfg receipt.Config) *pdf.Document {
	t.Helper()
	doc, err := pdf.NewGenerator().Generate(context.Background(), sale, cfg)
	require.NoError(t, err)
	concrete, ok := doc.(*pdf.Document)
	require.True(t, ok)
	return concrete
}

func TestGenerate_ProduzPDFValido(t *testing.T) {
	doc := generate(t, buildSale(3, "Pão"), receipt.Defaults())

	data, err := doc.Bytes()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"),
		"a serialização deve começar pelo cabeçalho PDF")
	assert.Greater(t, len(data), 500)
}

// TestGenerate_EstimativaConservadora: para um corpus representativo de
// vendas, a altura estimada antes da renderização nunca é inferior à altura
// realmente consumida. Subestimar cortaria conteúdo.
func TestGenerate_EstimativaConservadora(t *testing.T) {
	names := map[string]string{
		"curto":   "Pão",
		"médio":   "Sabão azul em barra 250g",
		"longo":   strings.Repeat("Miudezas de mercearia variadas ", 4),
		"gigante": strings.Repeat("x", 200),
	}
	profiles := map[string]receipt.Config{
		"sem perfil":   receipt.Defaults(),
		"perfil cheio": fullProfile(),
	}
	qrProfile := fullProfile()
	qrProfile.ShowBarcode = true
	qrProfile.ShowSignature = true
	profiles["com QR e assinatura"] = qrProfile

	for nameKind, name := range names {
		for profileKind, cfg := range profiles {
			for _, n := range []int{0, 1, 20, 50} {
				sale := buildSale(n, name)
				estimated := receipt.EstimateHeight(sale, cfg, receipt.DefaultLineSpacing)
				doc := generate(t, sale, cfg)

				assert.GreaterOrEqualf(t, estimated, doc.Height(),
					"estimativa subestimou: %d artigos, nome %s, %s", n, nameKind, profileKind)
			}
		}
	}
}

func TestGenerate_VendaMinimaSemPerfil(t *testing.T) {
	sale := &entity.Sale{
		ID:    "s1",
		Date:  time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		Total: decimal.NewFromInt(1000),
		Items: []any{
			map[string]any{"product": map[string]any{"name": "Pão", "price": 500.0}, "quantity": 2.0},
		},
		PaymentMethod: "Dinheiro",
	}

	doc := generate(t, sale, receipt.Resolve(nil))

	data, err := doc.Bytes()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerate_ItemsLegadoNumericoNaoFalha(t *testing.T) {
	sale := buildSale(0, "")
	sale.Items = 5.0

	doc := generate(t, sale, receipt.Defaults())

	data, err := doc.Bytes()
	require.NoError(t, err)
	assert.NotEmpty(t, data, "venda legada renderiza totais e rodapé sem linhas de artigos")
}

func TestGenerate_ClienteAusenteNaoFalha(t *testing.T) {
	sale := buildSale(1, "Pão")
	sale.Customer = nil

	doc := generate(t, sale, receipt.Defaults())

	_, err := doc.Bytes()
	require.NoError(t, err)
}

func TestGenerate_NomeGiganteConsomeMaisAltura(t *testing.T) {
	short := generate(t, buildSale(1, strings.Repeat("a", 8)), receipt.Defaults())
	long := generate(t, buildSale(1, strings.Repeat("a", 80)), receipt.Defaults())

	assert.Greater(t, long.Height(), short.Height(),
		"um nome de 80 caracteres quebra em 3 linhas e consome mais cursor")
}

func TestGenerate_AlturaDaPaginaCresceComMuitosArtigos(t *testing.T) {
	sale := buildSale(50, "Produto de nome relativamente comprido")
	cfg := receipt.Defaults()

	estimated := receipt.EstimateHeight(sale, cfg, receipt.DefaultLineSpacing)
	assert.Greater(t, estimated, 297.0,
		"50 artigos não cabem numa página standard; a página tem de ser esticada")

	doc := generate(t, sale, cfg)
	assert.LessOrEqual(t, doc.Height(), estimated)
}
