package receipt

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kitadi/kitadi-pos/internal/domain/entity"
)

// LineItem uma linha normalizada do recibo.
type LineItem struct {
	Name      string
	UnitPrice decimal.Decimal // >= 0 depois da normalização
	Quantity  int             // >= 1 depois da normalização
	LineTotal decimal.Decimal // UnitPrice * Quantity
}

// fallbackItemName usado quando a entrada não traz nome reconhecível.
const fallbackItemName = "Artigo"

// ExtractItems normaliza o campo Items da venda numa lista ordenada de
// LineItem. O campo passou por três formatos ao longo da história da
// aplicação, mais um legado irrecuperável; a precedência é fixa e o primeiro
// formato reconhecido ganha:
//
//  1. lista de entradas — cada entrada é uma linha; nome/preço vêm do campo
//     product aninhado, senão dos campos planos productName/price, senão de
//     name/price na própria entrada;
//  2. objecto {products: [...]} — a lista interior é tratada como em 1;
//  3. número solto ou qualquer outro formato — lista vazia (o recibo
//     renderiza a secção de artigos com zero linhas).
//
// Nunca devolve erro nem nil: vendas malformadas degradam para defaults
// seguros (preço 0, quantidade 1).
func ExtractItems(sale *entity.Sale) []LineItem {
	if sale == nil {
		return []LineItem{}
	}
	switch items := sale.Items.(type) {
	case []any:
		return extractFromList(items)
	case map[string]any:
		if products, ok := items["products"].([]any); ok {
			return extractFromList(products)
		}
	}
	return []LineItem{}
}

func extractFromList(entries []any) []LineItem {
	out := make([]LineItem, 0, len(entries))
	for _, raw := range entries {
		entry, _ := raw.(map[string]any)

		var nameSrc, priceSrc any
		if entry != nil {
			if product, ok := entry["product"].(map[string]any); ok {
				nameSrc = product["name"]
				priceSrc = product["price"]
			} else if _, ok := entry["productName"]; ok {
				nameSrc = entry["productName"]
				priceSrc = entry["price"]
			} else {
				nameSrc = entry["name"]
				priceSrc = entry["price"]
			}
		}

		name := coerceName(nameSrc)
		price := coercePrice(priceSrc)
		qty := 1
		if entry != nil {
			qty = coerceQuantity(entry["quantity"])
		}

		out = append(out, LineItem{
			Name:      name,
			UnitPrice: price,
			Quantity:  qty,
			LineTotal: price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return out
}

func coerceName(v any) string {
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return fallbackItemName
}

// coercePrice converte qualquer representação de preço em decimal não
// negativo. Valores não numéricos ou negativos degradam para 0.
func coercePrice(v any) decimal.Decimal {
	d, ok := coerceDecimal(v)
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// coerceQuantity converte qualquer representação de quantidade num inteiro
// positivo. Valores não numéricos ou < 1 degradam para 1.
func coerceQuantity(v any) int {
	d, ok := coerceDecimal(v)
	if !ok {
		return 1
	}
	n := int(d.IntPart())
	if n < 1 {
		return 1
	}
	return n
}

func coerceDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case decimal.Decimal:
		return n, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return decimal.Zero, false
		}
		if d, err := decimal.NewFromString(s); err == nil {
			return d, true
		}
		// Tolerar sufixos tipo "500 Kz": aproveitar o prefixo numérico.
		if f, err := strconv.ParseFloat(leadingNumber(s), 64); err == nil {
			return decimal.NewFromFloat(f), true
		}
		return decimal.Zero, false
	default:
		return decimal.Zero, false
	}
}

// leadingNumber devolve o prefixo numérico de s ("12.5abc" -> "12.5").
func leadingNumber(s string) string {
	end := 0
	seenDot := false
	for i, r := range s {
		if r >= '0' && r <= '9' {
			end = i + 1
			continue
		}
		if r == '.' && !seenDot && end > 0 {
			seenDot = true
			end = i + 1
			continue
		}
		if (r == '-' || r == '+') && i == 0 {
			end = i + 1
			continue
		}
		break
	}
	return s[:end]
}
