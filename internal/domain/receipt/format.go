package receipt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Literais de fallback quando a venda não identifica o cliente.
const (
	FallbackCustomerName = "Cliente não identificado"
	FallbackCustomerNIF  = "Consumidor Final"
)

// DocumentKind etiqueta do tipo de documento emitido.
const DocumentKind = "FACTURA-RECIBO"

// documentPrefix prefixo fixo do número de documento.
const documentPrefix = "FR-"

// FormatAmount formata um montante com 2 decimais, vírgula como separador
// decimal e o código da moeda como prefixo. Ex: "AOA 1500,00".
func FormatAmount(v decimal.Decimal, currency string) string {
	return currency + " " + strings.Replace(v.StringFixed(2), ".", ",", 1)
}

// FormatTaxRate formata a percentagem de imposto de uma linha. Ex: "14%".
func FormatTaxRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}

// FormatDateTime formata data/hora de emissão como dd-mm-aaaa hh:mm:ss.
func FormatDateTime(t time.Time) string {
	return t.Format("02-01-2006 15:04:05")
}

// DocumentNumber compõe o identificador do documento: prefixo fixo mais os
// primeiros 8 caracteres do ID da venda. Sem ID, usa o timestamp actual para
// que o documento continue a ter um número único.
func DocumentNumber(saleID string, now time.Time) string {
	if saleID == "" {
		return documentPrefix + fmt.Sprintf("%d", now.UnixMilli())
	}
	id := saleID
	if len(id) > 8 {
		id = id[:8]
	}
	return documentPrefix + id
}

// CustomerName resolve o nome de exibição do cliente. Precedência: campo
// name do registo estruturado, depois o valor string, por fim o literal de
// fallback. A mesma cadeia aplica-se aos dois renderers.
func CustomerName(customer any) string {
	switch c := customer.(type) {
	case string:
		if c != "" {
			return c
		}
	case map[string]any:
		if name, ok := c["name"].(string); ok && name != "" {
			return name
		}
	}
	return FallbackCustomerName
}

// CustomerNIF resolve o NIF do cliente ou o literal de consumidor final.
func CustomerNIF(customer any) string {
	if c, ok := customer.(map[string]any); ok {
		if nif, ok := c["nif"].(string); ok && nif != "" {
			return nif
		}
	}
	return FallbackCustomerNIF
}
