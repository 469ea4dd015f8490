// Package receipt contém o motor de geração de recibos de venda: a
// normalização das linhas de artigos, a quebra de texto, a estimativa de
// altura do documento e a configuração do perfil de negócio.
//
// Tudo neste pacote é puro: nenhuma função toca I/O, e cada chamada é uma
// função apenas da venda e do perfil resolvido.
package receipt

// FontSizes tamanhos de letra por secção do recibo vectorial.
type FontSizes struct {
	Title   float64 // nome da empresa
	Section float64 // cabeçalhos de secção e total
	Body    float64 // linhas normais
	Small   float64 // tabela de artigos
	Footer  float64 // certificação e rodapé
}

// Config perfil de negócio totalmente resolvido usado pelos renderers.
// Os renderers nunca recebem entradas opcionais em bruto: o merge sobre os
// valores por omissão acontece uma única vez, em Resolve.
type Config struct {
	CompanyName  string
	NIF          string
	Address      string
	Neighborhood string
	City         string
	Phone        string
	Email        string
	SocialHandle string

	Currency string  // código da moeda, prefixo dos montantes
	TaxRate  float64 // percentagem de imposto exibida por linha

	ThankYouMessage string
	FooterText      string
	ExemptionClause string // cláusula de isenção/não sujeição exibida antes do rodapé

	// Texto de certificação: configurável porque é um placeholder, não
	// conteúdo derivado de um processo real de validação da AGT.
	CertificationText string
	CertificateNumber string

	ShowLogo      bool
	ShowSignature bool
	ShowBarcode   bool

	FontSizes FontSizes
}

// Valores por omissão do perfil.
const (
	DefaultCompanyName = "Meu Negócio"
	DefaultCurrency    = "AOA"

	DefaultThankYouMessage   = "Obrigado pela sua preferência!"
	DefaultFooterText        = "Volte sempre"
	DefaultExemptionClause   = "IVA - Regime de Não Sujeição"
	DefaultCertificationText = "Processado por programa validado"
	DefaultCertificateNumber = "Certificado n.º 0000/AGT/2019"
)

// DefaultFontSizes tamanhos de letra por omissão.
func DefaultFontSizes() FontSizes {
	return FontSizes{Title: 14, Section: 10, Body: 9, Small: 8, Footer: 7}
}

// Defaults devolve o perfil completo por omissão (sem campos de contacto).
func Defaults() Config {
	return Config{
		CompanyName:       DefaultCompanyName,
		Currency:          DefaultCurrency,
		ThankYouMessage:   DefaultThankYouMessage,
		FooterText:        DefaultFooterText,
		ExemptionClause:   DefaultExemptionClause,
		CertificationText: DefaultCertificationText,
		CertificateNumber: DefaultCertificateNumber,
		FontSizes:         DefaultFontSizes(),
	}
}

// Resolve faz o merge de um perfil parcial sobre os valores por omissão.
// Aceita nil (perfil ausente). Campos de contacto vazios continuam vazios:
// a sua ausência significa apenas que a linha correspondente é omitida.
func Resolve(p *Config) Config {
	if p == nil {
		return Defaults()
	}
	out := *p
	if out.CompanyName == "" {
		out.CompanyName = DefaultCompanyName
	}
	if out.Currency == "" {
		out.Currency = DefaultCurrency
	}
	if out.ThankYouMessage == "" {
		out.ThankYouMessage = DefaultThankYouMessage
	}
	if out.FooterText == "" {
		out.FooterText = DefaultFooterText
	}
	if out.ExemptionClause == "" {
		out.ExemptionClause = DefaultExemptionClause
	}
	if out.CertificationText == "" {
		out.CertificationText = DefaultCertificationText
	}
	if out.CertificateNumber == "" {
		out.CertificateNumber = DefaultCertificateNumber
	}
	def := DefaultFontSizes()
	if out.FontSizes.Title <= 0 {
		out.FontSizes.Title = def.Title
	}
	if out.FontSizes.Section <= 0 {
		out.FontSizes.Section = def.Section
	}
	if out.FontSizes.Body <= 0 {
		out.FontSizes.Body = def.Body
	}
	if out.FontSizes.Small <= 0 {
		out.FontSizes.Small = def.Small
	}
	if out.FontSizes.Footer <= 0 {
		out.FontSizes.Footer = def.Footer
	}
	return out
}
