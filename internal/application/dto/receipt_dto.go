package dto

import "github.com/kitadi/kitadi-pos/internal/domain/receipt"

// ReceiptProfileRequest perfil de recibo enviado pela página de configuração.
// Campos vazios mantêm os valores por omissão no momento da renderização.
type ReceiptProfileRequest struct {
	CompanyName  string `json:"company_name"`
	NIF          string `json:"nif"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	SocialHandle string `json:"social_handle"`

	Currency string  `json:"currency"`
	TaxRate  float64 `json:"tax_rate"`

	ThankYouMessage   string `json:"thank_you_message"`
	FooterText        string `json:"footer_text"`
	ExemptionClause   string `json:"exemption_clause"`
	CertificationText string `json:"certification_text"`
	CertificateNumber string `json:"certificate_number"`

	ShowLogo      bool `json:"show_logo"`
	ShowSignature bool `json:"show_signature"`
	ShowBarcode   bool `json:"show_barcode"`
}

// ToProfile converte o pedido num perfil parcial do domínio.
func (r ReceiptProfileRequest) ToProfile() *receipt.Config {
	return &receipt.Config{
		CompanyName:       r.CompanyName,
		NIF:               r.NIF,
		Address:           r.Address,
		Neighborhood:      r.Neighborhood,
		City:              r.City,
		Phone:             r.Phone,
		Email:             r.Email,
		SocialHandle:      r.SocialHandle,
		Currency:          r.Currency,
		TaxRate:           r.TaxRate,
		ThankYouMessage:   r.ThankYouMessage,
		FooterText:        r.FooterText,
		ExemptionClause:   r.ExemptionClause,
		CertificationText: r.CertificationText,
		CertificateNumber: r.CertificateNumber,
		ShowLogo:          r.ShowLogo,
		ShowSignature:     r.ShowSignature,
		ShowBarcode:       r.ShowBarcode,
	}
}

// ShareReceiptResponse resultado da partilha de um recibo.
// FellBack indica que a plataforma de partilha estava indisponível e o
// documento foi gravado como download normal.
type ShareReceiptResponse struct {
	FellBack bool   `json:"fell_back"`
	Filename string `json:"filename"`
}
