package contract

type CooperativeResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	TaxCode    string `json:"tax_code"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Active     bool   `json:"active"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type CooperativeRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	TaxCode    string `json:"tax_code" validate:"required,max=18"`
	Address    string `json:"address" validate:"max=300"`
	City       string `json:"city" validate:"max=100"`
	State      string `json:"state" validate:"max=2"`
	PostalCode string `json:"postal_code" validate:"max=9"`
	Active     *bool  `json:"active"`
}
