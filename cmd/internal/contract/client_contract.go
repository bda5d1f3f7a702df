package contract

type ClientResponse struct {
	ID                int    `json:"id"`
	UUID              string `json:"uuid"`
	Name              string `json:"name"`
	TaxCode           string `json:"tax_code"`
	StateRegistration string `json:"state_registration"`
	Address           string `json:"address"`
	Neighborhood      string `json:"neighborhood"`
	Complement        string `json:"complement"`
	Number            string `json:"number"`
	PostalCode        string `json:"postal_code"`
	City              string `json:"city"`
	State             string `json:"state"`
	Contacts          string `json:"contacts"`
	Phones            string `json:"phones"`
	Active            bool   `json:"active"`
	CooperativeMember bool   `json:"cooperative_member"`
	CooperativeID     *int   `json:"cooperative_id"`
	CooperativeName   string `json:"cooperative_name,omitempty"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// ClientRequest is used for both creation and full updates.
type ClientRequest struct {
	Name              string `json:"name" validate:"required,max=200"`
	TaxCode           string `json:"tax_code" validate:"required,max=18"`
	StateRegistration string `json:"state_registration" validate:"max=20"`
	Address           string `json:"address" validate:"max=300"`
	Neighborhood      string `json:"neighborhood" validate:"max=100"`
	Complement        string `json:"complement" validate:"max=100"`
	Number            string `json:"number" validate:"max=20"`
	PostalCode        string `json:"postal_code" validate:"max=9"`
	City              string `json:"city" validate:"max=100"`
	State             string `json:"state" validate:"max=2"`
	Contacts          string `json:"contacts" validate:"max=500"`
	Phones            string `json:"phones" validate:"max=200"`
	Active            *bool  `json:"active"`
	CooperativeMember *bool  `json:"cooperative_member"`
	CooperativeID     *int   `json:"cooperative_id"`
}
