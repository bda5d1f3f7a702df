package contract

type ModelResponse struct {
	ID           int    `json:"id"`
	Manufacturer string `json:"manufacturer"`
	Brand        string `json:"brand"`
	Category     string `json:"category"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type ModelRequest struct {
	Manufacturer string `json:"manufacturer" validate:"required,max=200"`
	Brand        string `json:"brand" validate:"required,max=200"`
	Category     string `json:"category" validate:"max=50"`
	Active       *bool  `json:"active" validate:"required"`
}
