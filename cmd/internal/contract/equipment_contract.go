package contract

type EquipmentResponse struct {
	ID                 int    `json:"id"`
	IMEI               string `json:"imei"`
	PhoneNumber        string `json:"phone_number"`
	SerialNumber       string `json:"serial_number"`
	Notes              string `json:"notes"`
	Carrier            string `json:"carrier"`
	Active             bool   `json:"active"`
	EquipmentOwnership string `json:"equipment_ownership"`
	ChipOwnership      string `json:"chip_ownership"`
	ModelID            int    `json:"model_id"`
	ModelBrand         string `json:"model_brand,omitempty"`
	ModelManufacturer  string `json:"model_manufacturer,omitempty"`
	Allocated          bool   `json:"allocated"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

// EquipmentRequest carries ownership tags as raw wire strings, they are
// checked against the known tokens before being stored.
type EquipmentRequest struct {
	IMEI               string `json:"imei" validate:"max=50"`
	PhoneNumber        string `json:"phone_number" validate:"max=20"`
	SerialNumber       string `json:"serial_number" validate:"max=100"`
	Notes              string `json:"notes"`
	Carrier            string `json:"carrier" validate:"required,min=1,max=15"`
	Active             *bool  `json:"active"`
	EquipmentOwnership string `json:"equipment_ownership" validate:"max=3"`
	ChipOwnership      string `json:"chip_ownership" validate:"max=3"`
	ModelID            *int   `json:"model_id" validate:"required"`
	Allocated          *bool  `json:"allocated"`
}
