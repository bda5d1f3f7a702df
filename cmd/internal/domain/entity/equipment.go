package entity

type Equipment struct {
	ID                 int       `gorm:"primaryKey"`
	IMEI               string    `gorm:"column:imei;size:50"`
	PhoneNumber        string    `gorm:"size:20"`
	SerialNumber       string    `gorm:"size:100"`
	Notes              string    `gorm:"type:text"`
	Carrier            string    `gorm:"size:15;not null"`
	Active             bool      `gorm:"not null"`
	EquipmentOwnership Ownership `gorm:"size:3"`
	ChipOwnership      Ownership `gorm:"size:3"`
	ModelID            int       `gorm:"not null;index"`
	Model              *Model    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Allocated          bool      `gorm:"not null"`
	CreatedAt          int64     `gorm:"not null;autoCreateTime:false"`
	UpdatedAt          int64     `gorm:"not null;autoUpdateTime:false"`
}
