package entity

type Client struct {
	ID                int          `gorm:"primaryKey"`
	UUID              string       `gorm:"column:uuid;size:36;not null;uniqueIndex"`
	Name              string       `gorm:"size:200;not null"`
	TaxCode           string       `gorm:"size:18;not null;uniqueIndex"`
	StateRegistration string       `gorm:"size:20"`
	Address           string       `gorm:"size:300"`
	Neighborhood      string       `gorm:"size:100"`
	Complement        string       `gorm:"size:100"`
	Number            string       `gorm:"size:20"`
	PostalCode        string       `gorm:"size:9"`
	City              string       `gorm:"size:100"`
	State             string       `gorm:"size:2"`
	Contacts          string       `gorm:"size:500"`
	Phones            string       `gorm:"size:200"`
	Active            bool         `gorm:"not null"`
	CooperativeMember bool         `gorm:"not null"`
	CooperativeID     *int         `gorm:"index"`
	Cooperative       *Cooperative `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt         int64        `gorm:"not null;autoCreateTime:false"`
	UpdatedAt         int64        `gorm:"not null;autoUpdateTime:false"`
}
