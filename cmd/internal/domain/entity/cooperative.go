package entity

type Cooperative struct {
	ID         int    `gorm:"primaryKey"`
	Name       string `gorm:"size:200;not null"`
	TaxCode    string `gorm:"size:18;not null;uniqueIndex"`
	Address    string `gorm:"size:300"`
	City       string `gorm:"size:100;index"`
	State      string `gorm:"size:2;index"`
	PostalCode string `gorm:"size:9"`
	Active     bool   `gorm:"not null"`
	CreatedAt  int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt  int64  `gorm:"not null;autoUpdateTime:false"`
}

// CooperativeFilter narrows cooperative listings. Zero fields do not filter.
// Name matches as a case-insensitive substring, City and State as
// case-insensitive equality.
type CooperativeFilter struct {
	Name   string
	City   string
	State  string
	Active *bool
}
