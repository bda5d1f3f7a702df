package entity

import "github.com/shopspring/decimal"

type Product struct {
	ID          int             `gorm:"primaryKey"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(19,2);not null"`
	Quantity    int             `gorm:"not null"`
	CreatedAt   int64           `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   int64           `gorm:"not null;autoUpdateTime:false"`
}
