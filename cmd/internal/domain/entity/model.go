package entity

type Model struct {
	ID           int           `gorm:"primaryKey"`
	Manufacturer string        `gorm:"size:200;not null"`
	Brand        string        `gorm:"size:200;not null"`
	Category     ModelCategory `gorm:"size:50;not null;index"`
	Active       bool          `gorm:"not null"`
	CreatedAt    int64         `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    int64         `gorm:"not null;autoUpdateTime:false"`
}
