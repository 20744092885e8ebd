package models

type Product struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:191;uniqueIndex;not null" json:"name"`
	Price float64 `gorm:"not null;default:0" json:"price"`
}
