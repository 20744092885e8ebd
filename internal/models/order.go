package models

type Order struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	CustomerID   uint         `gorm:"index;not null" json:"customer_id"`
	Customer     *Customer    `json:"-"`
	ProductID    uint         `gorm:"index;not null" json:"product_id"`
	Product      *Product     `json:"-"`
	Quantity     int          `gorm:"not null" json:"quantity"`
	Delivered    bool         `gorm:"not null;default:false" json:"delivered"`
	DeliveryDate DeliveryDate `gorm:"size:16;index;not null;default:'23.12'" json:"delivery_date"`
}
