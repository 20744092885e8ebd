package models

type Customer struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"not null" json:"name"`
	Phone        string       `gorm:"size:32;not null;uniqueIndex:idx_customers_phone_date" json:"phone"`
	DeliveryDate DeliveryDate `gorm:"size:16;not null;default:'23.12';uniqueIndex:idx_customers_phone_date" json:"delivery_date"`
}
