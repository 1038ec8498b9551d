package models

import "time"

type Order struct {
	ID          uint `gorm:"primaryKey"`
	CustomerID  uint `gorm:"index;not null"`
	Customer    Customer
	PlacedAt    time.Time `gorm:"not null"`
	Total       float64   `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Items       []OrderLine `gorm:"foreignKey:OrderID"`
}

// OrderLine keeps the unit price charged at placement time; totals are never
// recomputed from current menu prices.
type OrderLine struct {
	ID        uint    `gorm:"primaryKey"`
	OrderID   uint    `gorm:"index;not null"`
	MenuID    uint    `gorm:"index;not null"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`
	Menu      Menu
}
