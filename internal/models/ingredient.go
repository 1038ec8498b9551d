package models

// Ingredient stock is a quantity in the ingredient's own unit. Names are
// stored lowercase so lookups and CSV merges stay case-insensitive.
type Ingredient struct {
	ID    uint    `gorm:"primaryKey"`
	Name  string  `gorm:"uniqueIndex;not null"`
	Unit  string  `gorm:"not null"`
	Stock float64 `gorm:"not null;default:0"` // stock >= 0
}
