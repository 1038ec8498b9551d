package models

type Menu struct {
	ID          uint         `gorm:"primaryKey"`
	Name        string       `gorm:"uniqueIndex;not null"`
	Description string       `gorm:"type:text"`
	Price       float64      `gorm:"not null"`
	Recipe      []RecipeLine `gorm:"foreignKey:MenuID"`
}

// RecipeLine says how much of one ingredient a single unit of the menu
// consumes. The (menu, ingredient) pair is unique within a recipe.
type RecipeLine struct {
	ID           uint    `gorm:"primaryKey"`
	MenuID       uint    `gorm:"index;not null;uniqueIndex:uq_menu_ingredient"`
	IngredientID uint    `gorm:"not null;uniqueIndex:uq_menu_ingredient"`
	Quantity     float64 `gorm:"not null"`
	Ingredient   *Ingredient
}
