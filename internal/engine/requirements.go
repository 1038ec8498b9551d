package engine

import (
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/models"
)

// Cart maps a menu ID to the number of units requested. Carts are transient;
// nothing is persisted or reserved until PlaceOrder commits.
type Cart map[uint]int

// Requirements folds every (menu, recipe line) pair of the cart into a single
// ingredient requirement map. An ingredient shared by several menus in the
// cart accumulates into one total.
func Requirements(cart Cart, menus []models.Menu) map[uint]float64 {
	required := make(map[uint]float64)
	for _, menu := range menus {
		qty, ok := cart[menu.ID]
		if !ok {
			continue
		}
		for _, line := range menu.Recipe {
			required[line.IngredientID] += line.Quantity * float64(qty)
		}
	}
	return required
}
