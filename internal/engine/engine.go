// Package engine implements order placement against ingredient stock: it
// validates a cart, aggregates ingredient requirements across all lines and
// commits the order together with the stock decrements as one unit of work.
// Every function is stateless over the *gorm.DB handed to it.
package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/models"
)

// PlaceOrder converts a cart into a persisted order. Stock for every
// ingredient the cart touches is checked and decremented inside the same
// transaction that creates the order and its lines: either every write lands
// or none do. Prices are snapshotted onto the order lines at this instant.
func PlaceOrder(gdb *gorm.DB, customerID uint, cart Cart, description string, placedAt time.Time) (*models.Order, error) {

	if len(cart) == 0 {
		return nil, &InvalidInputError{Reason: "the order has no items"}
	}
	for menuID, qty := range cart {
		if qty <= 0 {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("quantity for menu %d must be positive", menuID)}
		}
	}
	if placedAt.IsZero() {
		placedAt = time.Now()
	}

	var order models.Order

	err := gdb.Transaction(func(tx *gorm.DB) error {

		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "customer", ID: customerID}
			}
			return err
		}

		menus, err := cartMenus(tx, cart)
		if err != nil {
			return err
		}

		required := Requirements(cart, menus)

		ingredients, err := ingredientsByID(tx, required)
		if err != nil {
			return err
		}

		if short := shortfalls(required, ingredients); len(short) > 0 {
			return &InsufficientStockError{Shortfalls: short}
		}

		var total float64
		for _, menu := range menus {
			total += menu.Price * float64(cart[menu.ID])
		}

		order = models.Order{
			CustomerID:  customer.ID,
			PlacedAt:    placedAt,
			Total:       total,
			Description: description,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		lines := make([]models.OrderLine, 0, len(menus))
		for _, menu := range menus {
			lines = append(lines, models.OrderLine{
				OrderID:   order.ID,
				MenuID:    menu.ID,
				Quantity:  cart[menu.ID],
				UnitPrice: menu.Price,
			})
		}
		if err := tx.CreateInBatches(&lines, len(lines)).Error; err != nil {
			return err
		}

		for _, ing := range ingredients {
			res := tx.Model(&models.Ingredient{}).
				Where("id = ?", ing.ID).
				Update("stock", gorm.Expr("stock - ?", required[ing.ID]))
			if res.Error != nil {
				return res.Error
			}
		}

		return tx.Preload("Items.Menu").Preload("Customer").First(&order, order.ID).Error
	})

	if err != nil {
		var notFound *NotFoundError
		var invalid *InvalidInputError
		var short *InsufficientStockError
		if errors.As(err, &notFound) || errors.As(err, &invalid) || errors.As(err, &short) {
			return nil, err
		}
		return nil, &PersistenceError{Err: err}
	}

	return &order, nil
}

// MaxAddable reports how many additional units of one menu the given cart can
// still accept. Everything the cart already holds counts as reserved, so the
// cap is min over the recipe of floor((stock - reserved) / perUnit). This is
// advisory only: nothing is locked, and PlaceOrder re-checks authoritatively.
func MaxAddable(gdb *gorm.DB, menuID uint, cart Cart) (int, error) {

	var menu models.Menu
	if err := gdb.Preload("Recipe.Ingredient").First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &NotFoundError{Entity: "menu", ID: menuID}
		}
		return 0, &PersistenceError{Err: err}
	}

	reserved := map[uint]float64{}
	if len(cart) > 0 {
		menus, err := cartMenus(gdb, cart)
		if err != nil {
			var notFound *NotFoundError
			if errors.As(err, &notFound) {
				return 0, err
			}
			return 0, &PersistenceError{Err: err}
		}
		reserved = Requirements(cart, menus)
	}

	// A recipe-less menu constrains nothing.
	units := math.MaxInt32

	for _, line := range menu.Recipe {
		if line.Ingredient == nil {
			// Orphaned line; the cleanup pass removes these.
			continue
		}
		available := line.Ingredient.Stock - reserved[line.IngredientID]
		if available <= 0 {
			return 0, nil
		}
		if possible := int(math.Floor(available / line.Quantity)); possible < units {
			units = possible
		}
	}

	return units, nil
}

func cartMenus(tx *gorm.DB, cart Cart) ([]models.Menu, error) {
	ids := make([]uint, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}

	var menus []models.Menu
	if err := tx.Preload("Recipe").Where("id IN ?", ids).Find(&menus).Error; err != nil {
		return nil, err
	}

	if len(menus) != len(cart) {
		found := make(map[uint]bool, len(menus))
		for _, menu := range menus {
			found[menu.ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return nil, &NotFoundError{Entity: "menu", ID: id}
			}
		}
	}

	return menus, nil
}

func ingredientsByID(tx *gorm.DB, required map[uint]float64) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(required) == 0 {
		return ingredients, nil
	}

	ids := make([]uint, 0, len(required))
	for id := range required {
		ids = append(ids, id)
	}

	if err := tx.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// shortfalls lists every ingredient whose requirement exceeds stock, ordered
// by ingredient ID so a repeated failing cart reports identically.
func shortfalls(required map[uint]float64, ingredients []models.Ingredient) []Shortfall {
	var short []Shortfall
	for _, ing := range ingredients {
		if req := required[ing.ID]; req > ing.Stock {
			short = append(short, Shortfall{
				IngredientID: ing.ID,
				Name:         ing.Name,
				Required:     req,
				Available:    ing.Stock,
			})
		}
	}
	sort.Slice(short, func(i, j int) bool { return short[i].IngredientID < short[j].IngredientID })
	return short
}
