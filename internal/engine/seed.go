package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/models"
)

// defaultMenu describes one seedable catalog entry. Recipes are keyed by
// ingredient name because seeding runs before any IDs are known.
type defaultMenu struct {
	Name        string
	Description string
	Price       float64
	Ingredients map[string]float64
}

var defaultCatalog = []defaultMenu{
	{
		Name:        "Papas fritas",
		Description: "Papas fritas clásicas, crujientes y doradas.",
		Price:       500,
		Ingredients: map[string]float64{"papas": 5},
	},
	{
		Name:        "Pepsi",
		Description: "Bebida gaseosa refrescante Pepsi.",
		Price:       1100,
		Ingredients: map[string]float64{"pepsi": 1},
	},
	{
		Name:        "Completo",
		Description: "Pan con vienesa, tomate y palta, estilo chileno.",
		Price:       1800,
		Ingredients: map[string]float64{"vienesa": 1, "pan de completo": 1, "tomate": 1, "palta": 1},
	},
	{
		Name:        "Hamburguesa",
		Description: "Hamburguesa tradicional con queso y carne.",
		Price:       3500,
		Ingredients: map[string]float64{"pan de hamburguesa": 1, "lamina de queso": 1, "churrasco de carne": 1},
	},
	{
		Name:        "Panqueques",
		Description: "Panqueques rellenos de manjar y espolvoreados con azúcar flor.",
		Price:       2000,
		Ingredients: map[string]float64{"panqueques": 2, "manjar": 1, "azucar flor": 1},
	},
	{
		Name:        "Pollo frito",
		Description: "Presa de pollo empanizada y frita, muy crocante.",
		Price:       2800,
		Ingredients: map[string]float64{"presa de pollo": 1, "porcion de harina": 1, "porcion de aceite": 1},
	},
	{
		Name:        "Ensalada mixta",
		Description: "Ensalada fresca de lechuga, tomate y zanahoria rallada.",
		Price:       1500,
		Ingredients: map[string]float64{"lechuga": 1, "tomate": 1, "zanahoria rallada": 1},
	},
}

type SkippedMenu struct {
	Name    string   `json:"name"`
	Reasons []string `json:"reasons"`
}

type SeedReport struct {
	Created []string      `json:"created"`
	Skipped []SkippedMenu `json:"skipped"`
}

// errSeedSkipped aborts a seed transaction without treating it as a failure.
var errSeedSkipped = errors.New("seed skipped")

// SeedDefaultCatalog creates the default menus that do not exist yet,
// consuming stock for each recipe the same way order placement does. Each
// menu is its own unit of work: one menu with missing or short ingredients is
// skipped with its reasons and never blocks the rest.
func SeedDefaultCatalog(gdb *gorm.DB) (*SeedReport, error) {

	report := &SeedReport{Created: []string{}, Skipped: []SkippedMenu{}}

	for _, dm := range defaultCatalog {

		var count int64
		err := gdb.Model(&models.Menu{}).
			Where("LOWER(name) = ?", strings.ToLower(dm.Name)).
			Count(&count).Error
		if err != nil {
			return nil, &PersistenceError{Err: err}
		}
		if count > 0 {
			continue
		}

		if reasons := seedMenu(gdb, dm); len(reasons) > 0 {
			report.Skipped = append(report.Skipped, SkippedMenu{Name: dm.Name, Reasons: reasons})
		} else {
			report.Created = append(report.Created, dm.Name)
		}
	}

	return report, nil
}

func seedMenu(gdb *gorm.DB, dm defaultMenu) []string {

	names := make([]string, 0, len(dm.Ingredients))
	for name := range dm.Ingredients {
		names = append(names, strings.ToLower(name))
	}
	sort.Strings(names)

	var reasons []string

	err := gdb.Transaction(func(tx *gorm.DB) error {

		var rows []models.Ingredient
		if err := tx.Where("name IN ?", names).Find(&rows).Error; err != nil {
			return err
		}
		byName := make(map[string]models.Ingredient, len(rows))
		for _, ing := range rows {
			byName[ing.Name] = ing
		}

		for _, name := range names {
			qty := dm.Ingredients[name]
			ing, ok := byName[name]
			if !ok {
				reasons = append(reasons, fmt.Sprintf("ingredient '%s' not found", name))
				continue
			}
			if ing.Stock < qty {
				reasons = append(reasons, fmt.Sprintf("not enough stock of '%s' (stock: %g, required: %g)", name, ing.Stock, qty))
			}
		}
		if len(reasons) > 0 {
			return errSeedSkipped
		}

		menu := models.Menu{
			Name:        dm.Name,
			Description: dm.Description,
			Price:       dm.Price,
		}
		if err := tx.Create(&menu).Error; err != nil {
			return err
		}

		for _, name := range names {
			qty := dm.Ingredients[name]
			ing := byName[name]

			line := models.RecipeLine{
				MenuID:       menu.ID,
				IngredientID: ing.ID,
				Quantity:     qty,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}

			res := tx.Model(&models.Ingredient{}).
				Where("id = ?", ing.ID).
				Update("stock", gorm.Expr("stock - ?", qty))
			if res.Error != nil {
				return res.Error
			}
		}

		return nil
	})

	if err != nil && !errors.Is(err, errSeedSkipped) {
		reasons = append(reasons, err.Error())
	}

	return reasons
}
