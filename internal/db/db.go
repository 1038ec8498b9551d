package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	config "github.com/arriagadabarbara756-spec/Restaurante-proyecto3/configs"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/models"
)

var DB *gorm.DB

// Init opens the backing store and migrates the schema. The default is a
// local sqlite file, matching the single-user, single-writer deployment;
// DB_DRIVER=postgres switches to a server database.
func Init() {

	cfg := config.LoadDBConfig()

	var dialector gorm.Dialector

	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=America/Santiago",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
		)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	var err error

	DB, err = gorm.Open(dialector, &gorm.Config{})

	if err != nil {
		zap.L().Fatal("failed to connect to DB", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.Customer{},
		&models.Ingredient{},
		&models.Menu{},
		&models.RecipeLine{},
		&models.Order{},
		&models.OrderLine{},
	)

	if err != nil {
		zap.L().Fatal("failed to migrate DB", zap.Error(err))
	}

	zap.L().Info("database connected and migrated", zap.String("driver", cfg.Driver))
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}
