package migration

import (
	"WebFood-API/entities"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate creates tables in dependency order so foreign keys resolve.
func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"category", &entities.Category{}},
		{"food", &entities.Food{}},
		{"promotion", &entities.Promotion{}},
		{"order", &entities.Order{}},
		{"order detail", &entities.OrderDetail{}},
		{"cart item", &entities.CartItem{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("error migrating %s table: %w", m.name, err)
		}
	}

	logrus.Info("database migration complete")
	return nil
}
