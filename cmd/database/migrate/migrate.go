package migration

import (
	"Meal-Prep-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []any{
		&entities.Location{},
		&entities.User{},
		&entities.Customer{},
		&entities.FoodCategory{},
		&entities.FoodType{},
		&entities.Specification{},
		&entities.CookType{},
		&entities.Ingredient{},
		&entities.IngredientQuantity{},
		&entities.MenuItem{},
		&entities.MenuItemPhoto{},
		&entities.MenuItemIngredient{},
		&entities.Order{},
		&entities.OrderItem{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
