package database

import (
	"fmt"

	"github.com/fruitstand/fruitstand-api/models"
	"gorm.io/gorm"
)

// Seed wipes all four tables, resets their id counters and inserts the fixed
// demo rows: 2 customers, 5 products, 2 orders. Running it twice against the
// same database yields exactly the same rows with the same ids. It is
// destructive and only meant for local demo databases.
func Seed(db *gorm.DB) error {
	// Children first, FK constraints.
	tables := []string{"line_items", "orders", "products", "customers"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
		if err := resetSequence(db, table); err != nil {
			return fmt.Errorf("resetting sequence for %s: %w", table, err)
		}
	}

	customers := []models.Customer{
		{FirstName: "Jane", LastName: "Doe", Email: "jane@doe.com", Phone: "1234567890", Address: "123 Fake Street"},
		{FirstName: "John", LastName: "Doe", Email: "john@doe.com", Phone: "2345678901", Address: "125 Fake Street"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return fmt.Errorf("seeding customers: %w", err)
	}

	products := []models.Product{
		{Name: "Apple", Description: "Juicy apple", Price: 0.50},
		{Name: "Banana", Description: "Yellow banana", Price: 0.25},
		{Name: "Orange", Description: "Sweet orange", Price: 0.75},
		{Name: "Pineapple", Description: "Sweet pineapple", Price: 2.50},
		{Name: "Grapefruit", Description: "Large grapefruit", Price: 1.00},
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("seeding products: %w", err)
	}

	productID := func(name string) uint {
		for _, p := range products {
			if p.Name == name {
				return p.ID
			}
		}
		return 0
	}

	orders := []models.Order{
		{
			CustomerID: &customers[0].ID,
			LineItems: []models.LineItem{
				{ProductID: productID("Apple"), Quantity: 3},
				{ProductID: productID("Banana"), Quantity: 5},
				{ProductID: productID("Orange"), Quantity: 3},
			},
		},
		{
			CustomerID: &customers[1].ID,
			LineItems: []models.LineItem{
				{ProductID: productID("Banana"), Quantity: 10},
				{ProductID: productID("Pineapple"), Quantity: 2},
				{ProductID: productID("Grapefruit"), Quantity: 5},
			},
		},
	}
	if err := db.Create(&orders).Error; err != nil {
		return fmt.Errorf("seeding orders: %w", err)
	}

	return nil
}

func resetSequence(db *gorm.DB, table string) error {
	switch db.Dialector.Name() {
	case "mysql":
		return db.Exec("ALTER TABLE " + table + " AUTO_INCREMENT = 1").Error
	case "sqlite":
		// sqlite_sequence only exists once an AUTOINCREMENT insert happened.
		db.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table)
		return nil
	default:
		return nil
	}
}
