package controllers_test

import (
	"fmt"
	"testing"

	"github.com/fruitstand/fruitstand-api/models"
	"github.com/fruitstand/fruitstand-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitLogger("info")
}

// setupTestDB opens a named in-memory sqlite database so each test gets its
// own isolated schema.
func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}, &models.LineItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) models.Customer {
	t.Helper()

	customer := models.Customer{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@doe.com",
		Phone:     "1234567890",
		Address:   "123 Fake Street",
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return customer
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()

	product := models.Product{
		Name:        name,
		Description: "test product",
		Price:       price,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}
