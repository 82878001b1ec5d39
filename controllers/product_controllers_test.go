package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fruitstand/fruitstand-api/controllers"
	"github.com/fruitstand/fruitstand-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupProductRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	productCtrl := controllers.NewProductController(db)
	router.GET("/product", productCtrl.GetAllProducts)
	router.GET("/product/by-name", productCtrl.GetProductByName)
	router.GET("/product/:product_id", productCtrl.GetProductByID)
	router.POST("/product", productCtrl.CreateProduct)
	return router
}

func TestGetAllProducts(t *testing.T) {
	db := setupTestDB(t, "product_all")
	seedProduct(t, db, "Apple", 0.50)
	seedProduct(t, db, "Banana", 0.25)
	router := setupProductRouter(db)

	req, _ := http.NewRequest("GET", "/product", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestGetProductByID(t *testing.T) {
	db := setupTestDB(t, "product_by_id")
	product := seedProduct(t, db, "Orange", 0.75)
	router := setupProductRouter(db)

	req, _ := http.NewRequest("GET", "/product/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(product.ID), data["id"])
	assert.Equal(t, "Orange", data["name"])
	assert.Equal(t, 0.75, data["price"])
}

func TestGetProductByIDNotFound(t *testing.T) {
	db := setupTestDB(t, "product_by_id_missing")
	router := setupProductRouter(db)

	req, _ := http.NewRequest("GET", "/product/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductByName(t *testing.T) {
	db := setupTestDB(t, "product_by_name")
	seedProduct(t, db, "Pineapple", 2.50)
	router := setupProductRouter(db)

	req, _ := http.NewRequest("GET", "/product/by-name?name=Pineapple", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Pineapple", data["name"])
}

func TestGetProductByNameMissingParam(t *testing.T) {
	db := setupTestDB(t, "product_by_name_noparam")
	router := setupProductRouter(db)

	req, _ := http.NewRequest("GET", "/product/by-name", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProduct(t *testing.T) {
	db := setupTestDB(t, "product_create")
	router := setupProductRouter(db)

	payload := map[string]interface{}{
		"name":        "Grapefruit",
		"description": "Large grapefruit",
		"price":       1.00,
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/product", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["rows_affected"])

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
