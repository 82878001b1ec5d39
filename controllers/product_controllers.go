package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fruitstand/fruitstand-api/mapper"
	"github.com/fruitstand/fruitstand-api/models"
	"github.com/fruitstand/fruitstand-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// GetAllProducts -> every product, database default order
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	var products []models.Product
	if err := pc.DB.Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// GetProductByID -> detail of one product
func (pc *ProductController) GetProductByID(c *gin.Context) {
	idStr := c.Param("product_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid product id"))
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, ErrProductNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

// GetProductByName looks a product up by its exact name.
// Endpoint: GET /product/by-name?name=<product name>
func (pc *ProductController) GetProductByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query parameter 'name' is required"))
		return
	}

	var product models.Product
	if err := pc.DB.Where("name = ?", name).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, ErrProductNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

// CreateProduct -> insert a new product
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req mapper.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product := mapper.ToProduct(req)

	result := pc.DB.Create(&product)
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}

	utils.InfoLogger.Printf("New product created (ID=%d, Name=%s)", product.ID, product.Name)

	utils.RespondJSON(c, http.StatusCreated, "Product created", gin.H{
		"rows_affected": result.RowsAffected,
		"product":       product,
	})
}
