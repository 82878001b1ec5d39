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

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetCustomerByID -> one customer with their orders preloaded
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid customer id"))
		return
	}

	var customer models.Customer
	if err := cc.DB.Preload("Orders").Preload("Orders.LineItems").First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, ErrCustomerNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// UpdateCustomer -> overwrite email/phone/address of an existing customer.
// An unknown id is not an error here: the response reports zero rows
// affected and nothing is written.
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var req mapper.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondJSON(c, http.StatusOK, "Customer not found", gin.H{"rows_affected": 0})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address

	result := cc.DB.Save(&customer)
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}

	utils.InfoLogger.Printf("Customer %d updated", customer.ID)

	utils.RespondJSON(c, http.StatusOK, "Customer updated", gin.H{"rows_affected": result.RowsAffected})
}

// CreateCustomer -> insert a new customer from the request payload
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req mapper.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := mapper.ToCustomer(req)

	result := cc.DB.Create(&customer)
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d)", customer.ID)

	utils.RespondJSON(c, http.StatusCreated, "Customer created", gin.H{
		"rows_affected": result.RowsAffected,
		"customer":      customer,
	})
}
