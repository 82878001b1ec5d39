package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fruitstand/fruitstand-api/mapper"
	"github.com/fruitstand/fruitstand-api/models"
	"github.com/fruitstand/fruitstand-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// GetOrdersByCustomer -> all orders of one customer, customer and line
// items eagerly loaded
func (oc *OrderController) GetOrdersByCustomer(c *gin.Context) {
	idStr := c.Param("customer_id")
	customerID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid customer id"))
		return
	}

	var orders []models.Order
	if err := oc.DB.
		Preload("Customer").
		Preload("LineItems").
		Preload("LineItems.Product").
		Where("customer_id = ?", customerID).
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder -> build an order from the request, resolving the customer
// and every product against the database before anything is written. The
// line items are inserted together with the order in one create.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req mapper.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if len(req.LineItems) == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrNoLineItems)
		return
	}

	var customer models.Customer
	if err := oc.DB.First(&customer, req.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, ErrCustomerNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	order := mapper.ToOrder(req)
	order.CustomerID = &customer.ID

	for i := range order.LineItems {
		var product models.Product
		if err := oc.DB.First(&product, order.LineItems[i].ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondError(c, http.StatusNotFound,
					fmt.Errorf("product %d not found", order.LineItems[i].ProductID))
				return
			}
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	result := oc.DB.Create(&order)
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}

	utils.InfoLogger.Printf("Order %d created for customer %d with %d items",
		order.ID, customer.ID, len(order.LineItems))

	utils.RespondJSON(c, http.StatusCreated, "Order created", gin.H{
		"rows_affected": result.RowsAffected,
		"order":         order,
	})
}
