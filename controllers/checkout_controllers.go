package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fruitstand/fruitstand-api/mapper"
	"github.com/fruitstand/fruitstand-api/models"
	"github.com/fruitstand/fruitstand-api/services"
	"github.com/fruitstand/fruitstand-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckoutController struct {
	DB       *gorm.DB
	Payments *services.PaymentService
	Metrics  *services.Metrics
}

func NewCheckoutController(db *gorm.DB, payments *services.PaymentService, metrics *services.Metrics) *CheckoutController {
	return &CheckoutController{DB: db, Payments: payments, Metrics: metrics}
}

// Checkout -> resolve the customer and every requested product, charge the
// gateway once, then persist the order in a single transaction with the
// payment outcome recorded on it. The order is persisted even when the
// charge fails; the failure shows up in payment_status instead of being
// silently swallowed.
func (cc *CheckoutController) Checkout(c *gin.Context) {
	var req mapper.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if len(req.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrNoLineItems)
		return
	}

	cc.Metrics.Inc("checkout.requests")

	utils.InfoLogger.Printf("Check out initiated for customer %d", req.CustomerID)

	var customer models.Customer
	if err := cc.DB.First(&customer, req.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, ErrCustomerNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	lineItems := make([]models.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("quantity must be positive for product %d", item.ProductID))
			return
		}

		var product models.Product
		if err := cc.DB.First(&product, item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondError(c, http.StatusNotFound,
					fmt.Errorf("product %d not found", item.ProductID))
				return
			}
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}

		utils.InfoLogger.Printf("Adding %d units of %s to order", item.Quantity, product.Name)

		lineItems = append(lineItems, models.LineItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
		})
	}

	reference := uuid.NewString()

	cc.Metrics.Event("checkout.payment_attempt", map[string]interface{}{
		"reference":   reference,
		"customer_id": customer.ID,
		"items":       len(lineItems),
	})

	token, ok, err := cc.Payments.ProcessPayment(reference)

	paymentStatus := services.PaymentStatusPaid
	if err != nil || !ok {
		paymentStatus = services.PaymentStatusFailed
		cc.Metrics.Inc("checkout.payment_failed")
		utils.ErrorLogger.Printf("Payment failed for reference %s: ok=%v err=%v", reference, ok, err)
	}

	order := models.Order{
		CustomerID:       &customer.ID,
		PaymentStatus:    paymentStatus,
		PaymentReference: reference,
		LineItems:        lineItems,
	}

	if err := cc.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.Metrics.Inc("checkout.completed")

	utils.InfoLogger.Printf("Check out completed: order %d, payment %s", order.ID, paymentStatus)

	utils.RespondJSON(c, http.StatusCreated, "Checkout completed", gin.H{
		"order_id":          order.ID,
		"payment_status":    paymentStatus,
		"payment_reference": reference,
		"payment_token":     token,
	})
}
