package router

import (
	"net/http"

	"github.com/fruitstand/fruitstand-api/controllers"
	"github.com/fruitstand/fruitstand-api/middlewares"
	"github.com/fruitstand/fruitstand-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, payments *services.PaymentService, metrics *services.Metrics) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	rateLimiter := middlewares.NewRateLimiter(50, 50)
	r.Use(rateLimiter.RateLimit())

	customerCtrl := controllers.NewCustomerController(db)
	productCtrl := controllers.NewProductController(db)
	orderCtrl := controllers.NewOrderController(db)
	checkoutCtrl := controllers.NewCheckoutController(db, payments, metrics)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, metrics.Snapshot())
	})

	// CUSTOMER
	r.GET("/customer/:customer_id", customerCtrl.GetCustomerByID)
	r.PUT("/customer", customerCtrl.UpdateCustomer)
	r.POST("/customer", customerCtrl.CreateCustomer)

	// PRODUCT
	// The by-name lookup lives on its own path so it cannot collide with
	// the :product_id route.
	r.GET("/product", productCtrl.GetAllProducts)
	r.GET("/product/by-name", productCtrl.GetProductByName)
	r.GET("/product/:product_id", productCtrl.GetProductByID)
	r.POST("/product", productCtrl.CreateProduct)

	// ORDER
	r.GET("/order/:customer_id", orderCtrl.GetOrdersByCustomer)
	r.POST("/order", orderCtrl.CreateOrder)

	// CHECKOUT
	r.POST("/checkout", checkoutCtrl.Checkout)

	return r
}
