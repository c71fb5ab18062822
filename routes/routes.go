package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/indunissanka/qbread/controllers"
	"github.com/indunissanka/qbread/middleware"
)

// Register wires every API route with its guard.
func Register(
	r *gin.Engine,
	guard *middleware.Auth,
	authController *controllers.AuthController,
	productController *controllers.ProductController,
	slotController *controllers.DeliverySlotController,
	orderController *controllers.OrderController,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := r.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.GET("/line", authController.Login)
	authRoutes.GET("/line/callback", authController.Callback)
	authRoutes.GET("/user", authController.CurrentUser)
	authRoutes.POST("/logout", authController.Logout)

	api.GET("/products", productController.GetProducts)
	api.POST("/products", guard.RequireAdmin(), productController.CreateProduct)

	api.GET("/delivery-slots", slotController.GetDeliverySlots)
	api.POST("/delivery-slots", guard.RequireAdmin(), slotController.CreateDeliverySlot)

	orderRoutes := api.Group("/orders")
	orderRoutes.Use(guard.RequireAuth())
	orderRoutes.POST("", orderController.CreateOrder)
	orderRoutes.GET("", orderController.GetOrders)
}
