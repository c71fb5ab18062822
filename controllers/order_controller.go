package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/indunissanka/qbread/middleware"
	"github.com/indunissanka/qbread/services"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder persists an order for the authenticated user.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var userID *uint
	if user, ok := middleware.CurrentUser(c); ok {
		userID = &user.ID
	}

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data"})
		return
	}

	order, serviceErr := oc.orderService.Create(c.Request.Context(), userID, &req)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"message": serviceErr.Message})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrders returns all orders. Not scoped to the requester.
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, serviceErr := oc.orderService.List(c.Request.Context())
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"message": serviceErr.Message})
		return
	}
	c.JSON(http.StatusOK, orders)
}
