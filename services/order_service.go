package services

import (
	"context"
	"net/http"
	"time"

	"github.com/indunissanka/qbread/logger"
	"github.com/indunissanka/qbread/models"
	"github.com/indunissanka/qbread/repository"
	"go.uber.org/zap"
)

// OrderItemInput is one line-item snapshot as submitted by the client.
type OrderItemInput struct {
	ProductID uint         `json:"productId" validate:"required"`
	Quantity  int          `json:"quantity" validate:"required,min=1"`
	Name      string       `json:"name" validate:"required"`
	Price     models.Money `json:"price" validate:"required"`
}

// CreateOrderRequest mirrors the orders columns required on insert. Address,
// slot and delivery time stay optional here; the checkout form is the layer
// that requires them for the delivery method.
type CreateOrderRequest struct {
	CustomerName   string           `json:"customerName" validate:"required"`
	Email          string           `json:"email" validate:"required"`
	Phone          string           `json:"phone" validate:"required"`
	Address        *string          `json:"address"`
	DeliveryMethod string           `json:"deliveryMethod" validate:"required,oneof=pickup delivery"`
	DeliverySlotID *uint            `json:"deliverySlotId"`
	DeliveryTime   *time.Time       `json:"deliveryTime"`
	Items          []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Total          models.Money     `json:"total" validate:"required"`
}

type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// Create persists a new order. The submitted total is stored as sent; it is
// not recomputed from the line items.
func (s *OrderService) Create(ctx context.Context, userID *uint, req *CreateOrderRequest) (*models.Order, *ServiceError) {
	if err := validate.Struct(req); err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid order data"}
	}

	items := make(models.LineItems, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Name:      item.Name,
			Price:     item.Price,
		})
	}

	order := &models.Order{
		UserID:         userID,
		CustomerName:   req.CustomerName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		DeliveryMethod: req.DeliveryMethod,
		DeliverySlotID: req.DeliverySlotID,
		DeliveryTime:   req.DeliveryTime,
		Items:          items,
		Total:          req.Total,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		logger.Log.Error("Failed to create order", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create order"}
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		logger.Log.Error("Failed to list orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch orders"}
	}
	return orders, nil
}
