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

// CreateDeliverySlotRequest mirrors the delivery_slots columns required on
// insert. End-after-start is intentionally not validated.
type CreateDeliverySlotRequest struct {
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
	MaxOrders int       `json:"maxOrders" validate:"required,min=1"`
	IsActive  *bool     `json:"isActive"`
}

type DeliverySlotService struct {
	slots repository.DeliverySlotRepository
}

func NewDeliverySlotService(slots repository.DeliverySlotRepository) *DeliverySlotService {
	return &DeliverySlotService{slots: slots}
}

// Available returns the active slots within the calendar day of date.
func (s *DeliverySlotService) Available(ctx context.Context, date time.Time) ([]models.DeliverySlot, *ServiceError) {
	slots, err := s.slots.FindAvailable(ctx, date)
	if err != nil {
		logger.Log.Error("Failed to fetch delivery slots", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch delivery slots"}
	}
	return slots, nil
}

func (s *DeliverySlotService) Create(ctx context.Context, req *CreateDeliverySlotRequest) (*models.DeliverySlot, *ServiceError) {
	if err := validate.Struct(req); err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid delivery slot data"}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	slot := &models.DeliverySlot{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		MaxOrders: req.MaxOrders,
		IsActive:  isActive,
	}

	if err := s.slots.Create(ctx, slot); err != nil {
		logger.Log.Error("Failed to create delivery slot", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create delivery slot"}
	}
	return slot, nil
}
