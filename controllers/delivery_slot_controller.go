package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/indunissanka/qbread/services"
)

type DeliverySlotController struct {
	slotService *services.DeliverySlotService
}

func NewDeliverySlotController(slotService *services.DeliverySlotService) *DeliverySlotController {
	return &DeliverySlotController{slotService: slotService}
}

// GetDeliverySlots returns the active slots for the requested calendar day.
// The date query param defaults to now; an unparseable date also falls back
// to now rather than failing the request.
func (dc *DeliverySlotController) GetDeliverySlots(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		if parsed, err := parseDate(raw); err == nil {
			date = parsed
		}
	}

	slots, serviceErr := dc.slotService.Available(c.Request.Context(), date)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"message": serviceErr.Message})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// CreateDeliverySlot handles admin slot creation.
func (dc *DeliverySlotController) CreateDeliverySlot(c *gin.Context) {
	var req services.CreateDeliverySlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid delivery slot data"})
		return
	}

	slot, serviceErr := dc.slotService.Create(c.Request.Context(), &req)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"message": serviceErr.Message})
		return
	}
	c.JSON(http.StatusCreated, slot)
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}
