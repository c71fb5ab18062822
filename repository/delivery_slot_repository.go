package repository

import (
	"context"
	"time"

	"github.com/indunissanka/qbread/models"
	"gorm.io/gorm"
)

type deliverySlotRepository struct {
	db *gorm.DB
}

func NewDeliverySlotRepository(db *gorm.DB) DeliverySlotRepository {
	return &deliverySlotRepository{db: db}
}

func (r *deliverySlotRepository) List(ctx context.Context) ([]models.DeliverySlot, error) {
	var slots []models.DeliverySlot
	err := r.db.WithContext(ctx).Find(&slots).Error
	return slots, err
}

func (r *deliverySlotRepository) Create(ctx context.Context, slot *models.DeliverySlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *deliverySlotRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.DeliverySlot, error) {
	if err := r.db.WithContext(ctx).Model(&models.DeliverySlot{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	var slot models.DeliverySlot
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&slot).Error
	return &slot, err
}

// FindAvailable returns active slots falling entirely within the calendar
// day of date, in the server's local time.
func (r *deliverySlotRepository) FindAvailable(ctx context.Context, date time.Time) ([]models.DeliverySlot, error) {
	startOfDay, endOfDay := DayBounds(date)

	var slots []models.DeliverySlot
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("start_time >= ?", startOfDay).
		Where("end_time <= ?", endOfDay).
		Find(&slots).Error
	return slots, err
}
