package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/indunissanka/qbread/models"
	"github.com/indunissanka/qbread/repository"
	"github.com/indunissanka/qbread/services"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// mockSlotRepository is an in-memory DeliverySlotRepository for testing. Its
// FindAvailable applies the same day-window filter the SQL query does.
type mockSlotRepository struct {
	slots  []models.DeliverySlot
	nextID uint
}

func newMockSlotRepository() *mockSlotRepository {
	return &mockSlotRepository{nextID: 1}
}

func (m *mockSlotRepository) List(_ context.Context) ([]models.DeliverySlot, error) {
	return m.slots, nil
}

func (m *mockSlotRepository) Create(_ context.Context, slot *models.DeliverySlot) error {
	slot.ID = m.nextID
	m.nextID++
	m.slots = append(m.slots, *slot)
	return nil
}

func (m *mockSlotRepository) Update(_ context.Context, id uint, updates map[string]interface{}) (*models.DeliverySlot, error) {
	for i := range m.slots {
		if m.slots[i].ID != id {
			continue
		}
		if v, ok := updates["is_active"].(bool); ok {
			m.slots[i].IsActive = v
		}
		if v, ok := updates["max_orders"].(int); ok {
			m.slots[i].MaxOrders = v
		}
		return &m.slots[i], nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSlotRepository) FindAvailable(_ context.Context, date time.Time) ([]models.DeliverySlot, error) {
	startOfDay, endOfDay := repository.DayBounds(date)
	var result []models.DeliverySlot
	for _, slot := range m.slots {
		if !slot.IsActive {
			continue
		}
		if slot.StartTime.Before(startOfDay) || slot.EndTime.After(endOfDay) {
			continue
		}
		result = append(result, slot)
	}
	return result, nil
}

func slotAt(repo *mockSlotRepository, start, end time.Time, active bool) models.DeliverySlot {
	slot := models.DeliverySlot{StartTime: start, EndTime: end, MaxOrders: 10, IsActive: active}
	_ = repo.Create(context.Background(), &slot)
	return slot
}

func TestAvailableFiltersToCalendarDay(t *testing.T) {
	repo := newMockSlotRepository()
	svc := services.NewDeliverySlotService(repo)

	day := time.Date(2025, time.July, 10, 12, 0, 0, 0, time.Local)

	inWindow := slotAt(repo,
		time.Date(2025, time.July, 10, 9, 0, 0, 0, time.Local),
		time.Date(2025, time.July, 10, 11, 0, 0, 0, time.Local),
		true)

	// Starts the previous day.
	slotAt(repo,
		time.Date(2025, time.July, 9, 23, 0, 0, 0, time.Local),
		time.Date(2025, time.July, 10, 1, 0, 0, 0, time.Local),
		true)

	// Ends the next day.
	slotAt(repo,
		time.Date(2025, time.July, 10, 23, 0, 0, 0, time.Local),
		time.Date(2025, time.July, 11, 1, 0, 0, 0, time.Local),
		true)

	// Inside the window but inactive.
	slotAt(repo,
		time.Date(2025, time.July, 10, 14, 0, 0, 0, time.Local),
		time.Date(2025, time.July, 10, 16, 0, 0, 0, time.Local),
		false)

	slots, serviceErr := svc.Available(context.Background(), day)
	assert.Nil(t, serviceErr)
	assert.Len(t, slots, 1)
	assert.Equal(t, inWindow.ID, slots[0].ID)
}

func TestAvailableIncludesFullDayEdges(t *testing.T) {
	repo := newMockSlotRepository()
	svc := services.NewDeliverySlotService(repo)

	day := time.Date(2025, time.July, 10, 0, 30, 0, 0, time.Local)

	edge := slotAt(repo,
		time.Date(2025, time.July, 10, 0, 0, 0, 0, time.Local),
		time.Date(2025, time.July, 10, 23, 59, 0, 0, time.Local),
		true)

	slots, serviceErr := svc.Available(context.Background(), day)
	assert.Nil(t, serviceErr)
	assert.Len(t, slots, 1)
	assert.Equal(t, edge.ID, slots[0].ID)
}

func TestCreateSlotValidation(t *testing.T) {
	repo := newMockSlotRepository()
	svc := services.NewDeliverySlotService(repo)

	_, serviceErr := svc.Create(context.Background(), &services.CreateDeliverySlotRequest{
		StartTime: time.Now(),
		// EndTime and MaxOrders missing.
	})
	assert.NotNil(t, serviceErr)
	assert.Equal(t, 400, serviceErr.StatusCode)
	assert.Empty(t, repo.slots)
}

func TestCreateSlotDefaultsActive(t *testing.T) {
	repo := newMockSlotRepository()
	svc := services.NewDeliverySlotService(repo)

	slot, serviceErr := svc.Create(context.Background(), &services.CreateDeliverySlotRequest{
		StartTime: time.Date(2025, time.July, 10, 9, 0, 0, 0, time.Local),
		EndTime:   time.Date(2025, time.July, 10, 11, 0, 0, 0, time.Local),
		MaxOrders: 5,
	})
	assert.Nil(t, serviceErr)
	assert.True(t, slot.IsActive)
}

func TestUpdateSlotDeactivates(t *testing.T) {
	repo := newMockSlotRepository()
	slot := slotAt(repo,
		time.Date(2025, time.July, 10, 9, 0, 0, 0, time.Local),
		time.Date(2025, time.July, 10, 11, 0, 0, 0, time.Local),
		true)

	updated, err := repo.Update(context.Background(), slot.ID, map[string]interface{}{"is_active": false})
	assert.NoError(t, err)
	assert.False(t, updated.IsActive)
}
