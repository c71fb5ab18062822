package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/indunissanka/qbread/cart"
	"github.com/indunissanka/qbread/models"
	"github.com/indunissanka/qbread/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledCart() *cart.Cart {
	c := cart.New()
	croissant := models.Product{ID: 1, Name: "Classic Croissant", Price: models.MustMoney("3.50")}
	bread := models.Product{ID: 2, Name: "Sourdough Bread", Price: models.MustMoney("6.00")}
	c.AddItem(croissant)
	c.AddItem(croissant)
	c.AddItem(bread)
	return c
}

func contact() Contact {
	return Contact{Name: "Nimal Perera", Email: "nimal@example.com", Phone: "0771234567"}
}

func TestBuildPayloadEmptyCart(t *testing.T) {
	_, err := BuildPayload(cart.New(), contact(), models.DeliveryMethodPickup, nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildPayloadPickup(t *testing.T) {
	payload, err := BuildPayload(filledCart(), contact(), models.DeliveryMethodPickup, nil)
	require.NoError(t, err)

	assert.Len(t, payload.Items, 2)
	assert.Equal(t, "13.00", payload.Total.StringFixed(2))
	assert.Equal(t, models.DeliveryMethodPickup, payload.DeliveryMethod)
	assert.Nil(t, payload.DeliverySlotID)
	assert.Nil(t, payload.DeliveryTime)

	// Line items snapshot the cart order and quantities.
	assert.Equal(t, uint(1), payload.Items[0].ProductID)
	assert.Equal(t, 2, payload.Items[0].Quantity)
	assert.Equal(t, "Classic Croissant", payload.Items[0].Name)
	assert.Equal(t, uint(2), payload.Items[1].ProductID)
	assert.Equal(t, 1, payload.Items[1].Quantity)
}

func TestBuildPayloadPickupIgnoresSlot(t *testing.T) {
	slot := &models.DeliverySlot{ID: 4, StartTime: time.Now()}

	payload, err := BuildPayload(filledCart(), contact(), models.DeliveryMethodPickup, slot)
	require.NoError(t, err)
	assert.Nil(t, payload.DeliverySlotID)
	assert.Nil(t, payload.DeliveryTime)
}

func TestBuildPayloadDeliveryCopiesSlot(t *testing.T) {
	start := time.Date(2025, time.July, 10, 9, 0, 0, 0, time.Local)
	slot := &models.DeliverySlot{ID: 4, StartTime: start, EndTime: start.Add(2 * time.Hour)}

	ct := contact()
	ct.Address = "12 Galle Road, Colombo"

	payload, err := BuildPayload(filledCart(), ct, models.DeliveryMethodDelivery, slot)
	require.NoError(t, err)

	require.NotNil(t, payload.DeliverySlotID)
	assert.Equal(t, uint(4), *payload.DeliverySlotID)
	require.NotNil(t, payload.DeliveryTime)
	assert.True(t, start.Equal(*payload.DeliveryTime), "delivery time is copied from the slot's start")
	require.NotNil(t, payload.Address)
	assert.Equal(t, "12 Galle Road, Colombo", *payload.Address)
}

func TestPlaceOrderClearsCartOnSuccess(t *testing.T) {
	var gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(session.CookieName); err == nil {
			gotCookie = c.Value
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Order{ID: 42, Total: models.MustMoney("13.00")})
	}))
	defer server.Close()

	c := filledCart()
	client := NewClient(server.URL, "sid-1")

	order, err := client.PlaceOrder(context.Background(), c, contact(), models.DeliveryMethodPickup, nil)
	require.NoError(t, err)

	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, "13.00", order.Total.StringFixed(2))
	assert.Equal(t, "sid-1", gotCookie, "the session cookie rides along")
	assert.Equal(t, 0, c.Len(), "cart is cleared after the server accepts")
}

func TestPlaceOrderKeepsCartOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
	}))
	defer server.Close()

	c := filledCart()
	client := NewClient(server.URL, "")

	_, err := client.PlaceOrder(context.Background(), c, contact(), models.DeliveryMethodPickup, nil)
	require.Error(t, err)
	assert.Equal(t, "Unauthorized", err.Error(), "the server's message is surfaced")
	assert.Equal(t, 2, c.Len(), "cart stays intact so the user can retry")
	assert.Equal(t, "13.00", c.Total().StringFixed(2))
}

func TestPlaceOrderEmptyCartDoesNotSubmit(t *testing.T) {
	var hit bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer server.Close()

	client := NewClient(server.URL, "sid-1")
	_, err := client.PlaceOrder(context.Background(), cart.New(), contact(), models.DeliveryMethodPickup, nil)

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.False(t, hit, "nothing is sent for an empty cart")
}
