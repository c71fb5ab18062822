// Package checkout turns a cart and the entered contact details into an
// order submission against the HTTP API.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/indunissanka/qbread/cart"
	"github.com/indunissanka/qbread/models"
	"github.com/indunissanka/qbread/services"
	"github.com/indunissanka/qbread/session"
)

// ErrEmptyCart signals that checkout was entered with nothing to order; the
// caller should send the user back to the cart view.
var ErrEmptyCart = errors.New("cart is empty")

// Contact is what the customer types into the checkout form.
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// BuildPayload maps the cart contents to line-item snapshots and assembles
// the order-create request. The slot's id and start time are copied in only
// for the delivery method.
func BuildPayload(c *cart.Cart, contact Contact, method string, slot *models.DeliverySlot) (*services.CreateOrderRequest, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]services.OrderItemInput, 0, c.Len())
	for _, item := range c.Items() {
		items = append(items, services.OrderItemInput{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
		})
	}

	req := &services.CreateOrderRequest{
		CustomerName:   contact.Name,
		Email:          contact.Email,
		Phone:          contact.Phone,
		DeliveryMethod: method,
		Items:          items,
		Total:          models.NewMoney(c.Total()),
	}

	if contact.Address != "" {
		address := contact.Address
		req.Address = &address
	}

	if method == models.DeliveryMethodDelivery && slot != nil {
		slotID := slot.ID
		startTime := slot.StartTime
		req.DeliverySlotID = &slotID
		req.DeliveryTime = &startTime
	}

	return req, nil
}

// Client submits assembled orders to the API with the caller's session.
type Client struct {
	baseURL   string
	sessionID string
	http      *http.Client
}

func NewClient(baseURL, sessionID string) *Client {
	return &Client{
		baseURL:   baseURL,
		sessionID: sessionID,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit posts the payload to the order endpoint and decodes the stored
// order. A non-201 response surfaces the server's message.
func (cl *Client) Submit(ctx context.Context, payload *services.CreateOrderRequest) (*models.Order, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cl.sessionID})

	resp, err := cl.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return nil, errors.New(apiErr.Message)
		}
		return nil, fmt.Errorf("order submission failed with status %d", resp.StatusCode)
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// PlaceOrder runs the whole flow. The cart is cleared only after the server
// accepts the order; on failure it is left untouched so the user can retry.
func (cl *Client) PlaceOrder(ctx context.Context, c *cart.Cart, contact Contact, method string, slot *models.DeliverySlot) (*models.Order, error) {
	payload, err := BuildPayload(c, contact, method, slot)
	if err != nil {
		return nil, err
	}

	order, err := cl.Submit(ctx, payload)
	if err != nil {
		return nil, err
	}

	c.Clear()
	return order, nil
}
