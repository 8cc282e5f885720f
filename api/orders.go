package api

import (
	"context"
	"net/http"
	"strconv"
)

// CreateOrder places an order for the authenticated buyer.
func (c *Client) CreateOrder(ctx context.Context, req OrderCreate) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyOrders lists the authenticated buyer's orders.
func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/my-orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FarmerOrders lists orders containing the authenticated farmer's products.
func (c *Client) FarmerOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/farmer-orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOrderStatus moves an order to a new status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status string) (*Order, error) {
	var out Order
	req := struct {
		Status string `json:"status"`
	}{Status: status}
	path := "/api/orders/" + strconv.Itoa(id) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelOrder cancels a pending order owned by the authenticated buyer.
func (c *Client) CancelOrder(ctx context.Context, id int) (*Order, error) {
	var out Order
	path := "/api/orders/" + strconv.Itoa(id) + "/cancel"
	if err := c.do(ctx, http.MethodPatch, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
