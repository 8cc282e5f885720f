package api

import (
	"context"
	"net/http"
	"strconv"
)

// GetBuyerAnalytics fetches the authenticated buyer's purchase summary.
func (c *Client) GetBuyerAnalytics(ctx context.Context) (*BuyerAnalytics, error) {
	var out BuyerAnalytics
	if err := c.do(ctx, http.MethodGet, "/api/analytics/buyer", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFarmerAnalytics fetches a farmer's sales summary.
func (c *Client) GetFarmerAnalytics(ctx context.Context, farmerID int) (*FarmerAnalytics, error) {
	var out FarmerAnalytics
	path := "/api/analytics/farmer/" + strconv.Itoa(farmerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
