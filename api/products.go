package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ProductFilter narrows ListProducts. Zero values are omitted.
type ProductFilter struct {
	Category string
	Search   string
}

// ListProducts fetches the marketplace listings matching filter.
func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	path := "/api/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []Product
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct fetches a single listing.
func (c *Client) GetProduct(ctx context.Context, id int) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct adds a listing for the authenticated farmer.
func (c *Client) CreateProduct(ctx context.Context, req ProductCreate) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPost, "/api/products", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct replaces a listing owned by the authenticated farmer.
func (c *Client) UpdateProduct(ctx context.Context, id int, req ProductCreate) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPut, "/api/products/"+strconv.Itoa(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes a listing owned by the authenticated farmer.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+strconv.Itoa(id), nil, nil)
}
