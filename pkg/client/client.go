// Package client is a typed HTTP client for the point-of-sale API. The
// browser UI talks to the same endpoints; this client exists for Go callers
// and for the end-to-end tests.
package client

import (
	"fmt"
	"time"

	"resty.dev/v3"

	"api_pos/internal/catalog"
	"api_pos/internal/reports"
	"api_pos/internal/sales"
	"api_pos/internal/users"
)

// Client talks to one API server. Login stores the session token, so a
// single Client represents a single authenticated user.
type Client struct {
	http *resty.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second),
	}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.http.Close()
}

type apiError struct {
	Error string `json:"error"`
}

// LoginResponse is the body returned by POST /auth/login.
type LoginResponse struct {
	Token string     `json:"token"`
	User  users.User `json:"user"`
}

// Login authenticates and keeps the returned token for later calls.
func (c *Client) Login(name, password string) (*LoginResponse, error) {
	var out LoginResponse
	res, err := c.http.R().
		SetBody(map[string]string{"name": name, "password": password}).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if res.IsError() {
		return nil, responseError("login", res)
	}

	c.http.SetAuthToken(out.Token)
	return &out, nil
}

// ProductInput is the body for product create and update calls.
type ProductInput struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CreateProduct adds a product to the catalog.
func (c *Client) CreateProduct(input ProductInput) (*catalog.Product, error) {
	var out catalog.Product
	res, err := c.http.R().
		SetBody(input).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/products")
	if err != nil {
		return nil, fmt.Errorf("create product request failed: %w", err)
	}
	if res.IsError() {
		return nil, responseError("create product", res)
	}
	return &out, nil
}

// ListProducts returns the whole catalog.
func (c *Client) ListProducts() ([]*catalog.Product, error) {
	var out []*catalog.Product
	res, err := c.http.R().
		SetResult(&out).
		SetError(&apiError{}).
		Get("/products")
	if err != nil {
		return nil, fmt.Errorf("list products request failed: %w", err)
	}
	if res.IsError() {
		return nil, responseError("list products", res)
	}
	return out, nil
}

// UpdateProduct replaces all four fields of a product.
func (c *Client) UpdateProduct(id uint, input ProductInput) (*catalog.Product, error) {
	var out catalog.Product
	res, err := c.http.R().
		SetBody(input).
		SetResult(&out).
		SetError(&apiError{}).
		Put(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, fmt.Errorf("update product request failed: %w", err)
	}
	if res.IsError() {
		return nil, responseError("update product", res)
	}
	return &out, nil
}

// DeleteProduct removes a product from the catalog.
func (c *Client) DeleteProduct(id uint) error {
	res, err := c.http.R().
		SetError(&apiError{}).
		Delete(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return fmt.Errorf("delete product request failed: %w", err)
	}
	if res.IsError() {
		return responseError("delete product", res)
	}
	return nil
}

// CreateSale records a sale.
func (c *Client) CreateSale(input sales.CreateInput) (*sales.Sale, error) {
	var out sales.Sale
	res, err := c.http.R().
		SetBody(input).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/sales")
	if err != nil {
		return nil, fmt.Errorf("create sale request failed: %w", err)
	}
	if res.IsError() {
		return nil, responseError("create sale", res)
	}
	return &out, nil
}

// ListSales returns every sale, newest first.
func (c *Client) ListSales() ([]*sales.Sale, error) {
	var out []*sales.Sale
	res, err := c.http.R().
		SetResult(&out).
		SetError(&apiError{}).
		Get("/sales")
	if err != nil {
		return nil, fmt.Errorf("list sales request failed: %w", err)
	}
	if res.IsError() {
		return nil, responseError("list sales", res)
	}
	return out, nil
}

// SalesReport fetches the JSON sales report. Dates use YYYY-MM-DD; empty
// strings leave that end of the range open.
func (c *Client) SalesReport(from, to string) (*reports.Report, error) {
	var out reports.Report
	req := c.http.R().SetResult(&out).SetError(&apiError{})
	if from != "" {
		req.SetQueryParam("from", from)
	}
	if to != "" {
		req.SetQueryParam("to", to)
	}

	res, err := req.Get("/reports/sales")
	if err != nil {
		return nil, fmt.Errorf("sales report request failed: %w", err)
	}
	if res.IsError() {
		return nil, responseError("sales report", res)
	}
	return &out, nil
}

// SalesReportPDF fetches the report rendered as a PDF.
func (c *Client) SalesReportPDF(from, to string) ([]byte, error) {
	req := c.http.R().SetError(&apiError{}).SetQueryParam("format", "pdf")
	if from != "" {
		req.SetQueryParam("from", from)
	}
	if to != "" {
		req.SetQueryParam("to", to)
	}

	res, err := req.Get("/reports/sales")
	if err != nil {
		return nil, fmt.Errorf("sales report request failed: %w", err)
	}
	if res.IsError() {
		return nil, responseError("sales report", res)
	}
	return res.Bytes(), nil
}

func responseError(op string, res *resty.Response) error {
	if apiErr, ok := res.Error().(*apiError); ok && apiErr.Error != "" {
		return fmt.Errorf("%s failed (%d): %s", op, res.StatusCode(), apiErr.Error)
	}
	return fmt.Errorf("%s failed with status %d", op, res.StatusCode())
}
