// Package backend is the HTTP client for the commerce backend. The
// engine treats the backend as an external collaborator: every call is
// a single request/response with no retries; failures surface to the
// caller.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"handestiy-storefront/internal/domain"
)

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Body)
}

// Unwrap maps rejection statuses onto domain sentinels so callers can
// use errors.Is without inspecting codes.
func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	return nil
}

// Query selects one catalog page.
type Query struct {
	Category string
	Sort     string
	Page     int
	PageSize int
}

// ProductPage is one page of catalog results with the unpaged total.
type ProductPage struct {
	Items []domain.Product `json:"items"`
	Total int              `json:"total"`
}

// Client talks to the storefront backend. It is stateless: the admin
// token is passed per call, never stored here.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

func New(baseURL string, logger *log.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// ListProducts fetches one catalog page. Identical queries produce
// identical requests.
func (c *Client) ListProducts(ctx context.Context, q Query) (ProductPage, error) {
	params := url.Values{}
	params.Set("category", q.Category)
	params.Set("sort", q.Sort)
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.PageSize))

	var page ProductPage
	err := c.do(ctx, http.MethodGet, "/api/products?"+params.Encode(), "", nil, &page)
	if err != nil {
		return ProductPage{}, err
	}
	if page.Total < 0 {
		page.Total = 0
	}
	return page, nil
}

func (c *Client) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	var p domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(slug), "", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SubmitOrder posts an order draft and returns the backend-assigned
// order ID.
func (c *Client) SubmitOrder(ctx context.Context, draft domain.OrderDraft) (string, error) {
	var resp struct {
		OrderID string `json:"order_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/orders", "", draft, &resp); err != nil {
		return "", err
	}
	if resp.OrderID == "" {
		return "", fmt.Errorf("backend acknowledged order without an id")
	}
	return resp.OrderID, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var o domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID), "", nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Login exchanges admin credentials for an opaque token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", "", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response missing token")
	}
	return resp.Token, nil
}

func (c *Client) AdminOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, draft domain.ProductDraft) error {
	return c.do(ctx, http.MethodPost, "/api/admin/products", token, draft, nil)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	path := "/api/admin/orders/" + url.PathEscape(orderID) + "/status"
	return c.do(ctx, http.MethodPatch, path, token, body, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
