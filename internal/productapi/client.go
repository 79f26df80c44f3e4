package productapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront-cli/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL  = "http://localhost:3000/api/product_uploads"
	defaultTimeout  = 8 * time.Second
	requestIDHeader = "X-Request-ID"
)

// ErrMissingCategory is returned when no category is provided.
var ErrMissingCategory = errors.New("productapi: missing category")

// StatusError reports a non-2xx answer from the product API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("productapi: status %d", e.Code)
	}
	return fmt.Sprintf("productapi: status %d: %s", e.Code, e.Body)
}

// Client reads category listings from the product_uploads API.
type Client struct {
	baseURL string
	limit   int
	http    *http.Client
	logger  *zap.Logger
}

type Option func(*Client)

// WithHTTPClient swaps the transport (tests use httptest clients).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLimit forwards ?limit= to the backend; 0 keeps the server default.
func WithLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.limit = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient constructs an API client. An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// CategoryURL is the listing endpoint for category: {base}/category/{category}.
func (c *Client) CategoryURL(category string) (string, error) {
	endpoint, err := url.JoinPath(c.baseURL, "category", url.PathEscape(category))
	if err != nil {
		return "", err
	}
	if c.limit > 0 {
		endpoint += "?limit=" + strconv.Itoa(c.limit)
	}
	return endpoint, nil
}

// ListCategory fetches the products of one category.
//
// The body may be a bare JSON array or an object with a "products" field; an object
// without that field yields an empty list.
func (c *Client) ListCategory(ctx context.Context, category string) ([]model.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrMissingCategory
	}
	endpoint, err := c.CategoryURL(category)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, reqID)

	log := c.logger.With(zap.String("category", category), zap.String("requestId", reqID))
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("product fetch failed", zap.Error(err))
		return nil, fmt.Errorf("productapi: fetch %s: %w", category, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serr := &StatusError{Code: resp.StatusCode, Body: drainError(resp.Body)}
		log.Error("product fetch rejected", zap.Int("status", resp.StatusCode), zap.String("body", serr.Body))
		return nil, serr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("productapi: read body: %w", err)
	}
	products, err := DecodeProducts(body)
	if err != nil {
		log.Error("product payload invalid", zap.Error(err))
		return nil, err
	}
	log.Info("products loaded", zap.Int("count", len(products)), zap.Duration("took", time.Since(started)))
	return products, nil
}

type envelope struct {
	Products []model.Product `json:"products"`
}

// DecodeProducts accepts either `[...]` or `{"products": [...]}`.
func DecodeProducts(body []byte) ([]model.Product, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errors.New("productapi: empty response body")
	}
	switch body[0] {
	case '[':
		var out []model.Product
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("productapi: decode list: %w", err)
		}
		return nonNil(out), nil
	case '{':
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("productapi: decode envelope: %w", err)
		}
		return nonNil(env.Products), nil
	default:
		return nil, fmt.Errorf("productapi: unexpected payload starting with %q", body[0])
	}
}

func nonNil(xs []model.Product) []model.Product {
	if xs == nil {
		return []model.Product{}
	}
	return xs
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
