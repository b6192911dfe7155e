package client

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

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
	"github.com/google/uuid"
)

const (
	RequestIDHeaderName = "X-Request-ID"

	defaultTimeout = 15 * time.Second
	maxBodySize    = 1 << 20
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	tokens  TokenSource
	log     logging.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds every request. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithTokenSource sets the bearer token provider.
func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

// NewHTTPClient builds a client for the backend at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{},
		timeout: defaultTimeout,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetTokenSource wires the token provider after construction; the session
// store that provides tokens is itself built on top of this client.
func (c *HTTPClient) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

type request struct {
	method      string
	path        string
	auth        bool
	record      bool
	body        []byte
	contentType string
	fallback    string
}

func (c *HTTPClient) jsonRequest(method, path string, v any) (request, error) {
	r := request{method: method, path: path, auth: true}
	if v != nil {
		b, err := json.Marshal(v)
		if err != nil {
			return r, fmt.Errorf("encode request: %w", err)
		}
		r.body = b
		r.contentType = "application/json"
	}
	return r, nil
}

func (c *HTTPClient) do(ctx context.Context, r request, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeaderName, reqID)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.auth && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", r.method, "path", r.path, "request_id", reqID, "error", err)
		if errors.Is(ctx.Err(), context.Canceled) {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request done",
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"request_id", reqID,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(ctx, r, resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) mapError(ctx context.Context, r request, code int, body []byte) error {
	switch {
	case code == http.StatusUnauthorized:
		if c.tokens != nil {
			c.tokens.PurgeToken(ctx)
		}
		if !r.auth {
			return &RequestError{StatusCode: code, Message: ParseErrorBody(body, r.fallback)}
		}
		return ErrSessionExpired
	case code == http.StatusNotFound && r.record:
		return ErrNotFound
	default:
		return &RequestError{StatusCode: code, Message: ParseErrorBody(body, r.fallback)}
	}
}

func applicationPath(id int64) string {
	return "/applications/" + strconv.FormatInt(id, 10)
}

// Ping checks that the backend root answers with a success status.
func (c *HTTPClient) Ping(ctx context.Context) error {
	err := c.do(ctx, request{method: http.MethodGet, path: "/", fallback: "ping failed"}, nil)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (c *HTTPClient) Register(ctx context.Context, in models.RegisterRequest) (*models.User, error) {
	r, err := c.jsonRequest(http.MethodPost, "/auth/register", in)
	if err != nil {
		return nil, err
	}
	r.auth = false
	r.fallback = "Registration failed"

	var u models.User
	if err := c.do(ctx, r, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	r := request{
		method:      http.MethodPost,
		path:        "/auth/jwt/login",
		body:        []byte(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
		fallback:    "Login failed",
	}

	var lr models.LoginResponse
	if err := c.do(ctx, r, &lr); err != nil {
		return nil, err
	}
	if lr.AccessToken == "" {
		return nil, &RequestError{StatusCode: http.StatusOK, Message: "Login failed: empty access token"}
	}
	return &lr, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	r := request{method: http.MethodGet, path: "/auth/me", auth: true, fallback: "Failed to get user"}

	var u models.User
	if err := c.do(ctx, r, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListApplications(ctx context.Context) ([]models.Application, error) {
	r := request{method: http.MethodGet, path: "/applications/", auth: true, fallback: "Failed to load applications"}

	var list []models.Application
	if err := c.do(ctx, r, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Application{}
	}
	return list, nil
}

func (c *HTTPClient) CreateApplication(ctx context.Context, payload *models.Payload) (*models.Application, error) {
	if payload.Len() == 0 {
		return nil, ValidationError("empty application payload")
	}
	r, err := c.jsonRequest(http.MethodPost, "/applications/", payload)
	if err != nil {
		return nil, err
	}
	r.fallback = "Failed to create application"

	var a models.Application
	if err := c.do(ctx, r, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *HTTPClient) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	if id <= 0 {
		return nil, ValidationError("invalid application id %d", id)
	}
	r := request{method: http.MethodGet, path: applicationPath(id), auth: true, record: true, fallback: "Failed to load application"}

	var a models.Application
	if err := c.do(ctx, r, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *HTTPClient) UpdateApplication(ctx context.Context, id int64, payload *models.Payload) (*models.Application, error) {
	if id <= 0 {
		return nil, ValidationError("invalid application id %d", id)
	}
	if payload == nil {
		payload = models.NewPayload()
	}
	r, err := c.jsonRequest(http.MethodPut, applicationPath(id), payload)
	if err != nil {
		return nil, err
	}
	r.record = true
	r.fallback = "Failed to update application"

	var a models.Application
	if err := c.do(ctx, r, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *HTTPClient) DeleteApplication(ctx context.Context, id int64) error {
	if id <= 0 {
		return ValidationError("invalid application id %d", id)
	}
	r := request{method: http.MethodDelete, path: applicationPath(id), auth: true, record: true, fallback: "Failed to delete application"}
	return c.do(ctx, r, nil)
}
