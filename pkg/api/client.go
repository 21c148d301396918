package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formflow/pkg/openapi"
)

// RequestIDHeader carries a per-request identifier.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 4 << 10

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client. Its timeout governs every call.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout sets the timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http = &http.Client{Timeout: timeout}
		}
	}
}

// WithTokenSource supplies the bearer token attached to each request. An
// empty token sends no Authorization header.
func WithTokenSource(fn func() string) Option {
	return func(c *Client) {
		c.token = fn
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRequestIDs overrides the request id generator.
func WithRequestIDs(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.requestID = fn
		}
	}
}

// Client talks to the booking API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	registry  *openapi.Registry
	token     func() string
	requestID func() string
	logger    *slog.Logger
}

// New builds a client for baseURL resolving endpoints through registry.
func New(baseURL string, registry *openapi.Registry, options ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBaseURL, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrBaseURL, baseURL)
	}
	if registry == nil {
		return nil, errors.New("api: operation registry is required")
	}

	c := &Client{
		baseURL:   parsed,
		http:      &http.Client{Timeout: 30 * time.Second},
		registry:  registry,
		requestID: uuid.NewString,
		logger:    slog.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// CreateSession authenticates creds and returns the user and token.
func (c *Client) CreateSession(ctx context.Context, creds Credentials) (Auth, error) {
	var out Auth
	err := c.sendJSON(ctx, openapi.OperationCreateSession, creds, &out)
	return out, err
}

// UpdateProfile sends payload as the profile update and returns the updated
// user.
func (c *Client) UpdateProfile(ctx context.Context, payload Payload) (User, error) {
	var out User
	err := c.sendJSON(ctx, openapi.OperationUpdateProfile, payload, &out)
	return out, err
}

// UploadAvatar sends file as the multipart "avatar" part and returns the
// updated user.
func (c *Client) UploadAvatar(ctx context.Context, filename string, file io.Reader) (User, error) {
	if file == nil {
		return User{}, errors.New("api: avatar file is required")
	}
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("avatar", filename)
	if err != nil {
		return User{}, fmt.Errorf("api: avatar form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return User{}, fmt.Errorf("api: read avatar: %w", err)
	}
	if err := writer.Close(); err != nil {
		return User{}, fmt.Errorf("api: avatar form: %w", err)
	}

	var out User
	err = c.send(ctx, openapi.OperationUpdateAvatar, writer.FormDataContentType(), &body, &out)
	return out, err
}

func (c *Client) sendJSON(ctx context.Context, operationID string, in, out any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("api: encode %s: %w", operationID, err)
	}
	return c.send(ctx, operationID, "application/json", bytes.NewReader(raw), out)
}

func (c *Client) send(ctx context.Context, operationID, contentType string, body io.Reader, out any) error {
	op, err := c.registry.Operation(operationID)
	if err != nil {
		return err
	}

	if op.ContentType != "" && strings.HasPrefix(contentType, "multipart/") != op.IsMultipart() {
		return fmt.Errorf("%w: %s declares %s", ErrContentType, operationID, op.ContentType)
	}

	endpoint := c.baseURL.JoinPath(op.Path)
	req, err := http.NewRequestWithContext(ctx, op.Method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("api: request %s: %w", operationID, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)
	requestID := c.requestID()
	req.Header.Set(RequestIDHeader, requestID)
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s: %w", operationID, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.Debug("api request",
		"operation", operationID,
		"method", op.Method,
		"path", op.Path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{
			Code:    resp.StatusCode,
			Status:  resp.Status,
			Message: errorMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s: %w", operationID, err)
	}
	return nil
}

// errorMessage extracts {"message": "..."} from an error body, the shape the
// booking API uses for failures.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return ""
}
