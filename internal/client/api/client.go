// Package api is the REST gateway to the Campusfind portal: one method per
// server endpoint. Each method builds a JSON request, sends it, and decodes
// the response envelope. Authorization, signature verification, and
// persistence all live server-side; this layer only carries identity in a
// header and reports what the server said.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"campusfind/internal/client/models"
	"campusfind/internal/common"
	"campusfind/internal/logging"

	"github.com/google/uuid"
)

// Client defines the portal endpoints the application services need.
//
// Contract:
//   - Methods return *Error for non-2xx responses, with the server's
//     message attached when one was sent.
//   - Transport failures are wrapped in ErrUnavailable.
//   - SetIdentity installs the username attached as X-User-ID on every
//     subsequent call; register/login/verify-mfa work without it.
//
// All methods honor context cancellation.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (string, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	VerifyMFA(ctx context.Context, username, code string) (models.User, error)
	ForgotPassword(ctx context.Context, email string) (*RecoveryResult, error)

	ListItems(ctx context.Context) ([]models.Item, error)
	CreateItem(ctx context.Context, req CreateItemRequest) (string, error)
	UpdateItemStatus(ctx context.Context, id int64, status models.ItemStatus) (string, error)
	DeleteItem(ctx context.Context, id int64) (string, error)

	ListMessages(ctx context.Context) ([]models.Message, error)
	SendMessage(ctx context.Context, req SendMessageRequest) (string, error)

	ACM(ctx context.Context) (models.ACM, error)

	SetIdentity(username string)
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// LoginResult is the body of a successful POST /api/login.
//
// MFACode carries the simulated second factor: the server returns it
// in-band precisely because this is a simulation, not a real out-of-band
// channel. The client shows it in a notification.
type LoginResult struct {
	Status   string `json:"status"`
	Username string `json:"username"`
	Message  string `json:"message"`
	MFACode  string `json:"mfa_code_simulation"`
}

// MFARequired reports whether the password step succeeded and an MFA code
// is now expected.
func (r *LoginResult) MFARequired() bool { return r.Status == "mfa_required" }

// RecoveryResult is the body of a successful POST /api/forgot-password.
type RecoveryResult struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	SimulationCode string `json:"simulation_code"`
}

// CreateItemRequest is the body of POST /api/items.
type CreateItemRequest struct {
	ItemName    string          `json:"item_name"`
	ItemType    models.ItemType `json:"item_type"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
}

// SendMessageRequest is the body of POST /api/messages. ReceiverID is empty
// for claims (the server routes them to the item's poster) and set for
// replies.
type SendMessageRequest struct {
	ItemID     int64  `json:"item_id"`
	Content    string `json:"content"`
	ReceiverID string `json:"receiver_id,omitempty"`
}

// HTTPClient is the concrete Client over net/http. Like the rest of the
// client it holds no secret: identity is just the username the server
// confirmed at the MFA step.
type HTTPClient struct {
	baseURL  string
	httpc    *http.Client
	identity string
	log      logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient constructs a gateway for the portal at baseURL (no trailing
// slash necessary) with a per-request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &HTTPClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetIdentity installs the username sent as X-User-ID on authenticated
// calls. An empty string removes it (logout).
func (c *HTTPClient) SetIdentity(username string) {
	c.identity = username
}

// envelope holds the fields shared by every portal response.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// do sends one JSON request and decodes the response into out (when out is
// non-nil). Non-2xx responses become *Error carrying the server message.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if c.identity != "" {
		req.Header.Set(common.IdentityHeaderName, c.identity)
	}

	c.log.Debug(ctx, "request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		_ = json.Unmarshal(data, &env)
		c.log.Debug(ctx, "request failed", "path", path, "status", resp.StatusCode, "message", env.Message)
		return &Error{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding %s response: %w", path, err)
		}
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var env envelope
	if err := c.do(ctx, http.MethodPost, "/api/register", req, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) VerifyMFA(ctx context.Context, username, code string) (models.User, error) {
	body := map[string]string{"username": username, "mfa_code": code}
	var res struct {
		Status string      `json:"status"`
		User   models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/verify-mfa", body, &res); err != nil {
		return models.User{}, err
	}
	return res.User, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (*RecoveryResult, error) {
	body := map[string]string{"email": email}
	var res RecoveryResult
	if err := c.do(ctx, http.MethodPost, "/api/forgot-password", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ListItems(ctx context.Context) ([]models.Item, error) {
	var res struct {
		Items []models.Item `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/items", nil, &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

func (c *HTTPClient) CreateItem(ctx context.Context, req CreateItemRequest) (string, error) {
	var env envelope
	if err := c.do(ctx, http.MethodPost, "/api/items", req, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) UpdateItemStatus(ctx context.Context, id int64, status models.ItemStatus) (string, error) {
	body := map[string]models.ItemStatus{"status": status}
	var env envelope
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/items/%d", id), body, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) DeleteItem(ctx context.Context, id int64) (string, error) {
	var env envelope
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/items/%d", id), nil, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) ListMessages(ctx context.Context) ([]models.Message, error) {
	var res struct {
		Messages []models.Message `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/messages", nil, &res); err != nil {
		return nil, err
	}
	return res.Messages, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, req SendMessageRequest) (string, error) {
	var env envelope
	if err := c.do(ctx, http.MethodPost, "/api/messages", req, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) ACM(ctx context.Context) (models.ACM, error) {
	var res models.ACM
	if err := c.do(ctx, http.MethodGet, "/api/acm", nil, &res); err != nil {
		return models.ACM{}, err
	}
	return res, nil
}
