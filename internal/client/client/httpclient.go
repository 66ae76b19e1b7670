package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/google/uuid"
)

const (
	HeaderAPIKey    = "x-api-key"
	HeaderRequestID = "X-Request-ID"

	// maxErrorBody caps how much of a failed response is read for its message.
	maxErrorBody = 4 << 10
)

// tokenTransport attaches the session token and the optional API key to
// every outbound request.
type tokenTransport struct {
	base   http.RoundTripper
	tokens TokenSource
	apiKey string
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	if t.tokens != nil {
		token, ok, err := t.tokens.Read(req.Context())
		if err != nil {
			return nil, fmt.Errorf("read session token: %w", err)
		}
		if ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if t.apiKey != "" {
		req.Header.Set(HeaderAPIKey, t.apiKey)
	}

	return t.base.RoundTrip(req)
}

// HTTPClient implements Client over the directory's HTTP/JSON API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

type Option func(*options)

type options struct {
	apiKey    string
	transport http.RoundTripper
	logger    logging.Logger
}

// WithAPIKey sends key in the x-api-key header of every request.
func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = key }
}

// WithTransport replaces http.DefaultTransport as the underlying transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. "https://reqres.in/api"). tokens may be nil.
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("empty API base URL")
	}

	o := options{transport: http.DefaultTransport, logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &tokenTransport{base: o.transport, tokens: tokens, apiKey: o.apiKey},
		},
		log: o.logger,
	}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type userResponse struct {
	Data models.User `json:"data"`
}

type updateResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Login exchanges credentials for a session token. Any rejection, whatever
// its status, is reported as ErrAuth.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var res loginResponse
	err := c.do(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &res)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status != 0 {
			apiErr.Kind = ErrAuth
		}
		return "", err
	}
	if res.Token == "" {
		return "", &APIError{Kind: ErrAuth, Message: "empty token in login response"}
	}
	return res.Token, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, page int) (*models.Page, error) {
	var res models.Page
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users?page=%d", page), nil, &res); err != nil {
		return nil, err
	}
	if res.Users == nil {
		res.Users = []models.User{}
	}
	return &res, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int) (*models.User, error) {
	var res userResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// UpdateUser sends the draft and returns the user as echoed by the remote
// side. The echo carries only the edited fields, so Avatar is left empty.
func (c *HTTPClient) UpdateUser(ctx context.Context, id int, draft models.Draft) (*models.User, error) {
	var res updateResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), draft, &res); err != nil {
		return nil, err
	}
	return &models.User{ID: id, FirstName: res.FirstName, LastName: res.LastName, Email: res.Email}, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)

	log := c.log.With("method", method, "path", path, "request_id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "api call failed", "error", err)
		return &APIError{Kind: ErrNetwork, Cause: err}
	}
	defer resp.Body.Close()

	log.Debug(ctx, "api call", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Kind: ErrNetwork, Status: resp.StatusCode, Message: "malformed response body", Cause: err}
	}
	return nil
}

func statusError(resp *http.Response) error {
	apiErr := &APIError{
		Kind:    kindForStatus(resp.StatusCode),
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var er errorResponse
	if json.Unmarshal(b, &er) == nil && er.Error != "" {
		apiErr.Message = er.Error
	}
	return apiErr
}
