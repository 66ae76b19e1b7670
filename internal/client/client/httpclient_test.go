package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/session"
	"github.com/dmitrijs2005/userdesk/internal/directory"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headerRecorder remembers the headers of the last request it saw.
type headerRecorder struct {
	mu   sync.Mutex
	last http.Header
}

func (h *headerRecorder) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		h.last = r.Header.Clone()
		h.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (h *headerRecorder) get(key string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last.Get(key)
}

func newTestServer(t *testing.T, opts ...directory.Option) (*directory.Directory, *headerRecorder, string) {
	t.Helper()
	dir := directory.New(opts...)
	rec := &headerRecorder{}

	r := chi.NewRouter()
	r.Use(rec.wrap)
	r.Mount("/api", dir.Routes())

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return dir, rec, srv.URL + "/api"
}

func newTestClient(t *testing.T, baseURL string, tokens TokenSource, opts ...Option) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(baseURL, tokens, opts...)
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_EmptyURL(t *testing.T) {
	_, err := NewHTTPClient("  ", nil)
	require.Error(t, err)
}

func TestLogin_Success(t *testing.T) {
	_, _, url := newTestServer(t)
	c := newTestClient(t, url, nil)

	token, err := c.Login(context.Background(), "eve.holt@reqres.in", "cityslicka")
	require.NoError(t, err)
	assert.Equal(t, directory.DefaultToken, token)
}

func TestLogin_RejectedIsAuthError(t *testing.T) {
	_, _, url := newTestServer(t)
	c := newTestClient(t, url, nil)

	_, err := c.Login(context.Background(), "eve.holt@reqres.in", "")
	require.ErrorIs(t, err, ErrAuth)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Missing password", apiErr.Message)
}

func TestBearerHeader_AttachedOnlyWithToken(t *testing.T) {
	_, hdr, url := newTestServer(t)
	store := session.NewMemoryStore()
	c := newTestClient(t, url, store, WithAPIKey("reqres-free-v1"))
	ctx := context.Background()

	_, err := c.ListUsers(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, hdr.get("Authorization"))
	assert.Equal(t, "reqres-free-v1", hdr.get(HeaderAPIKey))
	assert.NotEmpty(t, hdr.get(HeaderRequestID))
	assert.Equal(t, "application/json", hdr.get("Accept"))

	require.NoError(t, store.Write(ctx, "tok-123", "eve.holt@reqres.in"))
	_, err = c.ListUsers(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", hdr.get("Authorization"))
}

func TestListUsers(t *testing.T) {
	_, _, url := newTestServer(t)
	c := newTestClient(t, url, nil)

	page, err := c.ListUsers(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Users, 6)
	assert.Equal(t, "Michael", page.Users[0].FirstName)
}

func TestListUsers_RejectedTokenIsAuthError(t *testing.T) {
	_, _, url := newTestServer(t, directory.WithRequireAuth(true))
	store := session.NewMemoryStore()
	require.NoError(t, store.Write(context.Background(), "stale", "eve.holt@reqres.in"))
	c := newTestClient(t, url, store)

	_, err := c.ListUsers(context.Background(), 1)
	require.ErrorIs(t, err, ErrAuth)
}

func TestGetUser(t *testing.T) {
	_, _, url := newTestServer(t)
	c := newTestClient(t, url, nil)

	u, err := c.GetUser(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, models.User{
		ID:        4,
		Email:     "eve.holt@reqres.in",
		FirstName: "Eve",
		LastName:  "Holt",
		Avatar:    "https://reqres.in/img/faces/4-image.jpg",
	}, *u)

	_, err = c.GetUser(context.Background(), 23)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUser(t *testing.T) {
	dir, _, url := newTestServer(t)
	c := newTestClient(t, url, nil)

	u, err := c.UpdateUser(context.Background(), 2, models.Draft{FirstName: "Jane", LastName: "Doe", Email: "jane@doe.com"})
	require.NoError(t, err)
	assert.Equal(t, 2, u.ID)
	assert.Equal(t, "Jane", u.FirstName)
	assert.Equal(t, "jane@doe.com", dir.Users()[1].Email)

	_, err = c.UpdateUser(context.Background(), 2, models.Draft{FirstName: "Jane", LastName: "Doe", Email: "bad"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeleteUser(t *testing.T) {
	dir, _, url := newTestServer(t)
	c := newTestClient(t, url, nil)

	require.NoError(t, c.DeleteUser(context.Background(), 2))
	assert.Len(t, dir.Users(), 11)

	err := c.DeleteUser(context.Background(), 2)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url, nil)
	_, err := c.ListUsers(context.Background(), 1)
	require.ErrorIs(t, err, ErrNetwork)

	_, err = c.Login(context.Background(), "eve.holt@reqres.in", "x")
	require.ErrorIs(t, err, ErrNetwork)
}

func TestServerErrorIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL, nil)
	_, err := c.ListUsers(context.Background(), 1)
	require.ErrorIs(t, err, ErrNetwork)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestMalformedBodyIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL, nil)
	_, err := c.GetUser(context.Background(), 1)
	require.ErrorIs(t, err, ErrNetwork)
}

type failingTokens struct{}

func (failingTokens) Read(context.Context) (string, bool, error) {
	return "", false, errors.New("session db locked")
}

func TestTokenReadFailureIsSurfaced(t *testing.T) {
	_, _, url := newTestServer(t)
	c := newTestClient(t, url, failingTokens{})

	_, err := c.ListUsers(context.Background(), 1)
	require.ErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), "session db locked")
}

func TestKindForStatus(t *testing.T) {
	assert.Equal(t, ErrAuth, kindForStatus(http.StatusUnauthorized))
	assert.Equal(t, ErrAuth, kindForStatus(http.StatusForbidden))
	assert.Equal(t, ErrNotFound, kindForStatus(http.StatusNotFound))
	assert.Equal(t, ErrValidation, kindForStatus(http.StatusUnprocessableEntity))
	assert.Equal(t, ErrNetwork, kindForStatus(http.StatusInternalServerError))
}
