// Package directory is an in-memory implementation of the remote
// user-directory API the console talks to. It backs the directory-stub
// binary and the client's end-to-end tests.
package directory

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Directory holds the users and serves them over HTTP.
type Directory struct {
	mu          sync.RWMutex
	users       []models.User
	perPage     int
	token       string
	requireAuth bool
	log         logging.Logger
}

type Option func(*Directory)

// WithUsers replaces the seed data.
func WithUsers(users []models.User) Option {
	return func(d *Directory) { d.users = slices.Clone(users) }
}

func WithPerPage(n int) Option {
	return func(d *Directory) {
		if n > 0 {
			d.perPage = n
		}
	}
}

// WithRequireAuth makes the /users routes reject requests that do not carry
// the issued token as a bearer credential.
func WithRequireAuth(on bool) Option {
	return func(d *Directory) { d.requireAuth = on }
}

// WithToken sets the token handed out by /login and expected by the guard.
func WithToken(token string) Option {
	return func(d *Directory) {
		if token != "" {
			d.token = token
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(d *Directory) { d.log = l }
}

func New(opts ...Option) *Directory {
	d := &Directory{
		users:   SeedUsers(),
		perPage: DefaultPerPage,
		token:   DefaultToken,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Routes returns the API router. Mount it under the base path the console is
// configured with (e.g. "/api").
func (d *Directory) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(d.logRequests)

	r.Post("/login", d.Login)

	r.Route("/users", func(r chi.Router) {
		r.Use(d.authenticate)
		r.Get("/", d.List)
		r.Get("/{id}", d.Get)
		r.Put("/{id}", d.Update)
		r.Delete("/{id}", d.Delete)
	})

	return r
}

// Users returns a copy of the current data set.
func (d *Directory) Users() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.users)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (d *Directory) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		d.log.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", r.Header.Get("X-Request-ID"),
		)
	})
}

func (d *Directory) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if d.requireAuth {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token != d.token {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /login.
func (d *Directory) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.Email == "":
		writeError(w, http.StatusBadRequest, "Missing email or username")
		return
	case req.Password == "":
		writeError(w, http.StatusBadRequest, "Missing password")
		return
	}

	d.mu.RLock()
	_, found := d.find(req.Email)
	d.mu.RUnlock()
	if !found {
		writeError(w, http.StatusBadRequest, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": d.token})
}

// List handles GET /users?page=N. Pages past the end are empty.
func (d *Directory) List(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	d.mu.RLock()
	total := len(d.users)
	perPage := d.perPage
	totalPages := (total + perPage - 1) / perPage
	items := []models.User{}
	// page is checked against totalPages first so the offset cannot overflow
	if page <= totalPages {
		from := (page - 1) * perPage
		to := min(from+perPage, total)
		items = slices.Clone(d.users[from:to])
	}
	d.mu.RUnlock()

	writeJSON(w, http.StatusOK, models.Page{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		Users:      items,
	})
}

// Get handles GET /users/{id}.
func (d *Directory) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	d.mu.RLock()
	i := d.indexOf(id)
	var u models.User
	if i >= 0 {
		u = d.users[i]
	}
	d.mu.RUnlock()

	if i < 0 {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, map[string]models.User{"data": u})
}

// Update handles PUT /users/{id}. The stored user is changed and the edited
// fields are echoed back with an updatedAt stamp.
func (d *Directory) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var draft models.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := draft.Validate(); errs != nil {
		for _, field := range []string{models.FieldFirstName, models.FieldLastName, models.FieldEmail} {
			if msg, bad := errs[field]; bad {
				writeError(w, http.StatusBadRequest, msg)
				return
			}
		}
	}

	d.mu.Lock()
	i := d.indexOf(id)
	if i >= 0 {
		d.users[i].FirstName = draft.FirstName
		d.users[i].LastName = draft.LastName
		d.users[i].Email = draft.Email
	}
	d.mu.Unlock()

	if i < 0 {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"first_name": draft.FirstName,
		"last_name":  draft.LastName,
		"email":      draft.Email,
		"updatedAt":  time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Delete handles DELETE /users/{id}.
func (d *Directory) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	d.mu.Lock()
	i := d.indexOf(id)
	if i >= 0 {
		d.users = slices.Delete(d.users, i, i+1)
	}
	d.mu.Unlock()

	if i < 0 {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// indexOf must be called with d.mu held.
func (d *Directory) indexOf(id int) int {
	return slices.IndexFunc(d.users, func(u models.User) bool { return u.ID == id })
}

// find must be called with d.mu held.
func (d *Directory) find(email string) (models.User, bool) {
	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
