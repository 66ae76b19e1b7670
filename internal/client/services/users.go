package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/notify"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

const MsgLoadFailed = "Failed to load users. Please try again."

// Snapshot is a copy of the collection's view state.
type Snapshot struct {
	// Page is the most recently fetched page, including its items.
	Page     models.Page
	Filtered []models.User
	Query    string
	Loading  bool
	Err      string
	// Stale is set after a local delete: Total and TotalPages still describe
	// the server state as of the last load.
	Stale bool
}

// UserCollection holds one page of users and a filtered view of it.
//
// Every Load carries a sequence number; a response that arrives after a newer
// Load was issued is dropped with ErrSuperseded, so the held page always
// reflects the latest request rather than the latest response.
type UserCollection struct {
	client   client.Client
	guard    Guard
	notifier notify.Notifier
	log      logging.Logger

	mu       sync.Mutex
	seq      uint64
	current  int
	page     models.Page
	filtered []models.User
	query    string
	loading  bool
	errMsg   string
	stale    bool
}

func NewUserCollection(c client.Client, guard Guard, n notify.Notifier, log logging.Logger) *UserCollection {
	return &UserCollection{
		client:   c,
		guard:    guard,
		notifier: n,
		log:      log.With("component", "users"),
		current:  1,
	}
}

// Load fetches page n and replaces the held page. It makes no remote call
// while anonymous.
func (c *UserCollection) Load(ctx context.Context, n int) error {
	if !c.guard.IsAuthenticated() {
		return client.ErrAuth
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.current = n
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	page, err := c.client.ListUsers(ctx, n)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.log.Debug(ctx, "dropping superseded page", "page", n, "seq", seq, "latest", c.seq)
		return ErrSuperseded
	}
	c.loading = false

	if err != nil {
		c.errMsg = MsgLoadFailed
		c.log.Warn(ctx, "load users failed", "page", n, "error", err)
		c.notifier.Error("Failed to load users")
		return fmt.Errorf("load users page %d: %w", n, err)
	}

	c.page = *page
	c.page.Users = slices.Clone(page.Users)
	c.filtered = slices.Clone(page.Users)
	c.query = ""
	c.stale = false
	c.log.Debug(ctx, "users loaded", "page", page.Page, "count", len(page.Users), "total", page.Total)
	return nil
}

// ChangePage loads page n. Callers keep n within [1, TotalPages].
func (c *UserCollection) ChangePage(ctx context.Context, n int) error {
	return c.Load(ctx, n)
}

// Refresh reloads the most recently requested page.
func (c *UserCollection) Refresh(ctx context.Context) error {
	c.mu.Lock()
	n := c.current
	c.mu.Unlock()
	return c.Load(ctx, n)
}

// Search recomputes the filtered view from the held page and returns it.
func (c *UserCollection) Search(query string) []models.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.query = query
	c.filtered = Filter(c.page.Users, query)
	return slices.Clone(c.filtered)
}

// Filter returns the users whose first name, last name or email contains
// query, ignoring case. A blank query returns all users. Order is kept.
func Filter(users []models.User, query string) []models.User {
	if strings.TrimSpace(query) == "" {
		return slices.Clone(users)
	}

	q := strings.ToLower(query)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FirstName), q) ||
			strings.Contains(strings.ToLower(u.LastName), q) ||
			strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, u)
		}
	}
	return out
}

// Delete removes the user remotely and, on success, from the held page and
// the filtered view. Totals are left as last loaded.
func (c *UserCollection) Delete(ctx context.Context, id int) error {
	if !c.guard.IsAuthenticated() {
		return client.ErrAuth
	}

	if err := c.client.DeleteUser(ctx, id); err != nil {
		c.log.Warn(ctx, "delete user failed", "user_id", id, "error", err)
		c.notifier.Error("Failed to delete user")
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	byID := func(u models.User) bool { return u.ID == id }

	c.mu.Lock()
	c.page.Users = slices.DeleteFunc(c.page.Users, byID)
	c.filtered = slices.DeleteFunc(c.filtered, byID)
	c.stale = true
	c.mu.Unlock()

	c.log.Info(ctx, "user deleted", "user_id", id)
	c.notifier.Success("User deleted successfully")
	return nil
}

func (c *UserCollection) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	page := c.page
	page.Users = slices.Clone(c.page.Users)
	return Snapshot{
		Page:     page,
		Filtered: slices.Clone(c.filtered),
		Query:    c.query,
		Loading:  c.loading,
		Err:      c.errMsg,
		Stale:    c.stale,
	}
}

// CurrentPage is the most recently requested page number.
func (c *UserCollection) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
