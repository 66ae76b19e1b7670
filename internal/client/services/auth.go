// Package services contains the console's controllers: the auth flow, the
// user collection and the user editor. They own view state, call the remote
// API through client.Client and report outcomes through a notify.Notifier.
// No error escapes them as a fault; every failure leaves a stable state.
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/notify"
	"github.com/dmitrijs2005/userdesk/internal/client/session"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Guard reports whether protected views may be used.
type Guard interface {
	IsAuthenticated() bool
}

// AuthService is the two-state auth flow. The session store is the single
// source of truth for the token; the service mirrors its presence as State.
type AuthService struct {
	client   client.Client
	store    session.Store
	notifier notify.Notifier
	log      logging.Logger

	mu    sync.RWMutex
	state State
	email string
}

func NewAuthService(c client.Client, store session.Store, n notify.Notifier, log logging.Logger) *AuthService {
	return &AuthService{
		client:   c,
		store:    store,
		notifier: n,
		log:      log.With("component", "auth"),
		state:    StateAnonymous,
	}
}

// Restore derives the initial state from the session store.
func (a *AuthService) Restore(ctx context.Context) error {
	_, ok, err := a.store.Read(ctx)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}

	email := ""
	if ok {
		if email, err = a.store.Identity(ctx); err != nil {
			return fmt.Errorf("read session identity: %w", err)
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if ok {
		a.state = StateAuthenticated
		a.email = email
	} else {
		a.state = StateAnonymous
		a.email = ""
	}
	a.log.Debug(ctx, "session restored", "state", a.state)
	return nil
}

func (a *AuthService) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *AuthService) IsAuthenticated() bool {
	return a.State() == StateAuthenticated
}

// Email is the identity of the current session, or "".
func (a *AuthService) Email() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.email
}

// ValidateCredentials checks the login form before anything is sent.
func ValidateCredentials(email, password string) models.FieldErrors {
	errs := models.FieldErrors{}
	switch {
	case strings.TrimSpace(email) == "":
		errs[models.FieldEmail] = "Email is required"
	case !models.IsEmail(email):
		errs[models.FieldEmail] = "Email is invalid"
	}
	if strings.TrimSpace(password) == "" {
		errs["password"] = "Password is required"
	}
	if errs.Empty() {
		return nil
	}
	return errs
}

// Login exchanges credentials for a token and stores it. On any failure the
// state stays Anonymous.
func (a *AuthService) Login(ctx context.Context, email, password string) error {
	if errs := ValidateCredentials(email, password); errs != nil {
		return &ValidationError{Fields: errs}
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "email", email, "error", err)
		a.notifier.Error("Invalid email or password")
		return fmt.Errorf("login: %w", err)
	}

	if err := a.store.Write(ctx, token, email); err != nil {
		a.log.Error(ctx, "session write failed", "error", err)
		a.notifier.Error("Could not save the session")
		return fmt.Errorf("save session: %w", err)
	}

	a.mu.Lock()
	a.state = StateAuthenticated
	a.email = email
	a.mu.Unlock()

	a.log.Info(ctx, "logged in", "email", email)
	a.notifier.Success("Login successful")
	return nil
}

// Logout clears the session. The in-memory state becomes Anonymous even if
// the store could not be cleared. Calling it while anonymous is harmless.
func (a *AuthService) Logout(ctx context.Context) error {
	err := a.store.Clear(ctx)

	a.mu.Lock()
	a.state = StateAnonymous
	a.email = ""
	a.mu.Unlock()

	if err != nil {
		a.log.Error(ctx, "session clear failed", "error", err)
		a.notifier.Error("Could not clear the session")
		return fmt.Errorf("clear session: %w", err)
	}

	a.log.Info(ctx, "logged out")
	a.notifier.Info("You have been logged out")
	return nil
}
