package services

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/notify"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

type EditState string

const (
	EditIdle    EditState = "idle"
	EditLoading EditState = "loading"
	EditReady   EditState = "ready"
	EditSaving  EditState = "saving"
	EditSuccess EditState = "success"
	// EditFailed is terminal: the user could not be fetched.
	EditFailed EditState = "failed"
)

const (
	MsgLoadUserFailed   = "Failed to load user details"
	MsgUpdateUserFailed = "Failed to update user"
)

// UserEditor runs one fetch-then-submit round trip for a single user:
// Loading -> Ready -> Saving -> Success, or back to Ready with an error.
type UserEditor struct {
	client   client.Client
	guard    Guard
	notifier notify.Notifier
	log      logging.Logger

	mu        sync.Mutex
	state     EditState
	id        int
	user      models.User
	draft     models.Draft
	fieldErrs models.FieldErrors
	errMsg    string
	err       error
}

func NewUserEditor(c client.Client, guard Guard, n notify.Notifier, log logging.Logger) *UserEditor {
	return &UserEditor{
		client:   c,
		guard:    guard,
		notifier: n,
		log:      log.With("component", "editor"),
		state:    EditIdle,
	}
}

// Open fetches user id and prepares a draft from it. A fetch failure leaves
// the editor in EditFailed; Err tells not-found from other failures.
func (e *UserEditor) Open(ctx context.Context, id int) error {
	if !e.guard.IsAuthenticated() {
		return client.ErrAuth
	}

	e.mu.Lock()
	e.state = EditLoading
	e.id = id
	e.user = models.User{}
	e.draft = models.Draft{}
	e.fieldErrs = nil
	e.errMsg = ""
	e.err = nil
	e.mu.Unlock()

	u, err := e.client.GetUser(ctx, id)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		e.state = EditFailed
		e.errMsg = MsgLoadUserFailed
		e.err = err
		e.log.Warn(ctx, "load user failed", "user_id", id, "error", err)
		e.notifier.Error(MsgLoadUserFailed)
		return fmt.Errorf("get user %d: %w", id, err)
	}

	e.user = *u
	e.draft = u.Draft()
	e.state = EditReady
	return nil
}

// SetField edits the draft and clears any error attached to that field.
func (e *UserEditor) SetField(field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != EditReady {
		return ErrNotReady
	}
	if !e.draft.Set(field, value) {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	delete(e.fieldErrs, field)
	return nil
}

// Submit validates the draft and sends it. Invalid drafts return a
// *ValidationError without any remote call. A remote failure returns the
// editor to Ready with the entered values kept.
func (e *UserEditor) Submit(ctx context.Context) error {
	e.mu.Lock()
	if e.state != EditReady {
		e.mu.Unlock()
		return ErrNotReady
	}
	if errs := e.draft.Validate(); errs != nil {
		e.fieldErrs = errs
		e.mu.Unlock()
		return &ValidationError{Fields: maps.Clone(errs)}
	}
	e.fieldErrs = nil
	e.errMsg = ""
	e.err = nil
	e.state = EditSaving
	id, draft := e.id, e.draft
	e.mu.Unlock()

	updated, err := e.client.UpdateUser(ctx, id, draft)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		e.state = EditReady
		e.errMsg = MsgUpdateUserFailed
		e.err = err
		e.log.Warn(ctx, "update user failed", "user_id", id, "error", err)
		e.notifier.Error(MsgUpdateUserFailed)
		return fmt.Errorf("update user %d: %w", id, err)
	}

	e.user.FirstName = updated.FirstName
	e.user.LastName = updated.LastName
	e.user.Email = updated.Email
	e.state = EditSuccess
	e.log.Info(ctx, "user updated", "user_id", id)
	e.notifier.Success("User updated successfully")
	return nil
}

// Reset discards the draft, as when navigating away.
func (e *UserEditor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = EditIdle
	e.id = 0
	e.user = models.User{}
	e.draft = models.Draft{}
	e.fieldErrs = nil
	e.errMsg = ""
	e.err = nil
}

func (e *UserEditor) State() EditState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *UserEditor) User() models.User {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.user
}

func (e *UserEditor) Draft() models.Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

func (e *UserEditor) FieldErrors() models.FieldErrors {
	e.mu.Lock()
	defer e.mu.Unlock()
	return maps.Clone(e.fieldErrs)
}

// Message is the user-visible error of the last failed step, or "".
func (e *UserEditor) Message() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errMsg
}

// Err is the underlying error of the last failed step.
func (e *UserEditor) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}
