package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

var (
	// ErrSuperseded is returned by a load whose response arrived after a
	// newer load had been issued. Its result is dropped.
	ErrSuperseded = errors.New("response superseded by a newer request")

	// ErrNotReady is returned when an edit action is attempted outside the
	// Ready state.
	ErrNotReady = errors.New("editor is not ready")

	ErrUnknownField = errors.New("unknown field")
)

// ValidationError carries per-field messages from local validation. It
// matches client.ErrValidation with errors.Is.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return client.ErrValidation
}
