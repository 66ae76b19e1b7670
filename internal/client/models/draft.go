package models

import (
	"regexp"
	"strings"
)

// Field names used as keys in FieldErrors. They match the JSON names of the
// corresponding User fields.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
)

var emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)

// IsEmail reports whether s looks like local@domain.tld.
func IsEmail(s string) bool {
	return emailShape.MatchString(s)
}

// FieldErrors maps a field name to a human-readable message.
type FieldErrors map[string]string

// Empty reports whether no field has an error.
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

// Draft is the in-progress copy of a user's editable fields.
type Draft struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Set updates a field by name. Unknown names are ignored and reported false.
func (d *Draft) Set(field, value string) bool {
	switch field {
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldEmail:
		d.Email = value
	default:
		return false
	}
	return true
}

// Get returns the value of a field by name.
func (d Draft) Get(field string) string {
	switch field {
	case FieldFirstName:
		return d.FirstName
	case FieldLastName:
		return d.LastName
	case FieldEmail:
		return d.Email
	}
	return ""
}

// Validate checks the draft before submission. A nil result means the draft
// may be sent.
func (d Draft) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(d.FirstName) == "" {
		errs[FieldFirstName] = "First name is required"
	}
	if strings.TrimSpace(d.LastName) == "" {
		errs[FieldLastName] = "Last name is required"
	}
	switch {
	case strings.TrimSpace(d.Email) == "":
		errs[FieldEmail] = "Email is required"
	case !IsEmail(d.Email):
		errs[FieldEmail] = "Email is invalid"
	}

	if errs.Empty() {
		return nil
	}
	return errs
}
