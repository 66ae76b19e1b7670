// Package models defines client-side data models used by the userdesk console.
package models

import "fmt"

// User is a directory record as served by the remote API. Identity is ID.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// FullName joins first and last name with a single space.
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// Draft returns an editable copy of the user's mutable fields.
func (u User) Draft() Draft {
	return Draft{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

// Page is one batch of users plus pagination metadata.
type Page struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Users      []User `json:"data"`
}
