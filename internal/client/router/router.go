// Package router maps console paths to views and applies the auth guard.
// Resolving a path never touches the network.
package router

import (
	"fmt"
	"strconv"
	"strings"
)

type Name string

const (
	Entry      Name = "entry"
	Collection Name = "collection"
	Edit       Name = "edit"
	NotFound   Name = "not-found"
)

const (
	PathEntry      = "/"
	PathCollection = "/users"
	editPrefix     = "/users/edit/"
)

// Route is the outcome of resolving a path. Redirected is set when the guard
// replaced the requested route.
type Route struct {
	Name       Name
	Path       string
	ID         int
	Redirected bool
}

// Protected reports whether the route needs an authenticated session.
func (r Route) Protected() bool {
	return r.Name == Collection || r.Name == Edit
}

// EditPath returns the path of the edit view for user id.
func EditPath(id int) string {
	return editPrefix + strconv.Itoa(id)
}

// Match resolves path without applying the guard.
func Match(path string) Route {
	p := strings.TrimSpace(path)
	if p == "" {
		p = PathEntry
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}

	switch {
	case p == PathEntry:
		return Route{Name: Entry, Path: PathEntry}
	case p == PathCollection:
		return Route{Name: Collection, Path: PathCollection}
	case strings.HasPrefix(p, editPrefix):
		id, err := strconv.Atoi(strings.TrimPrefix(p, editPrefix))
		if err != nil || id <= 0 {
			return Route{Name: NotFound, Path: p}
		}
		return Route{Name: Edit, Path: EditPath(id), ID: id}
	}
	return Route{Name: NotFound, Path: p}
}

// Resolve matches path and applies the guard: anonymous access to a protected
// route lands on the entry route, and an authenticated session asking for the
// entry route lands on the collection.
func Resolve(path string, authenticated bool) Route {
	r := Match(path)

	switch {
	case r.Protected() && !authenticated:
		return Route{Name: Entry, Path: PathEntry, Redirected: true}
	case r.Name == Entry && authenticated:
		return Route{Name: Collection, Path: PathCollection, Redirected: true}
	}
	return r
}

func (r Route) String() string {
	if r.Name == Edit {
		return fmt.Sprintf("%s(%d)", r.Name, r.ID)
	}
	return string(r.Name)
}
