package cli

import (
	"context"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/router"
)

// Open goes to the path in args[0], applying the auth guard.
func (a *App) Open(ctx context.Context, args []string) error {
	return a.navigate(ctx, args[0])
}

func (a *App) navigate(ctx context.Context, path string) error {
	r := router.Resolve(path, a.isLoggedIn())
	if r.Redirected && r.Name == router.Entry {
		a.println("Please log in to continue.")
	}

	if r.Name != router.Edit {
		a.editor.Reset()
	}
	if r.Name != router.NotFound {
		a.setRoute(r)
	}

	switch r.Name {
	case router.Entry:
		a.println("Type 'login' to sign in.")
		return nil

	case router.Collection:
		return a.showPage(ctx, a.users.CurrentPage())

	case router.Edit:
		return a.editUser(ctx, r.ID)

	default:
		a.println("404: page not found:", r.Path)
		a.println("Type 'open /' to go back.")
		return nil
	}
}

// requireLogin reports client.ErrAuth and returns to the entry route while
// anonymous.
func (a *App) requireLogin() error {
	if a.isLoggedIn() {
		return nil
	}
	a.println("Please log in first.")
	a.setRoute(router.Match(router.PathEntry))
	return client.ErrAuth
}
