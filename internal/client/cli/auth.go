package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userdesk/internal/client/router"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
)

// Login prompts for email and password and authenticates. On success the
// console moves to the user list.
//
// Field problems found before any remote call are printed next to their
// field; remote rejections are reported by the auth service's notifier.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.println("Already logged in as", a.auth.Email())
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			for _, field := range []string{"email", "password"} {
				if msg, ok := ve.Fields[field]; ok {
					a.println(errorStyle.Render("  " + msg))
				}
			}
		}
		return err
	}

	return a.navigate(ctx, router.PathCollection)
}

// Logout clears the session and returns to the entry route. Pending search
// input and any open edit are dropped.
func (a *App) Logout(ctx context.Context) error {
	a.search.Stop()
	a.editor.Reset()
	err := a.auth.Logout(ctx)
	a.setRoute(router.Match(router.PathEntry))
	return err
}
