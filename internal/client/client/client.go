package client

import (
	"context"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// Client is the remote user-directory API.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	ListUsers(ctx context.Context, page int) (*models.Page, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	UpdateUser(ctx context.Context, id int, draft models.Draft) (*models.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// TokenSource yields the current session token. ok=false means there is none.
// session.Store satisfies it.
type TokenSource interface {
	Read(ctx context.Context) (token string, ok bool, err error)
}
