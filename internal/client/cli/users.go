package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userdesk/internal/client/router"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
)

var errBadArgument = errors.New("bad argument")

func parsePositive(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: invalid %s %q", errBadArgument, what, s)
	}
	return n, nil
}

// List shows page args[0], or the current page when no argument is given.
// Page numbers outside the known range are refused before any request.
func (a *App) List(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	n := a.users.CurrentPage()
	if len(args) > 0 {
		var err error
		if n, err = parsePositive(args[0], "page"); err != nil {
			a.println(err.Error())
			return err
		}
	}
	return a.changePage(ctx, n)
}

func (a *App) Next(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	return a.changePage(ctx, a.users.CurrentPage()+1)
}

func (a *App) Prev(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	return a.changePage(ctx, a.users.CurrentPage()-1)
}

func (a *App) changePage(ctx context.Context, n int) error {
	total := a.users.Snapshot().Page.TotalPages
	if n < 1 || (total > 0 && n > total) {
		err := fmt.Errorf("%w: no page %d", errBadArgument, n)
		a.println(fmt.Sprintf("No page %d (pages 1-%d).", n, max(total, 1)))
		return err
	}

	a.setRoute(router.Match(router.PathCollection))
	return a.showPage(ctx, n)
}

func (a *App) showPage(ctx context.Context, n int) error {
	err := a.users.ChangePage(ctx, n)
	if errors.Is(err, services.ErrSuperseded) {
		return nil
	}
	a.render()
	return err
}

// Refresh reloads the current page.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	a.setRoute(router.Match(router.PathCollection))
	err := a.users.Refresh(ctx)
	if errors.Is(err, services.ErrSuperseded) {
		return nil
	}
	a.render()
	return err
}

// Search schedules a filter of the held page. Rapid successive searches
// collapse into the last one after the configured quiet period.
func (a *App) Search(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if a.currentRoute().Name != router.Collection {
		a.println("Search works on the user list; type 'list' first.")
		return errBadArgument
	}
	a.search.Trigger(strings.Join(args, " "))
	return nil
}

// applySearch runs on the debounce timer's goroutine. A search that fires
// after logout or after leaving the user list is dropped.
func (a *App) applySearch(query string) {
	if !a.isLoggedIn() || a.currentRoute().Name != router.Collection {
		a.log.Debug(context.Background(), "search dropped", "query", query)
		return
	}
	a.users.Search(query)
	a.render()
}

// Delete asks for confirmation and deletes user args[0].
func (a *App) Delete(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := parsePositive(args[0], "user id")
	if err != nil {
		a.println(err.Error())
		return err
	}

	ok, err := GetConfirmation(a.reader, "Are you sure you want to delete this user?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}

	if err := a.users.Delete(ctx, id); err != nil {
		return err
	}
	if a.currentRoute().Name == router.Collection {
		a.render()
	}
	return nil
}

func (a *App) render() {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	renderUsers(a.out, a.users.Snapshot())
}
