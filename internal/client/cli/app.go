package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/config"
	"github.com/dmitrijs2005/userdesk/internal/client/debounce"
	"github.com/dmitrijs2005/userdesk/internal/client/notify"
	"github.com/dmitrijs2005/userdesk/internal/client/router"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
	"github.com/dmitrijs2005/userdesk/internal/client/session"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	auth   *services.AuthService
	users  *services.UserCollection
	editor *services.UserEditor
	search *debounce.Debouncer[string]

	reader *bufio.Reader
	out    io.Writer
	outMu  sync.Mutex

	routeMu sync.RWMutex
	route   router.Route

	closer io.Closer
}

// Deps are the collaborators an App is built from.
type Deps struct {
	Client   client.Client
	Store    session.Store
	Notifier notify.Notifier
	Logger   logging.Logger
	In       io.Reader
	Out      io.Writer
}

// NewApp opens the session database, builds the HTTP client and returns an
// App reading from stdin and writing to stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.Open(ctx, c.SessionDB)
	if err != nil {
		log.Error(ctx, "error initializing session database", "path", c.SessionDB, "error", err)
		return nil, err
	}
	store := session.NewSQLiteStore(db)

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, store,
		client.WithAPIKey(c.APIKey),
		client.WithLogger(log),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := newApp(c, Deps{
		Client:   apiClient,
		Store:    store,
		Notifier: notify.NewTerminal(os.Stdout),
		Logger:   log,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
	app.closer = db
	return app, nil
}

func newApp(c *config.Config, d Deps) *App {
	a := &App{
		config: c,
		log:    d.Logger,
		reader: bufio.NewReader(d.In),
		out:    d.Out,
		route:  router.Match(router.PathEntry),
	}
	a.auth = services.NewAuthService(d.Client, d.Store, d.Notifier, d.Logger)
	a.users = services.NewUserCollection(d.Client, a.auth, d.Notifier, d.Logger)
	a.editor = services.NewUserEditor(d.Client, a.auth, d.Notifier, d.Logger)
	a.search = debounce.New(c.SearchDebounce, a.applySearch)
	return a
}

// Run restores the session, lands on the start route and serves the REPL
// until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	if err := a.auth.Restore(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	a.println("Welcome to userdesk (type 'help' for commands)")
	_ = a.Open(ctx, []string{router.PathEntry})

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) close() {
	a.search.Stop()
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.log.Warn(context.Background(), "close session database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

// status is shown in the prompt: identity and current path.
func (a *App) status() string {
	s := a.currentRoute().Path
	if email := a.auth.Email(); email != "" {
		s = email + " " + s
	}
	return s
}

// currentRoute and setRoute guard the route, which the debounced search
// reads from the timer goroutine.
func (a *App) currentRoute() router.Route {
	a.routeMu.RLock()
	defer a.routeMu.RUnlock()
	return a.route
}

func (a *App) setRoute(r router.Route) {
	a.routeMu.Lock()
	a.route = r
	a.routeMu.Unlock()
}

func (a *App) println(args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, args...)
}
