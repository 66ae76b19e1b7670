// Package cli provides the interactive userdesk console.
//
// It wires configuration, the session store, the API client and the
// controllers into a REPL. Paths such as /users or /users/edit/3 are
// resolved through the router, so the same auth guard applies whether a view
// is reached by command or by "open <path>".
//
// Key features:
//   - Login / Logout against the remote directory
//   - Paged user list with local search (debounced) and delete
//   - Per-user edit form with field validation
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
