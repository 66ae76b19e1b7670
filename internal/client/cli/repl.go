package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Refresh(ctx context.Context) error
	Open(ctx context.Context, args []string) error
}

// runREPL starts a read–eval–print loop for the userdesk console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                   show available commands
//	  - login                  authenticate
//	  - open <path>            go to a path (/, /users, /users/edit/<id>)
//	  - exit | quit            leave the program
//
//	Logged in:
//	  - help                   show available commands
//	  - (l)ist | users [n]     show page n of the users (default: current)
//	  - page <n>               same as list <n>
//	  - next | prev            move one page
//	  - search [query]         filter the current page; no query clears it
//	  - delete <id>            delete a user
//	  - edit <id>              edit a user
//	  - refresh                reload the current page
//	  - open <path>            go to a path
//	  - logout                 log out
//	  - exit | quit            leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ud %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if ctx.Err() != nil {
			return
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist [page], page <n>, next, prev, search [query], delete <id>, edit <id>, refresh, open <path>, logout, exit")
			} else {
				printlnFn("Available commands: login, open <path>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list", "users", "page":
			if cmd == "page" && len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			_ = a.List(ctx, args)

		case "next":
			_ = a.Next(ctx)

		case "prev":
			_ = a.Prev(ctx)

		case "search", "s":
			_ = a.Search(ctx, args)

		case "delete", "rm":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args)

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args)

		case "refresh":
			_ = a.Refresh(ctx)

		case "open", "go":
			if len(args) != 1 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
