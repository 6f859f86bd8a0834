package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shipdeck/shipdeck/internal/client/api"
)

func (a *App) prompt() string {
	if a.userName != "" {
		return fmt.Sprintf("shipdeck (%s)> ", a.userName)
	}
	return "shipdeck> "
}

// Root runs the command loop until exit or EOF. Command lines and prompt
// answers come from the same reader, so commands may consume the lines that
// follow them.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to shipdeck (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, a.prompt())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				break
			}
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "login":
			a.login(ctx)
		case "register":
			a.register(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami(ctx)
		case "passwd":
			a.passwd(ctx)
		case "locations":
			a.locations(ctx, args)
		case "carriers":
			a.carriers(ctx, args)
		case "tokens":
			a.tokens(ctx, args)
		case "shipments":
			a.shipments(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands:")
		fmt.Fprintln(a.out, "  whoami | passwd | logout")
		fmt.Fprintln(a.out, "  locations [list|add|show|update|delete]")
		fmt.Fprintln(a.out, "  carriers  [list|add|show|update|delete|test]")
		fmt.Fprintln(a.out, "  tokens    [test|generate]")
		fmt.Fprintln(a.out, "  shipments [list|add|show|delete]")
		fmt.Fprintln(a.out, "  exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, register, tokens test, exit")
	}
}

// fail prints a user-facing failure message: the server's detail when it
// sent one, a generic fallback otherwise.
func (a *App) fail(ctx context.Context, action string, err error) {
	switch detail, ok := api.ErrorDetail(err); {
	case ok:
		fmt.Fprintf(a.out, "Failed to %s: %s\n", action, detail)
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintf(a.out, "Failed to %s: server unavailable\n", action)
	case errors.Is(err, api.ErrNotFound):
		fmt.Fprintf(a.out, "Failed to %s: not found\n", action)
	case errors.Is(err, api.ErrUnauthorized):
		// sessionExpired already told the user; nothing to add
	default:
		fmt.Fprintf(a.out, "Failed to %s\n", action)
	}
	a.log.Debug(ctx, "command failed", "action", action, "error", err)
}
