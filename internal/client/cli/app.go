// Package cli is the interactive shell of the shipdeck client: a REPL that
// drives the API facade the way the browser dashboard drives it in the
// hosted product.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shipdeck/shipdeck/internal/client/api"
	"github.com/shipdeck/shipdeck/internal/client/config"
	"github.com/shipdeck/shipdeck/internal/client/session"
	"github.com/shipdeck/shipdeck/internal/logging"
)

type App struct {
	config *config.Config
	api    *api.API
	log    logging.Logger

	reader *bufio.Reader
	out    io.Writer

	userName string
}

// NewApp wires the production dependencies: local session database, zap
// logger, API facade. The persisted session (token + username) is restored
// so a previous login survives across runs.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewConsole(cfg.Verbose)

	db, err := session.OpenDatabase(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	a := api.New(cfg.APIBaseURL, session.NewSQLiteStore(db), log)
	if err := a.Init(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}

	app := newApp(cfg, a, log, os.Stdin, os.Stdout)
	app.restoreSession(ctx)
	return app, nil
}

func newApp(cfg *config.Config, a *api.API, log logging.Logger, in io.Reader, out io.Writer) *App {
	app := &App{
		config: cfg,
		api:    a,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}
	a.OnUnauthorized(app.sessionExpired)
	return app
}

// restoreSession picks up a persisted login, warning when the stored token
// already looks expired (the server still has the final word).
func (a *App) restoreSession(ctx context.Context) {
	token, err := a.api.Session().Token(ctx)
	if err != nil || token == "" {
		return
	}

	username, _ := a.api.Session().Username(ctx)
	a.userName = username

	if info, err := session.InspectToken(token); err == nil && info.Expired(time.Now()) {
		fmt.Fprintln(a.out, "Stored session looks expired; you may need to login again.")
	}
}

// sessionExpired is invoked by the transport after a 401 dropped the token.
func (a *App) sessionExpired() {
	a.userName = ""
	fmt.Fprintln(a.out, "Session expired. Please login again.")
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if err := a.api.Close(); err != nil {
		a.log.Error(context.Background(), "failed to close session store", "error", err)
	}
}
