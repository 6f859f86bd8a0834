package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/shipdeck/shipdeck/internal/client/session"
)

func (a *App) login(ctx context.Context) {
	remembered, _ := a.api.Session().Username(ctx)
	userName, err := GetOptionalText(a.reader, "Username", remembered, a.out)
	if err != nil || userName == "" {
		fmt.Fprintln(a.out, "Username is required")
		return
	}

	password, err := GetSecret("Password", a.out)
	if err != nil {
		a.fail(ctx, "read password", err)
		return
	}

	tr, err := a.api.Auth.Login(ctx, userName, password)
	if err != nil {
		a.fail(ctx, "login", err)
		return
	}

	a.userName = userName
	fmt.Fprintf(a.out, "Logged in as %s\n", userName)

	if info, err := session.InspectToken(tr.AccessToken); err == nil && !info.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "Session valid until %s\n", info.ExpiresAt.Local().Format(time.RFC1123))
	}
}

func (a *App) logout(ctx context.Context) {
	if err := a.api.Auth.Logout(ctx); err != nil {
		a.fail(ctx, "logout", err)
		return
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) whoami(ctx context.Context) {
	user, err := a.api.Auth.Profile(ctx)
	if err != nil {
		a.fail(ctx, "fetch profile", err)
		return
	}

	fmt.Fprintf(a.out, "%s <%s>\n", user.Username, user.Email)
	if user.FullName != "" {
		fmt.Fprintf(a.out, "Name:   %s\n", user.FullName)
	}
	fmt.Fprintf(a.out, "Active: %v\n", user.IsActive)

	if token, err := a.api.Session().Token(ctx); err == nil && token != "" {
		if info, err := session.InspectToken(token); err == nil && !info.ExpiresAt.IsZero() {
			fmt.Fprintf(a.out, "Token expires %s\n", info.ExpiresAt.Local().Format(time.RFC1123))
		}
	}
}

func (a *App) passwd(ctx context.Context) {
	current, err := GetSecret("Current password", a.out)
	if err != nil {
		a.fail(ctx, "read password", err)
		return
	}
	updated, err := GetSecret("New password", a.out)
	if err != nil {
		a.fail(ctx, "read password", err)
		return
	}

	if err := a.api.Auth.UpdatePassword(ctx, current, updated); err != nil {
		a.fail(ctx, "change password", err)
		return
	}
	fmt.Fprintln(a.out, "Password changed")
}
