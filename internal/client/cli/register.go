package cli

import (
	"context"
	"fmt"

	"github.com/shipdeck/shipdeck/internal/client/models"
)

func (a *App) register(ctx context.Context) {
	userName, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil || userName == "" {
		fmt.Fprintln(a.out, "Username is required")
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}
	fullName, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}
	password, err := GetSecret("Password", a.out)
	if err != nil {
		a.fail(ctx, "read password", err)
		return
	}

	user, err := a.api.Auth.Register(ctx, models.RegisterRequest{
		Username: userName,
		Email:    email,
		Password: password,
		FullName: fullName,
	})
	if err != nil {
		a.fail(ctx, "register", err)
		return
	}

	fmt.Fprintf(a.out, "Account %s created, you can login now\n", user.Username)
}
