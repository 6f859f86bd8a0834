package cli

import (
	"context"
	"fmt"

	"github.com/shipdeck/shipdeck/internal/client/models"
)

func (a *App) carriers(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		a.listCarriers(ctx)
	case "add":
		a.addCarrier(ctx)
	case "show":
		a.showCarrier(ctx, args[1:])
	case "update":
		a.updateCarrier(ctx, args[1:])
	case "delete":
		a.deleteCarrier(ctx, args[1:])
	case "test":
		a.testCarriers(ctx)
	default:
		fmt.Fprintln(a.out, "Usage: carriers [list|add|show <code>|update <code>|delete <code>|test]")
	}
}

func (a *App) listCarriers(ctx context.Context) {
	items, err := a.api.GetCarrierCredentials(ctx)
	if err != nil {
		a.fail(ctx, "list carriers", err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No carrier credentials yet; use 'carriers add'")
		return
	}
	for _, c := range items {
		state := "inactive"
		if c.IsActive {
			state = "active"
		}
		fmt.Fprintf(a.out, "%-6s %-6s %-20s secret %s\n", c.CarrierCode, state, c.ClientID, c.ClientSecretMasked)
	}
}

func (a *App) showCarrier(ctx context.Context, args []string) {
	code, ok := a.carrierCodeArg(args, "carriers show <code>")
	if !ok {
		return
	}

	c, err := a.api.GetCarrierCredential(ctx, code)
	if err != nil {
		a.fail(ctx, "fetch carrier", err)
		return
	}

	fmt.Fprintf(a.out, "%s (%s)\n", c.CarrierCode.DisplayName(), c.CarrierCode)
	fmt.Fprintf(a.out, "Client ID:  %s\n", c.ClientID)
	fmt.Fprintf(a.out, "Secret:     %s\n", c.ClientSecretMasked)
	fmt.Fprintf(a.out, "Account:    %s\n", c.AccountNumber)
	fmt.Fprintf(a.out, "Active:     %v\n", c.IsActive)
	if c.Description != "" {
		fmt.Fprintf(a.out, "Note:       %s\n", c.Description)
	}
}

func (a *App) addCarrier(ctx context.Context) {
	code, err := a.promptCarrierCode()
	if err != nil {
		return
	}
	clientID, err := GetSimpleText(a.reader, "Client ID", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}
	secret, err := GetSecret("Client secret", a.out)
	if err != nil {
		a.fail(ctx, "read secret", err)
		return
	}
	account, err := GetSimpleText(a.reader, "Account number", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}
	description, err := GetSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}

	created, err := a.api.CreateCarrierCredential(ctx, models.CarrierCredentialsPatch{
		CarrierCode:   code,
		ClientID:      clientID,
		ClientSecret:  secret,
		AccountNumber: account,
		Description:   description,
	})
	if err != nil {
		a.fail(ctx, "save carrier credentials", err)
		return
	}
	fmt.Fprintf(a.out, "Saved %s credentials (secret stored as %s)\n",
		created.CarrierCode.DisplayName(), created.ClientSecretMasked)
}

func (a *App) updateCarrier(ctx context.Context, args []string) {
	code, ok := a.carrierCodeArg(args, "carriers update <code>")
	if !ok {
		return
	}

	fmt.Fprintln(a.out, "Leave a field empty to keep its current value")
	clientID, err := GetSimpleText(a.reader, "Client ID", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}
	// An empty secret is omitted from the payload entirely, which the
	// server treats as "keep the stored secret".
	secret, err := GetSecret("Client secret (empty to keep)", a.out)
	if err != nil {
		a.fail(ctx, "read secret", err)
		return
	}
	account, err := GetSimpleText(a.reader, "Account number", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}

	updated, err := a.api.UpdateCarrierCredential(ctx, code, models.CarrierCredentialsPatch{
		ClientID:      clientID,
		ClientSecret:  secret,
		AccountNumber: account,
	})
	if err != nil {
		a.fail(ctx, "update carrier credentials", err)
		return
	}
	fmt.Fprintf(a.out, "Updated %s credentials\n", updated.CarrierCode.DisplayName())
}

func (a *App) deleteCarrier(ctx context.Context, args []string) {
	code, ok := a.carrierCodeArg(args, "carriers delete <code>")
	if !ok {
		return
	}

	if err := a.api.DeleteCarrierCredential(ctx, code); err != nil {
		a.fail(ctx, "delete carrier credentials", err)
		return
	}
	fmt.Fprintf(a.out, "Deleted %s credentials\n", code.DisplayName())
}

func (a *App) testCarriers(ctx context.Context) {
	results, err := a.api.TestCarrierTokens(ctx)
	if err != nil {
		a.fail(ctx, "test carrier tokens", err)
		return
	}
	if len(results) == 0 {
		fmt.Fprintln(a.out, "No carriers configured")
		return
	}
	a.printTokenResults(results)
}

func (a *App) printTokenResults(results []models.TokenResult) {
	for _, r := range results {
		if r.Success {
			fmt.Fprintf(a.out, "OK    %-6s token_type=%s expires_in=%ds\n", r.Carrier, r.TokenType, r.ExpiresIn)
			continue
		}
		msg := r.Error
		if msg == "" {
			msg = "unknown error"
		}
		fmt.Fprintf(a.out, "FAIL  %-6s %s\n", r.Carrier, msg)
	}
}

func (a *App) carrierCodeArg(args []string, usage string) (models.CarrierCode, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return "", false
	}
	code, err := models.ParseCarrierCode(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Unsupported carrier %q (expected FEDEX, UPS or USPS)\n", args[0])
		return "", false
	}
	return code, true
}

func (a *App) promptCarrierCode() (models.CarrierCode, error) {
	s, err := GetSimpleText(a.reader, "Carrier (FEDEX/UPS/USPS)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Carrier is required")
		return "", err
	}
	code, err := models.ParseCarrierCode(s)
	if err != nil {
		fmt.Fprintf(a.out, "Unsupported carrier %q\n", s)
		return "", err
	}
	return code, nil
}
