package cli

import (
	"context"
	"fmt"

	"github.com/shipdeck/shipdeck/internal/client/models"
)

func (a *App) tokens(ctx context.Context, args []string) {
	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "test":
		a.testToken(ctx)
	case "generate":
		a.generateTokens(ctx)
	default:
		fmt.Fprintln(a.out, "Usage: tokens [test|generate]")
	}
}

// testToken tries one set of ad-hoc credentials against a carrier without
// storing anything.
func (a *App) testToken(ctx context.Context) {
	req, err := a.promptTokenRequest()
	if err != nil {
		return
	}

	res, err := a.api.TestSingleToken(ctx, *req)
	if err != nil {
		a.fail(ctx, "test token", err)
		return
	}

	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = "unknown error"
		}
		fmt.Fprintf(a.out, "Token request failed (%s): %s\n", res.ErrorType, msg)
		return
	}
	fmt.Fprintf(a.out, "Token acquired from %s\n", res.Carrier.DisplayName())
	fmt.Fprintf(a.out, "  access_token: %s\n", res.AccessToken)
	fmt.Fprintf(a.out, "  token_type:   %s\n", res.TokenType)
	fmt.Fprintf(a.out, "  expires_in:   %ds\n", res.ExpiresIn)
}

// generateTokens collects up to one credential set per carrier and requests
// tokens for the batch in one call.
func (a *App) generateTokens(ctx context.Context) {
	var reqs []models.CarrierTokenRequest
	for {
		s, err := GetSimpleText(a.reader, "Carrier (FEDEX/UPS/USPS, empty to finish)", a.out)
		if err != nil || s == "" {
			break
		}
		code, err := models.ParseCarrierCode(s)
		if err != nil {
			fmt.Fprintf(a.out, "Unsupported carrier %q\n", s)
			continue
		}

		req, err := a.promptTokenCredentials(code)
		if err != nil {
			a.fail(ctx, "read input", err)
			return
		}
		reqs = append(reqs, *req)
		if len(reqs) == len(models.CarrierCodes) {
			break
		}
	}

	if len(reqs) == 0 {
		fmt.Fprintln(a.out, "Nothing to do")
		return
	}

	results, err := a.api.GenerateTokens(ctx, reqs)
	if err != nil {
		a.fail(ctx, "generate tokens", err)
		return
	}
	a.printTokenResults(results)
}

func (a *App) promptTokenRequest() (*models.CarrierTokenRequest, error) {
	code, err := a.promptCarrierCode()
	if err != nil {
		return nil, err
	}
	return a.promptTokenCredentials(code)
}

func (a *App) promptTokenCredentials(code models.CarrierCode) (*models.CarrierTokenRequest, error) {
	clientID, err := GetSimpleText(a.reader, "Client ID", a.out)
	if err != nil {
		return nil, err
	}
	secret, err := GetSecret("Client secret", a.out)
	if err != nil {
		return nil, err
	}
	account, err := GetSimpleText(a.reader, "Account number (optional)", a.out)
	if err != nil {
		return nil, err
	}

	return &models.CarrierTokenRequest{
		CarrierCode:   code,
		ClientID:      clientID,
		ClientSecret:  secret,
		AccountNumber: account,
	}, nil
}
