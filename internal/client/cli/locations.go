package cli

import (
	"context"
	"fmt"

	"github.com/shipdeck/shipdeck/internal/client/models"
)

func (a *App) locations(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		a.listLocations(ctx)
	case "add":
		a.addLocation(ctx)
	case "show":
		a.showLocation(ctx, args[1:])
	case "update":
		a.updateLocation(ctx, args[1:])
	case "delete":
		a.deleteLocation(ctx, args[1:])
	default:
		fmt.Fprintln(a.out, "Usage: locations [list|add|show <id>|update <id>|delete <id>]")
	}
}

func (a *App) listLocations(ctx context.Context) {
	items, err := a.api.GetOriginLocations(ctx)
	if err != nil {
		a.fail(ctx, "list locations", err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No origin locations yet; use 'locations add'")
		return
	}
	for _, l := range items {
		marker := " "
		if l.IsDefault {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %4d  %-20s %s, %s %s\n", marker, l.ID, l.Name, l.City, l.State, l.ZipCode)
	}
}

func (a *App) printLocation(l *models.OriginLocation) {
	fmt.Fprintf(a.out, "Location #%d: %s\n", l.ID, l.Name)
	if l.CompanyName != "" {
		fmt.Fprintf(a.out, "Company: %s\n", l.CompanyName)
	}
	fmt.Fprintf(a.out, "Address: %s", l.AddressLine1)
	if l.AddressLine2 != "" {
		fmt.Fprintf(a.out, ", %s", l.AddressLine2)
	}
	fmt.Fprintf(a.out, "\n         %s, %s %s, %s\n", l.City, l.State, l.ZipCode, l.Country)
	if l.Phone != "" {
		fmt.Fprintf(a.out, "Phone:   %s\n", l.Phone)
	}
	fmt.Fprintf(a.out, "Default: %v\n", l.IsDefault)
}

func (a *App) showLocation(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: locations show <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Invalid id:", args[0])
		return
	}

	l, err := a.api.GetOriginLocation(ctx, id)
	if err != nil {
		a.fail(ctx, "fetch location", err)
		return
	}
	a.printLocation(l)
}

func (a *App) addLocation(ctx context.Context) {
	patch, err := a.promptLocationPatch(false)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}

	created, err := a.api.CreateOriginLocation(ctx, *patch)
	if err != nil {
		a.fail(ctx, "create location", err)
		return
	}
	fmt.Fprintf(a.out, "Created location #%d\n", created.ID)
}

func (a *App) updateLocation(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: locations update <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Invalid id:", args[0])
		return
	}

	fmt.Fprintln(a.out, "Leave a field empty to keep its current value")
	patch, err := a.promptLocationPatch(true)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}

	updated, err := a.api.UpdateOriginLocation(ctx, id, *patch)
	if err != nil {
		a.fail(ctx, "update location", err)
		return
	}
	a.printLocation(updated)
}

func (a *App) deleteLocation(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: locations delete <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Invalid id:", args[0])
		return
	}

	if err := a.api.DeleteOriginLocation(ctx, id); err != nil {
		a.fail(ctx, "delete location", err)
		return
	}
	fmt.Fprintf(a.out, "Deleted location #%d\n", id)
}

// promptLocationPatch collects location fields. In partial mode every field
// may be left empty and is then omitted from the payload.
func (a *App) promptLocationPatch(partial bool) (*models.OriginLocationPatch, error) {
	patch := &models.OriginLocationPatch{}

	var err error
	if patch.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
		return nil, err
	}
	if patch.CompanyName, err = GetSimpleText(a.reader, "Company (optional)", a.out); err != nil {
		return nil, err
	}
	if patch.AddressLine1, err = GetSimpleText(a.reader, "Address line 1", a.out); err != nil {
		return nil, err
	}
	if patch.AddressLine2, err = GetSimpleText(a.reader, "Address line 2 (optional)", a.out); err != nil {
		return nil, err
	}
	if patch.City, err = GetSimpleText(a.reader, "City", a.out); err != nil {
		return nil, err
	}
	if patch.State, err = GetSimpleText(a.reader, "State", a.out); err != nil {
		return nil, err
	}
	if patch.ZipCode, err = GetSimpleText(a.reader, "ZIP code", a.out); err != nil {
		return nil, err
	}
	country := "US"
	if partial {
		country = ""
	}
	if patch.Country, err = GetOptionalText(a.reader, "Country", country, a.out); err != nil {
		return nil, err
	}
	if patch.Phone, err = GetSimpleText(a.reader, "Phone (optional)", a.out); err != nil {
		return nil, err
	}

	if !partial {
		isDefault, err := GetBool(a.reader, "Make this the default location?", false, a.out)
		if err != nil {
			return nil, err
		}
		if isDefault {
			patch.IsDefault = &isDefault
		}
	}
	return patch, nil
}
