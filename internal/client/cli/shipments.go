package cli

import (
	"context"
	"fmt"

	"github.com/shipdeck/shipdeck/internal/client/models"
)

func (a *App) shipments(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		a.listShipments(ctx)
	case "add":
		a.addShipment(ctx)
	case "show":
		a.showShipment(ctx, args[1:])
	case "delete":
		a.deleteShipment(ctx, args[1:])
	default:
		fmt.Fprintln(a.out, "Usage: shipments [list|add|show <id>|delete <id>]")
	}
}

func (a *App) listShipments(ctx context.Context) {
	items, err := a.api.GetShipments(ctx)
	if err != nil {
		a.fail(ctx, "list shipments", err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No shipments yet")
		return
	}
	for _, s := range items {
		tracking := s.TrackingNumber
		if tracking == "" {
			tracking = "-"
		}
		fmt.Fprintf(a.out, "%4d  %-6s %-10s %-16s -> %s, %s\n",
			s.ID, s.Carrier, s.Status, tracking, s.RecipientCity, s.RecipientState)
	}
}

func (a *App) showShipment(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: shipments show <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Invalid id:", args[0])
		return
	}

	s, err := a.api.GetShipment(ctx, id)
	if err != nil {
		a.fail(ctx, "fetch shipment", err)
		return
	}

	fmt.Fprintf(a.out, "Shipment #%d via %s (%s)\n", s.ID, s.Carrier, s.Status)
	if s.TrackingNumber != "" {
		fmt.Fprintf(a.out, "Tracking: %s\n", s.TrackingNumber)
	}
	fmt.Fprintf(a.out, "To: %s, %s, %s, %s %s, %s\n",
		s.RecipientName, s.RecipientAddress, s.RecipientCity, s.RecipientState, s.RecipientZip, s.RecipientCountry)
	fmt.Fprintf(a.out, "Service: %s, weight %.2f\n", s.ServiceType, s.Weight)
	if s.Cost != nil {
		fmt.Fprintf(a.out, "Cost: %.2f\n", *s.Cost)
	}
}

func (a *App) addShipment(ctx context.Context) {
	carrier, err := a.promptCarrierCode()
	if err != nil {
		return
	}
	serviceType, err := GetSimpleText(a.reader, "Service type", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}
	weight, err := GetFloat(a.reader, "Weight (lb)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid weight")
		return
	}
	name, err := GetSimpleText(a.reader, "Recipient name", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}
	address, err := GetSimpleText(a.reader, "Recipient address", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}
	city, err := GetSimpleText(a.reader, "Recipient city", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}
	state, err := GetSimpleText(a.reader, "Recipient state", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}
	zip, err := GetSimpleText(a.reader, "Recipient ZIP", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}
	country, err := GetOptionalText(a.reader, "Recipient country", "US", a.out)
	if err != nil {
		a.fail(ctx, "read input", err)
		return
	}

	created, err := a.api.CreateShipment(ctx, models.ShipmentPatch{
		Carrier:          string(carrier),
		ServiceType:      serviceType,
		Weight:           &weight,
		RecipientName:    name,
		RecipientAddress: address,
		RecipientCity:    city,
		RecipientState:   state,
		RecipientZip:     zip,
		RecipientCountry: country,
	})
	if err != nil {
		a.fail(ctx, "create shipment", err)
		return
	}
	fmt.Fprintf(a.out, "Created shipment #%d (%s)\n", created.ID, created.Status)
}

func (a *App) deleteShipment(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: shipments delete <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Invalid id:", args[0])
		return
	}

	if err := a.api.DeleteShipment(ctx, id); err != nil {
		a.fail(ctx, "delete shipment", err)
		return
	}
	fmt.Fprintf(a.out, "Deleted shipment #%d\n", id)
}
