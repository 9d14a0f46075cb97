package agent

import (
	"context"

	"grandhorizon/internal/modules/callback"
	"grandhorizon/internal/modules/info"
	"grandhorizon/internal/modules/reservation"
)

// DefaultRegistry wires the five guest-facing operations to their services.
func DefaultRegistry(res *reservation.Service, cb *callback.Service, inf *info.Service) *Registry {
	return NewRegistry(
		&Tool{
			Name:        "get_hotel_info",
			Description: "Get hotel information for a category: amenities (or a specific one like pool, gym, spa, restaurant, bar, wifi, parking), check-in/check-out times, policies (cancellation, pets, smoking), location, directions, contact, or room_types.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"category": map[string]any{
						"type":        "string",
						"description": "The type of information requested, e.g. 'pool' or 'cancellation_policy'",
					},
				},
				"required": []string{"category"},
			},
			Call: func(ctx context.Context, args map[string]any) (any, error) {
				return inf.Get(stringArg(args, "category"))
			},
		},
		&Tool{
			Name:        "lookup_reservation",
			Description: "Look up a reservation by confirmation number, verified against the guest's last name.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"confirmation_number": map[string]any{
						"type":        "string",
						"description": "The reservation confirmation number, e.g. 'GH-78432'",
					},
					"last_name": map[string]any{
						"type":        "string",
						"description": "Guest's last name for verification",
					},
				},
				"required": []string{"confirmation_number", "last_name"},
			},
			Call: func(ctx context.Context, args map[string]any) (any, error) {
				return res.Lookup(stringArg(args, "confirmation_number"), stringArg(args, "last_name"))
			},
		},
		&Tool{
			Name:        "cancel_reservation",
			Description: "Cancel a reservation after verification. The cancellation fee depends on how far before check-in the call happens.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"confirmation_number": map[string]any{
						"type": "string",
					},
					"last_name": map[string]any{
						"type": "string",
					},
					"cancellation_reason": map[string]any{
						"type":        "string",
						"description": "One of change_of_plans, emergency, found_alternative, price_concern, other",
					},
				},
				"required": []string{"confirmation_number", "last_name", "cancellation_reason"},
			},
			Call: func(ctx context.Context, args map[string]any) (any, error) {
				return res.Cancel(
					stringArg(args, "confirmation_number"),
					stringArg(args, "last_name"),
					stringArg(args, "cancellation_reason"),
				)
			},
		},
		&Tool{
			Name:        "modify_reservation",
			Description: "Modify one aspect of a reservation: check_in_date, check_out_date, room_type, guest_count, or add_request.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"confirmation_number": map[string]any{
						"type": "string",
					},
					"last_name": map[string]any{
						"type": "string",
					},
					"modification_type": map[string]any{
						"type":        "string",
						"description": "One of check_in_date, check_out_date, room_type, guest_count, add_request",
					},
					"new_value": map[string]any{
						"type":        "string",
						"description": "The new value: a YYYY-MM-DD date, a room type key, a guest count, or the request text",
					},
				},
				"required": []string{"confirmation_number", "last_name", "modification_type", "new_value"},
			},
			Call: func(ctx context.Context, args map[string]any) (any, error) {
				return res.Modify(
					stringArg(args, "confirmation_number"),
					stringArg(args, "last_name"),
					stringArg(args, "modification_type"),
					stringArg(args, "new_value"),
				)
			},
		},
		&Tool{
			Name:        "request_callback",
			Description: "Request a callback from a human guest-services agent for issues the assistant cannot resolve.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"guest_name": map[string]any{
						"type": "string",
					},
					"phone_number": map[string]any{
						"type": "string",
					},
					"issue_description": map[string]any{
						"type":        "string",
						"description": "Brief description of the issue",
					},
				},
				"required": []string{"guest_name", "phone_number", "issue_description"},
			},
			Call: func(ctx context.Context, args map[string]any) (any, error) {
				return cb.RequestCallback(ctx, callback.CallbackRequest{
					GuestName: stringArg(args, "guest_name"),
					Phone:     stringArg(args, "phone_number"),
					Issue:     stringArg(args, "issue_description"),
				})
			},
		},
	)
}
