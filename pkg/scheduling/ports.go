package scheduling

import "context"

// Package scheduling is the gateway to the external appointment service.
// The conversation engine only ever talks to the Gateway interface.

// MaxOfferedSlots caps how many candidate times are shown to a user.
const MaxOfferedSlots = 3

// Gateway exposes the scheduling-service capabilities the booking flow
// needs. Slots are ISO-8601 start times.
type Gateway interface {
	ListEventTypes(ctx context.Context) ([]string, error)
	ListAvailableSlots(ctx context.Context, eventType string) ([]string, error)
	BookSlot(ctx context.Context, eventType, inviteeName, inviteePhone, slot string) (bool, error)
}
