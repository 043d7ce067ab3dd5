package fakegateway

import (
	"context"
	"sync"

	"github.com/silkshine/booking-bot/pkg/scheduling"
)

// FakeGateway implements scheduling.Gateway for headless tests.
type FakeGateway struct {
	mu sync.Mutex

	EventTypes []string
	Slots      map[string][]string
	BookOK     bool

	EventTypesErr error
	SlotsErr      error
	BookErr       error

	Bookings []Booking
}

// Booking captures one BookSlot invocation.
type Booking struct {
	EventType string
	Name      string
	Phone     string
	Slot      string
}

var _ scheduling.Gateway = (*FakeGateway)(nil)

// New returns a gateway with one event type, two slots and successful bookings.
func New() *FakeGateway {
	return &FakeGateway{
		EventTypes: []string{"event1"},
		Slots: map[string][]string{
			"event1": {"2024-01-01T10:00:00Z", "2024-01-01T11:00:00Z"},
		},
		BookOK: true,
	}
}

func (f *FakeGateway) ListEventTypes(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.EventTypesErr != nil {
		return nil, f.EventTypesErr
	}
	return append([]string(nil), f.EventTypes...), nil
}

func (f *FakeGateway) ListAvailableSlots(ctx context.Context, eventType string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SlotsErr != nil {
		return nil, f.SlotsErr
	}
	slots := f.Slots[eventType]
	if len(slots) > scheduling.MaxOfferedSlots {
		slots = slots[:scheduling.MaxOfferedSlots]
	}
	return append([]string(nil), slots...), nil
}

func (f *FakeGateway) BookSlot(ctx context.Context, eventType, inviteeName, inviteePhone, slot string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.BookErr != nil {
		return false, f.BookErr
	}
	f.Bookings = append(f.Bookings, Booking{
		EventType: eventType,
		Name:      inviteeName,
		Phone:     inviteePhone,
		Slot:      slot,
	})
	return f.BookOK, nil
}

// LastBooking returns the most recent booking, or nil.
func (f *FakeGateway) LastBooking() *Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Bookings) == 0 {
		return nil
	}
	b := f.Bookings[len(f.Bookings)-1]
	return &b
}
