package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

type PropertyRepository interface {
	// Write paths
	Create(ctx context.Context, p Property) error // ErrConflict on duplicate id
	Upsert(ctx context.Context, p Property) error
	Delete(ctx context.Context, id string) error // ErrNotFound when absent

	// Read paths
	List(ctx context.Context) ([]Property, error)
	Get(ctx context.Context, id string) (Property, error) // ErrNotFound when absent
}

// InquiryLog is the append-only request log. Entries are never updated or
// deleted.
type InquiryLog interface {
	AppendContact(ctx context.Context, f ContactForm) (Inquiry, error)
	AppendBooking(ctx context.Context, b BookingRequest) (Inquiry, error)
}

// ChannelClient is the gateway to the external channel manager. Implementations
// must soft-disable when no credential is configured: empty inventory, nil
// offers, failed BookingResult, never an error the public flow has to handle.
type ChannelClient interface {
	Configured() bool
	FetchProperties(ctx context.Context) ([]Property, error)
	CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string, guests int) (*RoomOffer, error)
	CreateBooking(ctx context.Context, s BookingSubmission) BookingResult
}

// BookingNotifier delivers a booking inquiry to the operator's inbox when the
// property has no gateway linkage. Returns the provider message id.
type BookingNotifier interface {
	NotifyBooking(ctx context.Context, b BookingRequest, propertyName string) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
