package mailer_test

import (
	"context"
	"errors"
	"testing"

	"smarthjem/internal/adapters/mailer"
	"smarthjem/internal/domain"
)

func TestNotifyBooking_DisabledWithoutKey(t *testing.T) {
	cases := []struct {
		name                  string
		key, from, inbox      string
	}{
		{"no key", "", "post@smarthjem.no", "booking@smarthjem.no"},
		{"no from", "key", "", "booking@smarthjem.no"},
		{"no inbox", "key", "post@smarthjem.no", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mailer.New(tc.key, "Smart Hjem", tc.from, tc.inbox)
			if m.Enabled() {
				t.Fatal("mailer should be disabled")
			}
			_, err := m.NotifyBooking(context.Background(), domain.BookingRequest{}, "Hytta")
			if !errors.Is(err, mailer.ErrNotConfigured) {
				t.Fatalf("expected ErrNotConfigured, got %v", err)
			}
		})
	}
}

func TestNew_EnabledWithFullConfig(t *testing.T) {
	m := mailer.New("key", "Smart Hjem", "post@smarthjem.no", "booking@smarthjem.no")
	if !m.Enabled() {
		t.Fatal("mailer should be enabled")
	}
}
