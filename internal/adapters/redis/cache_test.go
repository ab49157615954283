package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "smarthjem/internal/adapters/redis"
	"smarthjem/internal/domain"
)

func TestCache_RoundTripAndDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var missed domain.Property
	ok, err := c.Get(ctx, "property:x", &missed)
	if err != nil || ok {
		t.Fatalf("cold read: ok=%v err=%v", ok, err)
	}

	p := domain.Property{
		ID: "smolasen-tjorhom", Name: "Flott hytte på Smølåsen Tjørhom",
		Beds: 4, Images: []string{"https://example.com/a.jpg"},
		Amenities: []string{"WiFi"}, Available: true,
	}
	if err := c.Set(ctx, "property:smolasen-tjorhom", p, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got domain.Property
	ok, err = c.Get(ctx, "property:smolasen-tjorhom", &got)
	if err != nil || !ok {
		t.Fatalf("warm read: ok=%v err=%v", ok, err)
	}
	if got.Name != p.Name || len(got.Images) != 1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if err := c.Del(ctx, "property:smolasen-tjorhom"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	ok, _ = c.Get(ctx, "property:smolasen-tjorhom", &got)
	if ok {
		t.Fatal("key should be gone after Del")
	}

	// entries expire with the ttl
	if err := c.Set(ctx, "properties:all", []domain.Property{p}, 1); err != nil {
		t.Fatalf("Set list: %v", err)
	}
	mr.FastForward(2 * time.Second)
	var list []domain.Property
	ok, _ = c.Get(ctx, "properties:all", &list)
	if ok {
		t.Fatal("entry should have expired")
	}
}
