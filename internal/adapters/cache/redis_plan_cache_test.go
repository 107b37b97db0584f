package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"trip-route-service/internal/domain"
)

func newTestCache(t *testing.T) (*RedisPlanCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisPlanCache(client, time.Hour), mr
}

func TestRedisPlanCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	plan := &domain.TripPlan{
		StartIndex:    0,
		MaxIterations: 1000,
		Stops: []domain.TripStop{
			{Name: "Paris", Lat: 48.8566, Lon: 2.3522, LegKm: 0},
			{Name: "Brussels", Lat: 50.8503, Lon: 4.3517, LegKm: 261.4},
		},
		InitialDistanceKm:   522.8,
		OptimizedDistanceKm: 522.8,
	}

	if err := c.PutPlan(ctx, "trip:plan:test", plan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.GetPlan(ctx, "trip:plan:test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a cached plan, got nil")
	}

	if len(got.Stops) != 2 || got.Stops[1].Name != "Brussels" {
		t.Fatalf("cached stops corrupted: %+v", got.Stops)
	}
	if got.OptimizedDistanceKm != plan.OptimizedDistanceKm {
		t.Fatalf("distance = %v, want %v", got.OptimizedDistanceKm, plan.OptimizedDistanceKm)
	}
}

func TestRedisPlanCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.GetPlan(context.Background(), "trip:plan:absent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on miss, got %+v", got)
	}
}

func TestRedisPlanCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	plan := &domain.TripPlan{StartIndex: 0, MaxIterations: 1000}
	if err := c.PutPlan(ctx, "trip:plan:ttl", plan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	got, err := c.GetPlan(ctx, "trip:plan:ttl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatal("expected entry to expire")
	}
}

func TestRedisPlanCacheRejectsEmptyKey(t *testing.T) {
	c, _ := newTestCache(t)

	if _, err := c.GetPlan(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty key")
	}
	if err := c.PutPlan(context.Background(), "", &domain.TripPlan{}); err == nil {
		t.Fatal("expected error for empty key")
	}
}
