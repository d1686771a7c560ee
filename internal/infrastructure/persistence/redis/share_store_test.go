package redis

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"blog-idea-api/internal/domain/entity"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewClientFromRedis(rdb), mr
}

func sampleSnapshot() *entity.ShareSnapshot {
	idea := "Remote Work Rituals That Actually Stick"
	return &entity.ShareSnapshot{
		Topic:        "remote work",
		Ideas:        []string{"Remote Work Rituals That Actually Stick", "The Async Manifesto"},
		SelectedIdea: &idea,
		Outline:      []string{"Introduction", "Daily Standups Without Meetings", "Conclusion"},
	}
}

func TestShareStoreRoundTrip(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewShareStore(client, "")
	ctx := context.Background()

	ok, err := store.SaveIfAbsent(ctx, "abc123", sampleSnapshot(), 7*24*time.Hour)
	if err != nil || !ok {
		t.Fatalf("SaveIfAbsent = %v, %v", ok, err)
	}
	if !mr.Exists("share_abc123") {
		t.Fatalf("expected key share_abc123, keys = %v", mr.Keys())
	}
	if ttl := mr.TTL("share_abc123"); ttl != 7*24*time.Hour {
		t.Fatalf("ttl = %v", ttl)
	}

	for i := 0; i < 3; i++ {
		got, err := store.Load(ctx, "abc123")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if !reflect.DeepEqual(got, sampleSnapshot()) {
			t.Fatalf("Load #%d mismatch:\n got: %#v\nwant: %#v", i, got, sampleSnapshot())
		}
	}
}

func TestShareStoreDoesNotOverwrite(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewShareStore(client, "share_")
	ctx := context.Background()

	if ok, err := store.SaveIfAbsent(ctx, "dup", sampleSnapshot(), time.Hour); err != nil || !ok {
		t.Fatalf("first save = %v, %v", ok, err)
	}
	other := &entity.ShareSnapshot{Topic: "other"}
	ok, err := store.SaveIfAbsent(ctx, "dup", other, time.Hour)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if ok {
		t.Fatalf("second save should report collision")
	}

	got, err := store.Load(ctx, "dup")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Topic != "remote work" {
		t.Fatalf("snapshot overwritten: %+v", got)
	}
}

func TestShareStoreMissingAndExpired(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewShareStore(client, "share_")
	ctx := context.Background()

	got, err := store.Load(ctx, "never")
	if err != nil || got != nil {
		t.Fatalf("Load(never) = %v, %v", got, err)
	}

	if _, err := store.SaveIfAbsent(ctx, "ttl", sampleSnapshot(), 7*24*time.Hour); err != nil {
		t.Fatalf("SaveIfAbsent: %v", err)
	}
	mr.FastForward(7*24*time.Hour + time.Second)

	got, err = store.Load(ctx, "ttl")
	if err != nil || got != nil {
		t.Fatalf("Load after expiry = %v, %v", got, err)
	}
}

func TestShareStoreBackendFailure(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewShareStore(client, "share_")
	ctx := context.Background()

	mr.SetError("LOADING redis is loading the dataset")
	if _, err := store.SaveIfAbsent(ctx, "x", sampleSnapshot(), time.Hour); err == nil {
		t.Fatalf("expected write error")
	}
	if _, err := store.Load(ctx, "x"); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestShareStoreCorruptValue(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewShareStore(client, "share_")

	if err := mr.Set("share_bad", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := store.Load(context.Background(), "bad"); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestRateLimiterAllow(t *testing.T) {
	client, _ := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()
	key := BuildRateLimitKey("10.0.0.1", "/generate")

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, key, 3, time.Minute)
		if err != nil || !ok {
			t.Fatalf("request %d: allowed=%v err=%v", i, ok, err)
		}
	}
	ok, err := limiter.Allow(ctx, key, 3, time.Minute)
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if ok {
		t.Fatalf("fourth request should be rejected")
	}

	if ok, _ := limiter.Allow(ctx, BuildRateLimitKey("10.0.0.2", "/generate"), 3, time.Minute); !ok {
		t.Fatalf("other clients should not share the window")
	}
}

func TestHealthCheck(t *testing.T) {
	client, mr := newTestClient(t)
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
	mr.SetError("ERR down")
	if err := client.HealthCheck(context.Background()); err == nil {
		t.Fatalf("expected health check failure")
	}
}
