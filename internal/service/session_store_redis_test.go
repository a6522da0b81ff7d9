package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisSessionStoreForTest(t *testing.T) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessionStore(client, "session", time.Hour), mr
}

func TestRedisSessionStoreSetGetDeleteClear(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisSessionStoreForTest(t)

	if _, ok, err := store.Get(ctx, "sid", "uid"); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}

	if err := store.SetFields(ctx, "sid", map[string]string{"uid": "7", "captcha": "000123"}); err != nil {
		t.Fatalf("set fields: %v", err)
	}
	value, ok, err := store.Get(ctx, "sid", "captcha")
	if err != nil || !ok || value != "000123" {
		t.Fatalf("get: value=%q ok=%v err=%v", value, ok, err)
	}

	if err := store.Delete(ctx, "sid", "captcha"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "sid", "captcha"); ok {
		t.Fatal("field survived delete")
	}
	if _, ok, _ := store.Get(ctx, "sid", "uid"); !ok {
		t.Fatal("unrelated field deleted")
	}

	if err := store.Clear(ctx, "sid"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "sid", "uid"); ok {
		t.Fatal("field survived clear")
	}
}

func TestRedisSessionStoreTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisSessionStoreForTest(t)

	if err := store.Set(ctx, "sid", "uid", "7"); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Hour)
	if _, ok, _ := store.Get(ctx, "sid", "uid"); ok {
		t.Fatal("expected session to expire with its TTL")
	}
}
