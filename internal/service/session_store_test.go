package service

import (
	"context"
	"testing"
	"time"
)

func TestInMemorySessionStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySessionStore(time.Hour)

	if _, ok, err := store.Get(ctx, "sid", "uid"); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}
	if err := store.Set(ctx, "sid", "uid", "7"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := store.Get(ctx, "sid", "uid")
	if err != nil || !ok || value != "7" {
		t.Fatalf("get after set: value=%q ok=%v err=%v", value, ok, err)
	}

	// Other sessions must not see the field.
	if _, ok, _ := store.Get(ctx, "other", "uid"); ok {
		t.Fatal("field leaked across sessions")
	}

	if err := store.Delete(ctx, "sid", "uid"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "sid", "uid"); ok {
		t.Fatal("field survived delete")
	}
	// Deleting again is a no-op.
	if err := store.Delete(ctx, "sid", "uid"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestInMemorySessionStoreSetFieldsAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySessionStore(time.Hour)

	err := store.SetFields(ctx, "sid", map[string]string{
		"captcha":           "042137",
		"email":             "a@example.com",
		"last_captcha_time": "1700000000",
	})
	if err != nil {
		t.Fatalf("set fields: %v", err)
	}
	for _, key := range []string{"captcha", "email", "last_captcha_time"} {
		if _, ok, _ := store.Get(ctx, "sid", key); !ok {
			t.Fatalf("missing field %q", key)
		}
	}

	if err := store.Clear(ctx, "sid"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	for _, key := range []string{"captcha", "email", "last_captcha_time"} {
		if _, ok, _ := store.Get(ctx, "sid", key); ok {
			t.Fatalf("field %q survived clear", key)
		}
	}
}

func TestInMemorySessionStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySessionStore(time.Nanosecond)

	if err := store.Set(ctx, "sid", "uid", "7"); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, ok, _ := store.Get(ctx, "sid", "uid"); ok {
		t.Fatal("expected expired session to be empty")
	}
}
