package redisstore

import (
	"context"
	"errors"
	"reflect"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/example/kanban/internal/ports/secondary"
)

func newTestStore(t *testing.T) (*SnapshotStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := NewSnapshotStore(client)
	if err != nil {
		t.Fatalf("NewSnapshotStore: %v", err)
	}
	return store, mr
}

func TestNewSnapshotStoreRejectsNilClient(t *testing.T) {
	store, err := NewSnapshotStore(nil)
	if err == nil {
		t.Fatal("expected an error for a nil client")
	}
	if store != nil {
		t.Errorf("store = %v, want nil", store)
	}
}

func TestLoadMissingSlot(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Load(context.Background(), "board")
	if !errors.Is(err, secondary.ErrSnapshotNotFound) {
		t.Fatalf("err = %v, want ErrSnapshotNotFound", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "board", []byte(`{"todo":[]}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(ctx, "board")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `{"todo":[]}` {
		t.Errorf("payload = %s", got)
	}

	raw, err := mr.Get("kanban:snapshot:board")
	if err != nil {
		t.Fatalf("key missing in redis: %v", err)
	}
	if raw != `{"todo":[]}` {
		t.Errorf("raw = %s", raw)
	}
	if ttl := mr.TTL("kanban:snapshot:board"); ttl != 0 {
		t.Errorf("snapshot should not expire, ttl = %v", ttl)
	}
}

func TestListAndDeleteSlots(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	_ = store.Save(ctx, "work", []byte("w"))
	_ = store.Save(ctx, "home", []byte("h"))
	if err := mr.Set("unrelated", "x"); err != nil {
		t.Fatalf("seed key: %v", err)
	}

	slots, err := store.ListSlots(ctx)
	if err != nil {
		t.Fatalf("ListSlots: %v", err)
	}
	if !reflect.DeepEqual(slots, []string{"home", "work"}) {
		t.Errorf("slots = %v", slots)
	}

	if err := store.Delete(ctx, "work"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, "work"); err != nil {
		t.Errorf("deleting a missing slot should succeed: %v", err)
	}
	if mr.Exists("kanban:snapshot:work") {
		t.Error("work key still present")
	}
	if !mr.Exists("unrelated") {
		t.Error("unrelated key was removed")
	}
}

func TestSaveFailsWhenServerDown(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	if err := store.Save(context.Background(), "board", []byte("x")); err == nil {
		t.Fatal("expected Save to fail")
	}
	_, err := store.Load(context.Background(), "board")
	if err == nil || errors.Is(err, secondary.ErrSnapshotNotFound) {
		t.Fatalf("err = %v, want connection failure", err)
	}
}

func TestDial(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	store, err := Dial(context.Background(), mr.Addr())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer store.Close()

	mr.Close()
	if _, err := Dial(context.Background(), mr.Addr()); err == nil {
		t.Error("expected Dial to fail against a stopped server")
	}
}
