package app

import (
	"context"
	"testing"

	"github.com/riskibarqy/xmlsoccer-import/internal/config"
	"github.com/riskibarqy/xmlsoccer-import/internal/platform/logging"
)

func TestNew_MemoryStorage(t *testing.T) {
	cfg := config.Config{
		StorageDriver:   config.StorageMemory,
		CacheDriver:     config.CacheMemory,
		CacheMaxEntries: 16,
		ImportWorkers:   2,
	}

	a, err := New(context.Background(), cfg, "flag-key", logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer a.Close()

	if a.Client == nil || a.Imports == nil {
		t.Fatalf("expected client and import service to be wired")
	}

	leagues, err := a.Imports.ListLeagues(context.Background())
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(leagues) != 0 {
		t.Fatalf("expected empty store, got %d leagues", len(leagues))
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	cfg := config.Config{
		StorageDriver: config.StorageMemory,
		CacheDriver:   config.CacheNone,
	}

	if _, err := New(context.Background(), cfg, "", logging.NewNop()); err == nil {
		t.Fatalf("expected error without an api key")
	}
}

func TestNew_RedisCacheFailsFast(t *testing.T) {
	cfg := config.Config{
		StorageDriver: config.StorageMemory,
		CacheDriver:   config.CacheRedis,
	}

	if _, err := New(context.Background(), cfg, "key", logging.NewNop()); err == nil {
		t.Fatalf("expected error for redis cache without addr")
	}
}

func TestClose_Idempotent(t *testing.T) {
	calls := 0
	a := &App{closers: []func() error{func() error { calls++; return nil }}}

	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected closer to run once, ran %d times", calls)
	}
}
