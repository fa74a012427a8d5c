package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"tenderdesk/internal/cache"
	"tenderdesk/internal/domain"
)

const menuPayload = `{"menuStructure":[
	{"id":"dashboard","name":"Dashboard","path":"/dashboard","permission":"dashboard","order":1},
	{"id":"tender","name":"Tender","path":"/tender","permission":"tender","order":2,"subItems":[
		{"id":"tender-list","name":"Tenders","path":"/tender/list","order":1}
	]}
]}`

func testMenuCache(t *testing.T) *cache.MenuCache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return cache.NewMenuCache(rdb, time.Minute, testLogger())
}

func TestPublishedNotFound(t *testing.T) {
	svc := NewMenuService(&fakeMenuRepo{}, nil, testLogger())

	_, err := svc.Published(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Published() error = %v, want ErrNotFound", err)
	}
}

func TestPublishThenPublished(t *testing.T) {
	repo := &fakeMenuRepo{}
	svc := NewMenuService(repo, nil, testLogger())
	ctx := context.Background()

	published, err := svc.Publish(ctx, testIdentity(), []byte(menuPayload))
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if len(published) != 2 {
		t.Fatalf("Publish() returned %d items, want 2", len(published))
	}

	items, err := svc.Published(ctx)
	if err != nil {
		t.Fatalf("Published() error = %v", err)
	}
	if len(items) != 2 || items[1].ID != "tender" {
		t.Errorf("Published() items = %+v, want the published tree", items)
	}
	if len(items[1].SubItems) != 1 {
		t.Errorf("sub-items were not preserved: %+v", items[1].SubItems)
	}
}

func TestPublishRejectsInvalidPayload(t *testing.T) {
	repo := &fakeMenuRepo{}
	svc := NewMenuService(repo, nil, testLogger())

	_, err := svc.Publish(context.Background(), testIdentity(), []byte(`{"menuStructure":`))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Publish() error = %v, want ErrValidation", err)
	}
	if repo.saveCalls != 0 {
		t.Errorf("repository Save called %d times, want 0", repo.saveCalls)
	}
}

func TestPublishStripsDroppedEntries(t *testing.T) {
	repo := &fakeMenuRepo{}
	svc := NewMenuService(repo, nil, testLogger())
	ctx := context.Background()

	payload := `{"menuStructure":[
		{"id":"dashboard","name":"Dashboard","path":"/dashboard","order":1},
		{"name":"No identifier","path":"/broken","order":2}
	]}`
	items, err := svc.Publish(ctx, testIdentity(), []byte(payload))
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Publish() returned %d items, want the invalid entry dropped", len(items))
	}

	// The stored document must hold the sanitized form.
	stored, err := svc.Published(ctx)
	if err != nil {
		t.Fatalf("Published() error = %v", err)
	}
	if len(stored) != 1 || stored[0].ID != "dashboard" {
		t.Errorf("stored items = %+v, want only %q", stored, "dashboard")
	}
}

func TestResolvedFallsBackToDefault(t *testing.T) {
	svc := NewMenuService(&fakeMenuRepo{}, nil, testLogger())

	items, err := svc.Resolved(context.Background())
	if err != nil {
		t.Fatalf("Resolved() error = %v", err)
	}
	if len(items) == 0 {
		t.Fatal("Resolved() returned no items, want the built-in default tree")
	}
}

func TestPublishedUsesCache(t *testing.T) {
	repo := &fakeMenuRepo{}
	svc := NewMenuService(repo, testMenuCache(t), testLogger())
	ctx := context.Background()

	if _, err := svc.Publish(ctx, testIdentity(), []byte(menuPayload)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	// Publish primes the cache, so reads never reach the repository.
	before := repo.getCalls
	for range 3 {
		if _, err := svc.Published(ctx); err != nil {
			t.Fatalf("Published() error = %v", err)
		}
	}
	if repo.getCalls != before {
		t.Errorf("repository Get called %d times after publish, want 0", repo.getCalls-before)
	}
}
