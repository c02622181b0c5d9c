package testutil

import (
	"context"
	"errors"

	"github.com/dalemusser/pulseboard/internal/app/store/docstore"
)

// ErrStoreDown is the error every FailingStore call returns.
var ErrStoreDown = errors.New("store unavailable")

// FailingStore implements docstore.Store and fails every call. Handler
// tests use it to exercise fallback paths.
type FailingStore struct{}

func (FailingStore) ListAll(ctx context.Context, collection string) ([]docstore.Record, error) {
	return nil, ErrStoreDown
}

func (FailingStore) GetByID(ctx context.Context, collection, id string) (docstore.Record, bool, error) {
	return docstore.Record{}, false, ErrStoreDown
}

func (FailingStore) Query(ctx context.Context, collection string, q docstore.Query) ([]docstore.Record, error) {
	return nil, ErrStoreDown
}

// LookupFailingStore lists collections from the seeded store but fails
// every GetByID and Query call. Join tests use it to break per-record
// lookups while the link list itself reads fine.
type LookupFailingStore struct {
	Seed *docstore.Memory
}

func (s LookupFailingStore) ListAll(ctx context.Context, collection string) ([]docstore.Record, error) {
	return s.Seed.ListAll(ctx, collection)
}

func (s LookupFailingStore) GetByID(ctx context.Context, collection, id string) (docstore.Record, bool, error) {
	return docstore.Record{}, false, ErrStoreDown
}

func (s LookupFailingStore) Query(ctx context.Context, collection string, q docstore.Query) ([]docstore.Record, error) {
	return nil, ErrStoreDown
}
