package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dalemusser/pulseboard/internal/app/store/docstore"
)

// TestContext returns a context with a generous timeout for store calls.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// Fixtures provides helper methods for seeding an in-memory document
// store with dashboard-shaped data.
type Fixtures struct {
	store *docstore.Memory
	t     *testing.T
	seq   int
}

// NewFixtures creates a Fixtures instance backed by a fresh memory store.
func NewFixtures(t *testing.T) *Fixtures {
	t.Helper()
	return &Fixtures{store: docstore.NewMemory(), t: t}
}

// Store returns the underlying store for direct access in tests.
func (f *Fixtures) Store() *docstore.Memory {
	return f.store
}

func (f *Fixtures) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%04d", prefix, f.seq)
}

// AddUser seeds a user document with email, name, and lastLogin.
// Zero lastLogin omits the field entirely.
func (f *Fixtures) AddUser(collection, email, name string, lastLogin time.Time) docstore.Record {
	f.t.Helper()

	fields := map[string]any{
		"createdAt": time.Now().UTC(),
	}
	if email != "" {
		fields["email"] = email
	}
	if name != "" {
		fields["name"] = name
	}
	if !lastLogin.IsZero() {
		fields["lastLogin"] = lastLogin
	}

	rec := docstore.Record{ID: f.nextID("user"), Fields: fields}
	f.store.Put(collection, rec)
	return rec
}

// AddUserWithFields seeds a user document with arbitrary fields.
func (f *Fixtures) AddUserWithFields(collection string, fields map[string]any) docstore.Record {
	f.t.Helper()
	rec := docstore.Record{ID: f.nextID("user"), Fields: fields}
	f.store.Put(collection, rec)
	return rec
}

// AddPaidLink seeds a paid-membership link pointing at userID.
func (f *Fixtures) AddPaidLink(collection, userID string) docstore.Record {
	f.t.Helper()
	rec := docstore.Record{
		ID:     f.nextID("paid"),
		Fields: map[string]any{"userId": userID},
	}
	f.store.Put(collection, rec)
	return rec
}

// AddEvent seeds an activity event document.
func (f *Fixtures) AddEvent(collection string, fields map[string]any) docstore.Record {
	f.t.Helper()
	rec := docstore.Record{ID: f.nextID("event"), Fields: fields}
	f.store.Put(collection, rec)
	return rec
}

// AddTransaction seeds a transaction document.
func (f *Fixtures) AddTransaction(collection string, fields map[string]any) docstore.Record {
	f.t.Helper()
	rec := docstore.Record{ID: f.nextID("txn"), Fields: fields}
	f.store.Put(collection, rec)
	return rec
}
