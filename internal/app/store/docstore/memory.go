// internal/app/store/docstore/memory.go
package docstore

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-process Store used by tests and local development.
// Collections it has never seen read as empty.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]Record
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]Record)}
}

// Put appends a record to a collection.
func (m *Memory) Put(collection string, rec Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], rec)
}

// ListAll returns a copy of every record in the collection.
func (m *Memory) ListAll(ctx context.Context, collection string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Record(nil), m.collections[collection]...), nil
}

// GetByID returns the record with the given id, if present.
func (m *Memory) GetByID(ctx context.Context, collection, id string) (Record, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, rec := range m.collections[collection] {
		if rec.ID == id {
			return rec, true, nil
		}
	}
	return Record{}, false, nil
}

// Query filters, orders, and limits records in memory. Records missing the
// sort field sort after records that have it, regardless of direction,
// mirroring how the production store orders missing keys last.
func (m *Memory) Query(ctx context.Context, collection string, q Query) ([]Record, error) {
	m.mu.RLock()
	rows := append([]Record(nil), m.collections[collection]...)
	m.mu.RUnlock()

	if len(q.Filters) > 0 {
		filtered := rows[:0]
		for _, rec := range rows {
			if matchesAll(rec, q.Filters) {
				filtered = append(filtered, rec)
			}
		}
		rows = filtered
	}

	if q.OrderBy != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			return lessByField(rows[i], rows[j], q.OrderBy, q.Descending)
		})
	}

	if q.Limit > 0 && int64(len(rows)) > q.Limit {
		rows = rows[:q.Limit]
	}
	return rows, nil
}

func matchesAll(rec Record, filters []Filter) bool {
	for _, f := range filters {
		if rec.Fields[f.Field] != f.Value {
			return false
		}
	}
	return true
}

func lessByField(a, b Record, field string, desc bool) bool {
	at, aok := a.Time(field)
	bt, bok := b.Time(field)
	if aok && bok {
		if desc {
			return at.After(bt)
		}
		return at.Before(bt)
	}
	if aok != bok {
		// Present keys sort before missing ones.
		return aok
	}

	an, aok := a.Number(field)
	bn, bok := b.Number(field)
	if aok && bok {
		if desc {
			return an > bn
		}
		return an < bn
	}
	if aok != bok {
		return aok
	}

	as, aok := a.String(field)
	bs, bok := b.String(field)
	if aok && bok {
		if desc {
			return as > bs
		}
		return as < bs
	}
	return aok && !bok
}
