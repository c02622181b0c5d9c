// Package docstore provides read-only access to schemaless document
// collections. The dashboard never writes through this package.
//
// Records are untyped field maps; use the Record accessors to resolve a
// value through an ordered list of candidate field names.
package docstore

import "context"

// Filter is a single equality condition on a field.
type Filter struct {
	Field string
	Value any
}

// Query describes a filtered, ordered, limited read of a collection.
// A zero Query matches every record in store iteration order.
type Query struct {
	Filters    []Filter
	OrderBy    string // sort field; "" means unordered
	Descending bool
	Limit      int64 // 0 means no limit
}

// Store is the read capability the aggregation layer depends on.
//
// Implementations must treat collections they have never seen as empty
// rather than erroring, so a fresh database serves an empty dashboard.
type Store interface {
	// ListAll returns every record in the collection.
	ListAll(ctx context.Context, collection string) ([]Record, error)

	// GetByID returns the record with the given document id.
	// The boolean reports whether the record exists; a missing record is
	// not an error.
	GetByID(ctx context.Context, collection, id string) (Record, bool, error)

	// Query returns the records matching q.
	Query(ctx context.Context, collection string, q Query) ([]Record, error)
}
