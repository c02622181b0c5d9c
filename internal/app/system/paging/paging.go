// Package paging provides offset pagination over in-memory slices.
//
// The dashboard fetches full snapshots and paginates client-side, so there
// is no cursor machinery here: just slice math.
package paging

// PageSize is the default number of rows shown in paged dashboard lists.
const PageSize = 25

// TotalPages returns ceil(length/size). Zero when the sequence is empty.
func TotalPages(length, size int) int {
	if length <= 0 || size <= 0 {
		return 0
	}
	return (length + size - 1) / size
}

// Slice returns the rows for the 1-based page: [(page-1)*size, page*size).
// Pages outside [1, TotalPages] yield an empty slice rather than panicking.
func Slice[T any](rows []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(rows) {
		return nil
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// Range holds 1-based display range values for a paginated list.
type Range struct {
	Start int // 0 if no results
	End   int // 0 if no results
	Total int // total row count
}

// ComputeRange calculates the display range for a page of a sequence of the
// given length.
func ComputeRange(length, page, size int) Range {
	shown := len(Slice(make([]struct{}, max(length, 0)), page, size))
	if shown == 0 {
		return Range{Total: max(length, 0)}
	}
	start := (page-1)*size + 1
	return Range{Start: start, End: start + shown - 1, Total: length}
}
