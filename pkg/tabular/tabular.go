// Package tabular is the in-memory table engine behind every dashboard
// grid: case-insensitive substring search over selected columns, stable
// single-column sort with direction toggling, and fixed-size pagination
// that re-clamps whenever the visible set changes.
package tabular

import (
	"sort"
	"strings"
)

// Column describes one table column over rows of type T.
type Column[T any] struct {
	Key        string
	Sortable   bool
	Searchable bool
	// Value renders the cell as text, used for search and CSV export.
	Value func(row T) string
	// Less orders two rows ascending by this column. Required when Sortable.
	Less func(a, b T) bool
}

// View holds the widget state for one row set. Not safe for concurrent use;
// each consumer owns its own View.
type View[T any] struct {
	rows     []T
	columns  []Column[T]
	query    string
	sortKey  string
	desc     bool
	pageSize int
	page     int
}

// NewView builds a view with the given page size. A non-positive page size
// means a single unbounded page.
func NewView[T any](rows []T, columns []Column[T], pageSize int) *View[T] {
	return &View[T]{rows: rows, columns: columns, pageSize: pageSize}
}

// SetRows replaces the underlying row set, keeping search/sort state. The
// current page re-clamps on the next read.
func (v *View[T]) SetRows(rows []T) { v.rows = rows }

// Search sets the filter query and resets to the first page. Matching is
// case-insensitive substring over the searchable columns.
func (v *View[T]) Search(query string) {
	v.query = strings.ToLower(strings.TrimSpace(query))
	v.page = 0
}

// Sort orders by the given column key. Selecting the key already active
// toggles the direction; a new key starts ascending. Unknown and
// non-sortable keys are ignored.
func (v *View[T]) Sort(key string) {
	col := v.column(key)
	if col == nil || !col.Sortable || col.Less == nil {
		return
	}
	if v.sortKey == key {
		v.desc = !v.desc
		return
	}
	v.sortKey = key
	v.desc = false
}

// SortState reports the active sort column and whether it is descending.
func (v *View[T]) SortState() (key string, desc bool) { return v.sortKey, v.desc }

// SetPage moves to the given zero-based page. Out-of-range values clamp on
// read rather than erroring.
func (v *View[T]) SetPage(page int) { v.page = page }

func (v *View[T]) column(key string) *Column[T] {
	for i := range v.columns {
		if v.columns[i].Key == key {
			return &v.columns[i]
		}
	}
	return nil
}

func (v *View[T]) visible() []T {
	out := make([]T, 0, len(v.rows))
	if v.query == "" {
		out = append(out, v.rows...)
	} else {
		for _, row := range v.rows {
			for _, col := range v.columns {
				if !col.Searchable || col.Value == nil {
					continue
				}
				if strings.Contains(strings.ToLower(col.Value(row)), v.query) {
					out = append(out, row)
					break
				}
			}
		}
	}
	if col := v.column(v.sortKey); col != nil && col.Less != nil {
		less := col.Less
		if v.desc {
			// Stable descending: flip the comparison, keep equal-key order.
			sort.SliceStable(out, func(i, j int) bool { return less(out[j], out[i]) })
		} else {
			sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
		}
	}
	return out
}

// Page is one rendered slice of the filtered, sorted set.
type Page[T any] struct {
	Rows      []T
	Index     int
	PageCount int
	TotalRows int
}

// Page materializes the current page, clamping the page index into range
// after any shrink of the visible set. An empty set yields page 0 of 0.
func (v *View[T]) Page() Page[T] {
	rows := v.visible()
	if v.pageSize <= 0 {
		return Page[T]{Rows: rows, Index: 0, PageCount: pageCountFor(len(rows), len(rows)), TotalRows: len(rows)}
	}
	count := pageCountFor(len(rows), v.pageSize)
	if v.page >= count {
		v.page = count - 1
	}
	if v.page < 0 {
		v.page = 0
	}
	if count == 0 {
		return Page[T]{Rows: []T{}, Index: 0, PageCount: 0, TotalRows: 0}
	}
	start := v.page * v.pageSize
	end := start + v.pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return Page[T]{Rows: rows[start:end], Index: v.page, PageCount: count, TotalRows: len(rows)}
}

func pageCountFor(total, size int) int {
	if total == 0 {
		return 0
	}
	if size <= 0 {
		return 1
	}
	return (total + size - 1) / size
}
