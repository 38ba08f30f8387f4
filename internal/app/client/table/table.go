// Package table sorts and paginates rows for display. It is generic over
// the row type; columns describe how to read a comparable value from a row.
package table

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const DefaultPageSize = 10

type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Column describes one table column. A column with an empty Key or a nil
// Value cannot be sorted.
type Column[T any] struct {
	Key    string
	Header string
	// Value returns the sortable string form of the cell; false means absent.
	Value func(T) (string, bool)
	// Cell renders the cell for display. Defaults to Value.
	Cell func(T) string
}

func (c Column[T]) Sortable() bool {
	return c.Key != "" && c.Value != nil
}

// Render returns the display text of the cell.
func (c Column[T]) Render(row T) string {
	if c.Cell != nil {
		return c.Cell(row)
	}
	if c.Value != nil {
		if v, ok := c.Value(row); ok {
			return v
		}
	}
	return ""
}

type Table[T any] struct {
	columns  []Column[T]
	rows     []T
	sorted   []T
	sortKey  string
	dir      Direction
	page     int
	pageSize int
	collator *collate.Collator
}

// New returns a table showing pageSize rows per page. A non-positive
// pageSize falls back to DefaultPageSize.
func New[T any](columns []Column[T], pageSize int) *Table[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Table[T]{
		columns:  columns,
		page:     1,
		pageSize: pageSize,
		collator: collate.New(language.Und),
	}
}

func (t *Table[T]) Columns() []Column[T] {
	return t.columns
}

// SetRows replaces the data, keeping the current sort and clamping the page.
func (t *Table[T]) SetRows(rows []T) {
	t.rows = rows
	t.resort()
	t.SetPage(t.page)
}

// ToggleSort flips the direction when key is the current sort column,
// otherwise sorts ascending by key. Sorting always returns to page 1.
func (t *Table[T]) ToggleSort(key string) error {
	dir := Asc
	if key == t.sortKey && t.dir == Asc {
		dir = Desc
	}
	return t.SortBy(key, dir)
}

func (t *Table[T]) SortBy(key string, dir Direction) error {
	col, ok := t.column(key)
	if !ok {
		return fmt.Errorf("unknown column %q", key)
	}
	if !col.Sortable() {
		return fmt.Errorf("column %q is not sortable", key)
	}

	t.sortKey = key
	t.dir = dir
	t.page = 1
	t.resort()
	return nil
}

// Sort returns the current sort column and direction. The key is empty
// while rows are in their original order.
func (t *Table[T]) Sort() (string, Direction) {
	return t.sortKey, t.dir
}

func (t *Table[T]) Page() int {
	return t.page
}

func (t *Table[T]) PageSize() int {
	return t.pageSize
}

func (t *Table[T]) Len() int {
	return len(t.rows)
}

// SetPage moves to page p, clamped to the valid range.
func (t *Table[T]) SetPage(p int) {
	if last := t.TotalPages(); p > last {
		p = last
	}
	if p < 1 {
		p = 1
	}
	t.page = p
}

func (t *Table[T]) Next() {
	if t.HasNext() {
		t.page++
	}
}

func (t *Table[T]) Prev() {
	if t.HasPrev() {
		t.page--
	}
}

func (t *Table[T]) HasPrev() bool {
	return t.page > 1
}

func (t *Table[T]) HasNext() bool {
	return t.page < t.TotalPages()
}

func (t *Table[T]) TotalPages() int {
	return (len(t.rows) + t.pageSize - 1) / t.pageSize
}

// Rows returns the rows of the current page.
func (t *Table[T]) Rows() []T {
	start, end := t.bounds()
	return t.sorted[start:end]
}

// RangeLabel describes the visible slice, e.g. "Showing 21 to 25 of 25 items".
func (t *Table[T]) RangeLabel() string {
	total := len(t.rows)
	if total == 0 {
		return "Showing 0 to 0 of 0 items"
	}
	start, end := t.bounds()
	return fmt.Sprintf("Showing %d to %d of %d items", start+1, end, total)
}

func (t *Table[T]) bounds() (int, int) {
	start := (t.page - 1) * t.pageSize
	if start > len(t.sorted) {
		start = len(t.sorted)
	}
	end := min(start+t.pageSize, len(t.sorted))
	return start, end
}

func (t *Table[T]) column(key string) (Column[T], bool) {
	for _, c := range t.columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

func (t *Table[T]) resort() {
	t.sorted = make([]T, len(t.rows))
	copy(t.sorted, t.rows)

	col, ok := t.column(t.sortKey)
	if !ok || !col.Sortable() {
		return
	}

	sort.SliceStable(t.sorted, func(i, j int) bool {
		return t.less(col, t.sorted[i], t.sorted[j])
	})
}

// less orders present values by collation in the current direction.
// Absent values always come last.
func (t *Table[T]) less(col Column[T], a, b T) bool {
	av, aok := col.Value(a)
	bv, bok := col.Value(b)
	switch {
	case !aok:
		return false
	case !bok:
		return true
	}

	cmp := t.collator.CompareString(av, bv)
	if t.dir == Desc {
		cmp = -cmp
	}
	return cmp < 0
}
