//-------------------------------------------------------------------------
//
// martgen - star-schema warehouse builder
//
// Copyright (c) 2025 - 2026, the martgen authors
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

// Package table implements the in-memory tabular dataset that every
// staging and warehouse build operates on, together with its CSV
// reader/writer. Cells are stored as strings, the way they travel in the
// delimited files; typed interpretation (integers, money, timestamps) is
// applied by the transforms that need it.
package table

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// Table is an ordered set of named columns over an ordered list of rows.
// Row order is insertion order from the source.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New creates an empty table with the given column set.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// AppendRow adds one row. The number of values must match the column count.
func (t *Table) AppendRow(values ...string) error {
	if len(values) != len(t.Columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.Columns))
	}
	t.Rows = append(t.Rows, append([]string(nil), values...))
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := New(t.Columns...)
	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Get returns the cell at the given row for the named column.
func (t *Table) Get(row int, column string) (string, error) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return "", fmt.Errorf("unknown column: %s", column)
	}
	if row < 0 || row >= len(t.Rows) {
		return "", fmt.Errorf("row %d out of range", row)
	}
	return t.Rows[row][idx], nil
}

// Set overwrites the cell at the given row for the named column.
func (t *Table) Set(row int, column, value string) error {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return fmt.Errorf("unknown column: %s", column)
	}
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row %d out of range", row)
	}
	t.Rows[row][idx] = value
	return nil
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("unknown column: %s", name)
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

// Rename changes a column name in place.
func (t *Table) Rename(from, to string) error {
	idx := t.ColumnIndex(from)
	if idx < 0 {
		return fmt.Errorf("unknown column: %s", from)
	}
	t.Columns[idx] = to
	return nil
}

// Select returns a new table restricted to the named columns, in the
// given order.
func (t *Table) Select(columns ...string) (*Table, error) {
	indices := make([]int, len(columns))
	for i, c := range columns {
		idx := t.ColumnIndex(c)
		if idx < 0 {
			return nil, fmt.Errorf("unknown column: %s", c)
		}
		indices[i] = idx
	}
	out := New(columns...)
	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		selected := make([]string, len(indices))
		for j, idx := range indices {
			selected[j] = row[idx]
		}
		out.Rows[i] = selected
	}
	return out, nil
}

// AddConst appends a column holding the same value on every row.
func (t *Table) AddConst(name, value string) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], value)
	}
}

// AddFunc appends a column whose value is computed per row.
func (t *Table) AddFunc(name string, fn func(row int) string) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], fn(i))
	}
}

// Apply rewrites every cell of the named column through fn.
func (t *Table) Apply(column string, fn func(string) string) error {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return fmt.Errorf("unknown column: %s", column)
	}
	for _, row := range t.Rows {
		row[idx] = fn(row[idx])
	}
	return nil
}

// Filter returns a new table containing the rows for which keep returns
// true. Column set and row order are preserved.
func (t *Table) Filter(keep func(row int) bool) *Table {
	out := New(t.Columns...)
	for i, row := range t.Rows {
		if keep(i) {
			out.Rows = append(out.Rows, append([]string(nil), row...))
		}
	}
	return out
}

// DistinctSorted returns the distinct values of the named column in
// ascending order.
func (t *Table) DistinctSorted(column string) ([]string, error) {
	values, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(values))
	distinct := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	sort.Strings(distinct)
	return distinct, nil
}

// SumBy sums the decimal values of valueColumn grouped by the values of
// groupColumn. Cells that fail to parse abort the aggregation.
func (t *Table) SumBy(groupColumn, valueColumn string) (map[string]decimal.Decimal, error) {
	groupIdx := t.ColumnIndex(groupColumn)
	if groupIdx < 0 {
		return nil, fmt.Errorf("unknown column: %s", groupColumn)
	}
	valueIdx := t.ColumnIndex(valueColumn)
	if valueIdx < 0 {
		return nil, fmt.Errorf("unknown column: %s", valueColumn)
	}
	sums := make(map[string]decimal.Decimal)
	for i, row := range t.Rows {
		v, err := decimal.NewFromString(row[valueIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing %s %q: %w", i, valueColumn, row[valueIdx], err)
		}
		sums[row[groupIdx]] = sums[row[groupIdx]].Add(v)
	}
	return sums, nil
}

// InsertIDs returns a copy of the table with a leading integer column
// named "id", assigned sequentially from startingID in row order. The
// input table is never modified.
func InsertIDs(t *Table, startingID int) (*Table, error) {
	if startingID < 0 {
		return nil, fmt.Errorf("starting id must be non-negative, got %d", startingID)
	}
	out := New(append([]string{"id"}, t.Columns...)...)
	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		withID := make([]string, 0, len(row)+1)
		withID = append(withID, strconv.Itoa(startingID+i))
		withID = append(withID, row...)
		out.Rows[i] = withID
	}
	return out, nil
}

// LeftJoin joins every row of left against at most one row of right with
// an equal value in the key column, which must exist on both sides. Right
// columns other than the key are appended to the result; rows of left
// with no match keep empty cells there. When right holds duplicate keys
// the first occurrence wins.
func LeftJoin(left, right *Table, key string) (*Table, error) {
	leftIdx := left.ColumnIndex(key)
	if leftIdx < 0 {
		return nil, fmt.Errorf("left table has no column %s", key)
	}
	rightIdx := right.ColumnIndex(key)
	if rightIdx < 0 {
		return nil, fmt.Errorf("right table has no column %s", key)
	}

	// Columns carried over from the right side, key excluded.
	carried := make([]int, 0, len(right.Columns)-1)
	columns := append([]string(nil), left.Columns...)
	for i, c := range right.Columns {
		if i == rightIdx {
			continue
		}
		if left.ColumnIndex(c) >= 0 {
			return nil, fmt.Errorf("column %s exists on both sides of join", c)
		}
		carried = append(carried, i)
		columns = append(columns, c)
	}

	index := make(map[string][]string, len(right.Rows))
	for _, row := range right.Rows {
		if _, ok := index[row[rightIdx]]; !ok {
			index[row[rightIdx]] = row
		}
	}

	out := New(columns...)
	out.Rows = make([][]string, len(left.Rows))
	for i, row := range left.Rows {
		joined := make([]string, 0, len(columns))
		joined = append(joined, row...)
		if match, ok := index[row[leftIdx]]; ok {
			for _, c := range carried {
				joined = append(joined, match[c])
			}
		} else {
			for range carried {
				joined = append(joined, "")
			}
		}
		out.Rows[i] = joined
	}
	return out, nil
}
