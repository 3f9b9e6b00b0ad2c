//-------------------------------------------------------------------------
//
// martgen - star-schema warehouse builder
//
// Copyright (c) 2025 - 2026, the martgen authors
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

package table

import (
	"strconv"
	"testing"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	tbl := New("customer_id", "name")
	rows := [][]string{
		{"10", "Perez"},
		{"20", "Lopez"},
		{"30", "Ramirez"},
	}
	for _, row := range rows {
		if err := tbl.AppendRow(row...); err != nil {
			t.Fatalf("AppendRow failed: %v", err)
		}
	}
	return tbl
}

func TestAppendRowLengthMismatch(t *testing.T) {
	tbl := New("a", "b")
	if err := tbl.AppendRow("only one"); err == nil {
		t.Error("expected error for short row")
	}
}

func TestInsertIDsSequence(t *testing.T) {
	tbl := sampleTable(t)
	out, err := InsertIDs(tbl, 100)
	if err != nil {
		t.Fatalf("InsertIDs failed: %v", err)
	}
	if out.Columns[0] != "id" {
		t.Errorf("first column = %q, want id", out.Columns[0])
	}
	if out.Len() != tbl.Len() {
		t.Fatalf("row count changed: %d != %d", out.Len(), tbl.Len())
	}
	for i := range out.Rows {
		id, err := out.Get(i, "id")
		if err != nil {
			t.Fatalf("Get id failed: %v", err)
		}
		want := strconv.Itoa(100 + i)
		if id != want {
			t.Errorf("row %d id = %q, want %q", i, id, want)
		}
	}
}

func TestInsertIDsDoesNotMutateInput(t *testing.T) {
	tbl := sampleTable(t)
	if _, err := InsertIDs(tbl, 0); err != nil {
		t.Fatalf("InsertIDs failed: %v", err)
	}
	if len(tbl.Columns) != 2 {
		t.Errorf("input table gained columns: %v", tbl.Columns)
	}
	if got, _ := tbl.Get(0, "customer_id"); got != "10" {
		t.Errorf("input table cell changed: %q", got)
	}
}

func TestInsertIDsNegativeOffset(t *testing.T) {
	tbl := sampleTable(t)
	if _, err := InsertIDs(tbl, -1); err == nil {
		t.Error("expected error for negative starting id")
	}
}

func TestCloneIsDeep(t *testing.T) {
	tbl := sampleTable(t)
	clone := tbl.Clone()
	if err := clone.Set(0, "name", "changed"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, _ := tbl.Get(0, "name"); got != "Perez" {
		t.Errorf("mutating clone changed original: %q", got)
	}
}

func TestSelectOrderAndSubset(t *testing.T) {
	tbl := sampleTable(t)
	out, err := tbl.Select("name", "customer_id")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if out.Columns[0] != "name" || out.Columns[1] != "customer_id" {
		t.Errorf("columns = %v", out.Columns)
	}
	if got, _ := out.Get(1, "name"); got != "Lopez" {
		t.Errorf("row 1 name = %q", got)
	}
}

func TestSelectUnknownColumn(t *testing.T) {
	tbl := sampleTable(t)
	if _, err := tbl.Select("missing"); err == nil {
		t.Error("expected error for unknown column")
	}
}

func TestRename(t *testing.T) {
	tbl := sampleTable(t)
	if err := tbl.Rename("customer_id", "client_id"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if tbl.ColumnIndex("client_id") != 0 {
		t.Errorf("client_id not at index 0: %v", tbl.Columns)
	}
	if tbl.ColumnIndex("customer_id") != -1 {
		t.Error("old column name still present")
	}
}

func TestAddConstBroadcasts(t *testing.T) {
	tbl := sampleTable(t)
	tbl.AddConst("stamp", "2024-01-01 00:00:00")
	for i := range tbl.Rows {
		if got, _ := tbl.Get(i, "stamp"); got != "2024-01-01 00:00:00" {
			t.Errorf("row %d stamp = %q", i, got)
		}
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	tbl := sampleTable(t)
	out := tbl.Filter(func(row int) bool {
		v, _ := tbl.Get(row, "customer_id")
		return v != "20"
	})
	if out.Len() != 2 {
		t.Fatalf("filtered rows = %d, want 2", out.Len())
	}
	if got, _ := out.Get(1, "customer_id"); got != "30" {
		t.Errorf("second kept row = %q, want 30", got)
	}
}

func TestDistinctSorted(t *testing.T) {
	tbl := New("d")
	for _, v := range []string{"2024-03-01", "2024-01-01", "2024-03-01", "2024-02-01"} {
		if err := tbl.AppendRow(v); err != nil {
			t.Fatalf("AppendRow failed: %v", err)
		}
	}
	got, err := tbl.DistinctSorted("d")
	if err != nil {
		t.Fatalf("DistinctSorted failed: %v", err)
	}
	want := []string{"2024-01-01", "2024-02-01", "2024-03-01"}
	if len(got) != len(want) {
		t.Fatalf("distinct values = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("distinct[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSumByGroups(t *testing.T) {
	tbl := New("invoice_id", "total")
	rows := [][]string{
		{"1", "10"},
		{"1", "15"},
		{"2", "7.25"},
	}
	for _, row := range rows {
		if err := tbl.AppendRow(row...); err != nil {
			t.Fatalf("AppendRow failed: %v", err)
		}
	}
	sums, err := tbl.SumBy("invoice_id", "total")
	if err != nil {
		t.Fatalf("SumBy failed: %v", err)
	}
	if got := sums["1"].String(); got != "25" {
		t.Errorf("invoice 1 sum = %s, want 25", got)
	}
	if got := sums["2"].String(); got != "7.25" {
		t.Errorf("invoice 2 sum = %s, want 7.25", got)
	}
}

func TestSumByBadValue(t *testing.T) {
	tbl := New("g", "v")
	if err := tbl.AppendRow("1", "not-a-number"); err != nil {
		t.Fatalf("AppendRow failed: %v", err)
	}
	if _, err := tbl.SumBy("g", "v"); err == nil {
		t.Error("expected error for unparseable value")
	}
}

func TestLeftJoinMatchesAndMisses(t *testing.T) {
	left := New("client_id", "total")
	for _, row := range [][]string{{"10", "5"}, {"99", "6"}} {
		if err := left.AppendRow(row...); err != nil {
			t.Fatalf("AppendRow failed: %v", err)
		}
	}
	right := New("customer_dim_id", "client_id")
	if err := right.AppendRow("0", "10"); err != nil {
		t.Fatalf("AppendRow failed: %v", err)
	}

	out, err := LeftJoin(left, right, "client_id")
	if err != nil {
		t.Fatalf("LeftJoin failed: %v", err)
	}
	if out.Len() != 2 {
		t.Fatalf("join dropped rows: %d", out.Len())
	}
	if got, _ := out.Get(0, "customer_dim_id"); got != "0" {
		t.Errorf("matched row dim id = %q, want 0", got)
	}
	if got, _ := out.Get(1, "customer_dim_id"); got != "" {
		t.Errorf("unmatched row dim id = %q, want empty", got)
	}
}

func TestLeftJoinDuplicateRightKeysFirstWins(t *testing.T) {
	left := New("k")
	if err := left.AppendRow("a"); err != nil {
		t.Fatalf("AppendRow failed: %v", err)
	}
	right := New("id", "k")
	for _, row := range [][]string{{"1", "a"}, {"2", "a"}} {
		if err := right.AppendRow(row...); err != nil {
			t.Fatalf("AppendRow failed: %v", err)
		}
	}
	out, err := LeftJoin(left, right, "k")
	if err != nil {
		t.Fatalf("LeftJoin failed: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("join duplicated rows: %d", out.Len())
	}
	if got, _ := out.Get(0, "id"); got != "1" {
		t.Errorf("joined id = %q, want 1", got)
	}
}

func TestLeftJoinMissingKey(t *testing.T) {
	left := New("a")
	right := New("b")
	if _, err := LeftJoin(left, right, "a"); err == nil {
		t.Error("expected error when right side lacks the key")
	}
}
