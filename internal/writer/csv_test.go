package writer

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type testRow struct {
	name  string
	price *decimal.Decimal
}

func (r testRow) Record() []string {
	return []string{r.name, DecimalCell(r.price)}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	return records
}

func TestCSVWriter_WriteRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "rows.csv")
	w := NewCSVWriter(path, []string{"name", "price"}, nil)

	p := decimal.RequireFromString("0.65")
	rows := []testRow{
		{name: "A", price: &p},
		{name: "B, with comma"},
	}
	if err := WriteRows(w, rows); err != nil {
		t.Fatalf("WriteRows() error = %v", err)
	}

	got := readCSV(t, path)
	want := [][]string{
		{"name", "price"},
		{"A", "0.65"},
		{"B, with comma", ""},
	}
	if len(got) != len(want) {
		t.Fatalf("records = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if strings.Join(got[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("record %d = %v, want %v", i, got[i], want[i])
		}
	}

	stats := w.Stats()
	if stats.FilesWritten != 1 || stats.RowsWritten != 2 {
		t.Errorf("Stats() = %+v, want 1 file, 2 rows", stats)
	}
}

func TestCSVWriter_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	w := NewCSVWriter(path, []string{"a", "b"}, nil)

	if err := w.WriteRecords(nil); err != nil {
		t.Fatalf("WriteRecords() error = %v", err)
	}

	got := readCSV(t, path)
	if len(got) != 1 || got[0][0] != "a" {
		t.Errorf("records = %v, want header only", got)
	}
}

func TestCSVWriter_Replaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	if err := os.WriteFile(path, []byte("stale\ncontent\nhere\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := NewCSVWriter(path, []string{"x"}, nil)
	if err := w.WriteRecords([][]string{{"1"}}); err != nil {
		t.Fatalf("WriteRecords() error = %v", err)
	}

	got := readCSV(t, path)
	if len(got) != 2 || got[1][0] != "1" {
		t.Errorf("records = %v, want header + 1", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want only the output file", len(entries))
	}
}

func TestCSVWriter_FieldCountMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	w := NewCSVWriter(path, []string{"a", "b"}, nil)

	if err := w.WriteRecords([][]string{{"only-one"}}); err == nil {
		t.Fatal("expected error for short record")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("output should not exist after a failed write, stat err = %v", err)
	}
}

func TestCells(t *testing.T) {
	d := decimal.RequireFromString("0.4000")
	if got := DecimalCell(&d); got != "0.4" {
		t.Errorf("DecimalCell = %q, want 0.4", got)
	}
	if got := DecimalCell(nil); got != "" {
		t.Errorf("DecimalCell(nil) = %q, want empty", got)
	}

	est := time.FixedZone("EST", -5*3600)
	ts := time.Date(2024, 11, 5, 12, 0, 0, 0, est)
	if got := TimeCell(ts); got != "2024-11-05T17:00:00Z" {
		t.Errorf("TimeCell = %q, want 2024-11-05T17:00:00Z", got)
	}
	if got := TimeCell(time.Time{}); got != "" {
		t.Errorf("TimeCell(zero) = %q, want empty", got)
	}
	if got := IntCell(42); got != "42" {
		t.Errorf("IntCell = %q, want 42", got)
	}
}
