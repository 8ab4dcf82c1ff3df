// internal/screening/table.go
//
// The working-copy manager. A Table is the in-memory form of either CSV
// file: an ordered column list plus one field map per row. Row identity is
// positional; the working copy never grows, shrinks, or reorders after it
// is materialized - only the include/reason values mutate.

package screening

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Row maps column name to value. Column order lives on the Table.
type Row map[string]string

// Table is an in-memory CSV file with named columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// Include values recorded for a decided row.
const (
	IncludeYes = "yes"
	IncludeNo  = "no"
)

// ResolveEncoding maps a user-facing encoding name (utf-8, latin1,
// windows-1252, ...) to a text encoding. The empty string and utf-8 mean
// plain passthrough.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" || name == "utf-8" || name == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

func decodeReader(r io.Reader, enc encoding.Encoding) io.Reader {
	if enc == nil {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}

func encodeWriter(w io.Writer, enc encoding.Encoding) io.Writer {
	if enc == nil {
		return w
	}
	return transform.NewWriter(w, enc.NewEncoder())
}

// ReadFile loads a CSV file into a Table. The first record is the header;
// missing trailing fields are tolerated and read as empty strings.
func ReadFile(path string, enc encoding.Encoding) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("screening: open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(decodeReader(f, enc))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("screening: parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	t := &Table{Columns: records[0]}
	for _, rec := range records[1:] {
		row := make(Row, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Save writes the full table to path atomically: the bytes go to a
// temporary sibling first and replace the target in a single rename, so an
// interrupted save leaves either the old file or the new one, never a torn
// mix.
func (t *Table) Save(path string, enc encoding.Encoding) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("screening: create %s: %w", tmp, err)
	}
	// Any failure past this point must not leave the temp sibling behind.
	fail := func(err error) error {
		f.Close()
		os.Remove(tmp)
		return err
	}
	writer := csv.NewWriter(encodeWriter(f, enc))
	if err := writer.Write(t.Columns); err != nil {
		return fail(fmt.Errorf("screening: write header: %w", err))
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return fail(fmt.Errorf("screening: write row: %w", err))
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fail(fmt.Errorf("screening: flush %s: %w", tmp, err))
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("screening: close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("screening: replace %s: %w", path, err)
	}
	return nil
}

// LoadOrInit returns the session table. An existing working copy is loaded
// and validated unless rebuild is set; otherwise the input is read,
// validated, extended with empty include/reason columns, and written out as
// the fresh working copy. resumed reports which path was taken.
func LoadOrInit(inputPath, workPath string, enc encoding.Encoding, rebuild bool) (t *Table, resumed bool, err error) {
	if _, statErr := os.Stat(workPath); statErr == nil && !rebuild {
		t, err = ReadFile(workPath, enc)
		if err != nil {
			return nil, false, err
		}
		if err = ValidateColumns(t.Columns, true); err != nil {
			return nil, false, err
		}
		return t, true, nil
	}

	t, err = ReadFile(inputPath, enc)
	if err != nil {
		return nil, false, err
	}
	if err = ValidateColumns(t.Columns, false); err != nil {
		return nil, false, err
	}
	for _, col := range []string{IncludeColumn, ReasonColumn} {
		if !t.HasColumn(col) {
			t.Columns = append(t.Columns, col)
		}
	}
	for _, row := range t.Rows {
		if _, ok := row[IncludeColumn]; !ok {
			row[IncludeColumn] = ""
		}
		if _, ok := row[ReasonColumn]; !ok {
			row[ReasonColumn] = ""
		}
	}
	if err = t.Save(workPath, enc); err != nil {
		return nil, false, err
	}
	return t, false, nil
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Field returns a row's value for a column, empty when absent.
func (t *Table) Field(i int, col string) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	return t.Rows[i][col]
}

// Decided reports whether row i carries a recorded decision.
func (t *Table) Decided(i int) bool {
	v := strings.TrimSpace(t.Field(i, IncludeColumn))
	return v == IncludeYes || v == IncludeNo
}

// DecidedCount counts rows with a recorded decision.
func (t *Table) DecidedCount() int {
	n := 0
	for i := range t.Rows {
		if t.Decided(i) {
			n++
		}
	}
	return n
}

// IncludedCount counts rows marked include=yes.
func (t *Table) IncludedCount() int {
	n := 0
	for i := range t.Rows {
		if strings.TrimSpace(t.Field(i, IncludeColumn)) == IncludeYes {
			n++
		}
	}
	return n
}

// SetDecision records a decision on row i.
func (t *Table) SetDecision(i int, include, reason string) {
	if i < 0 || i >= len(t.Rows) {
		return
	}
	t.Rows[i][IncludeColumn] = include
	t.Rows[i][ReasonColumn] = reason
}

// PendingIndexes returns the positions of all undecided rows, in file order.
func (t *Table) PendingIndexes() []int {
	var idx []int
	for i := range t.Rows {
		if !t.Decided(i) {
			idx = append(idx, i)
		}
	}
	return idx
}

// AllIndexes returns every row position, in file order.
func (t *Table) AllIndexes() []int {
	idx := make([]int, len(t.Rows))
	for i := range idx {
		idx[i] = i
	}
	return idx
}
