package lexicon

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedRow is matched by every *MalformedRowError.
var ErrMalformedRow = errors.New("malformed bopomofo row")

// MalformedRowError reports a CSV row whose first field is not "bopomofo pinyin".
type MalformedRowError struct {
	Line   int    // 1-based line in the CSV input
	Field  string // first field as read
	Tokens int    // number of whitespace-separated tokens found
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: malformed row %q: expected 2 whitespace-separated tokens, got %d", e.Line, e.Field, e.Tokens)
}

func (e *MalformedRowError) Is(target error) bool { return target == ErrMalformedRow }

// Table maps pinyin syllables to bopomofo symbols.
// Keys keep the order in which they were first inserted; a repeated key
// overwrites the value in place.
type Table struct {
	keys  []string
	index map[string]string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		index: make(map[string]string),
	}
}

// Set maps pinyin to bopomofo (last write wins).
func (t *Table) Set(pinyin, bopomofo string) {
	if _, ok := t.index[pinyin]; !ok {
		t.keys = append(t.keys, pinyin)
	}
	t.index[pinyin] = bopomofo
}

// Lookup returns the bopomofo symbol for a pinyin syllable.
func (t *Table) Lookup(pinyin string) (string, bool) {
	zy, ok := t.index[pinyin]
	return zy, ok
}

// Keys returns the pinyin syllables in insertion order.
func (t *Table) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Len returns the number of distinct pinyin syllables.
func (t *Table) Len() int { return len(t.keys) }

// Entries calls fn for every (pinyin, bopomofo) pair in insertion order.
func (t *Table) Entries(fn func(pinyin, bopomofo string)) {
	for _, py := range t.keys {
		fn(py, t.index[py])
	}
}

// Rekey returns a new table whose keys are fn(key). Keys that collapse onto
// the same result follow the usual last-write-wins rule.
func (t *Table) Rekey(fn func(string) string) *Table {
	out := NewTable()
	t.Entries(func(py, zy string) {
		out.Set(fn(py), zy)
	})
	return out
}

// LoadBopomofo reads a bopomofo mapping from CSV.
// Format: the first field of each row is "<bopomofo> <pinyin>"; any other
// fields are ignored. There is no header row.
func LoadBopomofo(r io.Reader) (*Table, error) {
	t := NewTable()
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1 // variable fields

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read bopomofo csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		field := record[0]
		if t.Len() == 0 {
			field = strings.TrimPrefix(field, "\ufeff")
		}
		parts := strings.Fields(field)
		if len(parts) != 2 {
			return nil, &MalformedRowError{Line: line, Field: record[0], Tokens: len(parts)}
		}
		t.Set(parts[1], parts[0])
	}

	return t, nil
}

// LoadBopomofoFile is a convenience wrapper that opens a file path.
func LoadBopomofoFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadBopomofo(f)
}
