package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const byteOrderMark = "\uFEFF"

// Row maps a column name to its value.
type Row map[string]string

// Reader returns header-keyed rows from CSV input.
type Reader struct {
	csv    *csv.Reader
	header []string
	line   int
}

// Header returns the header record, reading it when needed. Empty input
// yields an empty header.
func (r *Reader) Header() ([]string, error) {
	if r.header != nil {
		return r.header, nil
	}
	record, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		r.header = []string{}
		return r.header, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	r.line++
	header := make([]string, len(record))
	for i, name := range record {
		if i == 0 {
			name = strings.TrimPrefix(name, byteOrderMark)
		}
		header[i] = escapeName(name)
	}
	r.header = header
	return r.header, nil
}

// Require checks that all columns are present in the header.
func (r *Reader) Require(columns ...string) error {
	header, err := r.Header()
	if err != nil {
		return err
	}
	for _, column := range columns {
		if !contains(header, column) {
			return fmt.Errorf("%w: %q", ErrMissingColumn, column)
		}
	}
	return nil
}

// Line returns the number of records read so far, header included.
func (r *Reader) Line() int {
	return r.line
}

// Read returns the next row or io.EOF. Cells missing from short records are
// left empty and cells beyond the header are dropped.
func (r *Reader) Read() (Row, error) {
	header, err := r.Header()
	if err != nil {
		return nil, err
	}
	record, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read record %d: %w", r.line+1, err)
	}
	r.line++
	row := make(Row, len(header))
	for i, name := range header {
		if i < len(record) {
			row[name] = Escape(record[i])
			continue
		}
		row[name] = ""
	}
	return row, nil
}

// NewReader creates a reader over r.
func NewReader(r io.Reader) *Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return &Reader{csv: reader}
}

// Escape returns text with every backslash doubled and every byte that is
// not part of a valid UTF-8 sequence replaced by its "\xNN" form. The result
// is unambiguous: "\xNN" only ever stands for a raw byte. Valid text without
// backslashes is returned unchanged.
func Escape(text string) string {
	if utf8.ValidString(text) && !strings.Contains(text, `\`) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 8)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			fmt.Fprintf(&b, `\x%02x`, text[i])
			i++
			continue
		case r == '\\':
			b.WriteString(`\\`)
		default:
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	return b.String()
}

// escapeName escapes invalid bytes of a header name. Valid names are kept as
// written so that configured column names match them.
func escapeName(name string) string {
	if utf8.ValidString(name) {
		return name
	}
	return Escape(name)
}

func contains(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}
