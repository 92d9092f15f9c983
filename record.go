package investmate

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// Delimiter separates the fields of a record line.
const Delimiter = ','

// encodeRecord joins fields into a single line.
//
// Fields are quoted only when they need it (delimiter, quote, leading space),
// so plain records are written exactly as "a,b,c".
func encodeRecord(fields ...string) (string, error) {
	if err := validateFields(fields...); err != nil {
		return "", err
	}
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Comma = Delimiter
	if err := w.Write(fields); err != nil {
		return "", fmt.Errorf("%w: cannot encode record: %w", ErrInvalidInput, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("%w: cannot encode record: %w", ErrInvalidInput, err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// decodeRecord splits a line into at least want fields.
//
// Unquoted lines written by older versions, including stray quotes inside a
// field, are accepted as is. When a field of such a line starts with a quote
// the CSV reader swallows the rest of the line, so a line that yields fewer
// than want fields is split on every delimiter instead.
func decodeRecord(line string, want int) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = Delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	fields, err := r.Read()
	if err == nil && len(fields) >= want {
		return fields, nil
	}
	if plain := strings.Split(line, string(Delimiter)); len(plain) >= want {
		return plain, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: cannot decode %q: %w", ErrInvalidInput, line, err)
	}
	return fields, nil
}

// firstField returns the key field of a line, or false if the line cannot be decoded.
func firstField(line string) (string, bool) {
	fields, err := decodeRecord(line, 1)
	if err != nil || len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

// joinTail rebuilds a free-text field that was split on unescaped delimiters.
func joinTail(fields []string) string {
	return strings.Join(fields, string(Delimiter))
}
