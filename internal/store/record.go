package store

import (
	"fmt"
	"strconv"
)

// Record is a snapshot of one stored item. Values are kept as text on
// the wire; numeric fields go through the typed accessors below so
// callers never parse attribute text themselves. A parse failure is a
// schema violation, not a zero value.
type Record map[string]string

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// String returns a text field, or a SchemaError if it is missing.
func (r Record) String(field string) (string, error) {
	v, ok := r[field]
	if !ok {
		return "", &SchemaError{Field: field, Reason: "missing"}
	}
	return v, nil
}

// Int returns an integer field, or a SchemaError if it is missing or
// not an integer.
func (r Record) Int(field string) (int64, error) {
	v, ok := r[field]
	if !ok {
		return 0, &SchemaError{Field: field, Reason: "missing"}
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, &SchemaError{Field: field, Reason: fmt.Sprintf("not an integer: %q", v)}
	}
	return n, nil
}

// Float returns a decimal field, or a SchemaError if it is missing or
// not numeric.
func (r Record) Float(field string) (float64, error) {
	v, ok := r[field]
	if !ok {
		return 0, &SchemaError{Field: field, Reason: "missing"}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &SchemaError{Field: field, Reason: fmt.Sprintf("not a number: %q", v)}
	}
	return f, nil
}

// SetInt stores an integer field.
func (r Record) SetInt(field string, v int64) {
	r[field] = strconv.FormatInt(v, 10)
}

// SetFloat stores a decimal field.
func (r Record) SetFloat(field string, v float64) {
	r[field] = strconv.FormatFloat(v, 'f', -1, 64)
}
