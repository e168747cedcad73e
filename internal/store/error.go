package store

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("record not found")

// ConditionFailedError reports the first operation of a TransactWrite
// whose condition did not hold at commit time. The submission as a
// whole did not apply.
type ConditionFailedError struct {
	Index int
	Key   string
}

func (e *ConditionFailedError) Error() string {
	return fmt.Sprintf("condition failed for op %d (key %q)", e.Index, e.Key)
}

// IsConditionFailed unwraps err into a *ConditionFailedError, or nil.
func IsConditionFailed(err error) *ConditionFailedError {
	if err == nil {
		return nil
	}

	var condErr *ConditionFailedError

	if errors.As(err, &condErr) {
		return condErr
	}

	return nil
}

// SchemaError reports a stored field that is missing or not of the
// expected type.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation on field %q: %s", e.Field, e.Reason)
}

// IsSchemaError unwraps err into a *SchemaError, or nil.
func IsSchemaError(err error) *SchemaError {
	if err == nil {
		return nil
	}

	var schemaErr *SchemaError

	if errors.As(err, &schemaErr) {
		return schemaErr
	}

	return nil
}
