package store

import "context"

// Store is the backing key-value store the booking engine runs against.
// All mutations inside one TransactWrite call commit together or not at
// all; a failed condition anywhere aborts the whole submission and is
// reported as *ConditionFailedError.
type Store interface {
	// Get returns the record stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (Record, error)

	// Put creates or replaces the record under key, subject to cond.
	Put(ctx context.Context, key string, rec Record, cond Condition) error

	// Update adds delta to a numeric field of the record under key,
	// subject to cond.
	Update(ctx context.Context, key, field string, delta int64, cond Condition) error

	// Delete removes the record under key, subject to cond.
	Delete(ctx context.Context, key string, cond Condition) error

	// TransactWrite applies all ops atomically. Every condition is
	// evaluated against committed state at submit time.
	TransactWrite(ctx context.Context, ops []Op) error

	// List returns all records whose key starts with prefix.
	List(ctx context.Context, prefix string) (map[string]Record, error)
}

type CondKind int

const (
	CondNone CondKind = iota
	CondExists
	CondAbsent
	CondAtLeast
)

// Condition is a predicate over the current record that must hold at
// commit time for the enclosing operation to apply.
type Condition struct {
	Kind  CondKind
	Field string
	Value int64
}

// None applies the operation unconditionally.
func None() Condition { return Condition{Kind: CondNone} }

// IfExists requires the key to be present.
func IfExists() Condition { return Condition{Kind: CondExists} }

// IfAbsent requires the key to be missing.
func IfAbsent() Condition { return Condition{Kind: CondAbsent} }

// IfAtLeast requires the key to be present with a numeric field >= value.
func IfAtLeast(field string, value int64) Condition {
	return Condition{Kind: CondAtLeast, Field: field, Value: value}
}

// Holds evaluates the condition against the current record; exists
// reports whether the key is present at all.
func (c Condition) Holds(cur Record, exists bool) bool {
	switch c.Kind {
	case CondExists:
		return exists
	case CondAbsent:
		return !exists
	case CondAtLeast:
		if !exists {
			return false
		}
		n, err := cur.Int(c.Field)
		if err != nil {
			return false
		}
		return n >= c.Value
	default:
		return true
	}
}

type OpKind int

const (
	OpPut OpKind = iota
	OpAdd
	OpDelete
)

// Op is a single conditional write collected into a TransactWrite
// submission.
type Op struct {
	Kind  OpKind
	Key   string
	Rec   Record
	Field string
	Delta int64
	Cond  Condition
}

// PutOp creates or replaces the record under key.
func PutOp(key string, rec Record, cond Condition) Op {
	return Op{Kind: OpPut, Key: key, Rec: rec, Cond: cond}
}

// AddOp adds delta (positive or negative) to a numeric field.
func AddOp(key, field string, delta int64, cond Condition) Op {
	return Op{Kind: OpAdd, Key: key, Field: field, Delta: delta, Cond: cond}
}

// DeleteOp removes the record under key.
func DeleteOp(key string, cond Condition) Op {
	return Op{Kind: OpDelete, Key: key, Cond: cond}
}
