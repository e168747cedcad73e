package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jakobmalmgren/Bonza-ai/internal/logger"
	"github.com/jakobmalmgren/Bonza-ai/internal/store"
)

type Config struct {
	L *logger.Logger
}

// DB is an in-process store.Store used in tests and local development.
// One mutex guards the whole keyspace, so a TransactWrite naturally
// checks every condition and applies every op without interleaving.
type DB struct {
	mu      sync.Mutex
	l       *logger.Logger
	records map[string]store.Record
}

func New(conf Config) *DB {
	return &DB{
		l:       conf.L,
		records: make(map[string]store.Record),
	}
}

func (db *DB) Get(_ context.Context, key string) (store.Record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rec, ok := db.records[key]
	if !ok {
		return nil, store.ErrNotFound
	}

	return rec.Clone(), nil
}

func (db *DB) Put(ctx context.Context, key string, rec store.Record, cond store.Condition) error {
	return db.TransactWrite(ctx, []store.Op{store.PutOp(key, rec, cond)})
}

func (db *DB) Update(ctx context.Context, key, field string, delta int64, cond store.Condition) error {
	return db.TransactWrite(ctx, []store.Op{store.AddOp(key, field, delta, cond)})
}

func (db *DB) Delete(ctx context.Context, key string, cond store.Condition) error {
	return db.TransactWrite(ctx, []store.Op{store.DeleteOp(key, cond)})
}

func (db *DB) TransactWrite(_ context.Context, ops []store.Op) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	// Check every condition against committed state before touching
	// anything, so a late failure cannot leave earlier ops applied.
	for idx, op := range ops {
		cur, exists := db.records[op.Key]
		if !op.Cond.Holds(cur, exists) {
			return &store.ConditionFailedError{Index: idx, Key: op.Key}
		}

		if op.Kind == store.OpAdd {
			if !exists {
				return &store.ConditionFailedError{Index: idx, Key: op.Key}
			}

			if _, err := cur.Int(op.Field); err != nil {
				return err
			}
		}
	}

	for _, op := range ops {
		switch op.Kind {
		case store.OpPut:
			db.records[op.Key] = op.Rec.Clone()
		case store.OpAdd:
			rec := db.records[op.Key]
			n, _ := rec.Int(op.Field)
			rec.SetInt(op.Field, n+op.Delta)
		case store.OpDelete:
			delete(db.records, op.Key)
		}
	}

	return nil
}

func (db *DB) List(_ context.Context, prefix string) (map[string]store.Record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make(map[string]store.Record)

	for key, rec := range db.records {
		if strings.HasPrefix(key, prefix) {
			out[key] = rec.Clone()
		}
	}

	return out, nil
}
