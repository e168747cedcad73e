package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/jakobmalmgren/Bonza-ai/internal/logger"
	"github.com/jakobmalmgren/Bonza-ai/internal/store"
)

type Config struct {
	L        *logger.Logger
	Addr     string
	Password string
	DB       int
}

// DB implements store.Store on a Redis server. Each record is one hash;
// TransactWrite runs as a single Lua script, which Redis executes
// atomically, so either every op applies or the script bails out on the
// first failed condition before writing anything.
type DB struct {
	l      *logger.Logger
	client *redis.Client
}

func New(conf Config) *DB {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	return &DB{l: conf.L, client: client}
}

// Ping verifies the connection at startup.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}

	return nil
}

func (db *DB) Get(ctx context.Context, key string) (store.Record, error) {
	fields, err := db.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %q: %w", key, err)
	}

	// HGetAll returns an empty map for a missing key.
	if len(fields) == 0 {
		return nil, store.ErrNotFound
	}

	return store.Record(fields), nil
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

// The script checks every condition first and only then applies the
// ops, returning the 1-based index of the first failed condition or 0.
var transactScript = redis.NewScript(`
local ops = cjson.decode(ARGV[1])

for i, op in ipairs(ops) do
    local key = KEYS[i]
    local exists = redis.call('EXISTS', key) == 1
    local cond = op.cond

    if cond.kind == 'exists' and not exists then
        return i
    end
    if cond.kind == 'absent' and exists then
        return i
    end
    if cond.kind == 'atleast' then
        if not exists then
            return i
        end
        local raw = redis.call('HGET', key, cond.field)
        local num = raw and tonumber(raw)
        if not num or num < cond.value then
            return i
        end
    end
    if op.kind == 'add' and not exists then
        return i
    end
end

for i, op in ipairs(ops) do
    local key = KEYS[i]
    if op.kind == 'put' then
        redis.call('DEL', key)
        for field, value in pairs(op.rec) do
            redis.call('HSET', key, field, value)
        end
    elseif op.kind == 'add' then
        redis.call('HINCRBY', key, op.field, op.delta)
    else
        redis.call('DEL', key)
    end
end

return 0
`)

type wireCond struct {
	Kind  string `json:"kind"`
	Field string `json:"field,omitempty"`
	Value int64  `json:"value,omitempty"`
}

type wireOp struct {
	Kind  string            `json:"kind"`
	Field string            `json:"field,omitempty"`
	Delta int64             `json:"delta,omitempty"`
	Rec   map[string]string `json:"rec,omitempty"`
	Cond  wireCond          `json:"cond"`
}

func encodeOps(ops []store.Op) ([]string, string, error) {
	keys := make([]string, 0, len(ops))
	wire := make([]wireOp, 0, len(ops))

	for _, op := range ops {
		keys = append(keys, op.Key)

		w := wireOp{Cond: wireCond{Field: op.Cond.Field, Value: op.Cond.Value}}

		switch op.Cond.Kind {
		case store.CondExists:
			w.Cond.Kind = "exists"
		case store.CondAbsent:
			w.Cond.Kind = "absent"
		case store.CondAtLeast:
			w.Cond.Kind = "atleast"
		default:
			w.Cond.Kind = "none"
		}

		switch op.Kind {
		case store.OpPut:
			w.Kind = "put"
			w.Rec = op.Rec
		case store.OpAdd:
			w.Kind = "add"
			w.Field = op.Field
			w.Delta = op.Delta
		case store.OpDelete:
			w.Kind = "del"
		}

		wire = append(wire, w)
	}

	payload, err := json.Marshal(wire)
	if err != nil {
		return nil, "", fmt.Errorf("encode transact ops: %w", err)
	}

	return keys, string(payload), nil
}

func (db *DB) TransactWrite(ctx context.Context, ops []store.Op) error {
	if len(ops) == 0 {
		return nil
	}

	keys, payload, err := encodeOps(ops)
	if err != nil {
		return err
	}

	res, err := transactScript.Run(ctx, db.client, keys, payload).Int64()
	if err != nil {
		return fmt.Errorf("run transact script: %w", err)
	}

	if res > 0 {
		idx := int(res) - 1

		return &store.ConditionFailedError{Index: idx, Key: ops[idx].Key}
	}

	return nil
}

func (db *DB) List(ctx context.Context, prefix string) (map[string]store.Record, error) {
	out := make(map[string]store.Record)

	var cursor uint64

	for {
		keys, next, err := db.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("scan %q: %w", prefix, err)
		}

		for _, key := range keys {
			fields, err := db.client.HGetAll(ctx, key).Result()
			if err != nil {
				return nil, fmt.Errorf("hgetall %q: %w", key, err)
			}

			if len(fields) > 0 {
				out[key] = store.Record(fields)
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return out, nil
}
