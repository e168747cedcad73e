package memory

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/jakobmalmgren/Bonza-ai/internal/logger"
	"github.com/jakobmalmgren/Bonza-ai/internal/store"
)

func newDB() *DB {
	return New(Config{L: logger.New(log.Default())})
}

func record(quantity string) store.Record {
	return store.Record{"quantity": quantity}
}

func TestGetMissingKey(t *testing.T) {
	db := newDB()

	_, err := db.Get(context.Background(), "ROOM#single")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPutIfAbsent(t *testing.T) {
	db := newDB()
	ctx := context.Background()

	if err := db.Put(ctx, "k", record("5"), store.IfAbsent()); err != nil {
		t.Fatalf("first put: %v", err)
	}

	err := db.Put(ctx, "k", record("9"), store.IfAbsent())
	if store.IsConditionFailed(err) == nil {
		t.Fatalf("expected condition failure, got %v", err)
	}

	rec, err := db.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}

	if rec["quantity"] != "5" {
		t.Errorf("second put must not apply, quantity = %q", rec["quantity"])
	}
}

func TestUpdateIfAtLeast(t *testing.T) {
	db := newDB()
	ctx := context.Background()

	if err := db.Put(ctx, "k", record("3"), store.None()); err != nil {
		t.Fatal(err)
	}

	if err := db.Update(ctx, "k", "quantity", -3, store.IfAtLeast("quantity", 3)); err != nil {
		t.Fatalf("decrement to zero: %v", err)
	}

	err := db.Update(ctx, "k", "quantity", -1, store.IfAtLeast("quantity", 1))
	if store.IsConditionFailed(err) == nil {
		t.Fatalf("expected condition failure at zero, got %v", err)
	}

	rec, _ := db.Get(ctx, "k")
	if n, _ := rec.Int("quantity"); n != 0 {
		t.Errorf("quantity = %d, want 0", n)
	}
}

func TestDeleteIfExistsRejectsSecondDelete(t *testing.T) {
	db := newDB()
	ctx := context.Background()

	if err := db.Put(ctx, "k", record("1"), store.None()); err != nil {
		t.Fatal(err)
	}

	if err := db.Delete(ctx, "k", store.IfExists()); err != nil {
		t.Fatalf("first delete: %v", err)
	}

	err := db.Delete(ctx, "k", store.IfExists())
	if store.IsConditionFailed(err) == nil {
		t.Fatalf("expected condition failure, got %v", err)
	}
}

func TestTransactWriteIsAllOrNothing(t *testing.T) {
	db := newDB()
	ctx := context.Background()

	if err := db.Put(ctx, "ROOM#single", record("5"), store.None()); err != nil {
		t.Fatal(err)
	}

	if err := db.Put(ctx, "ROOM#double", record("1"), store.None()); err != nil {
		t.Fatal(err)
	}

	// The double decrement cannot hold, so the single decrement and the
	// booking put must not apply either.
	ops := []store.Op{
		store.AddOp("ROOM#single", "quantity", -2, store.IfAtLeast("quantity", 2)),
		store.AddOp("ROOM#double", "quantity", -3, store.IfAtLeast("quantity", 3)),
		store.PutOp("BOOKING#b1", store.Record{"bookingId": "b1"}, store.IfAbsent()),
	}

	err := db.TransactWrite(ctx, ops)

	condErr := store.IsConditionFailed(err)
	if condErr == nil {
		t.Fatalf("expected condition failure, got %v", err)
	}

	if condErr.Index != 1 || condErr.Key != "ROOM#double" {
		t.Errorf("wrong failing op reported: %+v", condErr)
	}

	single, _ := db.Get(ctx, "ROOM#single")
	if n, _ := single.Int("quantity"); n != 5 {
		t.Errorf("single quantity = %d, want untouched 5", n)
	}

	if _, err := db.Get(ctx, "BOOKING#b1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("booking must not exist after aborted transaction, got %v", err)
	}
}

func TestTransactWriteAppliesAllOps(t *testing.T) {
	db := newDB()
	ctx := context.Background()

	if err := db.Put(ctx, "ROOM#single", record("5"), store.None()); err != nil {
		t.Fatal(err)
	}

	ops := []store.Op{
		store.AddOp("ROOM#single", "quantity", -2, store.IfAtLeast("quantity", 2)),
		store.PutOp("BOOKING#b1", store.Record{"bookingId": "b1"}, store.IfAbsent()),
	}

	if err := db.TransactWrite(ctx, ops); err != nil {
		t.Fatalf("transact: %v", err)
	}

	single, _ := db.Get(ctx, "ROOM#single")
	if n, _ := single.Int("quantity"); n != 3 {
		t.Errorf("single quantity = %d, want 3", n)
	}

	if _, err := db.Get(ctx, "BOOKING#b1"); err != nil {
		t.Errorf("booking should exist: %v", err)
	}
}

func TestListFiltersByPrefix(t *testing.T) {
	db := newDB()
	ctx := context.Background()

	_ = db.Put(ctx, "ROOM#single", record("5"), store.None())
	_ = db.Put(ctx, "BOOKING#b1", store.Record{"bookingId": "b1"}, store.None())
	_ = db.Put(ctx, "BOOKING#b2", store.Record{"bookingId": "b2"}, store.None())

	recs, err := db.List(ctx, "BOOKING#")
	if err != nil {
		t.Fatal(err)
	}

	if len(recs) != 2 {
		t.Errorf("expected 2 bookings, got %d", len(recs))
	}

	if _, ok := recs["ROOM#single"]; ok {
		t.Error("room record leaked into booking listing")
	}
}

func TestGetReturnsIndependentCopy(t *testing.T) {
	db := newDB()
	ctx := context.Background()

	_ = db.Put(ctx, "k", record("5"), store.None())

	rec, _ := db.Get(ctx, "k")
	rec["quantity"] = "999"

	again, _ := db.Get(ctx, "k")
	if again["quantity"] != "5" {
		t.Error("mutating a returned record must not affect stored state")
	}
}
