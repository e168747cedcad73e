package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jakobmalmgren/Bonza-ai/internal/store"
)

const (
	roomKeyPrefix    = "ROOM#"
	bookingKeyPrefix = "BOOKING#"

	fieldQuantity = "quantity"
)

func roomKey(code string) string {
	return roomKeyPrefix + code
}

func bookingKey(id string) string {
	return bookingKeyPrefix + id
}

// inventory is the only component that builds mutations of a room
// type's quantity. It never writes on its own; ops are collected by the
// orchestrator into one transaction.
type inventory struct {
	storage storageReader
}

// fetch is a point read of one room type. Returns store.ErrNotFound
// when the type is absent from inventory.
func (i *inventory) fetch(ctx context.Context, code string) (RoomType, error) {
	rec, err := i.storage.Get(ctx, roomKey(code))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RoomType{}, err
		}

		return RoomType{}, fmt.Errorf("%w: get room type %q: %v", ErrStoreUnavailable, code, err)
	}

	roomType, err := roomTypeFromRecord(code, rec)
	if err != nil {
		return RoomType{}, err
	}

	return roomType, nil
}

// deltaOp builds the conditional quantity mutation for one room type.
// Debits are guarded by quantity >= |delta| so the store rejects the
// whole enclosing transaction if inventory ran out after the read;
// credits require the record to still exist rather than silently
// creating one. A zero delta emits no op.
func (i *inventory) deltaOp(code string, delta int64) (store.Op, bool) {
	if delta == 0 {
		return store.Op{}, false
	}

	cond := store.IfExists()
	if delta < 0 {
		cond = store.IfAtLeast(fieldQuantity, -delta)
	}

	return store.AddOp(roomKey(code), fieldQuantity, delta, cond), true
}

func roomTypeFromRecord(code string, rec store.Record) (RoomType, error) {
	quantity, err := rec.Int(fieldQuantity)
	if err != nil {
		return RoomType{}, fmt.Errorf("room type %q: %w", code, err)
	}

	price, err := rec.Float("pricePerNight")
	if err != nil {
		return RoomType{}, fmt.Errorf("room type %q: %w", code, err)
	}

	maxGuests, err := rec.Int("maxGuests")
	if err != nil {
		return RoomType{}, fmt.Errorf("room type %q: %w", code, err)
	}

	return RoomType{
		Code:          code,
		Quantity:      quantity,
		PricePerNight: price,
		MaxGuests:     maxGuests,
	}, nil
}

// RoomTypeRecord encodes a room type for storage; the seed loader uses
// it to install initial inventory.
func RoomTypeRecord(roomType RoomType) store.Record {
	rec := store.Record{"roomType": roomType.Code}
	rec.SetInt(fieldQuantity, roomType.Quantity)
	rec.SetFloat("pricePerNight", roomType.PricePerNight)
	rec.SetInt("maxGuests", roomType.MaxGuests)

	return rec
}

// RoomKey exposes the inventory keying scheme to the seed loader.
func RoomKey(code string) string {
	return roomKey(code)
}
