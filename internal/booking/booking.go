package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jakobmalmgren/Bonza-ai/internal/logger"
	"github.com/jakobmalmgren/Bonza-ai/internal/store"
)

type idGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type storageReader interface {
	Get(ctx context.Context, key string) (store.Record, error)
	List(ctx context.Context, prefix string) (map[string]store.Record, error)
}

type storageWriter interface {
	TransactWrite(ctx context.Context, ops []store.Op) error
}

type storage interface {
	storageReader
	storageWriter
}

// Manager orchestrates booking transactions. All reads happen up front;
// the single TransactWrite submission is the only point of mutation,
// and its conditions are the authoritative guard against concurrent
// requests.
type Manager struct {
	l           *logger.Logger
	storage     storage
	inventory   *inventory
	idGenerator idGenerator
}

func New(l *logger.Logger, storage storage, idGenerator idGenerator) *Manager {
	return &Manager{
		l:           l,
		storage:     storage,
		inventory:   &inventory{storage: storage},
		idGenerator: idGenerator,
	}
}

// fetchRoomTypes reads every distinct requested type once and folds
// absent types and short quantities into one accumulated error so the
// caller sees every offender.
func (m *Manager) fetchRoomTypes(
	ctx context.Context,
	types []string,
	required map[string]int64,
) (map[string]RoomType, error) {
	fetched := make(map[string]RoomType, len(types))
	invErr := NewInventoryError()

	for _, code := range types {
		roomType, err := m.inventory.fetch(ctx, code)
		if errors.Is(err, store.ErrNotFound) {
			invErr.AddMissingRoomType(code)

			continue
		}

		if err != nil {
			return nil, err
		}

		if need := required[code]; need > 0 && roomType.Quantity < need {
			invErr.AddInsufficient(code, need, roomType.Quantity)

			continue
		}

		fetched[code] = roomType
	}

	if invErr.Count() > 0 {
		return nil, invErr
	}

	return fetched, nil
}

func (m *Manager) submit(ctx context.Context, ops []store.Op, conflict error) error {
	err := m.storage.TransactWrite(ctx, ops)
	if err == nil {
		return nil
	}

	if condErr := store.IsConditionFailed(err); condErr != nil {
		m.l.LogInfo("Transaction rejected by condition on %q", condErr.Key)

		return fmt.Errorf("op %d on %q: %w", condErr.Index, condErr.Key, conflict)
	}

	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// Create books rooms for a new guest request. The per-type decrements
// and the booking record creation ride in one atomic transaction: no
// booking is persisted with inventory left un-decremented, and no
// inventory is decremented without its booking.
func (m *Manager) Create(ctx context.Context, input *CreateInput) (*Booking, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	counts := aggregateCounts(input.Rooms)
	types := distinctRoomTypes(input.Rooms)

	fetched, err := m.fetchRoomTypes(ctx, types, counts)
	if err != nil {
		return nil, err
	}

	stayNights, err := nights(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("compute nights: %w", err)
	}

	quote := buildQuote(input.Rooms, fetched, stayNights)
	if quote.Capacity < input.Guests {
		return nil, &CapacityError{Capacity: quote.Capacity, Guests: input.Guests}
	}

	id, err := m.idGenerator.NewID(ctx)
	if err != nil {
		return nil, ErrNextID
	}

	bkg := &Booking{
		BookingID:  id,
		Name:       input.Name,
		Email:      input.Email,
		Guests:     input.Guests,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		Rooms:      input.Rooms,
		TotalPrice: quote.TotalPrice,
		CreatedAt:  time.Now().UTC(),
	}

	rec, err := bookingRecord(bkg)
	if err != nil {
		return nil, err
	}

	ops := make([]store.Op, 0, len(types)+1)

	for _, code := range types {
		if op, ok := m.inventory.deltaOp(code, -counts[code]); ok {
			ops = append(ops, op)
		}
	}

	ops = append(ops, store.PutOp(bookingKey(id), rec, store.IfAbsent()))

	if err := m.submit(ctx, ops, ErrInventoryConflict); err != nil {
		return nil, err
	}

	m.l.LogInfo("Booking %v created, total price %v", id, quote.TotalPrice)

	return bkg, nil
}

// Cancel deletes a booking and credits its full room selection back in
// one atomic transaction. Increments require the inventory record to
// still exist; the delete requires the booking to still exist, which
// rejects a second cancellation of the same id.
func (m *Manager) Cancel(ctx context.Context, id string) error {
	bkg, err := m.Get(ctx, id)
	if err != nil {
		return err
	}

	counts := aggregateCounts(bkg.Rooms)
	types := distinctRoomTypes(bkg.Rooms)

	ops := make([]store.Op, 0, len(types)+1)

	for _, code := range types {
		if op, ok := m.inventory.deltaOp(code, counts[code]); ok {
			ops = append(ops, op)
		}
	}

	ops = append(ops, store.DeleteOp(bookingKey(id), store.IfExists()))

	if err := m.submit(ctx, ops, ErrCancellationConflict); err != nil {
		return err
	}

	m.l.LogInfo("Booking %v cancelled", id)

	return nil
}

// Update replaces a booking's dates, guests and rooms. Inventory moves
// by the net per-type difference between the old and new selections, so
// restore and re-charge never run as two separate writes.
func (m *Manager) Update(ctx context.Context, id string, input *UpdateInput) (*Booking, error) {
	oldBkg, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	changes := netChanges(oldBkg.Rooms, input.Rooms)

	// Only the new selection needs pricing data, and only net debits
	// need an availability check.
	debits := make(map[string]int64, len(changes))

	for _, change := range changes {
		if change.Delta < 0 {
			debits[change.RoomType] = -change.Delta
		}
	}

	fetched, err := m.fetchRoomTypes(ctx, distinctRoomTypes(input.Rooms), debits)
	if err != nil {
		return nil, err
	}

	stayNights, err := nights(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("compute nights: %w", err)
	}

	quote := buildQuote(input.Rooms, fetched, stayNights)
	if quote.Capacity < input.Guests {
		return nil, &CapacityError{Capacity: quote.Capacity, Guests: input.Guests}
	}

	newBkg := &Booking{
		BookingID:  id,
		Name:       oldBkg.Name,
		Email:      oldBkg.Email,
		Guests:     input.Guests,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		Rooms:      input.Rooms,
		TotalPrice: quote.TotalPrice,
		CreatedAt:  oldBkg.CreatedAt,
		UpdatedAt:  time.Now().UTC(),
	}

	rec, err := bookingRecord(newBkg)
	if err != nil {
		return nil, err
	}

	ops := make([]store.Op, 0, len(changes)+1)

	for _, change := range changes {
		if op, ok := m.inventory.deltaOp(change.RoomType, change.Delta); ok {
			ops = append(ops, op)
		}
	}

	ops = append(ops, store.PutOp(bookingKey(id), rec, store.IfExists()))

	if err := m.submit(ctx, ops, ErrInventoryConflict); err != nil {
		return nil, err
	}

	m.l.LogInfo("Booking %v updated, total price %v", id, quote.TotalPrice)

	return newBkg, nil
}

// Get returns one booking by id.
func (m *Manager) Get(ctx context.Context, id string) (*Booking, error) {
	rec, err := m.storage.Get(ctx, bookingKey(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBookingNotFound
		}

		return nil, fmt.Errorf("%w: get booking %q: %v", ErrStoreUnavailable, id, err)
	}

	bkg, err := bookingFromRecord(rec)
	if err != nil {
		return nil, err
	}

	return bkg, nil
}

// List returns every stored booking. Records that fail to decode are
// logged and skipped so one damaged item does not take the listing
// down.
func (m *Manager) List(ctx context.Context) ([]*Booking, error) {
	recs, err := m.storage.List(ctx, bookingKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: list bookings: %v", ErrStoreUnavailable, err)
	}

	bookings := make([]*Booking, 0, len(recs))

	for key, rec := range recs {
		bkg, err := bookingFromRecord(rec)
		if err != nil {
			m.l.LogWarnf("Skipping undecodable booking %q: %v", key, err)

			continue
		}

		bookings = append(bookings, bkg)
	}

	return bookings, nil
}

func bookingRecord(bkg *Booking) (store.Record, error) {
	roomsJSON, err := json.Marshal(bkg.Rooms)
	if err != nil {
		return nil, fmt.Errorf("encode rooms for booking %v: %w", bkg.BookingID, err)
	}

	rec := store.Record{
		"bookingId":    bkg.BookingID,
		"name":         bkg.Name,
		"email":        bkg.Email,
		"checkInDate":  bkg.CheckIn,
		"checkOutDate": bkg.CheckOut,
		"rooms":        string(roomsJSON),
		"createdAt":    bkg.CreatedAt.Format(time.RFC3339),
	}
	rec.SetInt("guests", bkg.Guests)
	rec.SetFloat("totalPrice", bkg.TotalPrice)

	if !bkg.UpdatedAt.IsZero() {
		rec["updatedAt"] = bkg.UpdatedAt.Format(time.RFC3339)
	}

	return rec, nil
}

//nolint:cyclop // field-by-field decoding is linear
func bookingFromRecord(rec store.Record) (*Booking, error) {
	corrupt := func(err error) error {
		return fmt.Errorf("%w: %v", ErrCorruptBookingRecord, err)
	}

	id, err := rec.String("bookingId")
	if err != nil {
		return nil, corrupt(err)
	}

	name, err := rec.String("name")
	if err != nil {
		return nil, corrupt(err)
	}

	email, err := rec.String("email")
	if err != nil {
		return nil, corrupt(err)
	}

	checkIn, err := rec.String("checkInDate")
	if err != nil {
		return nil, corrupt(err)
	}

	checkOut, err := rec.String("checkOutDate")
	if err != nil {
		return nil, corrupt(err)
	}

	guests, err := rec.Int("guests")
	if err != nil {
		return nil, corrupt(err)
	}

	totalPrice, err := rec.Float("totalPrice")
	if err != nil {
		return nil, corrupt(err)
	}

	roomsJSON, err := rec.String("rooms")
	if err != nil {
		return nil, corrupt(err)
	}

	var rooms []RoomSelection
	if err := json.Unmarshal([]byte(roomsJSON), &rooms); err != nil {
		return nil, corrupt(fmt.Errorf("decode rooms payload: %w", err))
	}

	if len(rooms) == 0 {
		return nil, corrupt(errors.New("empty rooms payload"))
	}

	bkg := &Booking{
		BookingID:  id,
		Name:       name,
		Email:      email,
		Guests:     guests,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Rooms:      rooms,
		TotalPrice: totalPrice,
	}

	if createdAt, err := rec.String("createdAt"); err == nil {
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			bkg.CreatedAt = t
		}
	}

	if updatedAt, err := rec.String("updatedAt"); err == nil {
		if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
			bkg.UpdatedAt = t
		}
	}

	return bkg, nil
}
