package booking

import (
	"errors"
	"fmt"
)

var (
	ErrNextID               = errors.New("get next id from generator")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrCorruptBookingRecord = errors.New("corrupt booking record")
	ErrInventoryConflict    = errors.New("inventory changed between read and commit")
	ErrCancellationConflict = errors.New("booking already cancelled or inventory record removed")
	ErrStoreUnavailable     = errors.New("backing store unavailable")
)

// InventoryIssue is one room type that blocked a request: either the
// type is missing from inventory or fewer rooms are available than
// requested.
type InventoryIssue struct {
	RoomType  string `json:"roomType"`
	Missing   bool   `json:"missing,omitempty"`
	Requested int64  `json:"requested,omitempty"`
	Available int64  `json:"available,omitempty"`
}

// InventoryError enumerates every offending room type of a request, not
// just the first one.
type InventoryError struct {
	issues []InventoryIssue
}

func NewInventoryError() *InventoryError {
	return &InventoryError{}
}

func IsInventoryError(err error) *InventoryError {
	if err == nil {
		return nil
	}

	var inventoryError *InventoryError

	if errors.As(err, &inventoryError) {
		return inventoryError
	}

	return nil
}

func (e *InventoryError) AddMissingRoomType(roomType string) {
	e.issues = append(e.issues, InventoryIssue{RoomType: roomType, Missing: true})
}

func (e *InventoryError) AddInsufficient(roomType string, requested, available int64) {
	e.issues = append(e.issues, InventoryIssue{
		RoomType:  roomType,
		Requested: requested,
		Available: available,
	})
}

func (e *InventoryError) Error() string {
	return fmt.Sprintf("%+v", e.issues)
}

func (e *InventoryError) Issues() []InventoryIssue {
	return e.issues
}

func (e *InventoryError) Count() int {
	return len(e.issues)
}

// CapacityError reports that the selected rooms cannot sleep the
// requested number of guests.
type CapacityError struct {
	Capacity int64
	Guests   int64
}

func IsCapacityError(err error) *CapacityError {
	if err == nil {
		return nil
	}

	var capacityError *CapacityError

	if errors.As(err, &capacityError) {
		return capacityError
	}

	return nil
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("selected rooms sleep %v guests, %v requested", e.Capacity, e.Guests)
}

type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}
