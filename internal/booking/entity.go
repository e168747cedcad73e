package booking

import "time"

// RoomType is one inventory record: how many rooms of this category are
// currently unbooked, what one night costs and how many guests a single
// room sleeps.
type RoomType struct {
	Code          string  `json:"roomType"`
	Quantity      int64   `json:"quantity"`
	PricePerNight float64 `json:"pricePerNight"`
	MaxGuests     int64   `json:"maxGuests"`
}

// RoomSelection is one line of a booking request: a room-type code and
// how many rooms of it are wanted.
type RoomSelection struct {
	RoomType string `json:"roomType"`
	Count    int64  `json:"count"`
}

type Booking struct {
	BookingID  string          `json:"bookingId"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Guests     int64           `json:"guests"`
	CheckIn    string          `json:"checkInDate"`
	CheckOut   string          `json:"checkOutDate"`
	Rooms      []RoomSelection `json:"rooms"`
	TotalPrice float64         `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt,omitempty"`
}

type CreateInput struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Guests   int64           `json:"guests"`
	CheckIn  string          `json:"checkInDate"`
	CheckOut string          `json:"checkOutDate"`
	Rooms    []RoomSelection `json:"rooms"`
}

// UpdateInput carries the new state of an existing booking. Name and
// email are kept from the stored record.
type UpdateInput struct {
	Guests   int64           `json:"guests"`
	CheckIn  string          `json:"checkInDate"`
	CheckOut string          `json:"checkOutDate"`
	Rooms    []RoomSelection `json:"rooms"`
}
