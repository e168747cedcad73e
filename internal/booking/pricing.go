package booking

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	return t, nil
}

// nights is the stay length in whole nights, rounding a partial day up.
// Zero or negative means an invalid range.
func nights(checkIn, checkOut string) (int64, error) {
	in, err := parseDate(checkIn)
	if err != nil {
		return 0, err
	}

	out, err := parseDate(checkOut)
	if err != nil {
		return 0, err
	}

	return int64(math.Ceil(out.Sub(in).Hours() / 24)), nil //nolint:gomnd
}

// Quote is the derived cost and capacity of a room selection for a
// given stay length.
type Quote struct {
	Nights     int64
	TotalPrice float64
	Capacity   int64
}

// buildQuote prices the selection against already-fetched room types.
// Every type referenced by rooms must be present in types.
func buildQuote(rooms []RoomSelection, types map[string]RoomType, stayNights int64) Quote {
	quote := Quote{Nights: stayNights}

	for _, room := range rooms {
		roomType := types[room.RoomType]

		quote.TotalPrice += roomType.PricePerNight * float64(room.Count) * float64(stayNights)
		quote.Capacity += roomType.MaxGuests * room.Count
	}

	return quote
}
