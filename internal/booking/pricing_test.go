package booking

import "testing"

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int64
		wantErr  bool
	}{
		{name: "three nights", checkIn: "2024-01-01", checkOut: "2024-01-04", want: 3},
		{name: "one night", checkIn: "2024-01-01", checkOut: "2024-01-02", want: 1},
		{name: "same day", checkIn: "2024-01-01", checkOut: "2024-01-01", want: 0},
		{name: "reversed", checkIn: "2024-01-04", checkOut: "2024-01-01", want: -3},
		{name: "across month end", checkIn: "2024-01-31", checkOut: "2024-02-02", want: 2},
		{name: "bad format", checkIn: "01/01/2024", checkOut: "2024-01-04", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nights(tt.checkIn, tt.checkOut)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("nights = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuildQuote(t *testing.T) {
	types := map[string]RoomType{
		"single": {Code: "single", PricePerNight: 100, MaxGuests: 1},
		"double": {Code: "double", PricePerNight: 250, MaxGuests: 2},
	}

	rooms := []RoomSelection{
		{RoomType: "single", Count: 2},
		{RoomType: "double", Count: 1},
	}

	quote := buildQuote(rooms, types, 3)

	if quote.TotalPrice != 1350 {
		t.Errorf("TotalPrice = %v, want 1350", quote.TotalPrice)
	}

	if quote.Capacity != 4 {
		t.Errorf("Capacity = %v, want 4", quote.Capacity)
	}

	if quote.Nights != 3 {
		t.Errorf("Nights = %v, want 3", quote.Nights)
	}
}

func TestBuildQuoteEmptySelection(t *testing.T) {
	quote := buildQuote(nil, map[string]RoomType{}, 2)

	if quote.TotalPrice != 0 || quote.Capacity != 0 {
		t.Errorf("empty selection should quote zero, got %+v", quote)
	}
}
