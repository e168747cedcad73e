package booking

import "testing"

func TestCreateInputValidate(t *testing.T) {
	valid := CreateInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Guests:   2,
		CheckIn:  "2024-01-01",
		CheckOut: "2024-01-03",
		Rooms:    []RoomSelection{{RoomType: "single", Count: 1}},
	}

	if err := valid.validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name      string
		mutate    func(in *CreateInput)
		wantField string
	}{
		{"missing name", func(in *CreateInput) { in.Name = "" }, "name"},
		{"bad email", func(in *CreateInput) { in.Email = "nope" }, "email"},
		{"zero guests", func(in *CreateInput) { in.Guests = 0 }, "guests"},
		{"missing check-in", func(in *CreateInput) { in.CheckIn = "" }, "checkInDate"},
		{"missing check-out", func(in *CreateInput) { in.CheckOut = "" }, "checkOutDate"},
		{"reversed dates", func(in *CreateInput) { in.CheckIn, in.CheckOut = in.CheckOut, in.CheckIn }, "checkOutDate"},
		{"no rooms", func(in *CreateInput) { in.Rooms = nil }, "rooms"},
		{"empty type code", func(in *CreateInput) { in.Rooms = []RoomSelection{{Count: 1}} }, "rooms.roomType"},
		{"zero count", func(in *CreateInput) { in.Rooms = []RoomSelection{{RoomType: "single"}} }, "rooms.count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			err := input.validate()

			inputErr := IsInputError(err)
			if inputErr == nil {
				t.Fatalf("expected InputError, got %v", err)
			}

			if _, ok := inputErr.Fields()[tt.wantField]; !ok {
				t.Errorf("expected field %q in %v", tt.wantField, inputErr.Fields())
			}
		})
	}
}

func TestUpdateInputValidateSkipsGuestIdentity(t *testing.T) {
	input := UpdateInput{
		Guests:   1,
		CheckIn:  "2024-01-01",
		CheckOut: "2024-01-02",
		Rooms:    []RoomSelection{{RoomType: "single", Count: 1}},
	}

	if err := input.validate(); err != nil {
		t.Fatalf("valid update input rejected: %v", err)
	}

	input.Guests = -1
	if IsInputError(input.validate()) == nil {
		t.Error("negative guests should be rejected")
	}
}
