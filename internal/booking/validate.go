package booking

import "net/mail"

func validateRooms(inputErr *InputError, rooms []RoomSelection) {
	if len(rooms) == 0 {
		inputErr.addError("rooms", "provide at least one room selection")

		return
	}

	for _, room := range rooms {
		if room.RoomType == "" {
			inputErr.addError("rooms.roomType", "provide rooms.roomType")
		}

		if room.Count <= 0 {
			inputErr.addError("rooms.count", "rooms.count must be positive")
		}
	}
}

func validateDates(inputErr *InputError, checkIn, checkOut string) {
	if checkIn == "" {
		inputErr.addError("checkInDate", "provide checkInDate")
	}

	if checkOut == "" {
		inputErr.addError("checkOutDate", "provide checkOutDate")
	}

	if checkIn == "" || checkOut == "" {
		return
	}

	stayNights, err := nights(checkIn, checkOut)
	if err != nil {
		inputErr.addError("checkInDate", "dates must be formatted as YYYY-MM-DD")

		return
	}

	if stayNights <= 0 {
		inputErr.addError("checkOutDate", "check-out must be after check-in")
	}
}

func (in *CreateInput) validate() error {
	inputErr := newInputError()

	if in.Name == "" {
		inputErr.addError("name", "provide name")
	}

	if _, err := mail.ParseAddress(in.Email); err != nil {
		inputErr.addError("email", "provide valid email")
	}

	if in.Guests <= 0 {
		inputErr.addError("guests", "guests must be positive")
	}

	validateDates(inputErr, in.CheckIn, in.CheckOut)
	validateRooms(inputErr, in.Rooms)

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

func (in *UpdateInput) validate() error {
	inputErr := newInputError()

	if in.Guests <= 0 {
		inputErr.addError("guests", "guests must be positive")
	}

	validateDates(inputErr, in.CheckIn, in.CheckOut)
	validateRooms(inputErr, in.Rooms)

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}
