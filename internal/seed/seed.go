package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/jakobmalmgren/Bonza-ai/internal/booking"
	"github.com/jakobmalmgren/Bonza-ai/internal/logger"
	"github.com/jakobmalmgren/Bonza-ai/internal/store"
)

type storage interface {
	Put(ctx context.Context, key string, rec store.Record, cond store.Condition) error
}

// defaults installs a usable inventory when no seed file is configured.
func defaults() []booking.RoomType {
	return []booking.RoomType{
		{Code: "single", Quantity: 10, PricePerNight: 500, MaxGuests: 1},
		{Code: "double", Quantity: 10, PricePerNight: 1000, MaxGuests: 2},
		{Code: "suite", Quantity: 5, PricePerNight: 1500, MaxGuests: 3},
	}
}

func load(path string) ([]booking.RoomType, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %q: %w", path, err)
	}

	var roomTypes []booking.RoomType
	if err := json.Unmarshal(raw, &roomTypes); err != nil {
		return nil, fmt.Errorf("decode seed file %q: %w", path, err)
	}

	return roomTypes, nil
}

// Up installs the initial room-type inventory. Each put is conditioned
// on the key being absent, so reseeding an already-populated store
// never clobbers live quantities.
func Up(ctx context.Context, l *logger.Logger, storage storage, path string) error {
	roomTypes := defaults()

	if path != "" {
		loaded, err := load(path)
		if err != nil {
			return err
		}

		roomTypes = loaded
	}

	grp, ctx := errgroup.WithContext(ctx)

	for _, roomType := range roomTypes {
		roomType := roomType

		grp.Go(func() error {
			err := storage.Put(
				ctx,
				booking.RoomKey(roomType.Code),
				booking.RoomTypeRecord(roomType),
				store.IfAbsent(),
			)

			var condErr *store.ConditionFailedError
			if errors.As(err, &condErr) {
				l.LogInfo("Room type %v already present, skipping", roomType.Code)

				return nil
			}

			if err != nil {
				return fmt.Errorf("seed room type %v: %w", roomType.Code, err)
			}

			l.LogInfo("Room type %v seeded", roomType.Code)

			return nil
		})
	}

	return grp.Wait()
}
