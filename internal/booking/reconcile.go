package booking

import "sort"

// NetChange is the single signed quantity adjustment a room type needs
// to move a booking from its old selection to a new one. A positive
// delta credits inventory back, a negative one debits more.
type NetChange struct {
	RoomType string
	Delta    int64
}

// aggregateCounts sums the per-type counts of a selection, so a type
// listed on several lines yields one figure and later one store op.
func aggregateCounts(rooms []RoomSelection) map[string]int64 {
	counts := make(map[string]int64, len(rooms))

	for _, room := range rooms {
		counts[room.RoomType] += room.Count
	}

	return counts
}

// distinctRoomTypes lists the types of a selection in order of first
// appearance.
func distinctRoomTypes(rooms []RoomSelection) []string {
	seen := make(map[string]bool, len(rooms))
	types := make([]string, 0, len(rooms))

	for _, room := range rooms {
		if !seen[room.RoomType] {
			seen[room.RoomType] = true
			types = append(types, room.RoomType)
		}
	}

	return types
}

// netChanges diffs an old selection against a new one and returns one
// delta per room type appearing in either, sorted by type code. Restore
// and re-charge collapse into a single net figure so nothing is applied
// twice.
func netChanges(oldRooms, newRooms []RoomSelection) []NetChange {
	oldCounts := aggregateCounts(oldRooms)
	newCounts := aggregateCounts(newRooms)

	types := make(map[string]bool, len(oldCounts)+len(newCounts))
	for roomType := range oldCounts {
		types[roomType] = true
	}

	for roomType := range newCounts {
		types[roomType] = true
	}

	changes := make([]NetChange, 0, len(types))
	for roomType := range types {
		changes = append(changes, NetChange{
			RoomType: roomType,
			Delta:    oldCounts[roomType] - newCounts[roomType],
		})
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].RoomType < changes[j].RoomType
	})

	return changes
}
