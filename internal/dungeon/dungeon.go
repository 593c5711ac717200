package dungeon

// Dungeon aggregates the rooms assembled for one level. It owns no
// geometry and no connectivity; it only collects what the factory spawns
// so the level can be handed to the host scene as one unit.
type Dungeon struct {
	rooms []*Room
}

// NewDungeon returns an empty Dungeon.
func NewDungeon() *Dungeon {
	return &Dungeon{}
}

// AddRoom attaches a spawned room to the dungeon. Nil rooms are ignored.
func (d *Dungeon) AddRoom(room *Room) {
	if room == nil {
		return
	}
	d.rooms = append(d.rooms, room)
}

// Rooms returns the attached rooms in attachment order.
func (d *Dungeon) Rooms() []*Room {
	return append([]*Room(nil), d.rooms...)
}

// RoomCount returns the number of attached rooms.
func (d *Dungeon) RoomCount() int {
	return len(d.rooms)
}
