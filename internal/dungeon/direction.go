// Package dungeon provides the core dungeon-assembly model: segmented
// walls, live rooms with dynamic door placement, the room template
// catalog, and the factory that turns templates into placed rooms.
package dungeon

import "fmt"

// Direction identifies one of the four walls of a room.
type Direction uint8

// The four wall directions. A Room owns exactly one wall per direction.
const (
	North Direction = iota
	South
	East
	West
)

// Valid reports whether d is one of the four wall directions.
func (d Direction) Valid() bool {
	return d <= West
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// WallLocation identifies one addressable segment in one room: a wall
// direction plus the segment index within that wall.
type WallLocation struct {
	Direction    Direction
	SegmentIndex int
}

// String returns the location in "north[3]" form.
func (l WallLocation) String() string {
	return fmt.Sprintf("%s[%d]", l.Direction, l.SegmentIndex)
}
