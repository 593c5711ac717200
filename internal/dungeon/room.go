package dungeon

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/grimholt/dungeonforge/internal/random"
)

// Placement is the world-space position a room is spawned at. The core
// performs no geometry on it; it is carried for the host scene.
type Placement struct {
	X, Y, Z float64
}

// RoomConfig carries everything needed to construct a live Room.
type RoomConfig struct {
	Placement Placement

	// One wall per direction. All four must be non-nil.
	North, South, East, West *SegmentedWall

	// DoorMeshes is the pool a door mesh is drawn from when a door is
	// added. Must be non-empty.
	DoorMeshes []MeshRef

	// WallMeshes is the pool a replacement wall mesh is drawn from when a
	// door is removed. Must be non-empty.
	WallMeshes []MeshRef

	// Rand supplies mesh selection. Nil defaults to a crypto-backed source.
	Rand random.Source
}

// Room is a live, spawned room: four segmented walls plus the mesh pools
// doors are drawn from. Doors are not stored separately; a segment holds a
// door iff its current mesh is a member of the door pool.
//
// A Room is owned by a single assembly goroutine and is not safe for
// concurrent mutation.
type Room struct {
	id        uuid.UUID
	placement Placement

	north, south, east, west *SegmentedWall

	doorMeshes []MeshRef
	wallMeshes []MeshRef

	rng random.Source
}

// NewRoom constructs a Room, validating the template content before it can
// be used: all four walls present, both mesh pools non-empty. Bad content
// is rejected here rather than at the first door operation.
//
// Postcondition: Returns a Room with a fresh unique ID, or one of
// ErrMissingDoorMeshPool / ErrMissingWallMeshPool, or an error naming the
// missing wall.
func NewRoom(cfg RoomConfig) (*Room, error) {
	walls := map[Direction]*SegmentedWall{
		North: cfg.North,
		South: cfg.South,
		East:  cfg.East,
		West:  cfg.West,
	}
	for _, d := range []Direction{North, South, East, West} {
		if walls[d] == nil {
			return nil, fmt.Errorf("room is missing its %s wall", d)
		}
	}
	if len(cfg.DoorMeshes) == 0 {
		return nil, ErrMissingDoorMeshPool
	}
	if len(cfg.WallMeshes) == 0 {
		return nil, ErrMissingWallMeshPool
	}

	rng := cfg.Rand
	if rng == nil {
		rng = random.NewCryptoSource()
	}

	return &Room{
		id:         uuid.New(),
		placement:  cfg.Placement,
		north:      cfg.North,
		south:      cfg.South,
		east:       cfg.East,
		west:       cfg.West,
		doorMeshes: append([]MeshRef(nil), cfg.DoorMeshes...),
		wallMeshes: append([]MeshRef(nil), cfg.WallMeshes...),
		rng:        rng,
	}, nil
}

// ID returns the room's unique instance identifier.
func (r *Room) ID() uuid.UUID {
	return r.id
}

// Placement returns the world-space position the room was spawned at.
func (r *Room) Placement() Placement {
	return r.placement
}

// wall dispatches a direction to the owning wall. Returns nil for a value
// outside the four directions; callers treat that as an invalid location.
func (r *Room) wall(d Direction) *SegmentedWall {
	switch d {
	case North:
		return r.north
	case South:
		return r.south
	case East:
		return r.east
	case West:
		return r.west
	}
	return nil
}

// Wall returns the segmented wall for the given direction.
//
// Postcondition: Returns a non-nil wall, or ErrInvalidWallLocation if d is
// not one of the four directions.
func (r *Room) Wall(d Direction) (*SegmentedWall, error) {
	w := r.wall(d)
	if w == nil {
		return nil, fmt.Errorf("no wall for %s: %w", d, ErrInvalidWallLocation)
	}
	return w, nil
}

// IsValidWallLocation reports whether loc addresses a segment of this room:
// the direction is one of the four walls and the index is within that
// wall's segment range.
func (r *Room) IsValidWallLocation(loc WallLocation) bool {
	w := r.wall(loc.Direction)
	return w != nil && w.IsValidIndex(loc.SegmentIndex)
}

// HasDoorAt reports whether the segment at loc currently holds a door,
// i.e. whether its mesh is a member of the door pool.
//
// Precondition: loc must be a valid wall location (ErrInvalidWallLocation
// otherwise).
func (r *Room) HasDoorAt(loc WallLocation) (bool, error) {
	seg, err := r.segmentAt(loc)
	if err != nil {
		return false, err
	}
	return r.isDoorMesh(seg.Mesh()), nil
}

// AddDoor opens a doorway at loc by assigning a uniformly-random mesh from
// the door pool to the segment.
//
// Precondition: loc must be valid (ErrInvalidWallLocation) and must not
// already hold a door (ErrDuplicateDoor). On error the room is unchanged.
func (r *Room) AddDoor(loc WallLocation) error {
	if len(r.doorMeshes) == 0 {
		return ErrMissingDoorMeshPool
	}
	seg, err := r.segmentAt(loc)
	if err != nil {
		return err
	}
	if r.isDoorMesh(seg.Mesh()) {
		return fmt.Errorf("%s: %w", loc, ErrDuplicateDoor)
	}
	seg.setMesh(random.Pick(r.rng, r.doorMeshes))
	return nil
}

// RemoveDoor closes the doorway at loc by assigning a uniformly-random mesh
// from the wall pool to the segment. The replacement need not be the mesh
// the segment held before the door was added.
//
// Precondition: loc must be valid (ErrInvalidWallLocation) and must hold a
// door (ErrNoDoorAtLocation). On error the room is unchanged.
func (r *Room) RemoveDoor(loc WallLocation) error {
	if len(r.wallMeshes) == 0 {
		return ErrMissingWallMeshPool
	}
	seg, err := r.segmentAt(loc)
	if err != nil {
		return err
	}
	if !r.isDoorMesh(seg.Mesh()) {
		return fmt.Errorf("%s: %w", loc, ErrNoDoorAtLocation)
	}
	seg.setMesh(random.Pick(r.rng, r.wallMeshes))
	return nil
}

func (r *Room) segmentAt(loc WallLocation) (*Segment, error) {
	if !r.IsValidWallLocation(loc) {
		return nil, fmt.Errorf("%s: %w", loc, ErrInvalidWallLocation)
	}
	seg, err := r.wall(loc.Direction).Segment(loc.SegmentIndex)
	if err != nil {
		return nil, err
	}
	return seg, nil
}

func (r *Room) isDoorMesh(m MeshRef) bool {
	for _, dm := range r.doorMeshes {
		if dm == m {
			return true
		}
	}
	return false
}
