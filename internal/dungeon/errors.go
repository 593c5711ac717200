package dungeon

import "errors"

// Every error below is a contract violation surfaced at the call that
// triggers it. Operations that return one of these have no effect on the
// room or catalog they were called on. Callers match with errors.Is.
var (
	// ErrInvalidSegmentTag indicates a wall segment whose index tag is
	// missing or not a decimal integer.
	ErrInvalidSegmentTag = errors.New("invalid segment index tag")

	// ErrSegmentIndexOutOfRange indicates a segment index outside
	// [0, wall size).
	ErrSegmentIndexOutOfRange = errors.New("segment index out of range")

	// ErrEmptyCatalog indicates a catalog build with zero templates.
	ErrEmptyCatalog = errors.New("no room templates supplied")

	// ErrUnknownSpecs indicates a lookup for specs no template matches.
	ErrUnknownSpecs = errors.New("no room template with the given specs")

	// ErrUnknownTheme indicates a size-bound query for a theme the catalog
	// never indexed.
	ErrUnknownTheme = errors.New("theme not present in catalog")

	// ErrInvalidWallLocation indicates a direction/index pair that does not
	// address a segment in the room.
	ErrInvalidWallLocation = errors.New("invalid wall location")

	// ErrMissingDoorMeshPool indicates a room template with no door meshes.
	ErrMissingDoorMeshPool = errors.New("room template has no door meshes")

	// ErrMissingWallMeshPool indicates a room template with no wall meshes.
	ErrMissingWallMeshPool = errors.New("room template has no wall meshes")

	// ErrDuplicateDoor indicates an attempt to add a door where one already
	// exists.
	ErrDuplicateDoor = errors.New("door already present at location")

	// ErrNoDoorAtLocation indicates an attempt to remove a door from a
	// segment that holds a wall mesh.
	ErrNoDoorAtLocation = errors.New("no door at location")
)
