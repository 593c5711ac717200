package dungeon

import "fmt"

// Theme tags a room template with the dungeon style it belongs to (e.g.
// "forest", "crypt"). Themes are content-defined; the catalog treats them
// as an open set.
type Theme string

// AssetRef is an opaque reference to an unloaded room template asset.
// The core never dereferences it; resolution is the Instantiator's job.
type AssetRef string

// MeshRef is an opaque reference to a static mesh asset. Door presence is
// decided by MeshRef equality against a room's door mesh pool.
type MeshRef string

// RoomSpecs identifies a class of interchangeable room templates by theme
// and footprint. It is comparable and used directly as a map key.
//
// Invariant: Width > 0 and Length > 0.
type RoomSpecs struct {
	Theme  Theme
	Width  int
	Length int
}

// Validate checks the RoomSpecs invariants.
//
// Postcondition: Returns nil iff both dimensions are positive.
func (s RoomSpecs) Validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("room specs %s: width must be > 0, got %d", s.Theme, s.Width)
	}
	if s.Length <= 0 {
		return fmt.Errorf("room specs %s: length must be > 0, got %d", s.Theme, s.Length)
	}
	return nil
}

// String returns the specs in "forest 3x4" form.
func (s RoomSpecs) String() string {
	return fmt.Sprintf("%s %dx%d", s.Theme, s.Width, s.Length)
}
