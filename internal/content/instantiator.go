package content

import (
	"errors"
	"fmt"

	"github.com/grimholt/dungeonforge/internal/dungeon"
	"github.com/grimholt/dungeonforge/internal/random"
)

// ErrUnknownTemplate indicates an instantiation request for an asset path
// no scanned descriptor covers.
var ErrUnknownTemplate = errors.New("no template registered for asset")

// Instantiator builds live rooms from scanned template descriptors. It
// implements dungeon.Instantiator for factories assembling from manifest
// content.
type Instantiator struct {
	templates map[dungeon.AssetRef]TemplateDescriptor
	rng       random.Source
}

// NewInstantiator indexes the given descriptors by asset path. A nil rng
// defaults to a crypto-backed source; pass a seeded source for
// reproducible assembly.
//
// Precondition: descriptors should already be validated (ScanDir output).
func NewInstantiator(descs []TemplateDescriptor, rng random.Source) *Instantiator {
	if rng == nil {
		rng = random.NewCryptoSource()
	}
	templates := make(map[dungeon.AssetRef]TemplateDescriptor, len(descs))
	for _, d := range descs {
		templates[d.Path] = d
	}
	return &Instantiator{templates: templates, rng: rng}
}

// Instantiate resolves ref to its descriptor and builds a live room at the
// given placement: four walls built from the descriptor's tagged segments,
// mesh pools copied, a fresh room ID assigned.
//
// Postcondition: Returns a door-free room, or ErrUnknownTemplate, or a
// wall-building error for malformed segment tags.
func (in *Instantiator) Instantiate(ref dungeon.AssetRef, at dungeon.Placement) (*dungeon.Room, error) {
	desc, ok := in.templates[ref]
	if !ok {
		return nil, fmt.Errorf("%q: %w", ref, ErrUnknownTemplate)
	}

	walls := make(map[dungeon.Direction]*dungeon.SegmentedWall, 4)
	for d, segments := range map[dungeon.Direction][]dungeon.TaggedSegment{
		dungeon.North: desc.Walls.North,
		dungeon.South: desc.Walls.South,
		dungeon.East:  desc.Walls.East,
		dungeon.West:  desc.Walls.West,
	} {
		wall, err := dungeon.BuildWall(segments)
		if err != nil {
			return nil, fmt.Errorf("template %s: building %s wall: %w", desc.Path, d, err)
		}
		walls[d] = wall
	}

	room, err := dungeon.NewRoom(dungeon.RoomConfig{
		Placement:  at,
		North:      walls[dungeon.North],
		South:      walls[dungeon.South],
		East:       walls[dungeon.East],
		West:       walls[dungeon.West],
		DoorMeshes: desc.DoorMeshes,
		WallMeshes: desc.WallMeshes,
		Rand:       in.rng,
	})
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", desc.Path, err)
	}
	return room, nil
}

// TemplateCount returns the number of registered templates.
func (in *Instantiator) TemplateCount() int {
	return len(in.templates)
}
