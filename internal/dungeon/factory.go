package dungeon

import (
	"fmt"

	"go.uber.org/zap"
)

// Instantiator resolves a template asset into a live, placed Room with its
// walls and mesh pools already populated. Implementations live in the
// content layer; the core never loads assets itself.
type Instantiator interface {
	Instantiate(ref AssetRef, at Placement) (*Room, error)
}

// SpawnInfo describes one room to assemble: the template to resolve, where
// to place it, and the doorways to open.
type SpawnInfo struct {
	Asset         AssetRef
	Location      Placement
	DoorLocations []WallLocation
}

// Factory assembles rooms from templates by delegating resolution to an
// Instantiator and applying the requested doors in order.
type Factory struct {
	inst   Instantiator
	logger *zap.Logger
}

// NewFactory returns a Factory spawning through inst. A nil logger
// disables logging.
func NewFactory(inst Instantiator, logger *zap.Logger) *Factory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{inst: inst, logger: logger}
}

// Spawn resolves info.Asset, places the room, and adds a door at each
// entry of info.DoorLocations in the given order. A duplicate location in
// the list fails the second AddDoor with ErrDuplicateDoor and fails the
// spawn; the partially-doored room is not returned.
//
// Postcondition: Returns a fully-doored room or a non-nil error.
func (f *Factory) Spawn(info SpawnInfo) (*Room, error) {
	room, err := f.inst.Instantiate(info.Asset, info.Location)
	if err != nil {
		return nil, fmt.Errorf("instantiating %s: %w", info.Asset, err)
	}

	for _, loc := range info.DoorLocations {
		if err := room.AddDoor(loc); err != nil {
			return nil, fmt.Errorf("spawning %s: adding door at %s: %w", info.Asset, loc, err)
		}
	}

	f.logger.Debug("room spawned",
		zap.String("asset", string(info.Asset)),
		zap.String("room_id", room.ID().String()),
		zap.Int("doors", len(info.DoorLocations)),
	)
	return room, nil
}
