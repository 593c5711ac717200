package dungeon

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInstantiator returns a fresh test room per call and records the
// placements it was asked for.
type fakeInstantiator struct {
	t          *testing.T
	placements []Placement
	failWith   error
}

func (f *fakeInstantiator) Instantiate(ref AssetRef, at Placement) (*Room, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.placements = append(f.placements, at)
	room, err := NewRoom(RoomConfig{
		Placement:  at,
		North:      plainWall(f.t, 3),
		South:      plainWall(f.t, 3),
		East:       plainWall(f.t, 4),
		West:       plainWall(f.t, 4),
		DoorMeshes: []MeshRef{"SM_Door_A"},
		WallMeshes: []MeshRef{"SM_Wall_A"},
		Rand:       &stubSource{vals: []int{0}},
	})
	require.NoError(f.t, err)
	return room, nil
}

func TestFactory_SpawnAppliesDoorsInOrder(t *testing.T) {
	inst := &fakeInstantiator{t: t}
	factory := NewFactory(inst, nil)

	doors := []WallLocation{{North, 0}, {East, 2}, {South, 1}}
	room, err := factory.Spawn(SpawnInfo{
		Asset:         "Rooms/BP_Forest_3x4",
		Location:      Placement{X: 10, Y: 20},
		DoorLocations: doors,
	})
	require.NoError(t, err)

	assert.Equal(t, Placement{X: 10, Y: 20}, room.Placement())
	for _, loc := range doors {
		has, err := room.HasDoorAt(loc)
		require.NoError(t, err)
		assert.True(t, has, "expected door at %s", loc)
	}
}

func TestFactory_SpawnDuplicateDoorLocationFails(t *testing.T) {
	inst := &fakeInstantiator{t: t}
	factory := NewFactory(inst, nil)

	loc := WallLocation{North, 0}
	room, err := factory.Spawn(SpawnInfo{
		Asset:         "Rooms/BP_Forest_3x4",
		DoorLocations: []WallLocation{loc, loc},
	})
	assert.ErrorIs(t, err, ErrDuplicateDoor)
	assert.Nil(t, room)
}

func TestFactory_SpawnInvalidDoorLocationFails(t *testing.T) {
	inst := &fakeInstantiator{t: t}
	factory := NewFactory(inst, nil)

	room, err := factory.Spawn(SpawnInfo{
		Asset:         "Rooms/BP_Forest_3x4",
		DoorLocations: []WallLocation{{West, 99}},
	})
	assert.ErrorIs(t, err, ErrInvalidWallLocation)
	assert.Nil(t, room)
}

func TestFactory_SpawnPropagatesInstantiationError(t *testing.T) {
	wantErr := errors.New("asset not found")
	factory := NewFactory(&fakeInstantiator{t: t, failWith: wantErr}, nil)

	_, err := factory.Spawn(SpawnInfo{Asset: "Rooms/BP_Missing"})
	assert.ErrorIs(t, err, wantErr)
}

func TestDungeon_AddRoom(t *testing.T) {
	inst := &fakeInstantiator{t: t}
	factory := NewFactory(inst, nil)
	d := NewDungeon()

	for i := 0; i < 3; i++ {
		room, err := factory.Spawn(SpawnInfo{
			Asset:    AssetRef(fmt.Sprintf("Rooms/BP_%d", i)),
			Location: Placement{X: float64(i) * 8},
		})
		require.NoError(t, err)
		d.AddRoom(room)
	}

	assert.Equal(t, 3, d.RoomCount())
	rooms := d.Rooms()
	require.Len(t, rooms, 3)
	assert.Equal(t, 16.0, rooms[2].Placement().X)

	d.AddRoom(nil)
	assert.Equal(t, 3, d.RoomCount())
}
