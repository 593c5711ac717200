package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimholt/dungeonforge/internal/content"
	"github.com/grimholt/dungeonforge/internal/dungeon"
	"github.com/grimholt/dungeonforge/internal/random"
)

func scannedForest(t *testing.T) content.TemplateDescriptor {
	t.Helper()
	desc, err := content.LoadTemplateFromBytes([]byte(forestManifest))
	require.NoError(t, err)
	return desc
}

func TestInstantiator_Instantiate(t *testing.T) {
	desc := scannedForest(t)
	inst := content.NewInstantiator([]content.TemplateDescriptor{desc}, random.NewSeededSource(1))

	room, err := inst.Instantiate(desc.Path, dungeon.Placement{X: 4, Y: 8})
	require.NoError(t, err)

	assert.Equal(t, dungeon.Placement{X: 4, Y: 8}, room.Placement())

	north, err := room.Wall(dungeon.North)
	require.NoError(t, err)
	assert.Equal(t, 2, north.Len())
	east, err := room.Wall(dungeon.East)
	require.NoError(t, err)
	assert.Equal(t, 3, east.Len())

	// Fresh rooms have no doors anywhere.
	for _, loc := range []dungeon.WallLocation{
		{Direction: dungeon.North, SegmentIndex: 0},
		{Direction: dungeon.South, SegmentIndex: 1},
		{Direction: dungeon.West, SegmentIndex: 2},
	} {
		has, err := room.HasDoorAt(loc)
		require.NoError(t, err)
		assert.False(t, has)
	}
}

func TestInstantiator_UnknownTemplate(t *testing.T) {
	inst := content.NewInstantiator([]content.TemplateDescriptor{scannedForest(t)}, nil)

	_, err := inst.Instantiate("Rooms/BP_Nowhere", dungeon.Placement{})
	assert.ErrorIs(t, err, content.ErrUnknownTemplate)
}

func TestInstantiator_DistinctRoomsPerCall(t *testing.T) {
	desc := scannedForest(t)
	inst := content.NewInstantiator([]content.TemplateDescriptor{desc}, random.NewSeededSource(1))

	a, err := inst.Instantiate(desc.Path, dungeon.Placement{})
	require.NoError(t, err)
	b, err := inst.Instantiate(desc.Path, dungeon.Placement{})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID())

	// Mutating one instance must not leak into the other.
	loc := dungeon.WallLocation{Direction: dungeon.North, SegmentIndex: 0}
	require.NoError(t, a.AddDoor(loc))
	has, err := b.HasDoorAt(loc)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestInstantiator_BadSegmentTags(t *testing.T) {
	desc := scannedForest(t)
	desc.Walls.East[0].Tag = "x"
	inst := content.NewInstantiator([]content.TemplateDescriptor{desc}, nil)

	_, err := inst.Instantiate(desc.Path, dungeon.Placement{})
	assert.ErrorIs(t, err, dungeon.ErrInvalidSegmentTag)
}

func TestInstantiator_SpawnThroughFactory(t *testing.T) {
	desc := scannedForest(t)
	inst := content.NewInstantiator([]content.TemplateDescriptor{desc}, random.NewSeededSource(42))
	factory := dungeon.NewFactory(inst, nil)

	room, err := factory.Spawn(dungeon.SpawnInfo{
		Asset:    desc.Path,
		Location: dungeon.Placement{X: 16},
		DoorLocations: []dungeon.WallLocation{
			{Direction: dungeon.North, SegmentIndex: 1},
			{Direction: dungeon.East, SegmentIndex: 0},
		},
	})
	require.NoError(t, err)

	for _, loc := range []dungeon.WallLocation{
		{Direction: dungeon.North, SegmentIndex: 1},
		{Direction: dungeon.East, SegmentIndex: 0},
	} {
		has, err := room.HasDoorAt(loc)
		require.NoError(t, err)
		assert.True(t, has)
	}

	assert.Equal(t, 1, inst.TemplateCount())
}
