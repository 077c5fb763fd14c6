package editor

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/windpath/internal/positions"
	"github.com/philipparndt/windpath/pkg/geometry"
	"github.com/philipparndt/windpath/pkg/viewer"
	"github.com/philipparndt/windpath/pkg/waypoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(x, y, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, z)
}

func newEditor(t *testing.T, initial ...geometry.Vector3) (*Editor, *positions.Memory) {
	t.Helper()
	shared := positions.NewMemory(initial)
	e := New(waypoint.NewStore(waypoint.NewIDGenerator("t"), nil), shared)
	require.NoError(t, e.LoadShared())
	return e, shared
}

func TestEditor_LoadDoesNotWriteBack(t *testing.T) {
	e, shared := newEditor(t, vec(0, 0, 0), vec(1, 0, 0))

	assert.Len(t, e.Points(), 2)
	assert.Equal(t, 0, shared.Writes())
}

func TestEditor_LoadMalformedKeepsState(t *testing.T) {
	e, _ := newEditor(t, vec(0, 0, 0), vec(1, 0, 0))
	e.RecomputePath()
	before := e.Points()

	err := e.Load([]geometry.Vector3{vec(math.Inf(1), 0, 0)})
	require.ErrorIs(t, err, waypoint.ErrMalformedSeed)
	assert.Equal(t, before, e.Points())
	assert.Len(t, e.Path(), 2)
}

func TestEditor_LoadDiscardsPath(t *testing.T) {
	e, _ := newEditor(t, vec(0, 0, 0), vec(1, 0, 0))
	e.RecomputePath()

	require.NoError(t, e.Load([]geometry.Vector3{vec(5, 5, 5), vec(6, 6, 6)}))
	assert.Empty(t, e.Path())
}

func TestEditor_RecomputePath(t *testing.T) {
	e, _ := newEditor(t, vec(0, 0, 0), vec(10, 0, 0), vec(1, 0, 0))

	path := e.RecomputePath()
	assert.Equal(t, []string{"t-1", "t-3", "t-2"}, waypoint.IDs(path))
	assert.Equal(t, []geometry.Vector3{vec(0, 0, 0), vec(1, 0, 0), vec(10, 0, 0)}, e.PathPositions())
}

func TestEditor_RecomputePathNeedsTwoPoints(t *testing.T) {
	e, _ := newEditor(t, vec(0, 0, 0))
	assert.Empty(t, e.RecomputePath())
	assert.Empty(t, e.PathPositions())
}

func TestEditor_AddAndMoveLeavePathStale(t *testing.T) {
	e, shared := newEditor(t, vec(0, 0, 0), vec(10, 0, 0), vec(1, 0, 0))
	e.RecomputePath()
	before := e.Path()

	id, err := e.Add(vec(2, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, before, e.Path())
	assert.Len(t, shared.Positions(), 4)

	require.NoError(t, e.Move("t-2", vec(-5, 0, 0)))
	assert.Equal(t, before, e.Path())
	assert.Equal(t, vec(-5, 0, 0), shared.Positions()[1])

	path := e.RecomputePath()
	assert.Equal(t, []string{"t-1", "t-3", id, "t-2"}, waypoint.IDs(path))
	assert.Equal(t, 2, shared.Writes())
}

func TestEditor_DeleteRecomputesPath(t *testing.T) {
	e, shared := newEditor(t, vec(0, 0, 0), vec(10, 0, 0), vec(1, 0, 0), vec(11, 0, 0))
	e.RecomputePath()

	require.NoError(t, e.Delete("t-3"))
	assert.Equal(t, []string{"t-1", "t-2", "t-4"}, waypoint.IDs(e.Path()))
	assert.Equal(t, []geometry.Vector3{vec(0, 0, 0), vec(10, 0, 0), vec(11, 0, 0)}, shared.Positions())
}

func TestEditor_DeleteWithoutPriorPath(t *testing.T) {
	e, _ := newEditor(t, vec(0, 0, 0), vec(10, 0, 0), vec(1, 0, 0))

	require.NoError(t, e.Delete("t-2"))
	assert.Equal(t, []string{"t-1", "t-3"}, waypoint.IDs(e.Path()))
}

func TestEditor_PathClearedWhenShrinkingBelowTwo(t *testing.T) {
	e, _ := newEditor(t, vec(0, 0, 0), vec(10, 0, 0), vec(1, 0, 0))
	require.Len(t, e.RecomputePath(), 3)

	require.NoError(t, e.Delete("t-1"))
	assert.Len(t, e.Path(), 2)

	require.NoError(t, e.Delete("t-2"))
	assert.Empty(t, e.Path())
	assert.Empty(t, e.PathPositions())
}

func TestEditor_DeleteClearsSelection(t *testing.T) {
	e, _ := newEditor(t, vec(0, 0, 0), vec(1, 1, 1))

	e.Select("t-2")
	require.NoError(t, e.Delete("t-2"))

	_, ok := e.Selected()
	assert.False(t, ok)
}

func TestEditor_UnknownIDsAreNoOps(t *testing.T) {
	e, shared := newEditor(t, vec(0, 0, 0), vec(1, 1, 1))
	e.RecomputePath()
	points, path := e.Points(), e.Path()

	require.ErrorIs(t, e.Move("ghost", vec(3, 3, 3)), waypoint.ErrNotFound)
	require.ErrorIs(t, e.Delete("ghost"), waypoint.ErrNotFound)

	assert.Equal(t, points, e.Points())
	assert.Equal(t, path, e.Path())
	assert.Equal(t, 0, shared.Writes())
}

func TestEditor_Place(t *testing.T) {
	shared := positions.NewMemory(nil)
	e := New(waypoint.NewStore(waypoint.NewIDGenerator("t"), nil), shared, WithPlaceDistance(10))

	cam := &viewer.Camera{Position: vec(0, 2, 0), Target: vec(0, 2, -1)}
	id, err := e.Place(cam)
	require.NoError(t, err)

	points := e.Points()
	require.Len(t, points, 1)
	assert.Equal(t, id, points[0].ID)
	assert.InDelta(t, 0, points[0].Position.Distance(vec(0, 2, -10)), 1e-9)
}

type failingStore struct{ positions.Memory }

func (failingStore) SetPositions([]geometry.Vector3) error {
	return errors.New("disk full")
}

func TestEditor_SyncErrorsAreReported(t *testing.T) {
	e := New(waypoint.NewStore(waypoint.NewIDGenerator("t"), nil), &failingStore{})

	id, err := e.Add(vec(1, 1, 1))
	require.ErrorContains(t, err, "disk full")
	assert.NotEmpty(t, id)
	assert.Len(t, e.Points(), 1)
}

func TestEditor_WithoutSharedStore(t *testing.T) {
	e := New(waypoint.NewStore(waypoint.NewIDGenerator("t"), nil), nil)
	require.NoError(t, e.LoadShared())

	_, err := e.Add(vec(1, 1, 1))
	require.NoError(t, err)
	assert.Len(t, e.Points(), 1)
}
