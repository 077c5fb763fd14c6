package positions

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/windpath/pkg/geometry"
	"github.com/philipparndt/windpath/pkg/waypoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []geometry.Vector3{
	geometry.NewVector3(0, 0, 0),
	geometry.NewVector3(10, 0, 5),
}

func TestMemory(t *testing.T) {
	initial := []geometry.Vector3{geometry.NewVector3(1, 2, 3)}
	m := NewMemory(initial)

	initial[0] = geometry.NewVector3(9, 9, 9)
	assert.Equal(t, []geometry.Vector3{geometry.NewVector3(1, 2, 3)}, m.Positions())

	require.NoError(t, m.SetPositions(sample))
	assert.Equal(t, sample, m.Positions())
	assert.Equal(t, 1, m.Writes())

	got := m.Positions()
	got[0] = geometry.NewVector3(7, 7, 7)
	assert.Equal(t, sample, m.Positions())
}

func TestOpenFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "positions.json")

	f, err := OpenFile(path, nil)
	require.NoError(t, err)
	assert.Empty(t, f.Positions())
	assert.Equal(t, path, f.Path())

	require.NoError(t, f.SetPositions(sample))

	reopened, err := OpenFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, sample, reopened.Positions())
}

func TestOpenFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"position": [1, 2]}]`), 0644))

	_, err := OpenFile(path, nil)
	require.ErrorIs(t, err, waypoint.ErrMalformedSeed)
}

func TestFile_WatchReportsExternalChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.json")
	f, err := OpenFile(path, nil)
	require.NoError(t, err)
	require.NoError(t, f.SetPositions(sample))

	reloads, err := f.Watch(20 * time.Millisecond)
	require.NoError(t, err)
	defer f.Close()

	// Own writes are not echoed.
	require.NoError(t, f.SetPositions(sample[:1]))
	select {
	case r := <-reloads:
		t.Fatalf("unexpected reload after own write: %+v", r)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(path, []byte(`[{"position": [4, 5, 6]}]`), 0644))
	select {
	case r := <-reloads:
		require.NoError(t, r.Err)
		assert.Equal(t, []geometry.Vector3{geometry.NewVector3(4, 5, 6)}, r.Positions)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	assert.Equal(t, []geometry.Vector3{geometry.NewVector3(4, 5, 6)}, f.Positions())

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0644))
	select {
	case r := <-reloads:
		require.ErrorIs(t, r.Err, waypoint.ErrMalformedSeed)
		assert.Nil(t, r.Positions)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for malformed reload")
	}
	assert.Equal(t, []geometry.Vector3{geometry.NewVector3(4, 5, 6)}, f.Positions(), "malformed content must not replace positions")
}

func TestFile_CloseWithoutWatch(t *testing.T) {
	f, err := OpenFile(filepath.Join(t.TempDir(), "positions.json"), nil)
	require.NoError(t, err)
	assert.NoError(t, f.Close())
}
