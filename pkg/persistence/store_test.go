package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openiio/iio-go/pkg/iioxml"
	"github.com/openiio/iio-go/pkg/model"
)

func buildTestContext(t *testing.T) *model.Context {
	t.Helper()

	ctx := model.NewContext("xml", "bench rig")
	ctx.AddAttr("uri", "ip:bench.local")

	dev := model.NewDevice("iio:device0")
	dev.SetName("adc")
	dev.Attrs(model.NamespaceDevice).Add("sampling_frequency")

	ch := model.NewChannel("voltage0")
	ch.SetScanElement(true)
	ch.SetIndex(0)
	ch.SetFormat(model.DataFormat{
		IsSigned:       true,
		IsFullyDefined: true,
		Bits:           16,
		Length:         16,
		Repeat:         1,
	})
	dev.AddChannel(ch)
	ctx.AddDevice(dev)

	ctx.Finalize()
	return ctx
}

func TestStoreSaveLoad(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := buildTestContext(t)

	snap, err := store.Save("bench", ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, "bench", snap.Name)
	assert.Equal(t, "bench.xml", snap.File)
	assert.Equal(t, "bench rig", snap.Description)
	assert.Equal(t, 1, snap.Devices)
	assert.False(t, snap.SavedAt.IsZero())

	loaded, err := store.Load("bench", iioxml.Params{})
	require.NoError(t, err)
	assert.True(t, ctx.Equal(loaded))
}

func TestStoreSaveReplacesByName(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := buildTestContext(t)

	first, err := store.Save("bench", ctx)
	require.NoError(t, err)
	second, err := store.Save("bench", ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	snaps, err := store.List()
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, second.ID, snaps[0].ID)
}

func TestStoreListOrder(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := buildTestContext(t)

	_, err := store.Save("first", ctx)
	require.NoError(t, err)
	_, err = store.Save("second", ctx)
	require.NoError(t, err)

	snaps, err := store.List()
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, "first", snaps[0].Name)
	assert.Equal(t, "second", snaps[1].Name)
}

func TestStoreRemove(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	ctx := buildTestContext(t)

	snap, err := store.Save("bench", ctx)
	require.NoError(t, err)

	require.NoError(t, store.Remove("bench"))

	_, err = os.Stat(filepath.Join(dir, snap.File))
	assert.True(t, os.IsNotExist(err))

	snaps, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, snaps)

	_, err = store.Load("bench", iioxml.Params{})
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestStoreRemoveUnknown(t *testing.T) {
	store := NewStore(t.TempDir())
	assert.ErrorIs(t, store.Remove("missing"), ErrSnapshotNotFound)
}

func TestStoreLoadUnknown(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Load("missing", iioxml.Params{})
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestStoreEmptyList(t *testing.T) {
	store := NewStore(t.TempDir())
	snaps, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, snaps)
}
