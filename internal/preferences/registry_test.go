package preferences

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frckit/pitcrew/internal/workspace"
)

// fakePicker returns a scripted choice, recording whether it was invoked.
type fakePicker struct {
	choice    string
	cancelled bool
	invoked   bool
}

func (p *fakePicker) Pick(_ context.Context, items []string, _ string) (string, bool, error) {
	p.invoked = true
	if p.cancelled {
		return "", false, nil
	}
	if p.choice != "" {
		return p.choice, true, nil
	}
	return items[0], true, nil
}

func TestRegistryRebuildOnFolderChange(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	source := workspace.NewDirSource(dirA)
	r := NewRegistry(source, &fakePicker{})
	defer r.Close()

	folderA := workspace.NewFolder(dirA)
	folderB := workspace.NewFolder(dirB)

	before := r.Preferences(folderA)
	require.NotNil(t, before)
	assert.True(t, before.Folder().Equal(folderA))

	var events []ChangeEvent
	r.OnChange(func(e ChangeEvent) { events = append(events, e) })

	source.SetFolders(dirA, dirB)

	require.Len(t, events, 1, "exactly one event per mutation")
	require.Len(t, events[0].Pairs, 2)

	assert.True(t, before.Closed(), "stores from before the event are disposed")

	after := r.Preferences(folderA)
	require.NotNil(t, after)
	assert.NotSame(t, before, after, "old store must never be returned after a rebuild")
	assert.True(t, after.Folder().Equal(folderA))

	b := r.Preferences(folderB)
	require.NotNil(t, b)
	assert.True(t, b.Folder().Equal(folderB))
}

func TestRegistryFallbackToFirstStore(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	source := workspace.NewDirSource(dirA, dirB)
	r := NewRegistry(source, &fakePicker{})
	defer r.Close()

	unknown := workspace.NewFolder(t.TempDir())
	s := r.Preferences(unknown)
	require.NotNil(t, s)
	assert.True(t, s.Folder().Equal(workspace.NewFolder(dirA)), "miss falls back to the first store")
}

func TestRegistryPreferencesWithNoFolders(t *testing.T) {
	r := NewRegistry(workspace.NewDirSource(), &fakePicker{})
	defer r.Close()

	assert.Nil(t, r.Preferences(workspace.NewFolder(t.TempDir())))
}

func TestRegistryCloseIsRepeatable(t *testing.T) {
	source := workspace.NewDirSource(t.TempDir(), t.TempDir())
	r := NewRegistry(source, &fakePicker{})

	stores := make([]*Store, 0, 2)
	for _, f := range source.Folders() {
		stores = append(stores, r.Preferences(f))
	}

	require.NoError(t, r.Close())
	for _, s := range stores {
		assert.True(t, s.Closed())
	}
	require.NoError(t, r.Close())
}

func TestFirstOrSelectedWorkspace(t *testing.T) {
	ctx := context.Background()

	t.Run("zero folders", func(t *testing.T) {
		picker := &fakePicker{}
		r := NewRegistry(workspace.NewDirSource(), picker)
		defer r.Close()

		_, ok, err := r.FirstOrSelectedWorkspace(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, picker.invoked, "picker must not run for zero folders")
	})

	t.Run("one folder", func(t *testing.T) {
		dir := t.TempDir()
		picker := &fakePicker{}
		r := NewRegistry(workspace.NewDirSource(dir), picker)
		defer r.Close()

		folder, ok, err := r.FirstOrSelectedWorkspace(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, folder.Equal(workspace.NewFolder(dir)))
		assert.False(t, picker.invoked, "picker must not run for a single folder")
	})

	t.Run("many folders picks", func(t *testing.T) {
		dirA := t.TempDir()
		dirB := t.TempDir()
		picker := &fakePicker{choice: workspace.NewFolder(dirB).String()}
		r := NewRegistry(workspace.NewDirSource(dirA, dirB), picker)
		defer r.Close()

		folder, ok, err := r.FirstOrSelectedWorkspace(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, picker.invoked)
		assert.True(t, folder.Equal(workspace.NewFolder(dirB)))
	})

	t.Run("many folders cancelled", func(t *testing.T) {
		picker := &fakePicker{cancelled: true}
		r := NewRegistry(workspace.NewDirSource(t.TempDir(), t.TempDir()), picker)
		defer r.Close()

		_, ok, err := r.FirstOrSelectedWorkspace(ctx)
		require.NoError(t, err)
		assert.False(t, ok, "cancellation is an absent result, not an error")
	})
}
