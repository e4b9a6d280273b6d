package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterbaudains/vizue/editor/core"
	"github.com/peterbaudains/vizue/editor/host"
	"github.com/peterbaudains/vizue/editor/math"
)

func TestAssetsByPath(t *testing.T) {
	h := New()
	h.RegisterAsset("/Game/Test/crate")
	h.RegisterAsset("/Game/Test/barrel")
	h.RegisterAsset("/Game/Test/Nested/lamp")
	h.RegisterAsset("/Game/other")

	refs, err := h.AssetsByPath("/Game/Test/")
	require.NoError(t, err)

	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}
	// Direct children only, nested directories are not descended into.
	assert.ElementsMatch(t, []string{"crate", "barrel"}, names)

	// A missing trailing slash lists the same directory.
	refs, err = h.AssetsByPath("/Game/Test")
	require.NoError(t, err)
	assert.Len(t, refs, 2)
}

func TestAssetLifecycle(t *testing.T) {
	h := New()

	assert.False(t, h.DoesAssetExist("/Game/crate"))
	_, err := h.LoadAsset("/Game/crate")
	assert.ErrorIs(t, err, core.ErrAssetNotFound)
	assert.ErrorIs(t, h.DeleteAsset("/Game/crate"), core.ErrAssetNotFound)

	ref := h.RegisterAsset("/Game/crate")
	assert.Equal(t, "crate", ref.Name)
	assert.True(t, h.DoesAssetExist("/Game/crate"))
	require.NoError(t, h.SaveAsset(ref))

	require.NoError(t, h.DeleteAsset("/Game/crate"))
	assert.False(t, h.DoesAssetExist("/Game/crate"))
	assert.Equal(t, []string{"/Game/crate"}, h.DeletedAssets)
}

func TestImportTasksRegistersAssets(t *testing.T) {
	h := New()
	h.RegisterAsset("/Game/existing")

	err := h.ImportTasks([]*host.ImportTask{
		{Filename: "/tmp/crate.fbx", DestinationPath: "/Game/", Save: true},
		{Filename: "/tmp/existing.fbx", DestinationPath: "/Game/", ReplaceExisting: false},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, h.ImportCalls)
	assert.True(t, h.DoesAssetExist("/Game/crate"))
	assert.True(t, h.DoesAssetExist("/Game/existing"))
}

func TestMaterialEditing(t *testing.T) {
	h := New()

	ref, err := h.CreateMaterialInstance("red", "/Game/")
	require.NoError(t, err)
	assert.Equal(t, "/Game/red", ref.Path)

	// Creating over an existing asset is refused; callers delete first.
	_, err = h.CreateMaterialInstance("red", "/Game/")
	assert.Error(t, err)

	parent := h.RegisterAsset("/Engine/Base")
	require.NoError(t, h.SetInstanceParent(ref, parent))
	require.NoError(t, h.SetVectorParameter(ref, "Color", math.Vec4{X: 1, W: 1}))
	require.NoError(t, h.UpdateInstance(ref))

	st, ok := h.Material(ref.Path)
	require.True(t, ok)
	assert.Equal(t, "/Engine/Base", st.Parent.Path)
	assert.Equal(t, math.Vec4{X: 1, W: 1}, st.Parameters["Color"])
	assert.True(t, st.Updated)

	// Material editing on a non-material asset errors.
	assert.Error(t, h.SetInstanceParent(parent, ref))
}

func TestSpawnNaming(t *testing.T) {
	h := New()

	a1, err := h.SpawnActorFromClass("/Game/Point_Blueprint", math.Vec3{X: 1})
	require.NoError(t, err)
	a2, err := h.SpawnActorFromClass("/Game/Point_Blueprint", math.Vec3{X: 2})
	require.NoError(t, err)

	assert.Equal(t, "Point_Blueprint_1", a1.Name())
	assert.Equal(t, "Point_Blueprint_2", a2.Name())
	assert.Len(t, h.Actors(), 2)
}
