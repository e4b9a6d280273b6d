package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterbaudains/vizue/editor/host/memory"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("mesh"), 0o644))
}

func TestCollectTasks(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, srcDir, "crate.fbx")
	writeFile(t, srcDir, "barrel.FBX")
	writeFile(t, srcDir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(srcDir, "nested"), 0o755))

	h := memory.New()
	h.RegisterAsset("/Game/barrel")

	im, err := NewImporter(&Config{SourceDir: srcDir, DestinationPath: "/Game/"}, h)
	require.NoError(t, err)

	tasks, err := im.CollectTasks()
	require.NoError(t, err)

	// crate.fbx is new, barrel already has an asset, notes.txt is not a
	// mesh file and the nested directory is not descended into.
	require.Len(t, tasks, 1)
	task := tasks[0]
	assert.Equal(t, filepath.Join(srcDir, "crate.fbx"), task.Filename)
	assert.Equal(t, "/Game/", task.DestinationPath)
	assert.False(t, task.ReplaceExisting)
	assert.True(t, task.Automated)
	assert.True(t, task.Save)
	assert.True(t, task.StaticMeshOnly)
	assert.False(t, task.ImportMaterials)
	assert.False(t, task.ImportTextures)
}

func TestRunSubmitsOneBatch(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, srcDir, "crate.fbx")
	writeFile(t, srcDir, "barrel.fbx")

	h := memory.New()
	im, err := NewImporter(&Config{SourceDir: srcDir, DestinationPath: "/Game/"}, h)
	require.NoError(t, err)

	require.NoError(t, im.Run())
	assert.Equal(t, 1, h.ImportCalls)
	require.Len(t, h.ImportedTasks, 1)
	assert.Len(t, h.ImportedTasks[0], 2)
	assert.True(t, h.DoesAssetExist("/Game/crate"))
	assert.True(t, h.DoesAssetExist("/Game/barrel"))
}

func TestRunIsIdempotent(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, srcDir, "crate.fbx")

	h := memory.New()
	im, err := NewImporter(&Config{SourceDir: srcDir, DestinationPath: "/Game/"}, h)
	require.NoError(t, err)

	require.NoError(t, im.Run())
	require.Equal(t, 1, h.ImportCalls)

	// Second run against an unchanged directory: every destination exists,
	// so zero tasks and zero host calls.
	require.NoError(t, im.Run())
	assert.Equal(t, 1, h.ImportCalls)
}

func TestIsMeshFile(t *testing.T) {
	assert.True(t, IsMeshFile("model.fbx"))
	assert.True(t, IsMeshFile("MODEL.GLB"))
	assert.True(t, IsMeshFile("scene.gltf"))
	assert.False(t, IsMeshFile("model.fbx.bak"))
	assert.False(t, IsMeshFile("readme.md"))
}

func TestNewImporterValidation(t *testing.T) {
	_, err := NewImporter(&Config{DestinationPath: "/Game/"}, memory.New())
	assert.Error(t, err)
	_, err = NewImporter(&Config{SourceDir: "x"}, memory.New())
	assert.Error(t, err)
}
