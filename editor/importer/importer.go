// Package importer scans a directory of mesh files and submits them to the
// host import facility as a single batch of import tasks.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbaudains/vizue/editor/core"
	"github.com/peterbaudains/vizue/editor/host"
)

// Store is the slice of host capabilities the importer needs.
type Store interface {
	DoesAssetExist(path string) bool
	ImportTasks(tasks []*host.ImportTask) error
}

// Recognized mesh file extensions, matched case-insensitively.
var meshExtensions = map[string]bool{
	".fbx":  true,
	".obj":  true,
	".glb":  true,
	".gltf": true,
}

// IsMeshFile reports whether the file name carries a recognized mesh
// extension.
func IsMeshFile(name string) bool {
	return meshExtensions[strings.ToLower(filepath.Ext(name))]
}

type Config struct {
	// SourceDir is the filesystem directory scanned for mesh files.
	SourceDir string
	// DestinationPath is the logical directory the assets are imported
	// under.
	DestinationPath string
}

type Importer struct {
	config *Config
	store  Store
}

func NewImporter(config *Config, store Store) (*Importer, error) {
	if config.SourceDir == "" {
		return nil, fmt.Errorf("func NewImporter - config.SourceDir must not be empty")
	}
	if config.DestinationPath == "" {
		return nil, fmt.Errorf("func NewImporter - config.DestinationPath must not be empty")
	}
	return &Importer{
		config: config,
		store:  store,
	}, nil
}

// CollectTasks walks the source directory and builds one import task per
// recognized mesh file whose destination asset does not exist yet. Existing
// assets are skipped and left untouched.
func (im *Importer) CollectTasks() ([]*host.ImportTask, error) {
	entries, err := os.ReadDir(im.config.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", im.config.SourceDir, err)
	}

	tasks := make([]*host.ImportTask, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		core.LogInfo("creating asset import task for file %s", name)
		if !IsMeshFile(name) {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		assetPath := host.JoinPath(im.config.DestinationPath, stem)
		if im.store.DoesAssetExist(assetPath) {
			core.LogInfo("specified asset already exists. Skipping file.")
			core.LogInfo("current asset will not be altered.")
			continue
		}
		tasks = append(tasks, &host.ImportTask{
			Filename:        filepath.Join(im.config.SourceDir, name),
			DestinationPath: im.config.DestinationPath,
			ReplaceExisting: false,
			Automated:       true,
			Save:            true,
			StaticMeshOnly:  true,
			ImportMaterials: false,
			ImportTextures:  false,
		})
	}
	return tasks, nil
}

// Run collects the import tasks and, if any were produced, submits the
// whole batch in one call. A host import failure is not retried here, it
// propagates to the caller.
func (im *Importer) Run() error {
	tasks, err := im.CollectTasks()
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		core.LogInfo("no new mesh files to import from %s", im.config.SourceDir)
		return nil
	}
	core.LogInfo("importing %d mesh file(s) into %s", len(tasks), im.config.DestinationPath)
	return im.store.ImportTasks(tasks)
}
