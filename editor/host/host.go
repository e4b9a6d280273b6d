// Package host defines the capability interfaces through which the
// automation pipelines talk to the scene editor. The editor owns every
// persisted asset and spawned actor; pipelines only construct descriptors
// and request creation, they hold no long-lived references.
package host

import (
	"github.com/peterbaudains/vizue/editor/math"
)

// AssetRef identifies an asset registered under a logical path, e.g.
// "/Game/Props/Crate". Logical paths are host-internal virtual directories,
// not filesystem paths.
type AssetRef struct {
	// Name of the asset, unique within its directory.
	Name string
	// Path is the full logical path, directory plus name.
	Path string
}

// ImportTask describes one file to be imported into the asset store. Tasks
// are collected into a batch and submitted in a single ImportTasks call;
// the host performs the actual import out-of-process.
type ImportTask struct {
	// Filename is the absolute path of the source file on disk.
	Filename string
	// DestinationPath is the logical directory the asset is imported under.
	DestinationPath string
	// ReplaceExisting controls whether an asset of the same name is
	// overwritten by the import.
	ReplaceExisting bool
	// Automated suppresses any interactive import dialog.
	Automated bool
	// Save persists the imported asset immediately.
	Save bool

	// Mesh import options.
	StaticMeshOnly  bool
	ImportMaterials bool
	ImportTextures  bool

	// RowStructPath, when set, imports the file as a datatable whose rows
	// follow the named structure asset.
	RowStructPath string
}

// Actor is a handle to a spawned scene actor. Attributes only become
// available once the actor exists in the level.
type Actor interface {
	Name() string
	SetLabel(label string)
	SetTags(tags []string)
	SetScale3D(scale math.Vec3)
	SetMaterial(slot int, material AssetRef) error
}

// AssetIndex lists assets registered under a logical directory path.
type AssetIndex interface {
	AssetsByPath(path string) ([]AssetRef, error)
}

// AssetEditor performs single-asset operations on the asset store.
type AssetEditor interface {
	DoesAssetExist(path string) bool
	DeleteAsset(path string) error
	LoadAsset(path string) (AssetRef, error)
	SaveAsset(ref AssetRef) error
	// CreateMaterialInstance creates an empty material instance asset named
	// name under the logical directory dirPath.
	CreateMaterialInstance(name, dirPath string) (AssetRef, error)
}

// AssetImporter accepts a batch of import tasks and performs the whole
// batch in one call.
type AssetImporter interface {
	ImportTasks(tasks []*ImportTask) error
}

// MaterialEditor edits material instance assets.
type MaterialEditor interface {
	SetInstanceParent(instance AssetRef, parent AssetRef) error
	SetVectorParameter(instance AssetRef, name string, value math.Vec4) error
	UpdateInstance(instance AssetRef) error
}

// LevelEditor spawns actors into the currently edited level. The level is
// carried by the implementation rather than assumed ambient so pipelines
// stay reentrant.
type LevelEditor interface {
	// SpawnActorFromObject places an instance of a loaded asset at location.
	// The location acts as an offset added to the geometry embedded in the
	// asset, it does not replace it.
	SpawnActorFromObject(ref AssetRef, location math.Vec3) (Actor, error)
	// SpawnActorFromClass places an instance of the templated actor class
	// registered at classPath.
	SpawnActorFromClass(classPath string, location math.Vec3) (Actor, error)
}

// Host aggregates every capability the pipelines need.
type Host interface {
	AssetIndex
	AssetEditor
	AssetImporter
	MaterialEditor
	LevelEditor
}
