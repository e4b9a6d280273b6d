// Package memory provides an in-memory Host implementation. It backs the
// CLI dry-run mode and the pipeline tests: every requested import, material
// edit and spawn is recorded instead of being sent to a live editor.
package memory

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/peterbaudains/vizue/editor/core"
	"github.com/peterbaudains/vizue/editor/host"
	"github.com/peterbaudains/vizue/editor/math"
)

// MaterialState holds everything the pipelines have set on a material
// instance asset.
type MaterialState struct {
	Parent     host.AssetRef
	Parameters map[string]math.Vec4
	Updated    bool
}

// Host records assets, actors and import batches in memory.
type Host struct {
	mutex sync.Mutex

	assets    map[string]host.AssetRef
	saved     map[string]bool
	materials map[string]*MaterialState

	actors     []*Actor
	nameCounts map[string]int

	// ImportCalls counts batch import invocations, not individual tasks.
	ImportCalls   int
	ImportedTasks [][]*host.ImportTask
	DeletedAssets []string
}

func New() *Host {
	return &Host{
		assets:     make(map[string]host.AssetRef),
		saved:      make(map[string]bool),
		materials:  make(map[string]*MaterialState),
		nameCounts: make(map[string]int),
	}
}

// RegisterAsset pre-populates the asset index, standing in for assets that
// already exist in the store before a pipeline runs.
func (h *Host) RegisterAsset(path string) host.AssetRef {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.registerLocked(path)
}

func (h *Host) registerLocked(path string) host.AssetRef {
	ref := host.AssetRef{Name: nameOf(path), Path: path}
	h.assets[path] = ref
	return ref
}

func nameOf(path string) string {
	idx := strings.LastIndex(path, "/")
	return path[idx+1:]
}

func (h *Host) AssetsByPath(path string) ([]host.AssetRef, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	dir := path
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	refs := make([]host.AssetRef, 0)
	for p, ref := range h.assets {
		if strings.HasPrefix(p, dir) && !strings.Contains(strings.TrimPrefix(p, dir), "/") {
			refs = append(refs, ref)
		}
	}
	return refs, nil
}

func (h *Host) DoesAssetExist(path string) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	_, exists := h.assets[path]
	return exists
}

func (h *Host) DeleteAsset(path string) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.assets[path]; !exists {
		return fmt.Errorf("delete %s: %w", path, core.ErrAssetNotFound)
	}
	delete(h.assets, path)
	delete(h.saved, path)
	delete(h.materials, path)
	h.DeletedAssets = append(h.DeletedAssets, path)
	return nil
}

func (h *Host) LoadAsset(path string) (host.AssetRef, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	ref, exists := h.assets[path]
	if !exists {
		return host.AssetRef{}, fmt.Errorf("load %s: %w", path, core.ErrAssetNotFound)
	}
	return ref, nil
}

func (h *Host) SaveAsset(ref host.AssetRef) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.assets[ref.Path]; !exists {
		return fmt.Errorf("save %s: %w", ref.Path, core.ErrAssetNotFound)
	}
	h.saved[ref.Path] = true
	return nil
}

func (h *Host) CreateMaterialInstance(name, dirPath string) (host.AssetRef, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	path := host.JoinPath(dirPath, name)
	if _, exists := h.assets[path]; exists {
		return host.AssetRef{}, fmt.Errorf("create %s: asset already exists", path)
	}
	ref := h.registerLocked(path)
	h.materials[path] = &MaterialState{Parameters: make(map[string]math.Vec4)}
	return ref, nil
}

// Material returns the recorded state of a material instance asset.
func (h *Host) Material(path string) (*MaterialState, bool) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	st, ok := h.materials[path]
	return st, ok
}

func (h *Host) ImportTasks(tasks []*host.ImportTask) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.ImportCalls++
	h.ImportedTasks = append(h.ImportedTasks, tasks)
	for _, task := range tasks {
		base := filepath.Base(task.Filename)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		path := host.JoinPath(task.DestinationPath, stem)
		if _, exists := h.assets[path]; exists && !task.ReplaceExisting {
			continue
		}
		h.registerLocked(path)
		if task.Save {
			h.saved[path] = true
		}
	}
	return nil
}

func (h *Host) SetInstanceParent(instance host.AssetRef, parent host.AssetRef) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	st, ok := h.materials[instance.Path]
	if !ok {
		return fmt.Errorf("set parent on %s: %w", instance.Path, core.ErrAssetNotFound)
	}
	st.Parent = parent
	return nil
}

func (h *Host) SetVectorParameter(instance host.AssetRef, name string, value math.Vec4) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	st, ok := h.materials[instance.Path]
	if !ok {
		return fmt.Errorf("set parameter on %s: %w", instance.Path, core.ErrAssetNotFound)
	}
	st.Parameters[name] = value
	return nil
}

func (h *Host) UpdateInstance(instance host.AssetRef) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	st, ok := h.materials[instance.Path]
	if !ok {
		return fmt.Errorf("update %s: %w", instance.Path, core.ErrAssetNotFound)
	}
	st.Updated = true
	return nil
}

func (h *Host) SpawnActorFromObject(ref host.AssetRef, location math.Vec3) (host.Actor, error) {
	return h.spawn(ref.Name, location), nil
}

func (h *Host) SpawnActorFromClass(classPath string, location math.Vec3) (host.Actor, error) {
	return h.spawn(nameOf(classPath), location), nil
}

func (h *Host) spawn(base string, location math.Vec3) *Actor {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.nameCounts[base]++
	a := &Actor{
		name:     fmt.Sprintf("%s_%d", base, h.nameCounts[base]),
		Location: location,
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
	h.actors = append(h.actors, a)
	return a
}

// Actors returns every actor spawned so far, in spawn order.
func (h *Host) Actors() []*Actor {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	out := make([]*Actor, len(h.actors))
	copy(out, h.actors)
	return out
}

// Actor is the in-memory spawned actor handle.
type Actor struct {
	name string

	Location  math.Vec3
	Scale     math.Vec3
	Label     string
	Tags      []string
	Materials map[int]host.AssetRef
}

func (a *Actor) Name() string { return a.name }

func (a *Actor) SetLabel(label string) { a.Label = label }

func (a *Actor) SetTags(tags []string) { a.Tags = tags }

func (a *Actor) SetScale3D(scale math.Vec3) { a.Scale = scale }

func (a *Actor) SetMaterial(slot int, material host.AssetRef) error {
	if a.Materials == nil {
		a.Materials = make(map[int]host.AssetRef)
	}
	a.Materials[slot] = material
	return nil
}
