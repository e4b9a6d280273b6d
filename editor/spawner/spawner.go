// Package spawner instantiates every asset registered under a logical
// directory path into the current level at a fixed offset.
package spawner

import (
	"fmt"

	"github.com/peterbaudains/vizue/editor/core"
	"github.com/peterbaudains/vizue/editor/host"
	"github.com/peterbaudains/vizue/editor/math"
)

// Store is the slice of host capabilities the spawner needs.
type Store interface {
	AssetsByPath(path string) ([]host.AssetRef, error)
	LoadAsset(path string) (host.AssetRef, error)
	SpawnActorFromObject(ref host.AssetRef, location math.Vec3) (host.Actor, error)
}

type Config struct {
	// AssetPath is the logical directory whose assets are spawned.
	AssetPath string
	// Offset is where the spawned assets are placed. Mesh files typically
	// carry their own embedded geometry origin; the spawn location shifts
	// that geometry rather than replacing it.
	Offset math.Vec3
}

type Spawner struct {
	config *Config
	store  Store
}

func NewSpawner(config *Config, store Store) (*Spawner, error) {
	if config.AssetPath == "" {
		return nil, fmt.Errorf("func NewSpawner - config.AssetPath must not be empty")
	}
	return &Spawner{
		config: config,
		store:  store,
	}, nil
}

// Run loads every asset under the configured path and spawns one instance
// of each at the offset. There is no existence check and no deduplication:
// running twice spawns everything twice. That is accepted behavior.
func (s *Spawner) Run() error {
	assets, err := s.store.AssetsByPath(s.config.AssetPath)
	if err != nil {
		return fmt.Errorf("list assets under %s: %w", s.config.AssetPath, err)
	}

	for _, asset := range assets {
		obj, err := s.store.LoadAsset(asset.Path)
		if err != nil {
			return err
		}
		core.LogInfo("spawning object %s", obj.Name)
		if _, err := s.store.SpawnActorFromObject(obj, s.config.Offset); err != nil {
			return err
		}
	}
	return nil
}
