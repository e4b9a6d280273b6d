package plot

import (
	"fmt"
	"strconv"

	"github.com/peterbaudains/vizue/editor/colormap"
	"github.com/peterbaudains/vizue/editor/core"
	"github.com/peterbaudains/vizue/editor/host"
)

// DefaultBaseMaterialPath is the parent material assigned to every created
// instance: a simple opaque material whose color can be changed.
const DefaultBaseMaterialPath = "/Engine/EngineDebugMaterials/M_SimpleOpaque"

// MaterialStore is the slice of host capabilities the coloring step needs.
type MaterialStore interface {
	host.AssetEditor
	host.MaterialEditor
}

// MaterialOptions control where category materials are created and how they
// are named.
type MaterialOptions struct {
	// DirectoryPath is the logical directory each material is created in.
	DirectoryPath string
	// NamePrefix is prepended to the category value to form the material
	// name, useful when plotting multiple datasets side by side.
	NamePrefix string
	// BaseMaterialPath is the parent material for every instance. Empty
	// selects DefaultBaseMaterialPath.
	BaseMaterialPath string
}

// CreateCategoryMaterials creates one colored material instance per unique
// category value and returns the value-to-asset mapping. A material whose
// name already exists is deleted first and recreated, which keeps the
// operation idempotent in identity; every deletion is logged as a warning
// naming the deleted asset.
//
// norm must not be nil: raw category values are never assumed to lie in the
// unit interval already.
func CreateCategoryMaterials(store MaterialStore, values []int, cmap *colormap.Map, norm *colormap.Normalize, opts MaterialOptions) (map[int]host.AssetRef, error) {
	if norm == nil {
		return nil, core.ErrNoNormalization
	}
	if opts.BaseMaterialPath == "" {
		opts.BaseMaterialPath = DefaultBaseMaterialPath
	}

	// The material instance needs a parent in order to update properties.
	baseMtl, err := store.LoadAsset(opts.BaseMaterialPath)
	if err != nil {
		return nil, fmt.Errorf("load base material: %w", err)
	}

	materials := make(map[int]host.AssetRef, len(values))
	for _, value := range values {
		core.LogInfo("creating material for value %d", value)

		rgba := cmap.At(norm.Norm(float64(value)))
		name := opts.NamePrefix + strconv.Itoa(value)
		path := host.JoinPath(opts.DirectoryPath, name)

		if store.DoesAssetExist(path) {
			core.LogWarn("deleting asset %s", path)
			if err := store.DeleteAsset(path); err != nil {
				return nil, err
			}
		}

		asset, err := store.CreateMaterialInstance(name, opts.DirectoryPath)
		if err != nil {
			return nil, fmt.Errorf("create material %s: %w", path, err)
		}
		if err := store.SetInstanceParent(asset, baseMtl); err != nil {
			return nil, err
		}
		if err := store.SetVectorParameter(asset, "Color", rgba.Vec4()); err != nil {
			return nil, err
		}
		if err := store.UpdateInstance(asset); err != nil {
			return nil, err
		}
		if err := store.SaveAsset(asset); err != nil {
			return nil, err
		}

		materials[value] = asset
	}
	return materials, nil
}
