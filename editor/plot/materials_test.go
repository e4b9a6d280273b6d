package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterbaudains/vizue/editor/colormap"
	"github.com/peterbaudains/vizue/editor/core"
	"github.com/peterbaudains/vizue/editor/host/memory"
)

func materialFixtures(t *testing.T) (*memory.Host, *colormap.Map, colormap.Normalize) {
	t.Helper()
	h := memory.New()
	h.RegisterAsset(DefaultBaseMaterialPath)
	cmap, err := colormap.MapByName("autumn")
	require.NoError(t, err)
	return h, cmap, colormap.Normalize{VMin: 1, VMax: 5}
}

func TestCreateCategoryMaterials(t *testing.T) {
	h, cmap, norm := materialFixtures(t)
	values := []int{1, 2, 3, 4, 5}

	materials, err := CreateCategoryMaterials(h, values, cmap, &norm, MaterialOptions{
		DirectoryPath: "/Game/",
		NamePrefix:    "fsa_point_value_",
	})
	require.NoError(t, err)

	// Exactly one material per unique value, and the mapping is total.
	require.Len(t, materials, 5)
	for _, v := range values {
		ref, ok := materials[v]
		require.True(t, ok, "value %d has no material", v)
		assert.True(t, h.DoesAssetExist(ref.Path))

		st, ok := h.Material(ref.Path)
		require.True(t, ok)
		assert.Equal(t, DefaultBaseMaterialPath, st.Parent.Path)
		assert.True(t, st.Updated)

		expected := cmap.At(norm.Norm(float64(v))).Vec4()
		assert.Equal(t, expected, st.Parameters["Color"])
	}

	assert.True(t, h.DoesAssetExist("/Game/fsa_point_value_1"))
	assert.True(t, h.DoesAssetExist("/Game/fsa_point_value_5"))
}

func TestCreateCategoryMaterialsIsIdempotentByName(t *testing.T) {
	h, cmap, norm := materialFixtures(t)
	values := []int{1, 2, 3}
	opts := MaterialOptions{DirectoryPath: "/Game/", NamePrefix: "p_"}

	first, err := CreateCategoryMaterials(h, values, cmap, &norm, opts)
	require.NoError(t, err)

	second, err := CreateCategoryMaterials(h, values, cmap, &norm, opts)
	require.NoError(t, err)

	// The re-run deletes and recreates the same named assets, without
	// duplication.
	assert.ElementsMatch(t, h.DeletedAssets, []string{"/Game/p_1", "/Game/p_2", "/Game/p_3"})
	require.Len(t, second, len(first))
	for v, ref := range first {
		assert.Equal(t, ref.Path, second[v].Path)
	}
}

func TestCreateCategoryMaterialsRequiresNormalization(t *testing.T) {
	h, cmap, _ := materialFixtures(t)

	_, err := CreateCategoryMaterials(h, []int{1, 2}, cmap, nil, MaterialOptions{DirectoryPath: "/Game/"})
	assert.ErrorIs(t, err, core.ErrNoNormalization)
}

func TestCreateCategoryMaterialsEmptyValues(t *testing.T) {
	h, cmap, norm := materialFixtures(t)

	materials, err := CreateCategoryMaterials(h, nil, cmap, &norm, MaterialOptions{DirectoryPath: "/Game/"})
	require.NoError(t, err)
	assert.Empty(t, materials)
}

func TestCreateCategoryMaterialsMissingBaseMaterial(t *testing.T) {
	h := memory.New()
	cmap, err := colormap.MapByName("autumn")
	require.NoError(t, err)
	norm := colormap.Normalize{VMin: 0, VMax: 1}

	_, err = CreateCategoryMaterials(h, []int{1}, cmap, &norm, MaterialOptions{DirectoryPath: "/Game/"})
	assert.ErrorIs(t, err, core.ErrAssetNotFound)
}
