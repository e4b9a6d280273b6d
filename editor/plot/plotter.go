// Package plot reads a geocoded tabular dataset and turns it into colored
// scene actors, one per row, plus a legend texture and a hover-text
// datatable.
package plot

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/peterbaudains/vizue/editor/colormap"
	"github.com/peterbaudains/vizue/editor/core"
	"github.com/peterbaudains/vizue/editor/geo"
	"github.com/peterbaudains/vizue/editor/host"
	"github.com/peterbaudains/vizue/editor/math"
)

// Store is the slice of host capabilities the plotting pipeline needs.
type Store interface {
	host.AssetEditor
	host.MaterialEditor
	host.AssetImporter
	host.LevelEditor
}

// PointRecord is one dataset row resolved into scene terms. Records are
// transient, they exist only for the duration of one placement pass.
type PointRecord struct {
	ID       int
	Position math.Vec3
	Category int
	Label    string
}

type Config struct {
	// DatasetPath is the CSV file holding the point records.
	DatasetPath string

	// CategoryColumn is the numeric column used to select a color.
	CategoryColumn string
	// EastingColumn and NorthingColumn are the planar coordinate columns.
	EastingColumn  string
	NorthingColumn string
	// TextColumns are joined with newlines into each point's hover text.
	TextColumns []string

	// OriginEasting/OriginNorthing place the scene origin in the dataset's
	// planar coordinate reference system.
	OriginEasting  float64
	OriginNorthing float64
	// ZValue is the uniform elevation applied to every point.
	ZValue float64

	// ColorMap names the registered color map used for the categories.
	ColorMap string
	// MaterialPath and MaterialPrefix control category material creation.
	MaterialPath   string
	MaterialPrefix string
	// BaseMaterialPath overrides the default parent material when set.
	BaseMaterialPath string

	// BlueprintPath is the templated actor class spawned per point.
	BlueprintPath string
	// LabelPrefix is prepended to the row id to form the actor label.
	LabelPrefix string
	// Tags are assigned to every spawned actor.
	Tags []string
	// Scale is the uniform actor scale. Zero means 1.
	Scale float64

	// DataTablePath is the logical directory the label datatable is
	// imported under.
	DataTablePath string
	// RowStructPath is the structure asset describing the datatable rows.
	RowStructPath string

	// LegendTextureName and LegendPath control the legend texture import.
	LegendTextureName string
	LegendPath        string

	// TempDir holds the transient artifacts (label CSV, legend image)
	// between creation and import. Empty selects the system temp dir.
	TempDir string
}

type Plotter struct {
	config *Config
	store  Store
	clock  *core.Clock
}

func NewPlotter(config *Config, store Store) (*Plotter, error) {
	if config.DatasetPath == "" {
		return nil, fmt.Errorf("func NewPlotter - config.DatasetPath must not be empty")
	}
	if config.CategoryColumn == "" || config.EastingColumn == "" || config.NorthingColumn == "" {
		return nil, fmt.Errorf("func NewPlotter - category, easting and northing columns must be named")
	}
	if config.BlueprintPath == "" {
		return nil, fmt.Errorf("func NewPlotter - config.BlueprintPath must not be empty")
	}
	if config.Scale == 0 {
		config.Scale = 1
	}
	if config.ColorMap == "" {
		config.ColorMap = "autumn"
	}
	if config.TempDir == "" {
		config.TempDir = os.TempDir()
	}
	return &Plotter{
		config: config,
		store:  store,
		clock:  core.NewClock(),
	}, nil
}

// Run executes the whole placement pass: category materials, one spawned
// actor per row, the label datatable import and the legend texture.
func (p *Plotter) Run() error {
	p.clock.Start()

	ds, err := LoadCSV(p.config.DatasetPath)
	if err != nil {
		return err
	}

	records, values, err := p.buildRecords(ds)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		core.LogWarn("dataset %s produced no plottable rows", p.config.DatasetPath)
		return nil
	}

	cmap, err := colormap.MapByName(p.config.ColorMap)
	if err != nil {
		return err
	}
	norm := colormap.FromValues(values)

	materials, err := CreateCategoryMaterials(p.store, values, cmap, &norm, MaterialOptions{
		DirectoryPath:    p.config.MaterialPath,
		NamePrefix:       p.config.MaterialPrefix,
		BaseMaterialPath: p.config.BaseMaterialPath,
	})
	if err != nil {
		return err
	}

	if err := p.placePoints(records, materials); err != nil {
		return err
	}

	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = strconv.Itoa(v)
	}
	if err := p.RenderLegend(values, labels, cmap, &norm); err != nil {
		return err
	}

	p.clock.Update()
	core.LogInfo("plotted %d point(s) in %.2fs", len(records), p.clock.ElapsedSeconds())
	return nil
}

// buildRecords resolves dataset rows into point records. Rows whose
// category column does not parse as an integer are dropped; the returned
// values list holds the unique categories in order of first appearance.
func (p *Plotter) buildRecords(ds *Dataset) ([]PointRecord, []int, error) {
	transform := geo.NewWorldTransform(p.config.OriginEasting, p.config.OriginNorthing)

	records := make([]PointRecord, 0, ds.Len())
	values := make([]int, 0)
	seen := make(map[int]bool)

	for i := 0; i < ds.Len(); i++ {
		category, err := ds.Int(i, p.config.CategoryColumn)
		if err != nil {
			continue
		}
		easting, err := ds.Float(i, p.config.EastingColumn)
		if err != nil {
			return nil, nil, err
		}
		northing, err := ds.Float(i, p.config.NorthingColumn)
		if err != nil {
			return nil, nil, err
		}

		parts := make([]string, 0, len(p.config.TextColumns))
		for _, col := range p.config.TextColumns {
			parts = append(parts, ds.Value(i, col))
		}

		records = append(records, PointRecord{
			ID:       i,
			Position: transform.ToLocalVec(easting, northing, p.config.ZValue),
			Category: category,
			Label:    strings.Join(parts, "\n"),
		})
		if !seen[category] {
			seen[category] = true
			values = append(values, category)
		}
	}
	return records, values, nil
}

// scratchDir creates a uniquely named directory for the transient files a
// run produces. The imported asset keeps the file's own name, so the
// uniqueness lives in the directory, not the file.
func (p *Plotter) scratchDir() (string, func(), error) {
	dir := filepath.Join(p.config.TempDir, "vizue-"+uuid.New().String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, err
	}
	return dir, func() { os.RemoveAll(dir) }, nil
}

// placePoints spawns one templated actor per record and accumulates the
// (actor name, hover text) pairs into a datatable import.
func (p *Plotter) placePoints(records []PointRecord, materials map[int]host.AssetRef) error {
	scratch, cleanup, err := p.scratchDir()
	if err != nil {
		return err
	}
	// The temp file only carries the rows between creation and import;
	// it is removed whether or not the import succeeds.
	defer cleanup()

	tmpPath := filepath.Join(scratch, "PointText.csv")
	f, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"Name", "Text"}); err != nil {
		f.Close()
		return err
	}

	for _, rec := range records {
		actor, err := p.store.SpawnActorFromClass(p.config.BlueprintPath, rec.Position)
		if err != nil {
			f.Close()
			return err
		}
		actor.SetTags(p.config.Tags)
		actor.SetLabel(p.config.LabelPrefix + strconv.Itoa(rec.ID))
		// Keep the shape with uniform scale in three directions.
		actor.SetScale3D(math.Vec3{X: p.config.Scale, Y: p.config.Scale, Z: p.config.Scale})
		if err := actor.SetMaterial(0, materials[rec.Category]); err != nil {
			f.Close()
			return err
		}
		if err := writer.Write([]string{actor.Name(), rec.Label}); err != nil {
			f.Close()
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return p.store.ImportTasks([]*host.ImportTask{{
		Filename:        tmpPath,
		DestinationPath: p.config.DataTablePath,
		ReplaceExisting: true,
		Automated:       true,
		Save:            true,
		RowStructPath:   p.config.RowStructPath,
	}})
}
