// Package config loads the TOML run configuration. Every parameter the
// pipelines need — directory paths, logical asset paths, the world origin,
// the color map name — lives here rather than as in-code constants.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/peterbaudains/vizue/editor/dataprep"
	"github.com/peterbaudains/vizue/editor/importer"
	"github.com/peterbaudains/vizue/editor/math"
	"github.com/peterbaudains/vizue/editor/plot"
	"github.com/peterbaudains/vizue/editor/spawner"
)

type ImporterConfig struct {
	SourceDir       string `toml:"source_dir"`
	DestinationPath string `toml:"destination_path"`
	Watch           bool   `toml:"watch"`
}

type SpawnerConfig struct {
	AssetPath string  `toml:"asset_path"`
	OffsetX   float64 `toml:"offset_x"`
	OffsetY   float64 `toml:"offset_y"`
	OffsetZ   float64 `toml:"offset_z"`
}

type PlotConfig struct {
	DatasetPath    string   `toml:"dataset_path"`
	CategoryColumn string   `toml:"category_column"`
	EastingColumn  string   `toml:"easting_column"`
	NorthingColumn string   `toml:"northing_column"`
	TextColumns    []string `toml:"text_columns"`

	OriginEasting  float64 `toml:"origin_easting"`
	OriginNorthing float64 `toml:"origin_northing"`
	ZValue         float64 `toml:"z_value"`

	ColorMap         string `toml:"color_map"`
	MaterialPath     string `toml:"material_path"`
	MaterialPrefix   string `toml:"material_prefix"`
	BaseMaterialPath string `toml:"base_material_path"`

	BlueprintPath string   `toml:"blueprint_path"`
	LabelPrefix   string   `toml:"label_prefix"`
	Tags          []string `toml:"tags"`
	Scale         float64  `toml:"scale"`

	DataTablePath string `toml:"datatable_path"`
	RowStructPath string `toml:"row_struct_path"`

	LegendTextureName string `toml:"legend_texture_name"`
	LegendPath        string `toml:"legend_path"`
}

type PrepareConfig struct {
	URL          string `toml:"url"`
	OutputDir    string `toml:"output_dir"`
	OutputPrefix string `toml:"output_prefix"`
	TargetSrid   int    `toml:"target_srid"`
}

type Config struct {
	Importer ImporterConfig `toml:"importer"`
	Spawner  SpawnerConfig  `toml:"spawner"`
	Plot     PlotConfig     `toml:"plot"`
	Prepare  PrepareConfig  `toml:"prepare"`
}

// Load reads and decodes the TOML configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// ImporterConfig converts the importer section into its pipeline config.
func (c *Config) ImporterConfig() *importer.Config {
	return &importer.Config{
		SourceDir:       c.Importer.SourceDir,
		DestinationPath: c.Importer.DestinationPath,
	}
}

// SpawnerConfig converts the spawner section into its pipeline config.
func (c *Config) SpawnerConfig() *spawner.Config {
	return &spawner.Config{
		AssetPath: c.Spawner.AssetPath,
		Offset: math.Vec3{
			X: c.Spawner.OffsetX,
			Y: c.Spawner.OffsetY,
			Z: c.Spawner.OffsetZ,
		},
	}
}

// PlotConfig converts the plot section into its pipeline config.
func (c *Config) PlotConfig() *plot.Config {
	return &plot.Config{
		DatasetPath:       c.Plot.DatasetPath,
		CategoryColumn:    c.Plot.CategoryColumn,
		EastingColumn:     c.Plot.EastingColumn,
		NorthingColumn:    c.Plot.NorthingColumn,
		TextColumns:       c.Plot.TextColumns,
		OriginEasting:     c.Plot.OriginEasting,
		OriginNorthing:    c.Plot.OriginNorthing,
		ZValue:            c.Plot.ZValue,
		ColorMap:          c.Plot.ColorMap,
		MaterialPath:      c.Plot.MaterialPath,
		MaterialPrefix:    c.Plot.MaterialPrefix,
		BaseMaterialPath:  c.Plot.BaseMaterialPath,
		BlueprintPath:     c.Plot.BlueprintPath,
		LabelPrefix:       c.Plot.LabelPrefix,
		Tags:              c.Plot.Tags,
		Scale:             c.Plot.Scale,
		DataTablePath:     c.Plot.DataTablePath,
		RowStructPath:     c.Plot.RowStructPath,
		LegendTextureName: c.Plot.LegendTextureName,
		LegendPath:        c.Plot.LegendPath,
	}
}

// PrepareConfig converts the prepare section into its pipeline config.
func (c *Config) PrepareConfig() *dataprep.Config {
	return &dataprep.Config{
		URL:          c.Prepare.URL,
		OutputDir:    c.Prepare.OutputDir,
		OutputPrefix: c.Prepare.OutputPrefix,
		TargetSrid:   c.Prepare.TargetSrid,
	}
}
