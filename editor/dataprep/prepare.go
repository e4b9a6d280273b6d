// Package dataprep turns the Food Standards Agency hygiene-rating XML feed
// into a flat geocoded CSV ready for plotting. Data is made available under
// the Open Government Licence v3.
package dataprep

import (
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/peterbaudains/vizue/editor/core"
	"github.com/peterbaudains/vizue/editor/geo"
)

// The three positional sub-tables extracted from the feed. Each establishment
// element nests a Scores and a Geocode element; the passes are joined by row
// position, not by key.
var (
	coreElement = "EstablishmentDetail"
	coreFields  = []string{"FHRSID", "BusinessType", "RatingValue", "RatingDate", "LocalAuthorityName"}

	scoresElement = "Scores"
	scoresFields  = []string{"Hygiene", "Structural", "ConfidenceInManagement"}

	geocodeElement = "Geocode"
	geocodeFields  = []string{"Longitude", "Latitude"}
)

// outputColumns is the column order of the written CSV.
var outputColumns = []string{
	"FHRSID", "BusinessType", "RatingValue", "RatingDate", "LocalAuthorityName",
	"Hygiene", "Structural", "ConfidenceInManagement",
	"Longitude", "Latitude", "Easting", "Northing",
}

// coordinatePrecision is the number of decimal places kept for projected
// coordinates in the output CSV.
const coordinatePrecision = 6

type Config struct {
	// URL of the XML feed.
	URL string
	// OutputDir receives the generated CSV.
	OutputDir string
	// OutputPrefix is the CSV file name prefix; the access date is
	// appended.
	OutputPrefix string
	// TargetSrid is the planar coordinate reference system the lon/lat
	// pairs are reprojected into. Zero selects EPSG:27700.
	TargetSrid int
}

type Preparer struct {
	config *Config
	client *http.Client
	reproj geo.Reprojector
	clock  *core.Clock
}

// NewPreparer wires a preparer to an HTTP client and a reprojector. Pass a
// nil reprojector to have one built for the configured target SRID.
func NewPreparer(config *Config, client *http.Client, reproj geo.Reprojector) (*Preparer, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("func NewPreparer - config.URL must not be empty")
	}
	if config.OutputPrefix == "" {
		return nil, fmt.Errorf("func NewPreparer - config.OutputPrefix must not be empty")
	}
	if config.TargetSrid == 0 {
		config.TargetSrid = 27700
	}
	if client == nil {
		client = http.DefaultClient
	}
	if reproj == nil {
		r, err := geo.NewProj4Reprojector(config.TargetSrid)
		if err != nil {
			return nil, err
		}
		reproj = r
	}
	return &Preparer{
		config: config,
		client: client,
		reproj: reproj,
		clock:  core.NewClock(),
	}, nil
}

// Run fetches the feed once per sub-table, joins the three row sets by
// position, drops rows without a geocode, reprojects the remainder and
// writes the flat CSV. It returns the path of the written file.
func (p *Preparer) Run() (string, error) {
	p.clock.Start()

	coreRows, err := p.fetchRows(coreElement, coreFields)
	if err != nil {
		return "", err
	}
	scoreRows, err := p.fetchRows(scoresElement, scoresFields)
	if err != nil {
		return "", err
	}
	geocodeRows, err := p.fetchRows(geocodeElement, geocodeFields)
	if err != nil {
		return "", err
	}

	joined := joinByPosition(coreRows, scoreRows, geocodeRows)
	core.LogInfo("fetched %d establishment(s), %d with all sub-tables", len(coreRows), len(joined))

	outPath := filepath.Join(p.config.OutputDir,
		fmt.Sprintf("%s_accessed%s.csv", p.config.OutputPrefix, time.Now().Format("20060102")))
	kept, err := p.write(outPath, joined)
	if err != nil {
		return "", err
	}

	p.clock.Update()
	core.LogInfo("wrote %d geocoded row(s) to %s in %.2fs", kept, outPath, p.clock.ElapsedSeconds())
	return outPath, nil
}

// fetchRows downloads the feed and extracts one row per occurrence of the
// named element, capturing the character data of the listed child fields.
func (p *Preparer) fetchRows(element string, fields []string) ([]map[string]string, error) {
	resp, err := p.client.Get(p.config.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", p.config.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", p.config.URL, resp.Status)
	}
	return parseRows(resp.Body, element, fields)
}

// parseRows streams the XML and collects the wanted child fields of every
// occurrence of the target element.
func parseRows(r io.Reader, element string, fields []string) ([]map[string]string, error) {
	wanted := make(map[string]bool, len(fields))
	for _, f := range fields {
		wanted[f] = true
	}

	var rows []map[string]string
	var row map[string]string
	var field string
	depth := 0

	decoder := xml.NewDecoder(r)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s rows: %w", element, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if row == nil {
				if t.Name.Local == element {
					row = make(map[string]string, len(fields))
					depth = 0
				}
				continue
			}
			depth++
			if wanted[t.Name.Local] {
				field = t.Name.Local
			}
		case xml.EndElement:
			if row == nil {
				continue
			}
			if depth == 0 {
				rows = append(rows, row)
				row = nil
				continue
			}
			depth--
			field = ""
		case xml.CharData:
			if row != nil && field != "" {
				row[field] += string(t)
			}
		}
	}
	return rows, nil
}

// joinByPosition merges the three row sets on row position. The feed gives
// no shared key to join on; if the source ever reorders sub-elements the
// merge silently mismatches rows.
func joinByPosition(rowSets ...[]map[string]string) []map[string]string {
	n := len(rowSets[0])
	for _, set := range rowSets[1:] {
		if len(set) < n {
			n = len(set)
		}
	}
	joined := make([]map[string]string, n)
	for i := 0; i < n; i++ {
		merged := make(map[string]string)
		for _, set := range rowSets {
			for k, v := range set[i] {
				merged[k] = v
			}
		}
		joined[i] = merged
	}
	return joined
}

// write reprojects the geocoded rows and writes the output CSV, returning
// the number of rows kept. Rows lacking a longitude or latitude are
// dropped.
func (p *Preparer) write(outPath string, rows []map[string]string) (int, error) {
	f, err := os.Create(outPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(outputColumns); err != nil {
		return 0, err
	}

	kept := 0
	for _, row := range rows {
		if row["Longitude"] == "" || row["Latitude"] == "" {
			continue
		}
		lon, err := decimal.NewFromString(row["Longitude"])
		if err != nil {
			return kept, fmt.Errorf("bad longitude %q: %w", row["Longitude"], err)
		}
		lat, err := decimal.NewFromString(row["Latitude"])
		if err != nil {
			return kept, fmt.Errorf("bad latitude %q: %w", row["Latitude"], err)
		}

		x, y, err := p.reproj.Reproject(lon.InexactFloat64(), lat.InexactFloat64())
		if err != nil {
			return kept, err
		}
		row["Easting"] = decimal.NewFromFloat(x).Round(coordinatePrecision).String()
		row["Northing"] = decimal.NewFromFloat(y).Round(coordinatePrecision).String()

		record := make([]string, len(outputColumns))
		for i, col := range outputColumns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return kept, err
		}
		kept++
	}

	writer.Flush()
	return kept, writer.Error()
}
