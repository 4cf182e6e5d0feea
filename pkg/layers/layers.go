// Package layers holds the catalogue of known ocean data layers and the
// New Zealand tile coverage windows.
//
// The catalogue is configuration, not logic: it maps short user-facing keys
// ("temperature", "salinity", ...) to the upstream WMTS layer identifiers,
// styles and legend captions, and records which tile rows/columns cover New
// Zealand at each supported zoom level. A built-in default catalogue is
// provided; deployments can override or extend it from a TOML file.
package layers

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/errors"
)

// Layer describes one selectable data layer.
type Layer struct {
	Key         string `toml:"key"`          // short CLI key, e.g. "temperature"
	ID          string `toml:"id"`           // WMTS LAYER parameter
	Style       string `toml:"style"`        // WMTS STYLE parameter
	Elevation   string `toml:"elevation"`    // optional ELEVATION parameter (depth in metres, empty = omit)
	Name        string `toml:"name"`         // display name for the title banner
	LegendTitle string `toml:"legend_title"` // caption above the legend bar
	LegendUnit  string `toml:"legend_unit"`  // unit caption, e.g. "(degrees C)"
	ValueFormat string `toml:"value_format"` // fmt verb for numeric captions, e.g. "%.1f°C"
}

// Coverage is an inclusive tile window at one zoom level.
type Coverage struct {
	Zoom     int `toml:"zoom"`
	RowStart int `toml:"row_start"`
	RowEnd   int `toml:"row_end"`
	ColStart int `toml:"col_start"`
	ColEnd   int `toml:"col_end"`
}

// Rows returns the number of tile rows in the window.
func (c Coverage) Rows() int { return c.RowEnd - c.RowStart + 1 }

// Cols returns the number of tile columns in the window.
func (c Coverage) Cols() int { return c.ColEnd - c.ColStart + 1 }

// Catalog is an immutable set of layers and coverage windows.
// Construct with Default or Load; treat as read-only afterwards.
type Catalog struct {
	Layers   map[string]Layer
	Coverage map[int]Coverage
}

// Default returns the built-in catalogue: the four Copernicus Marine global
// analysis/forecast layers and the NZ coverage windows for zooms 5-7.
func Default() Catalog {
	const product = "GLOBAL_ANALYSISFORECAST_PHY_001_024"

	// Surface level of the model grid; the instantaneous physics layers
	// require an explicit depth while the daily anomaly layer does not.
	const surfaceDepth = "-0.49402499198913574"

	return Catalog{
		Layers: map[string]Layer{
			"temperature": {
				Key:         "temperature",
				ID:          product + "/cmems_mod_glo_phy-thetao_anfc_0.083deg_PT6H-i_202406/thetao",
				Style:       "cmap:thermal",
				Elevation:   surfaceDepth,
				Name:        "Sea Surface Temperature",
				LegendTitle: "Temperature",
				LegendUnit:  "(degrees C)",
				ValueFormat: "%.1f°C",
			},
			"anomaly": {
				Key:         "anomaly",
				ID:          product + "/cmems_mod_glo_phy_anfc_0.083deg-sst-anomaly_P1D-m_202411/sea_surface_temperature_anomaly",
				Style:       "cmap:balance",
				Name:        "Sea Surface Temperature Anomaly",
				LegendTitle: "Anomaly",
				LegendUnit:  "(degrees C)",
				ValueFormat: "%.1f°C",
			},
			"salinity": {
				Key:         "salinity",
				ID:          product + "/cmems_mod_glo_phy-so_anfc_0.083deg_PT6H-i_202406/so",
				Style:       "cmap:haline",
				Elevation:   surfaceDepth,
				Name:        "Sea Surface Salinity",
				LegendTitle: "Salinity",
				LegendUnit:  "(PSU)",
				ValueFormat: "%.1f",
			},
			"currents": {
				Key:         "currents",
				ID:          product + "/cmems_mod_glo_phy-cur_anfc_0.083deg_PT6H-i_202406/sea_water_velocity",
				Style:       "vectorStyle:solidAndVector,cmap:thermal",
				Elevation:   surfaceDepth,
				Name:        "Sea Surface Currents",
				LegendTitle: "Velocity",
				LegendUnit:  "(m/s)",
				ValueFormat: "%.2f",
			},
		},
		Coverage: map[int]Coverage{
			5: {Zoom: 5, RowStart: 22, RowEnd: 24, ColStart: 61, ColEnd: 64},   // ~1024x768px
			6: {Zoom: 6, RowStart: 44, RowEnd: 48, ColStart: 123, ColEnd: 127}, // ~1280x1280px
			7: {Zoom: 7, RowStart: 88, RowEnd: 96, ColStart: 246, ColEnd: 254}, // ~2304x2304px
		},
	}
}

// fileFormat is the TOML shape of an override file:
//
//	[[layer]]
//	key = "temperature"
//	id = "..."
//	...
//
//	[[coverage]]
//	zoom = 6
//	row_start = 44
//	...
type fileFormat struct {
	Layer    []Layer    `toml:"layer"`
	Coverage []Coverage `toml:"coverage"`
}

// Load reads a TOML catalogue file and merges it over the default catalogue.
// Entries with a key or zoom already present replace the built-in ones; new
// entries extend the catalogue.
func Load(path string) (Catalog, error) {
	cat := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "reading catalogue %s", path)
	}

	var f fileFormat
	if err := toml.Unmarshal(data, &f); err != nil {
		return Catalog{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing catalogue %s", path)
	}

	for _, l := range f.Layer {
		if l.Key == "" {
			return Catalog{}, errors.New(errors.ErrCodeInvalidInput, "catalogue layer without a key in %s", path)
		}
		cat.Layers[l.Key] = l
	}
	for _, c := range f.Coverage {
		if c.Rows() <= 0 || c.Cols() <= 0 {
			return Catalog{}, errors.New(errors.ErrCodeInvalidInput, "empty coverage window for zoom %d in %s", c.Zoom, path)
		}
		cat.Coverage[c.Zoom] = c
	}
	return cat, nil
}

// Layer looks up a layer by key.
func (c Catalog) Layer(key string) (Layer, error) {
	l, ok := c.Layers[key]
	if !ok {
		return Layer{}, errors.New(errors.ErrCodeInvalidLayer,
			"unknown data type: %s (available: %s)", key, strings.Join(c.LayerKeys(), ", "))
	}
	return l, nil
}

// Window looks up the coverage window for a zoom level.
func (c Catalog) Window(zoom int) (Coverage, error) {
	w, ok := c.Coverage[zoom]
	if !ok {
		return Coverage{}, errors.New(errors.ErrCodeInvalidZoom,
			"unsupported zoom level: %d (available: %s)", zoom, joinInts(c.ZoomLevels()))
	}
	return w, nil
}

// LayerKeys returns the layer keys in sorted order.
func (c Catalog) LayerKeys() []string {
	keys := make([]string, 0, len(c.Layers))
	for k := range c.Layers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ZoomLevels returns the supported zoom levels in ascending order.
func (c Catalog) ZoomLevels() []int {
	zooms := make([]int, 0, len(c.Coverage))
	for z := range c.Coverage {
		zooms = append(zooms, z)
	}
	sort.Ints(zooms)
	return zooms
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
