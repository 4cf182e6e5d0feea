// Package legend turns the WMTS service's SVG legend description into a
// reusable color ramp and re-renders it as a raster panel at an arbitrary
// height.
//
// The service describes its color scale as an SVG document containing a
// linearGradient (the ramp) and a column of text elements (the axis values).
// Rather than rasterizing the SVG, the parser lifts the gradient stops and
// label texts out of the document so the renderer can redraw the scale at
// whatever height the assembled tile grid ends up with.
package legend

import (
	"bytes"
	"encoding/xml"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/errors"
)

// Stop is one gradient anchor: a percentage offset in [0,100] and its color.
type Stop struct {
	Offset  float64
	R, G, B uint8
}

// Label is one axis caption: its vertical position in the source document
// and its trimmed text content.
type Label struct {
	Y    float64
	Text string
}

// Ramp is the parsed legend description: stops sorted ascending by offset
// and labels sorted ascending by vertical position. Either list may be
// empty; an empty stop list renders as an unpainted bar.
type Ramp struct {
	Stops  []Stop
	Labels []Label
}

// rgbLiteral matches the only color syntax the service emits for gradient
// stops. Stops using any other syntax (hex, named colors) are skipped.
var rgbLiteral = regexp.MustCompile(`^rgb\((\d+),\s*(\d+),\s*(\d+)\)`)

// Parse extracts the color ramp and labels from an SVG legend description.
//
// Element matching is by local name, which handles both namespaced documents
// (the service's usual output) and documents that omit the SVG namespace.
// A structurally malformed document fails as LEGEND_UNAVAILABLE; the caller
// treats that as "no legend", never as a pipeline failure.
func Parse(data []byte) (*Ramp, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	ramp := &Ramp{}
	sawRoot := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeLegendUnavailable, err, "malformed legend document")
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true

		switch start.Name.Local {
		case "stop":
			if s, ok := parseStop(start); ok {
				ramp.Stops = append(ramp.Stops, s)
			}
		case "text":
			if l, ok := parseText(dec, start); ok {
				ramp.Labels = append(ramp.Labels, l)
			}
		}
	}

	if !sawRoot {
		return nil, errors.New(errors.ErrCodeLegendUnavailable, "legend document has no elements")
	}

	sort.SliceStable(ramp.Stops, func(i, j int) bool { return ramp.Stops[i].Offset < ramp.Stops[j].Offset })
	sort.SliceStable(ramp.Labels, func(i, j int) bool { return ramp.Labels[i].Y < ramp.Labels[j].Y })
	return ramp, nil
}

// parseStop reads the offset and stop-color attributes of a gradient stop.
// Stops whose color is not an rgb(r,g,b) literal are rejected.
func parseStop(el xml.StartElement) (Stop, bool) {
	var offsetAttr, colorAttr string
	for _, a := range el.Attr {
		switch a.Name.Local {
		case "offset":
			offsetAttr = a.Value
		case "stop-color":
			colorAttr = a.Value
		}
	}

	m := rgbLiteral.FindStringSubmatch(colorAttr)
	if m == nil {
		return Stop{}, false
	}

	offset, err := strconv.ParseFloat(strings.TrimSuffix(offsetAttr, "%"), 64)
	if err != nil {
		return Stop{}, false
	}

	r, errR := strconv.Atoi(m[1])
	g, errG := strconv.Atoi(m[2])
	b, errB := strconv.Atoi(m[3])
	if errR != nil || errG != nil || errB != nil || r > 255 || g > 255 || b > 255 {
		return Stop{}, false
	}

	return Stop{Offset: offset, R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// parseText reads a text element's y attribute and its concatenated
// character data, including nested tspan content. Labels that are empty
// after trimming are skipped.
func parseText(dec *xml.Decoder, el xml.StartElement) (Label, bool) {
	var y float64
	for _, a := range el.Attr {
		if a.Name.Local == "y" {
			if v, err := strconv.ParseFloat(a.Value, 64); err == nil {
				y = v
			}
		}
	}

	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return Label{}, false
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			sb.Write(t)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return Label{}, false
	}
	return Label{Y: y, Text: text}, true
}
