package geojson

import (
	"math"
	"strconv"
	"strings"

	"calmh.dev/gpx2geojson/gpx"
)

// DefaultExtensionPrefix disambiguates flattened extension properties from
// standard GPX tags when no prefix is configured.
const DefaultExtensionPrefix = "ex_"

// Options control a single conversion. The zero value gives two-element
// coordinates and the default extension prefix.
type Options struct {
	// IncludeElevation adds a third coordinate to every position: the text
	// of the first <ele> descendant of the point, or 0 when there is none.
	IncludeElevation bool
	// ExtensionPrefix is prepended to property keys flattened out of an
	// <extensions> element. Empty means DefaultExtensionPrefix.
	ExtensionPrefix string
}

type sourceKind int

const (
	pointSource sourceKind = iota
	lineSource
	multiLineSource
)

// kindForTag is the closed mapping from top-level GPX element names to the
// geometry they produce. Anything else under the root is skipped.
var kindForTag = map[string]sourceKind{
	"wpt": pointSource,
	"rte": lineSource,
	"trk": multiLineSource,
}

// FromGPX converts a parsed GPX document into a feature collection. One
// feature is produced per wpt (Point), rte (LineString) and trk
// (MultiLineString) under the root, in document order. Missing or
// non-numeric lat/lon attributes degrade to NaN coordinates rather than
// failing; the only fatal condition for a conversion is malformed XML,
// which gpx.Read reports before this point.
func FromGPX(doc *gpx.Document, opts Options) *FeatureCollection {
	prefix := opts.ExtensionPrefix
	if prefix == "" {
		prefix = DefaultExtensionPrefix
	}

	fc := &FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, len(doc.Root.Children)),
	}
	for _, el := range doc.Root.Children {
		kind, ok := kindForTag[el.Name]
		if !ok {
			continue
		}

		var geom Geometry
		switch kind {
		case pointSource:
			geom = Geometry{Type: "Point", Coordinates: position(el, opts.IncludeElevation)}
		case lineSource:
			geom = Geometry{Type: "LineString", Coordinates: routeLine(el, opts.IncludeElevation)}
		case multiLineSource:
			geom = Geometry{Type: "MultiLineString", Coordinates: trackLines(el, opts.IncludeElevation)}
		}

		fc.Features = append(fc.Features, Feature{
			Type:       "Feature",
			Geometry:   geom,
			Properties: properties(el, prefix),
		})
	}
	return fc
}

// position reads the lon/lat attributes of a point element. There is no
// bounds or sign validation; unparseable values become NaN. Elevation, when
// requested, comes from the first ele descendant anywhere under the point
// (real-world GPX sometimes nests it inside extensions) and defaults to 0
// when absent.
func position(pt *gpx.Element, withEle bool) Position {
	lon := parseFloat(pt.Attr("lon"))
	lat := parseFloat(pt.Attr("lat"))
	if !withEle {
		return Position{lon, lat}
	}
	ele := 0.0
	if e := pt.Find("ele"); e != nil {
		ele = parseFloat(e.Text)
	}
	return Position{lon, lat, ele}
}

// routeLine flattens the direct rtept children of a rte element into a
// single coordinate sequence.
func routeLine(rte *gpx.Element, withEle bool) []Position {
	line := make([]Position, 0, len(rte.Children))
	for _, c := range rte.Children {
		if c.Name != "rtept" {
			continue
		}
		line = append(line, position(c, withEle))
	}
	return line
}

// trackLines yields one coordinate sequence per direct trkseg child of a
// trk element, built from all trkpt descendants in document order. A
// segment without points stays as an empty sequence, not an omitted one.
func trackLines(trk *gpx.Element, withEle bool) [][]Position {
	lines := make([][]Position, 0, len(trk.Children))
	for _, seg := range trk.Children {
		if seg.Name != "trkseg" {
			continue
		}
		pts := seg.FindAll("trkpt")
		line := make([]Position, 0, len(pts))
		for _, pt := range pts {
			line = append(line, position(pt, withEle))
		}
		lines = append(lines, line)
	}
	return lines
}

// properties maps the direct element children of a node to key/value pairs
// (tag name to text), skipping the extensions container itself. The first
// extensions child, if any, contributes its direct children with the prefix
// prepended. Repeated tags resolve last-write-wins.
func properties(el *gpx.Element, prefix string) map[string]string {
	props := make(map[string]string, len(el.Children))
	for _, c := range el.Children {
		if c.Name == "extensions" {
			continue
		}
		props[c.Name] = c.Text
	}
	if ext := el.Child("extensions"); ext != nil {
		for _, c := range ext.Children {
			props[prefix+c.Name] = c.Text
		}
	}
	return props
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
