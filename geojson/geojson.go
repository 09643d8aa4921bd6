// Package geojson builds GeoJSON feature collections, primarily from parsed
// GPX documents.
package geojson

import (
	"encoding/json"
	"math"
	"strconv"
)

// FeatureCollection is the RFC 7946 feature collection shape, the sole
// output of a conversion.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string            `json:"type"`
	Geometry   Geometry          `json:"geometry"`
	Properties map[string]string `json:"properties"`
}

// Geometry holds a Point (Position), LineString ([]Position) or
// MultiLineString ([][]Position) coordinate array.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// Position is a [longitude, latitude] or [longitude, latitude, elevation]
// coordinate. Values are passed through unvalidated, so a position may hold
// NaN; those encode as JSON null rather than failing the marshal.
type Position []float64

func (p Position) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 8+16*len(p))
	buf = append(buf, '[')
	for i, v := range p {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf = append(buf, "null"...)
		} else {
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
	}
	return append(buf, ']'), nil
}

// JSON serializes the collection.
func (fc *FeatureCollection) JSON() ([]byte, error) {
	return json.Marshal(fc)
}

// JSONIndent serializes the collection with indentation.
func (fc *FeatureCollection) JSONIndent() ([]byte, error) {
	return json.MarshalIndent(fc, "", "  ")
}
