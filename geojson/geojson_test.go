package geojson

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestPositionMarshal(t *testing.T) {
	cases := []struct {
		pos      Position
		expected string
	}{
		{Position{1.5, 2.5}, `[1.5,2.5]`},
		{Position{1.5, 2.5, 0}, `[1.5,2.5,0]`},
		{Position{math.NaN(), 2.5}, `[null,2.5]`},
		{Position{math.Inf(1), math.NaN()}, `[null,null]`},
		{Position{}, `[]`},
	}
	for _, c := range cases {
		bs, err := json.Marshal(c.pos)
		if err != nil {
			t.Fatal(err)
		}
		if string(bs) != c.expected {
			t.Errorf("marshal %v == %s, expected %s", c.pos, bs, c.expected)
		}
	}
}

func TestFeatureCollectionJSON(t *testing.T) {
	fc := &FeatureCollection{
		Type: "FeatureCollection",
		Features: []Feature{{
			Type:       "Feature",
			Geometry:   Geometry{Type: "Point", Coordinates: Position{1.5, 2.5}},
			Properties: map[string]string{"name": "Lake"},
		}},
	}

	bs, err := fc.JSON()
	if err != nil {
		t.Fatal(err)
	}
	expected := `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[1.5,2.5]},"properties":{"name":"Lake"}}]}`
	if string(bs) != expected {
		t.Errorf("got %s\nexpected %s", bs, expected)
	}

	indented, err := fc.JSONIndent()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(indented), "\n  ") {
		t.Error("indented output is not indented")
	}
}

func TestEmptyCollectionJSON(t *testing.T) {
	fc := &FeatureCollection{Type: "FeatureCollection", Features: make([]Feature, 0)}
	bs, err := fc.JSON()
	if err != nil {
		t.Fatal(err)
	}
	// An empty collection still carries a features array, not null.
	if string(bs) != `{"type":"FeatureCollection","features":[]}` {
		t.Errorf("got %s", bs)
	}
}
