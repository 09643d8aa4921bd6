package summarize

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"calmh.dev/gpx2geojson/geojson"
	"calmh.dev/gpx2geojson/gpx"
	"calmh.dev/gpx2geojson/internal/geometry"
)

type CLI struct {
	Paths []string `arg:"" optional:"" help:"GPX files to summarize (stdin if omitted)" type:"existingfile"`
}

func (cli *CLI) Run(logger *slog.Logger) error {
	if len(cli.Paths) == 0 {
		logger.Debug("Summarizing standard input")
		return summarize(os.Stdout, "stdin", os.Stdin)
	}
	for _, path := range cli.Paths {
		logger.Debug("Summarizing file", "path", path)
		fd, err := os.Open(path)
		if err != nil {
			return err
		}
		err = summarize(os.Stdout, path, fd)
		fd.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func summarize(w io.Writer, name string, r io.Reader) error {
	doc, err := gpx.Read(r)
	if err != nil {
		return err
	}
	fc := geojson.FromGPX(doc, geojson.Options{})

	var waypoints, routes, tracks int
	for _, f := range fc.Features {
		switch f.Geometry.Type {
		case "Point":
			waypoints++
		case "LineString":
			routes++
		case "MultiLineString":
			tracks++
		}
	}
	fmt.Fprintf(w, "%s: %d waypoints, %d routes, %d tracks\n", name, waypoints, routes, tracks)

	for _, f := range fc.Features {
		label := f.Properties["name"]
		if label == "" {
			label = "(unnamed)"
		}

		switch coords := f.Geometry.Coordinates.(type) {
		case []geojson.Position:
			points, dist := lineStats(coords)
			fmt.Fprintf(w, "  route %s: %d points, %.1f NM, %s\n", label, points, dist, course(coords))
		case [][]geojson.Position:
			var points int
			var dist float64
			var all []geojson.Position
			for _, line := range coords {
				p, d := lineStats(line)
				points += p
				dist += d
				all = append(all, line...)
			}
			fmt.Fprintf(w, "  track %s: %d segments, %d points, %.1f NM, %s\n", label, len(coords), points, dist, course(all))
		}
	}
	return nil
}

// lineStats sums the great circle legs of a coordinate sequence. Legs with
// unparseable coordinates are skipped rather than poisoning the total.
func lineStats(line []geojson.Position) (points int, dist float64) {
	points = len(line)
	for i := 1; i < len(line); i++ {
		p0, p1 := line[i-1], line[i]
		if hasNaN(p0) || hasNaN(p1) {
			continue
		}
		dist += geometry.Distance(p0[1], p0[0], p1[1], p1[0])
	}
	return points, dist
}

// course describes the net direction from the first position to the last.
func course(line []geojson.Position) string {
	if len(line) < 2 || hasNaN(line[0]) || hasNaN(line[len(line)-1]) {
		return "course n/a"
	}
	first, last := line[0], line[len(line)-1]
	deg := geometry.Bearing(first[1], first[0], last[1], last[0])
	return fmt.Sprintf("%s (%03.0f°)", geometry.CardinalDirection(int(deg)), deg)
}

func hasNaN(p geojson.Position) bool {
	for _, v := range p {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
