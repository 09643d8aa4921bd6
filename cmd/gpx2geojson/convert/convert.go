package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"calmh.dev/gpx2geojson/geojson"
	"calmh.dev/gpx2geojson/gpx"
	"calmh.dev/gpx2geojson/internal/config"
	"github.com/carlmjohnson/requests"
)

type CLI struct {
	Input string `arg:"" optional:"" help:"GPX file to read (stdin if omitted)" type:"existingfile"`
	URL   string `help:"Fetch the GPX document from a URL instead of a file" placeholder:"URL"`

	Output          string `short:"o" help:"Output file (stdout if omitted)" placeholder:"FILE"`
	Elevation       bool   `short:"e" help:"Include elevation in coordinates"`
	ExtensionPrefix string `help:"Prefix for flattened extension properties (default ex_)" placeholder:"PREFIX"`
	Indent          bool   `help:"Indent the JSON output"`
}

func (cli *CLI) Run(logger *slog.Logger, cfg *config.Config) error {
	if cli.URL != "" && cli.Input != "" {
		return fmt.Errorf("cannot combine --url with an input file")
	}

	var src io.Reader
	switch {
	case cli.URL != "":
		logger.Debug("Fetching GPX", "url", cli.URL)
		var buf bytes.Buffer
		if err := requests.URL(cli.URL).ToBytesBuffer(&buf).Fetch(context.Background()); err != nil {
			return fmt.Errorf("fetch %s: %w", cli.URL, err)
		}
		src = &buf
	case cli.Input != "":
		fd, err := os.Open(cli.Input)
		if err != nil {
			return err
		}
		defer fd.Close()
		src = fd
	default:
		src = os.Stdin
	}

	out, err := Convert(src, cli.options(cfg), cli.Indent || cfg.Indent)
	if err != nil {
		return err
	}

	if cli.Output != "" {
		return os.WriteFile(cli.Output, out, 0o644)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func (cli *CLI) options(cfg *config.Config) geojson.Options {
	return cfg.Options(cli.Elevation, cli.ExtensionPrefix)
}

// Convert reads one GPX document and returns it serialized as GeoJSON,
// newline-terminated.
func Convert(r io.Reader, opts geojson.Options, indent bool) ([]byte, error) {
	doc, err := gpx.Read(r)
	if err != nil {
		return nil, err
	}

	fc := geojson.FromGPX(doc, opts)

	var out []byte
	if indent {
		out, err = fc.JSONIndent()
	} else {
		out, err = fc.JSON()
	}
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
