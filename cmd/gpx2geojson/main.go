package main

import (
	"log/slog"
	"os"

	"calmh.dev/gpx2geojson/cmd/gpx2geojson/batch"
	"calmh.dev/gpx2geojson/cmd/gpx2geojson/convert"
	"calmh.dev/gpx2geojson/cmd/gpx2geojson/summarize"
	"calmh.dev/gpx2geojson/internal/config"
	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

type CLI struct {
	Convert   convert.CLI   `cmd:"" default:"withargs" help:"Convert a GPX document to GeoJSON"`
	Batch     batch.CLI     `cmd:"" help:"Convert a directory of GPX files"`
	Summarize summarize.CLI `cmd:"" help:"Summarize GPX files"`

	Config  string `help:"YAML file with converter defaults" placeholder:"FILE" type:"existingfile"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}))

	var cli CLI
	cfg := &config.Config{}
	ctx := kong.Parse(&cli, kong.Bind(logger), kong.Bind(cfg))

	if cli.Verbose {
		level.Set(slog.LevelDebug)
	}
	if cli.Config != "" {
		loaded, err := config.Load(cli.Config)
		ctx.FatalIfErrorf(err)
		*cfg = *loaded
	}

	ctx.FatalIfErrorf(ctx.Run())
}
