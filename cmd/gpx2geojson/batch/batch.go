package batch

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"calmh.dev/gpx2geojson/cmd/gpx2geojson/convert"
	"calmh.dev/gpx2geojson/geojson"
	"calmh.dev/gpx2geojson/internal/config"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slices"
)

type CLI struct {
	Dir    string `arg:"" help:"Directory to scan for .gpx files" type:"existingdir"`
	OutDir string `help:"Directory for output files (default: next to each input)" placeholder:"DIR"`

	Elevation       bool   `short:"e" help:"Include elevation in coordinates"`
	ExtensionPrefix string `help:"Prefix for flattened extension properties (default ex_)" placeholder:"PREFIX"`
	Indent          bool   `help:"Indent the JSON output"`
	Quiet           bool   `short:"q" help:"Disable the progress bar"`
}

func (cli *CLI) Run(logger *slog.Logger, cfg *config.Config) error {
	var files []string
	err := filepath.WalkDir(cli.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".gpx") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	slices.Sort(files)

	if len(files) == 0 {
		logger.Info("No GPX files found", "dir", cli.Dir)
		return nil
	}

	if cli.OutDir != "" {
		if err := os.MkdirAll(cli.OutDir, 0o755); err != nil {
			return err
		}
	}

	var bar *progressbar.ProgressBar
	if !cli.Quiet {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionSetDescription("converting"),
			progressbar.OptionShowCount(),
		)
	}

	opts := cfg.Options(cli.Elevation, cli.ExtensionPrefix)
	indent := cli.Indent || cfg.Indent

	var failed int
	for _, path := range files {
		if err := cli.convertFile(path, opts, indent); err != nil {
			logger.Warn("Skipping file", "path", path, "error", err)
			failed++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	logger.Info("Batch done", "converted", len(files)-failed, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

func (cli *CLI) convertFile(path string, opts geojson.Options, indent bool) error {
	fd, err := os.Open(path)
	if err != nil {
		return err
	}
	out, err := convert.Convert(fd, opts, indent)
	fd.Close()
	if err != nil {
		return err
	}

	dest := strings.TrimSuffix(path, filepath.Ext(path)) + ".geojson"
	if cli.OutDir != "" {
		dest = filepath.Join(cli.OutDir, filepath.Base(dest))
	}
	return os.WriteFile(dest, out, 0o644)
}
