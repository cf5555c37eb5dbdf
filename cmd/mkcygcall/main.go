// mkcygcall generates the lazy proc table the cygwin package calls
// through, from a YAML directive file. Prior generation options are
// memoized in a stamp file next to the output, so repeated runs with
// unchanged directives do nothing.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/winposix/winposix/common"
	"github.com/winposix/winposix/internal/buildstamp"
	"github.com/winposix/winposix/internal/gen"
	"github.com/winposix/winposix/pkg/logger"
)

const stampName = ".mkcygcall.stamp"

var (
	configPath string
	outputPath string
	force      bool
	debug      bool
	quiet      bool
)

func main() {
	app := cli.App{
		Name:      "mkcygcall",
		HelpName:  "mkcygcall",
		Usage:     "generate a lazy DLL proc table from a directive file",
		UsageText: "mkcygcall [options]",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:        "config, c",
				Usage:       "directive file to read",
				Value:       "procs.yml",
				Destination: &configPath,
			},
			cli.StringFlag{
				Name:        "output, o",
				Usage:       "generated file to write",
				Value:       "zproc_windows.go",
				Destination: &outputPath,
			},
			cli.BoolFlag{
				Name:        "force, f",
				Usage:       "regenerate even if the stamp matches",
				Destination: &force,
			},
			cli.BoolFlag{
				Name:        "debug, d",
				Usage:       "emit the proc name list for resolution tracing",
				EnvVar:      common.DebugEnv,
				Destination: &debug,
			},
			cli.BoolFlag{
				Name:        "quiet, q",
				Usage:       "suppress progress output",
				Destination: &quiet,
			},
		},
		Action: func(ctx *cli.Context) error {
			var l logger.Logger = logger.NewStandardLogger(nil)
			if quiet {
				l = logger.NewNopLogger()
			}
			return run(afero.NewOsFs(), l, configPath, outputPath, force, debug)
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "mkcygcall: %s\n", err.Error())
		os.Exit(1)
	}
}

// run is the generation pipeline: load directives, consult the stamp,
// regenerate when forced or dirty, record the stamp last.
func run(fsys afero.Fs, l logger.Logger, configPath, outputPath string, force, debug bool) error {
	cfg, err := gen.LoadConfig(fsys, configPath)
	if err != nil {
		return err
	}

	stamp := buildstamp.Stamp{
		Version:    gen.Version,
		Debug:      debug,
		Directives: cfg.Directives(),
	}
	stampPath := filepath.Join(filepath.Dir(outputPath), stampName)

	if force {
		// Drop the stamp before touching the output: an interrupted
		// forced run must be redone from scratch next time.
		if err := buildstamp.Invalidate(fsys, stampPath); err != nil {
			return err
		}
	} else {
		dirty, err := buildstamp.Check(fsys, stampPath, stamp)
		if err != nil {
			return err
		}
		if !dirty {
			if exists, _ := afero.Exists(fsys, outputPath); exists {
				l.Info("%s is up to date", outputPath)
				return nil
			}
			// Stamp matches but the artifact is gone; rebuild it.
		}
	}

	l.Info("generating %s from %s (%d procs)", outputPath, configPath, len(cfg.Procs))
	src, err := gen.Generate(cfg, gen.Options{Debug: debug})
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, outputPath, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	if err := buildstamp.Write(fsys, stampPath, stamp); err != nil {
		return fmt.Errorf("writing stamp: %w", err)
	}
	return nil
}
