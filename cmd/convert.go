package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	cmdCommon "github.com/winposix/winposix/cmd/common"
	"github.com/winposix/winposix/common"
	"github.com/winposix/winposix/pkg/cygwin"
)

var (
	convMode string
	absolute bool

	convFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "mode, m",
			Usage:       "style of path to print: 'u'/'unix' or 'w'/'windows'",
			EnvVar:      common.ModeEnv,
			Value:       "unix",
			Destination: &convMode,
		},
		cli.BoolTFlag{
			Name:        "absolute, a",
			Usage:       "print absolute paths (default: true)",
			Destination: &absolute,
		},
	}
)

func convert(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cmdCommon.PrintErrWithCmdHelp(ctx, errors.New("no path specified"))
	}
	out, err := convertPaths(cygwin.Cygpath, convMode, absolute, args)
	if err != nil {
		if errors.Is(err, cygwin.ErrInvalidMode) {
			return cmdCommon.PrintErrWithCmdHelp(ctx, err)
		}
		cmdCommon.PrintRuntimeErr(ctx, "convert", "cygpath", err)
		return nil
	}
	for _, p := range out {
		fmt.Println(p)
	}
	return nil
}

// convertFunc matches cygwin.Cygpath; tests substitute their own.
type convertFunc func(path, mode string, absolute bool) (string, error)

// convertPaths converts every path with conv, failing fast on the first
// error so a bad mode is reported once rather than per path.
func convertPaths(conv convertFunc, mode string, absolute bool, paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		s, err := conv(p, mode, absolute)
		if err != nil {
			if errors.Is(err, cygwin.ErrInvalidMode) {
				return nil, err
			}
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		out = append(out, s)
	}
	return out, nil
}
