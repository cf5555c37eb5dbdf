package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	"github.com/winposix/winposix/cmd/common"
)

// BuildArgs carries the build-time stamping injected through -ldflags.
type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func Execute(args []string, bArgs BuildArgs) error {
	common.VersionCmdStr = fmt.Sprintf("winposix %s-%s %s/%s (built %s, commit %s)",
		bArgs.Version, bArgs.BuildType, runtime.GOOS, runtime.GOARCH,
		bArgs.Date, bArgs.Commit)
	app := cli.App{
		Name:                  "winposix",
		HelpName:              "winposix",
		Usage:                 "Cygwin path and process id translation.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "winposix <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:                   "convert",
				Aliases:                []string{"c"},
				Usage:                  "convert a path between unix and windows styles",
				Action:                 convert,
				Flags:                  convFlags,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ConvertDescription,
				UseShortOptionHandling: true,
			},
			{
				Name:               "winpid",
				Usage:              "print the windows pid of a cygwin process",
				Action:             winpid,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        WinpidDescription,
			},
			{
				Name:               "pid",
				Usage:              "print the cygwin pid of a windows process",
				Action:             cygpid,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        PidDescription,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of winposix",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		Action:                 convert,
		Flags:                  convFlags,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	return app.Run(args)
}
