package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/winposix/winposix/cmd/common"
	"github.com/winposix/winposix/pkg/cygwin"
)

func winpid(ctx *cli.Context) error {
	pid, err := parsePidArg(ctx.Args().First())
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	wpid, err := cygwin.PidToWinpid(pid)
	if err != nil {
		common.PrintRuntimeErr(ctx, "winpid", "pid_to_winpid", err)
		return nil
	}
	fmt.Println(wpid)
	return nil
}

func cygpid(ctx *cli.Context) error {
	wpid, err := parsePidArg(ctx.Args().First())
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	pid, err := cygwin.WinpidToPid(uint32(wpid))
	if err != nil {
		common.PrintRuntimeErr(ctx, "pid", "winpid_to_pid", err)
		return nil
	}
	fmt.Println(pid)
	return nil
}

// parsePidArg parses a positional process id argument.
func parsePidArg(s string) (int, error) {
	if s == "" {
		return 0, errors.New("no process id specified")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid process id %q", s)
	}
	return n, nil
}
