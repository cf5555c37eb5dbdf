package cmd

const DESCRIPTION = `
Winposix translates paths and process ids between the Cygwin
compatibility layer's POSIX namespace and the native Windows
namespace, like the cygpath and ps utilities that ship with
Cygwin, without needing a Cygwin shell.
`

const (
	ConvertDescription = `The convert command converts each given path to the
requested style. The input path may be in either style;
the mode flag picks the style of the output.

Example:
        winposix convert -m windows /usr/bin
        winposix -m u 'C:\cygwin64\usr\bin'

`
	WinpidDescription = `The winpid command prints the native Windows process id
of a running Cygwin process. It fails with "no such
process" if no live Cygwin process has the given pid.

Example:
        winposix winpid 5012

`
	PidDescription = `The pid command prints the Cygwin process id of a native
Windows process, or -1 if the process is not a Cygwin
process.

Example:
        winposix pid 8664

`
)

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCategories}}{{if .Name}}

{{.Name}}:{{range .VisibleCommands}}
  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`

const CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`
