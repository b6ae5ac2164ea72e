package main

import (
	"os"
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/barttc/tab/cmd"
	"github.com/spf13/cobra"
)

func main() {
	root := boa.CmdT[cmd.OpenParams]{
		Use:   "tab [command...]",
		Short: "Open a new terminal window in the current directory",
		Long: `Open a new terminal window in the current directory and optionally
run a command in it.

Trailing arguments are joined into a single command string and sent to the
new terminal session as if typed, followed by a newline. The session stays
interactive after the command finishes.`,
		Version:     appVersion(),
		ParamEnrich: cmd.DefaultParamEnricher(),
		RunFunc:     cmd.RunOpen,
		SubCmds: []*cobra.Command{
			cmd.DoctorCmd(),
		},
	}.ToCobra()

	// Everything after the first positional argument belongs to the
	// forwarded command, so "tab ls -la" must not parse -la as a tab flag.
	root.Flags().SetInterspersed(false)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func appVersion() string {
	bi, hasBuildInfo := debug.ReadBuildInfo()
	if !hasBuildInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
