package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/barttc/tab/cmd/terminal"
	"github.com/spf13/cobra"
)

var (
	openTerminal = terminal.Open
	planTerminal = terminal.Plan
)

// OpenParams are the flags of the root command. The trailing arguments are
// the command forwarded to the new session; they are not modeled as
// parameters so they reach the run function raw.
type OpenParams struct {
	Dir      string `short:"d" optional:"true" help:"Directory to open the terminal in (default: current directory)."`
	Terminal string `short:"t" optional:"true" help:"Terminal emulator to prefer (default: $TAB_TERMINAL, then auto-detect)."`
	Print    bool   `short:"p" help:"Print the launch invocation instead of executing it."`
}

// RunOpen is the run function of the root command.
func RunOpen(params *OpenParams, cmd *cobra.Command, args []string) {
	if err := runOpen(params, args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tab: %v\n", err)
		os.Exit(1)
	}
}

func runOpen(params *OpenParams, args []string, stdout io.Writer) error {
	dir, err := resolveDir(params.Dir)
	if err != nil {
		return err
	}

	emu := params.Terminal
	if emu == "" {
		emu = os.Getenv("TAB_TERMINAL")
	}

	req := terminal.Request{
		Dir:      dir,
		Command:  strings.Join(args, " "),
		Emulator: emu,
	}

	if params.Print {
		invocations, err := planTerminal(req)
		if err != nil {
			return err
		}
		for _, argv := range invocations {
			fmt.Fprintln(stdout, strings.Join(argv, " "))
		}
		return nil
	}

	return openTerminal(req)
}

func resolveDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("cannot determine current directory: %w", err)
		}
		return cwd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot open terminal in '%s': %v", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: '%s'", abs)
	}
	return abs, nil
}
