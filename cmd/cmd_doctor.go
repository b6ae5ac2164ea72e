package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/barttc/tab/cmd/terminal"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// diagnose is swapped out in tests.
var diagnose = terminal.Diagnose

type DoctorParams struct {
	JSON bool `long:"json" help:"Output as JSON"`
}

func DoctorCmd() *cobra.Command {
	return boa.CmdT[DoctorParams]{
		Use:   "doctor",
		Short: "Report the host's terminal-opening facilities",
		Long: `Report whether this host can open terminal windows: graphical session
presence, detected terminal emulators with resolved paths, which one
would be chosen, and the emulator of the invoking terminal.`,
		ParamEnrich: DefaultParamEnricher(),
		RunFunc: func(params *DoctorParams, cmd *cobra.Command, args []string) {
			if err := runDoctor(params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "tab: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runDoctor(params *DoctorParams, stdout io.Writer) error {
	report := diagnose()

	if params.JSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}

	fmt.Fprintf(stdout, "platform:  %s\n", report.Platform)
	fmt.Fprintf(stdout, "graphical: %s\n", yesNo(report.Graphical))
	if report.Parent != "" {
		fmt.Fprintf(stdout, "inside:    %s\n", report.Parent)
	}
	if report.Selected != "" {
		fmt.Fprintf(stdout, "selected:  %s\n", report.Selected)
	} else {
		fmt.Fprintf(stdout, "selected:  %s\n", text.FgRed.Sprint("none"))
	}
	fmt.Fprintln(stdout)

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(getTermWidth())
	t.AppendHeader(table.Row{"Facility", "Status", "Path", "Note"})
	for _, f := range report.Facilities {
		status := text.FgRed.Sprint("missing")
		if f.Found {
			status = text.FgGreen.Sprint("found")
		}
		t.AppendRow(table.Row{f.Name, status, f.Path, f.Note})
	}
	t.Render()

	found := lo.CountBy(report.Facilities, func(f terminal.Facility) bool { return f.Found })
	fmt.Fprintf(stdout, "\n%d of %d facilities available\n", found, len(report.Facilities))

	if !report.Graphical {
		return fmt.Errorf("no graphical session, tab cannot open a window here")
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func getTermWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 120
	}
	return width
}
