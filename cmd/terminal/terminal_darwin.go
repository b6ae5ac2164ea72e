//go:build darwin

package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/GiGurra/cmder"
)

// runOsascript executes an AppleScript snippet. Swapped out in tests.
var runOsascript = func(script string) error {
	res := cmder.New("osascript", "-e", script).
		WithAttemptTimeout(15 * time.Second).
		Run(context.Background())
	if res.Err != nil {
		return fmt.Errorf("osascript: %v: %s", res.Err, res.StdErr)
	}
	return nil
}

// Open opens a new Terminal.app window at req.Dir. A command, when present,
// is delivered to the new window with a second do script, which runs it as
// if typed followed by a newline.
func Open(req Request) error {
	if _, err := lookPath("osascript"); err != nil {
		return fmt.Errorf("%w: osascript not found in PATH", ErrNoTerminal)
	}

	if err := runOsascript(openWindowScript(req.Dir)); err != nil {
		return fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}

	if req.Command != "" {
		if err := runOsascript(deliverScript(req.Command)); err != nil {
			return fmt.Errorf("%w: %v", ErrDelivery, err)
		}
	}
	return nil
}

// Plan returns the osascript invocations Open would issue.
func Plan(req Request) ([][]string, error) {
	if _, err := lookPath("osascript"); err != nil {
		return nil, fmt.Errorf("%w: osascript not found in PATH", ErrNoTerminal)
	}

	invocations := [][]string{
		{"osascript", "-e", openWindowScript(req.Dir)},
	}
	if req.Command != "" {
		invocations = append(invocations, []string{"osascript", "-e", deliverScript(req.Command)})
	}
	return invocations, nil
}

// Diagnose reports the host's terminal-opening facilities.
func Diagnose() Report {
	r := Report{
		Platform: "darwin",
		Selected: "Terminal.app",
	}
	osa := Facility{Name: "osascript", Note: "drives Terminal.app"}
	if path, err := lookPath("osascript"); err == nil {
		osa.Found = true
		osa.Path = path
	}
	r.Graphical = osa.Found
	r.Facilities = []Facility{osa}
	return r
}
