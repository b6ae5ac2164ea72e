//go:build windows

package terminal

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// startCommand is swapped out in tests.
var startCommand = func(cmd *exec.Cmd) error { return cmd.Start() }

// Open opens a new terminal window at req.Dir: Windows Terminal when
// installed, else a fresh cmd window. cmd /k keeps the session interactive
// after the delivered command finishes.
func Open(req Request) error {
	argv, err := windowsArgv(req)
	if err != nil {
		return err
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if startErr := startCommand(cmd); startErr != nil {
		return fmt.Errorf("%w: starting %s: %v", ErrNoTerminal, filepath.Base(argv[0]), startErr)
	}
	return nil
}

// Plan returns the invocation Open would issue, without executing it.
func Plan(req Request) ([][]string, error) {
	argv, err := windowsArgv(req)
	if err != nil {
		return nil, err
	}
	return [][]string{argv}, nil
}

func windowsArgv(req Request) ([]string, error) {
	if wtPath, err := lookPath("wt.exe"); err == nil {
		argv := []string{wtPath, "-d", req.Dir}
		if req.Command != "" {
			argv = append(argv, "cmd", "/k", req.Command)
		}
		return argv, nil
	}

	cmdPath, err := lookPath("cmd")
	if err != nil {
		return nil, fmt.Errorf("%w: neither wt.exe nor cmd found in PATH", ErrNoTerminal)
	}
	argv := []string{cmdPath, "/c", "start", "/d", req.Dir, "cmd"}
	if req.Command != "" {
		argv = append(argv, "/k", req.Command)
	}
	return argv, nil
}

// Diagnose reports the host's terminal-opening facilities.
func Diagnose() Report {
	r := Report{
		Platform:  "windows",
		Graphical: true,
	}
	wt := Facility{Name: "wt.exe", Note: "Windows Terminal"}
	if path, err := lookPath("wt.exe"); err == nil {
		wt.Found = true
		wt.Path = path
		r.Selected = "wt.exe"
	}
	cmdExe := Facility{Name: "cmd"}
	if path, err := lookPath("cmd"); err == nil {
		cmdExe.Found = true
		cmdExe.Path = path
		if r.Selected == "" {
			r.Selected = "cmd"
		}
	}
	r.Facilities = []Facility{wt, cmdExe}
	return r
}
