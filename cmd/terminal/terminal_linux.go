//go:build linux

package terminal

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// startCommand is swapped out in tests.
var startCommand = func(cmd *exec.Cmd) error { return cmd.Start() }

// Open opens a new terminal window at req.Dir, delivering req.Command to the
// new session when present. Fire-and-forget: returns once the request has
// been issued, not once the window is rendered.
func Open(req Request) error {
	var argv []string
	var err error
	if isWSL() {
		argv, err = wslArgv(req)
	} else {
		argv, err = nativeArgv(req)
	}
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	// Covers emulators without a working-directory flag.
	cmd.Dir = req.Dir
	if startErr := startCommand(cmd); startErr != nil {
		return fmt.Errorf("%w: starting %s: %v", ErrNoTerminal, filepath.Base(argv[0]), startErr)
	}
	return nil
}

// Plan returns the invocation Open would issue, without executing it.
func Plan(req Request) ([][]string, error) {
	if isWSL() {
		argv, err := wslArgv(req)
		if err != nil {
			return nil, err
		}
		return [][]string{argv}, nil
	}
	argv, err := nativeArgv(req)
	if err != nil {
		return nil, err
	}
	return [][]string{argv}, nil
}

// nativeArgv resolves the emulator and builds its launch argv. The working
// directory is always set on the spawned process too, which covers emulators
// without a directory flag.
func nativeArgv(req Request) ([]string, error) {
	if !graphicalSession() {
		return nil, fmt.Errorf("%w: no graphical session (DISPLAY and WAYLAND_DISPLAY unset)", ErrNoTerminal)
	}
	emu, path, err := selectEmulator(req.Emulator)
	if err != nil {
		return nil, err
	}
	script := ""
	if req.Command != "" {
		script = sessionScript(req.Command)
	}
	return append([]string{path}, emu.args(req.Dir, script)...), nil
}

// isWSL detects Windows Subsystem for Linux.
func isWSL() bool {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	lower := strings.ToLower(string(data))
	return strings.Contains(lower, "microsoft") || strings.Contains(lower, "wsl")
}

// wslArgv routes the request to the Windows side: Windows Terminal when
// available, else a cmd.exe start. wsl --cd scopes the new session to the
// requested directory.
func wslArgv(req Request) ([]string, error) {
	wslPart := []string{"wsl", "--cd", req.Dir}
	if req.Command != "" {
		wslPart = append(wslPart, "-e", "sh", "-c", sessionScript(req.Command))
	}

	if wtPath := findWindowsTerminal(); wtPath != "" {
		return append([]string{wtPath, "new-tab"}, wslPart...), nil
	}
	if cmdPath, err := lookPath("cmd.exe"); err == nil {
		return append([]string{cmdPath, "/c", "start"}, wslPart...), nil
	}
	return nil, fmt.Errorf("%w: neither Windows Terminal nor cmd.exe reachable from WSL", ErrNoTerminal)
}

// findWindowsTerminal looks for the Windows Terminal executable from inside
// WSL.
func findWindowsTerminal() string {
	if path, err := lookPath("wt.exe"); err == nil {
		return path
	}

	user := os.Getenv("USER")
	if user == "" {
		user = os.Getenv("LOGNAME")
	}
	if user == "" {
		return ""
	}

	candidate := filepath.Join("/mnt/c/Users", user, "AppData/Local/Microsoft/WindowsApps/wt.exe")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

// Diagnose reports the host's terminal-opening facilities.
func Diagnose() Report {
	if isWSL() {
		return diagnoseWSL()
	}

	r := Report{
		Platform:  "linux",
		Graphical: graphicalSession(),
		Parent:    DetectParent(),
	}
	r.Facilities = lo.Map(emulators, func(e emulator, _ int) Facility {
		f := Facility{Name: e.name}
		if path, err := lookPath(e.name); err == nil {
			f.Found = true
			f.Path = path
		}
		if e.inheritDir {
			f.Note = "inherits working directory"
		}
		return f
	})
	if emu, _, err := selectEmulator(""); err == nil {
		r.Selected = emu.name
	}
	return r
}

func diagnoseWSL() Report {
	r := Report{
		Platform:  "linux (wsl)",
		Graphical: true, // windowing happens on the Windows side
	}
	wt := Facility{Name: "wt.exe", Note: "Windows Terminal"}
	if path := findWindowsTerminal(); path != "" {
		wt.Found = true
		wt.Path = path
		r.Selected = "wt.exe"
	}
	cmdExe := Facility{Name: "cmd.exe"}
	if path, err := lookPath("cmd.exe"); err == nil {
		cmdExe.Found = true
		cmdExe.Path = path
		if r.Selected == "" {
			r.Selected = "cmd.exe"
		}
	}
	r.Facilities = []Facility{wt, cmdExe}
	return r
}
