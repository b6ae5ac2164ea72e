package terminal

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/samber/lo"
)

// emulator describes a known terminal emulator and how to launch it.
type emulator struct {
	name string
	// inheritDir marks emulators without a working-directory flag. The
	// directory is set on the spawned process instead.
	inheritDir bool
	// args builds the argv after the executable: open a window at dir,
	// running script in a shell when script is non-empty.
	args func(dir, script string) []string
}

// emulators is the preference order on Linux/BSD when the user expresses no
// choice and the invoking terminal cannot be detected.
var emulators = []emulator{
	{
		name:       "x-terminal-emulator",
		inheritDir: true,
		args: func(dir, script string) []string {
			if script == "" {
				return nil
			}
			return []string{"-e", "sh", "-c", script}
		},
	},
	{
		name: "gnome-terminal",
		args: func(dir, script string) []string {
			out := []string{"--working-directory=" + dir}
			if script != "" {
				out = append(out, "--", "sh", "-c", script)
			}
			return out
		},
	},
	{
		name: "konsole",
		args: func(dir, script string) []string {
			out := []string{"--workdir", dir}
			if script != "" {
				out = append(out, "-e", "sh", "-c", script)
			}
			return out
		},
	},
	{
		name: "xfce4-terminal",
		args: func(dir, script string) []string {
			out := []string{"--working-directory=" + dir}
			if script != "" {
				// xfce4-terminal wants -e as a single string
				out = append(out, "-e", "sh -c "+shellQuote(script))
			}
			return out
		},
	},
	{
		name: "alacritty",
		args: func(dir, script string) []string {
			out := []string{"--working-directory", dir}
			if script != "" {
				out = append(out, "-e", "sh", "-c", script)
			}
			return out
		},
	},
	{
		name: "kitty",
		args: func(dir, script string) []string {
			out := []string{"--directory", dir}
			if script != "" {
				out = append(out, "--", "sh", "-c", script)
			}
			return out
		},
	},
	{
		name: "wezterm",
		args: func(dir, script string) []string {
			out := []string{"start", "--cwd", dir}
			if script != "" {
				out = append(out, "--", "sh", "-c", script)
			}
			return out
		},
	},
	{
		name:       "xterm",
		inheritDir: true,
		args: func(dir, script string) []string {
			if script == "" {
				return nil
			}
			return []string{"-e", "sh", "-c", script}
		},
	},
}

// lookPath is swapped out in tests.
var lookPath = exec.LookPath

func knownEmulator(name string) (emulator, bool) {
	return lo.Find(emulators, func(e emulator) bool { return e.name == name })
}

// genericEmulator launches an emulator not in the known table with the most
// widely supported convention: inherit the working directory from the
// process, run commands via -e sh -c.
func genericEmulator(name string) emulator {
	return emulator{
		name:       name,
		inheritDir: true,
		args: func(dir, script string) []string {
			if script == "" {
				return nil
			}
			return []string{"-e", "sh", "-c", script}
		},
	}
}

// selectEmulator resolves which emulator to launch. Order: explicit
// preference, the emulator the user is already inside, then the preference
// table. The returned path is the resolved executable path.
func selectEmulator(preference string) (emulator, string, error) {
	if preference != "" {
		path, err := lookPath(preference)
		if err != nil {
			return emulator{}, "", fmt.Errorf("%w: terminal emulator %q not found in PATH", ErrNoTerminal, preference)
		}
		if emu, ok := knownEmulator(preference); ok {
			return emu, path, nil
		}
		return genericEmulator(preference), path, nil
	}

	if parent := DetectParent(); parent != "" {
		if emu, ok := knownEmulator(parent); ok {
			if path, err := lookPath(parent); err == nil {
				return emu, path, nil
			}
		}
	}

	for _, emu := range emulators {
		if path, err := lookPath(emu.name); err == nil {
			return emu, path, nil
		}
	}

	return emulator{}, "", fmt.Errorf("%w: no terminal emulator found in PATH", ErrNoTerminal)
}

// sessionScript wraps a user command so the new session runs it and then
// stays interactive, matching the behavior of typing the command into a
// fresh window.
func sessionScript(command string) string {
	return command + "; exec " + loginShell()
}

func loginShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "sh"
}

// graphicalSession reports whether a display server is reachable.
func graphicalSession() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// shellQuote single-quotes s for inclusion in a sh command line.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// appleScriptEscape escapes a string for embedding in an AppleScript string
// literal.
func appleScriptEscape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// openWindowScript is the AppleScript that opens a new Terminal.app window
// at dir. The cd into the directory is what scopes the new session.
func openWindowScript(dir string) string {
	return `tell application "Terminal"
	activate
	do script "cd ` + appleScriptEscape(shellQuote(dir)) + `"
end tell`
}

// deliverScript is the AppleScript that types command into the frontmost
// Terminal.app window. do script implies the trailing newline.
func deliverScript(command string) string {
	return `tell application "Terminal" to do script "` + appleScriptEscape(command) + `" in front window`
}
