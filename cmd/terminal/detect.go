package terminal

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// parentProcessNames maps process names seen in the ancestry of a shell to
// the emulator executable that spawned them.
var parentProcessNames = map[string]string{
	"gnome-terminal-server": "gnome-terminal",
	"gnome-terminal":        "gnome-terminal",
	"konsole":               "konsole",
	"xfce4-terminal":        "xfce4-terminal",
	"alacritty":             "alacritty",
	"kitty":                 "kitty",
	"wezterm-gui":           "wezterm",
	"wezterm":               "wezterm",
	"xterm":                 "xterm",
}

const maxParentDepth = 15

// processInfo is swapped out in tests.
var processInfo = func(pid int32) (name string, ppid int32, err error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return "", 0, err
	}
	name, err = p.Name()
	if err != nil {
		return "", 0, err
	}
	ppid, err = p.Ppid()
	if err != nil {
		return "", 0, err
	}
	return name, ppid, nil
}

// DetectParent walks the parent process chain and returns the emulator the
// current process is running inside, or "" if none is recognized.
func DetectParent() string {
	pid := int32(os.Getpid())
	for range maxParentDepth {
		name, ppid, err := processInfo(pid)
		if err != nil {
			return ""
		}
		if emu, ok := parentProcessNames[name]; ok {
			return emu
		}
		if ppid <= 1 {
			return ""
		}
		pid = ppid
	}
	return ""
}
