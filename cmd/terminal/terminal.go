// Package terminal opens new terminal windows scoped to a working directory,
// optionally delivering a command to the new session as if it had been typed.
package terminal

import "errors"

// Request describes a single terminal window to open.
type Request struct {
	// Dir is the working directory for the new session.
	Dir string
	// Command is an optional command string delivered to the new session,
	// followed by an execution trigger. Empty means open an interactive
	// session only. The string is forwarded verbatim.
	Command string
	// Emulator optionally names the terminal emulator to use. Only honored
	// on platforms where more than one emulator is in play (Linux/BSD).
	Emulator string
}

var (
	// ErrNoTerminal is returned when the host has no terminal or windowing
	// facility to target (non-graphical session, no emulator installed).
	ErrNoTerminal = errors.New("no terminal available")

	// ErrDelivery is returned when the window was opened but the command
	// could not be sent to the new session.
	ErrDelivery = errors.New("command delivery failed")
)

// Facility is one host capability relevant to opening terminals, as reported
// by Diagnose.
type Facility struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
	Note  string `json:"note,omitempty"`
}

// Report summarizes the host's terminal-opening capabilities.
type Report struct {
	Platform   string     `json:"platform"`
	Graphical  bool       `json:"graphical"`
	Parent     string     `json:"parent,omitempty"`
	Selected   string     `json:"selected,omitempty"`
	Facilities []Facility `json:"facilities"`
}

// Open opens a new terminal window at req.Dir and, if req.Command is
// non-empty, delivers the command to the new session.
// Returns ErrNoTerminal if no suitable facility is available.
// Implemented per-platform in terminal_*.go files.

// Plan returns the process invocations Open would issue, without executing
// them. Implemented per-platform in terminal_*.go files.

// Diagnose inspects the host and reports which terminal-opening facilities
// are available. Implemented per-platform in terminal_*.go files.
