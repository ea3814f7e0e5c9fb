// Package term decides whether output is colored and paints log levels,
// analysis flags and the banner accordingly.
//
// The decision is process-wide: [Configure] runs once while the logger is
// built, and every [Paint] call after that follows it.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/backmassage/audiobatch/internal/config"
)

// Role is what a colored span means on screen. Each log level has one,
// plus the banner.
type Role int

const (
	RoleInfo Role = iota
	RoleSuccess
	RoleWarn
	RoleError
	RoleDebug
	RoleBanner
	numRoles
)

const reset = "\033[0m"

// palette maps roles to bold bright ANSI colors: blue, green, yellow, red,
// cyan, magenta.
var palette = [numRoles]string{
	RoleInfo:    "\033[1;94m",
	RoleSuccess: "\033[1;92m",
	RoleWarn:    "\033[1;93m",
	RoleError:   "\033[1;91m",
	RoleDebug:   "\033[1;96m",
	RoleBanner:  "\033[1;95m",
}

var enabled bool

// Configure resolves the color mode once during startup (from
// [logging.NewLogger]). Not safe to call while other goroutines print.
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return enabled }

// Paint wraps s in the color for r, or returns s untouched when colors are
// off or r is unknown.
func Paint(r Role, s string) string {
	if !enabled || r < 0 || r >= numRoles {
		return s
	}
	return palette[r] + s + reset
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY, including Cygwin/MSYS
// pseudo-terminals.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
