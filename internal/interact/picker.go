package interact

import (
	"errors"
	"strings"
)

// ErrNoGUI is returned by NewDialogPicker in builds without the gui tag.
var ErrNoGUI = errors.New("native dialogs unavailable: rebuild with -tags gui")

// Filter restricts a file dialog to the given extensions (with dot).
type Filter struct {
	Label string
	Exts  []string
}

// MP3Filter is the filter offered by convert's file pickers.
var MP3Filter = Filter{Label: "MP3 files", Exts: []string{".mp3"}}

// Picker resolves a selection to paths. An empty result means the user
// cancelled.
type Picker interface {
	PickFolder(title string) (string, error)
	PickFiles(title string, filter Filter, multiple bool) ([]string, error)
}

// StaticPicker answers from a fixed list, typically positional arguments.
type StaticPicker struct {
	Paths []string
}

// PickFolder returns the first path, or "" when none were given.
func (s StaticPicker) PickFolder(string) (string, error) {
	if len(s.Paths) == 0 {
		return "", nil
	}
	return s.Paths[0], nil
}

// PickFiles returns all paths, or only the first when multiple is false.
// The filter is not applied.
func (s StaticPicker) PickFiles(_ string, _ Filter, multiple bool) ([]string, error) {
	if len(s.Paths) == 0 {
		return nil, nil
	}
	if !multiple {
		return s.Paths[:1], nil
	}
	out := make([]string, len(s.Paths))
	copy(out, s.Paths)
	return out, nil
}

// cleanPath strips whitespace and the quotes terminals add when a file is
// dragged in.
func cleanPath(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	return s
}
