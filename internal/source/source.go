// Package source resolves user selections into SourceFiles: a folder scan
// filtered to MP3s, or explicit picks taken as-is, plus the user-chosen
// filename ordering used by merge.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/backmassage/audiobatch/internal/config"
)

// MP3Ext is the only extension a folder scan keeps.
const MP3Ext = ".mp3"

// File is a resolved input path. Identity is Path; values are never
// mutated after resolution.
type File struct {
	Path string // Absolute.
	Name string // Base name with extension.
	Stem string // Base name without extension.
	Ext  string // Extension including the dot, original case.
}

// New resolves path to an absolute File.
func New(path string) (File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return File{}, fmt.Errorf("resolve %q: %w", path, err)
	}
	name := filepath.Base(abs)
	ext := filepath.Ext(name)
	return File{
		Path: abs,
		Name: name,
		Stem: strings.TrimSuffix(name, ext),
		Ext:  ext,
	}, nil
}

// HasExt reports whether name ends in ext under Unicode case folding.
func HasExt(name, ext string) bool {
	fold := cases.Fold()
	return fold.String(filepath.Ext(name)) == fold.String(ext)
}

// ListFolder returns the regular files directly inside dir whose extension
// is .mp3 in any case, sorted by name. A missing or non-directory dir yields
// an empty result, not an error.
func ListFolder(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || isNotDir(dir) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var files []File
	for _, e := range entries {
		if e.IsDir() || !HasExt(e.Name(), MP3Ext) {
			continue
		}
		if !e.Type().IsRegular() {
			// Follow symlinks; skip anything that doesn't end at a file.
			fi, err := os.Stat(filepath.Join(dir, e.Name()))
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
		}
		f, err := New(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return Sort(files, config.SortAscending), nil
}

// FromPaths resolves explicit picks without filtering by extension; the
// picker's own file-type filter is trusted. Blank entries are dropped.
func FromPaths(paths []string) ([]File, error) {
	files := make([]File, 0, len(paths))
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		f, err := New(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// Sort returns a copy of files ordered by base name. Descending is the
// exact reverse of ascending; the sort is stable, so equal names keep their
// enumeration order.
func Sort(files []File, order config.SortOrder) []File {
	out := make([]File, len(files))
	copy(out, files)
	desc := order == config.SortDescending
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return out[i].Name > out[j].Name
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Names returns the base names of files, in order.
func Names(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func isNotDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
