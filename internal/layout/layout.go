package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/audiobatch/internal/config"
	"github.com/backmassage/audiobatch/internal/source"
)

// Layout computes every path a run reads or writes. It is built once at
// startup and passed explicitly; nothing else looks up the base directory.
type Layout struct {
	BaseDir    string
	background string
}

// New returns a Layout rooted at baseDir. background overrides the default
// <baseDir>/bg.jpg when non-empty.
func New(baseDir, background string) Layout {
	return Layout{BaseDir: baseDir, background: background}
}

// ResolveBaseDir returns override (made absolute) when set, otherwise the
// directory holding the running executable. Binaries launched by "go run"
// live in a throwaway build cache, so for those the working directory is
// used instead.
func ResolveBaseDir(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	exe, err := os.Executable()
	if err != nil {
		return cwd, nil
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return baseDirFor(exe, cwd, os.TempDir()), nil
}

func baseDirFor(exe, cwd, tmp string) string {
	dir := filepath.Dir(exe)
	sep := string(filepath.Separator)
	if strings.Contains(dir, sep+"go-build") && strings.HasPrefix(dir+sep, filepath.Clean(tmp)+sep) {
		return cwd
	}
	return dir
}

// OutputDir is <base>/output.
func (l Layout) OutputDir() string {
	return filepath.Join(l.BaseDir, config.OutputDirName)
}

// MergedOutputPath is the fixed merge target <base>/output/merged_output.mp3.
func (l Layout) MergedOutputPath() string {
	return filepath.Join(l.OutputDir(), config.MergedOutputName)
}

// ConvertOutputPath is <base>/output/<stem>.mp4 for f.
func (l Layout) ConvertOutputPath(f source.File) string {
	return filepath.Join(l.OutputDir(), f.Stem+".mp4")
}

// BackgroundPath is the override when set, else <base>/bg.jpg.
func (l Layout) BackgroundPath() string {
	if l.background != "" {
		if abs, err := filepath.Abs(l.background); err == nil {
			return abs
		}
		return l.background
	}
	return filepath.Join(l.BaseDir, config.BackgroundFileName)
}

// ConfigPath is <base>/audiobatch.toml.
func (l Layout) ConfigPath() string {
	return filepath.Join(l.BaseDir, config.ConfigFileName)
}

// EnsureParent creates every missing ancestor directory of path. Existing
// directories are not an error, and concurrent callers are safe.
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
