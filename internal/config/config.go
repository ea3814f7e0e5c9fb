// Package config holds runtime configuration: defaults, the optional TOML
// config file, flag binding, and validation.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// --- Enum types for validated string fields ---

// SortOrder controls the merge order of discovered files.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"  // Lexicographic by filename (default).
	SortDescending SortOrder = "desc" // Exact reverse of ascending.
)

// SelectMode chooses how convert inputs are picked.
type SelectMode string

const (
	SelectFolder   SelectMode = "folder" // Every .mp3 in one folder.
	SelectMultiple SelectMode = "files"  // Several explicitly picked files.
	SelectSingle   SelectMode = "file"   // One explicitly picked file.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Fixed names inside the base directory.
const (
	OutputDirName      = "output"
	MergedOutputName   = "merged_output.mp3"
	BackgroundFileName = "bg.jpg"
	ConfigFileName     = "audiobatch.toml"
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by [LoadFile], then by command-line flags, before being passed
// (by pointer) to packages that need it.
type Config struct {
	// Paths.
	BaseDir    string // Empty: resolved from the executable location.
	Background string // Empty: <BaseDir>/bg.jpg.
	ConfigFile string // Explicit --config path.

	// Input selection. Empty values mean "ask interactively".
	Order SortOrder
	Mode  SelectMode

	// External tools.
	FFmpegBin  string // Default: "ffmpeg".
	FFprobeBin string // Default: "ffprobe".

	// Encoding. Defaults match the original converter's fixed template.
	VideoCodec       string // Fixed: "libx264".
	VideoTune        string // Fixed: "stillimage".
	PixFmt           string // Fixed: "yuv420p".
	AudioCodec       string // Fixed: "aac".
	AudioBitrate     string // Default: "192k".
	MaxInterleave    string // Fixed: "100M".
	MergeCodec       string // Fixed: "libmp3lame".
	MergeBitrate     string // Default: "192k".
	MergeSampleRate  int    // Fixed: 44100 Hz.
	MergeChannels    int    // Fixed: 2.
	BackgroundWidth  int    // Fixed: 1920.
	BackgroundHeight int    // Fixed: 1080.

	// Batch behavior.
	Workers       int           // Default: 1 (sequential, reference behavior).
	ItemTimeout   time.Duration // Default: 0 (no timeout).
	Retries       int           // Default: 0 (no automatic retry).
	ValidateAudio bool          // Probe inputs before encoding.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with defaults matching the original
// merger/converter behavior.
func DefaultConfig() Config {
	return Config{
		FFmpegBin:        "ffmpeg",
		FFprobeBin:       "ffprobe",
		VideoCodec:       "libx264",
		VideoTune:        "stillimage",
		PixFmt:           "yuv420p",
		AudioCodec:       "aac",
		AudioBitrate:     "192k",
		MaxInterleave:    "100M",
		MergeCodec:       "libmp3lame",
		MergeBitrate:     "192k",
		MergeSampleRate:  44100,
		MergeChannels:    2,
		BackgroundWidth:  1920,
		BackgroundHeight: 1080,
		Workers:          1,
		ColorMode:        ColorAuto,
	}
}

// Validate checks enum fields and numeric ranges, and canonicalizes
// bitrates. Empty Order/Mode are valid: they trigger the interactive prompt.
func (c *Config) Validate() error {
	switch c.Order {
	case "", SortAscending, SortDescending:
	default:
		return fmt.Errorf("invalid order %q (use 'asc' or 'desc')", c.Order)
	}

	switch c.Mode {
	case "", SelectFolder, SelectMultiple, SelectSingle:
	default:
		return fmt.Errorf("invalid mode %q (use 'folder', 'files' or 'file')", c.Mode)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	if c.ItemTimeout < 0 {
		return errors.New("item timeout must not be negative")
	}
	if c.Retries < 0 {
		return errors.New("retries must not be negative")
	}
	if strings.TrimSpace(c.FFmpegBin) == "" || strings.TrimSpace(c.FFprobeBin) == "" {
		return errors.New("ffmpeg and ffprobe binaries must be set")
	}

	var err error
	if c.AudioBitrate, err = normalizeAudioBitrate(c.AudioBitrate); err != nil {
		return err
	}
	if c.MergeBitrate, err = normalizeAudioBitrate(c.MergeBitrate); err != nil {
		return err
	}
	return nil
}

// ParseOrderChoice maps the interactive sort prompt answer to a SortOrder.
// "2" is descending; anything else, including empty input, is ascending.
func ParseOrderChoice(answer string) SortOrder {
	if strings.TrimSpace(answer) == "2" {
		return SortDescending
	}
	return SortAscending
}

// ParseModeChoice maps the interactive convert prompt answer to a
// SelectMode. ok is false for anything other than "1", "2" or "3".
func ParseModeChoice(answer string) (mode SelectMode, ok bool) {
	switch strings.TrimSpace(answer) {
	case "1":
		return SelectFolder, true
	case "2":
		return SelectMultiple, true
	case "3":
		return SelectSingle, true
	}
	return "", false
}

// normalizeAudioBitrate validates and canonicalizes user bitrate input.
// Accepted forms: "192", "192k", "192K", "192kbps". Output is "<n>k".
func normalizeAudioBitrate(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", errors.New("audio bitrate must not be empty")
	}
	if strings.HasSuffix(s, "kbps") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "kbps"))
	} else if strings.HasSuffix(s, "k") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "k"))
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return "", fmt.Errorf("invalid audio bitrate %q (use positive Kbps value, e.g. 192k)", raw)
	}
	return fmt.Sprintf("%dk", n), nil
}
