package config

// This file implements the optional, read-only TOML config file. Keys mirror
// the long flag names with underscores; a key only applies when the matching
// flag was not given on the command line.

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// File is the decoded form of audiobatch.toml. Pointer fields distinguish
// "absent" from zero values.
type File struct {
	BaseDir       *string `toml:"base_dir"`
	Background    *string `toml:"background"`
	Order         *string `toml:"order"`
	AudioBitrate  *string `toml:"audio_bitrate"`
	MergeBitrate  *string `toml:"merge_bitrate"`
	Workers       *int    `toml:"workers"`
	ItemTimeout   *string `toml:"item_timeout"`
	Retries       *int    `toml:"retries"`
	ValidateAudio *bool   `toml:"validate_audio"`
	Color         *string `toml:"color"`
	LogFile       *string `toml:"log_file"`
	FFmpeg        *string `toml:"ffmpeg"`
	FFprobe       *string `toml:"ffprobe"`
}

// LoadFile reads and decodes path. A missing file is not an error: it
// returns (nil, false, nil).
func LoadFile(path string) (*File, bool, error) {
	if path == "" {
		return nil, false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var out File
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return nil, false, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &out, true, nil
}

// Apply copies every key present in f onto cfg, skipping keys whose flag
// the user set explicitly. changed may be nil.
func (f *File) Apply(cfg *Config, changed func(flag string) bool) error {
	if f == nil {
		return nil
	}
	set := func(flag string) bool { return changed == nil || !changed(flag) }

	if f.BaseDir != nil && set("base-dir") {
		cfg.BaseDir = *f.BaseDir
	}
	if f.Background != nil && set("background") {
		cfg.Background = *f.Background
	}
	if f.Order != nil && set("order") {
		cfg.Order = SortOrder(*f.Order)
	}
	if f.AudioBitrate != nil && set("audio-bitrate") {
		cfg.AudioBitrate = *f.AudioBitrate
	}
	if f.MergeBitrate != nil && set("merge-bitrate") {
		cfg.MergeBitrate = *f.MergeBitrate
	}
	if f.Workers != nil && set("workers") {
		cfg.Workers = *f.Workers
	}
	if f.ItemTimeout != nil && set("item-timeout") {
		d, err := time.ParseDuration(*f.ItemTimeout)
		if err != nil {
			return fmt.Errorf("config item_timeout: %w", err)
		}
		cfg.ItemTimeout = d
	}
	if f.Retries != nil && set("retries") {
		cfg.Retries = *f.Retries
	}
	if f.ValidateAudio != nil && set("validate") {
		cfg.ValidateAudio = *f.ValidateAudio
	}
	if f.Color != nil && set("color") {
		cfg.ColorMode = ColorMode(*f.Color)
	}
	if f.LogFile != nil && set("log") {
		cfg.LogFile = *f.LogFile
	}
	if f.FFmpeg != nil && set("ffmpeg") {
		cfg.FFmpegBin = *f.FFmpeg
	}
	if f.FFprobe != nil && set("ffprobe") {
		cfg.FFprobeBin = *f.FFprobe
	}
	return nil
}
