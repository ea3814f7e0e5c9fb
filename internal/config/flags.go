package config

// This file registers command-line flags onto a pflag set. Flags write
// straight into Config so DefaultConfig values hold unless the user passes
// the flag; the config file is applied afterwards for untouched flags.

import (
	"github.com/spf13/pflag"
)

// BindGlobalFlags registers flags shared by every command.
func BindGlobalFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.ConfigFile, "config", "c", "", "Config file path (default <base-dir>/"+ConfigFileName+")")
	fs.StringVar(&cfg.BaseDir, "base-dir", cfg.BaseDir, "Application directory holding output/ and bg.jpg (default: executable directory)")
	fs.StringVar((*string)(&cfg.ColorMode), "color", string(cfg.ColorMode), "Color output: auto | always | never")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	fs.StringVar(&cfg.FFmpegBin, "ffmpeg", cfg.FFmpegBin, "ffmpeg executable")
	fs.StringVar(&cfg.FFprobeBin, "ffprobe", cfg.FFprobeBin, "ffprobe executable")
}

// BindMergeFlags registers merge-only flags.
func BindMergeFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP((*string)(&cfg.Order), "order", "o", "", "Merge order: asc | desc (prompted when omitted)")
	fs.StringVar(&cfg.MergeBitrate, "merge-bitrate", cfg.MergeBitrate, "MP3 bitrate of the merged file")
}

// BindConvertFlags registers convert-only flags.
func BindConvertFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP((*string)(&cfg.Mode), "mode", "m", "", "Selection mode: folder | files | file (prompted when omitted)")
	fs.StringVarP(&cfg.Background, "background", "b", "", "Background image (default <base-dir>/"+BackgroundFileName+")")
	fs.StringVar(&cfg.AudioBitrate, "audio-bitrate", cfg.AudioBitrate, "AAC bitrate of converted videos")
	fs.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "Concurrent encodes")
	fs.DurationVar(&cfg.ItemTimeout, "item-timeout", 0, "Kill an encode after this long (0 = no limit)")
	fs.IntVar(&cfg.Retries, "retries", 0, "Re-attempt a failed encode this many times")
	fs.BoolVar(&cfg.ValidateAudio, "validate", false, "Probe inputs for an audio stream before encoding")
}
