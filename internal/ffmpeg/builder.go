package ffmpeg

import (
	"strconv"

	"github.com/backmassage/audiobatch/internal/config"
)

// preamble is shared by every invocation: no banner, never read the
// terminal, errors only (info when verbose).
func preamble(cfg *config.Config) []string {
	level := "error"
	if cfg.Verbose {
		level = "info"
	}
	return []string{cfg.FFmpegBin, "-hide_banner", "-nostdin", "-loglevel", level}
}

// BuildConvert constructs the argv that renders one audio file over a
// looped still image:
//
//	ffmpeg … -y -loop 1 -i <image> -i <audio> -c:v libx264 -tune stillimage
//	       -c:a aac -b:a 192k -pix_fmt yuv420p -shortest -fflags +shortest
//	       -max_interleave_delta 100M <output>
//
// The image stream is infinite, so -shortest makes the audio length the
// output length.
func BuildConvert(cfg *config.Config, image, audio, output string) []string {
	args := make([]string, 0, 32)
	args = append(args, preamble(cfg)...)
	args = append(args, "-y")

	// --- Inputs ---
	args = append(args, "-loop", "1", "-i", image, "-i", audio)

	// --- Codecs ---
	args = append(args,
		"-c:v", cfg.VideoCodec,
		"-tune", cfg.VideoTune,
		"-c:a", cfg.AudioCodec,
		"-b:a", cfg.AudioBitrate,
		"-pix_fmt", cfg.PixFmt,
	)

	// --- Duration and interleave ---
	args = append(args,
		"-shortest",
		"-fflags", "+shortest",
		"-max_interleave_delta", cfg.MaxInterleave,
	)

	return append(args, output)
}

// BuildDecode constructs the argv that decodes path to raw interleaved
// signed 16-bit little-endian PCM on stdout, resampled to the canonical
// merge layout.
func BuildDecode(cfg *config.Config, path string) []string {
	args := preamble(cfg)
	return append(args,
		"-i", path,
		"-vn",
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(cfg.MergeSampleRate),
		"-ac", strconv.Itoa(cfg.MergeChannels),
		"pipe:1",
	)
}

// BuildExport constructs the argv that reads raw PCM in the given layout
// from stdin and writes an MP3 to output.
func BuildExport(cfg *config.Config, sampleRate, channels int, output string) []string {
	args := preamble(cfg)
	return append(args,
		"-y",
		"-f", "s16le",
		"-ar", strconv.Itoa(sampleRate),
		"-ac", strconv.Itoa(channels),
		"-i", "pipe:0",
		"-c:a", cfg.MergeCodec,
		"-b:a", cfg.MergeBitrate,
		"-f", "mp3",
		output,
	)
}
