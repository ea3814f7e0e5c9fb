// Package check provides system diagnostics (the check command) and
// pre-run dependency validation (CheckDeps) for ffmpeg, ffprobe and the
// libx264, aac and libmp3lame encoders.
package check

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/backmassage/audiobatch/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool or encoder is missing.
var (
	ErrFfmpegNotFound   = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound  = errors.New("ffprobe not found on PATH")
	ErrEncodeTestFailed = errors.New("test encode failed")
)

// Encoders used by the two pipelines.
const (
	EncoderX264 = "libx264"
	EncoderAAC  = "aac"
	EncoderMP3  = "libmp3lame"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck prints availability of ffmpeg and ffprobe and runs a short test
// encode with every encoder audiobatch uses. It returns false when anything
// required is missing.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkBinary(cfg.FFmpegBin, "ffmpeg", log)
	ok = checkBinary(cfg.FFprobeBin, "ffprobe", log) && ok
	if !ok {
		return false
	}
	for _, enc := range []string{EncoderX264, EncoderAAC, EncoderMP3} {
		log.Info("Testing %s encoder...", enc)
		if testEncode(cfg.FFmpegBin, enc) {
			log.Success("%s works", enc)
		} else {
			log.Error("%s test encode failed", enc)
			ok = false
		}
	}
	return ok
}

// checkBinary verifies bin is runnable and logs its version line.
func checkBinary(bin, label string, log Logger) bool {
	if _, err := exec.LookPath(bin); err != nil {
		log.Error("%s not found (%s)", label, bin)
		return false
	}
	out, err := exec.Command(bin, "-version").Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", label, err)
		return true
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", label, firstLine)
	return true
}

// CheckDeps is the pre-run validation: ffmpeg must be on PATH, ffprobe
// too when needProbe is set, and each listed encoder must pass a tiny test
// encode. Returns a sentinel error (wrapped with the encoder name) on
// failure.
func CheckDeps(cfg *config.Config, needProbe bool, encoders ...string) error {
	if _, err := exec.LookPath(cfg.FFmpegBin); err != nil {
		return ErrFfmpegNotFound
	}
	if needProbe {
		if _, err := exec.LookPath(cfg.FFprobeBin); err != nil {
			return ErrFfprobeNotFound
		}
	}
	for _, enc := range encoders {
		if !testEncode(cfg.FFmpegBin, enc) {
			return fmt.Errorf("%s: %w", enc, ErrEncodeTestFailed)
		}
	}
	return nil
}

// testArgs returns the ffmpeg arguments for a minimal encode with enc.
// Video encoders get a synthetic black frame, audio encoders a short tone.
func testArgs(enc string) []string {
	args := []string{"-hide_banner", "-nostdin", "-loglevel", "error"}
	if enc == EncoderX264 {
		args = append(args,
			"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
			"-c:v", enc, "-pix_fmt", "yuv420p")
	} else {
		args = append(args,
			"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
			"-c:a", enc)
	}
	return append(args, "-f", "null", "-")
}

func testEncode(ffmpegBin, enc string) bool {
	return runSilent(ffmpegBin, testArgs(enc)...)
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
