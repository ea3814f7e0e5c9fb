// Package ffmpeg builds and executes ffmpeg commands for the two batch
// transforms: the still-image video encode used by convert, and the PCM
// decode/MP3 export pair used by merge.
//
// Builders return the full argv (binary first) so tests can assert on the
// exact command line. [Runner] executes an argv with stderr captured for
// failure classification; [Encoder] wraps both for the convert pipeline.
package ffmpeg
