// Package audio holds decoded audio as raw interleaved PCM and the ffmpeg
// backed codec that decodes MP3 files into it and exports it back to MP3.
package audio

import (
	"errors"
	"fmt"
	"time"
)

// BytesPerSample is the width of one s16le sample.
const BytesPerSample = 2

// ErrLayoutMismatch is returned by Append when two segments differ in
// sample rate or channel count.
var ErrLayoutMismatch = errors.New("audio: segment layout mismatch")

// Segment is decoded signed 16-bit little-endian interleaved PCM.
type Segment struct {
	SampleRate int
	Channels   int
	PCM        []byte
}

// Empty returns a zero-length segment with the given layout, the identity
// element for Append.
func Empty(sampleRate, channels int) *Segment {
	return &Segment{SampleRate: sampleRate, Channels: channels}
}

// Frames returns the number of sample frames (one sample per channel).
func (s *Segment) Frames() int64 {
	if s.Channels <= 0 {
		return 0
	}
	return int64(len(s.PCM) / (BytesPerSample * s.Channels))
}

// Duration returns the playback length.
func (s *Segment) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	return time.Duration(s.Frames()) * time.Second / time.Duration(s.SampleRate)
}

// Append concatenates other onto s in place. Both must share a layout.
func (s *Segment) Append(other *Segment) error {
	if other == nil {
		return nil
	}
	if other.SampleRate != s.SampleRate || other.Channels != s.Channels {
		return fmt.Errorf("%w: %d Hz/%d ch vs %d Hz/%d ch", ErrLayoutMismatch,
			s.SampleRate, s.Channels, other.SampleRate, other.Channels)
	}
	s.PCM = append(s.PCM, other.PCM...)
	return nil
}
