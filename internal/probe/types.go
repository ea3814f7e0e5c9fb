package probe

import "time"

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename   string
	NbStreams  int
	FormatName string
	Duration   float64 // Seconds.
	Size       int64
	BitRate    int64
	Tags       map[string]string
}

// AudioStream holds the parsed properties of a single audio stream.
type AudioStream struct {
	Index         int
	Codec         string
	Channels      int
	ChannelLayout string
	SampleRate    int
	BitRate       int64
	Duration      float64
}

// ProbeResult is the fully parsed output of a single ffprobe JSON call.
// HasCoverArt is set when an attached picture (ID3 APIC) is present.
type ProbeResult struct {
	Format       FormatInfo
	AudioStreams []AudioStream
	HasCoverArt  bool
}

// HasAudio reports whether at least one audio stream was found.
func (p *ProbeResult) HasAudio() bool { return len(p.AudioStreams) > 0 }

// Duration returns the container duration, falling back to the first
// audio stream's duration when the format value is missing.
func (p *ProbeResult) Duration() time.Duration {
	secs := p.Format.Duration
	if secs <= 0 && len(p.AudioStreams) > 0 {
		secs = p.AudioStreams[0].Duration
	}
	return time.Duration(secs * float64(time.Second))
}

// Title returns the ID3 title tag when present.
func (p *ProbeResult) Title() string {
	for k, v := range p.Format.Tags {
		if k == "title" || k == "TITLE" {
			return v
		}
	}
	return ""
}
