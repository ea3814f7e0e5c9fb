package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Probe runs a single ffprobe JSON call against path using the given
// ffprobe binary and returns the parsed result.
func Probe(ctx context.Context, ffprobe, path string) (*ProbeResult, error) {
	cmd := exec.CommandContext(ctx, ffprobe,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseJSON(out)
}

// Prober binds Probe to one ffprobe binary.
type Prober struct {
	Bin string
}

// Probe runs ffprobe on path.
func (p Prober) Probe(ctx context.Context, path string) (*ProbeResult, error) {
	return Probe(ctx, p.Bin, path)
}

// ParseJSON converts raw ffprobe JSON output into a ProbeResult.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*ProbeResult, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw), nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Filename   string            `json:"filename"`
	NbStreams  int               `json:"nb_streams"`
	FormatName string            `json:"format_name"`
	Duration   string            `json:"duration"`
	Size       string            `json:"size"`
	BitRate    string            `json:"bit_rate"`
	Tags       map[string]string `json:"tags"`
}

type ffprobeStream struct {
	Index         int            `json:"index"`
	CodecName     string         `json:"codec_name"`
	CodecType     string         `json:"codec_type"`
	BitRate       string         `json:"bit_rate"`
	Channels      int            `json:"channels"`
	ChannelLayout string         `json:"channel_layout"`
	SampleRate    string         `json:"sample_rate"`
	Duration      string         `json:"duration"`
	Disposition   map[string]int `json:"disposition"`
}

// --- Conversion from wire types to domain types ---

func buildResult(raw *ffprobeOutput) *ProbeResult {
	pr := &ProbeResult{
		Format: FormatInfo{
			Filename:   raw.Format.Filename,
			NbStreams:  raw.Format.NbStreams,
			FormatName: raw.Format.FormatName,
			Duration:   parseFloat(raw.Format.Duration),
			Size:       parseInt64(raw.Format.Size),
			BitRate:    parseInt64(raw.Format.BitRate),
			Tags:       raw.Format.Tags,
		},
	}

	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "audio":
			pr.AudioStreams = append(pr.AudioStreams, AudioStream{
				Index:         s.Index,
				Codec:         s.CodecName,
				Channels:      s.Channels,
				ChannelLayout: s.ChannelLayout,
				SampleRate:    parseInt(s.SampleRate),
				BitRate:       parseInt64(s.BitRate),
				Duration:      parseFloat(s.Duration),
			})
		case "video":
			if s.Disposition["attached_pic"] == 1 {
				pr.HasCoverArt = true
			}
		}
	}
	return pr
}

// --- Numeric parsing helpers (ffprobe returns numbers as strings) ---

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
