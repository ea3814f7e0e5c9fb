package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestValidate_Order(t *testing.T) {
	tests := []struct {
		name    string
		order   SortOrder
		wantErr bool
	}{
		{"empty prompts", "", false},
		{"asc is valid", SortAscending, false},
		{"desc is valid", SortDescending, false},
		{"unknown is invalid", "random", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Order = tt.order
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Mode(t *testing.T) {
	tests := []struct {
		name    string
		mode    SelectMode
		wantErr bool
	}{
		{"empty prompts", "", false},
		{"folder", SelectFolder, false},
		{"files", SelectMultiple, false},
		{"file", SelectSingle, false},
		{"unknown", "dir", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative timeout", func(c *Config) { c.ItemTimeout = -time.Second }},
		{"negative retries", func(c *Config) { c.Retries = -1 }},
		{"empty ffmpeg", func(c *Config) { c.FFmpegBin = " " }},
		{"bad color", func(c *Config) { c.ColorMode = "sometimes" }},
		{"bad bitrate", func(c *Config) { c.AudioBitrate = "fast" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestValidate_NormalizesBitrate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"192", "192k"},
		{"192K", "192k"},
		{"320kbps", "320k"},
		{" 128k ", "128k"},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.AudioBitrate = tt.in
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate(%q): %v", tt.in, err)
		}
		if cfg.AudioBitrate != tt.want {
			t.Errorf("AudioBitrate %q -> %q, want %q", tt.in, cfg.AudioBitrate, tt.want)
		}
	}
}

func TestParseOrderChoice(t *testing.T) {
	tests := []struct {
		answer string
		want   SortOrder
	}{
		{"1", SortAscending},
		{"2", SortDescending},
		{" 2\n", SortDescending},
		{"", SortAscending},
		{"3", SortAscending},
		{"desc", SortAscending},
	}
	for _, tt := range tests {
		if got := ParseOrderChoice(tt.answer); got != tt.want {
			t.Errorf("ParseOrderChoice(%q) = %q, want %q", tt.answer, got, tt.want)
		}
	}
}

func TestParseModeChoice(t *testing.T) {
	tests := []struct {
		answer string
		want   SelectMode
		ok     bool
	}{
		{"1", SelectFolder, true},
		{"2", SelectMultiple, true},
		{"3\n", SelectSingle, true},
		{"4", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseModeChoice(tt.answer)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseModeChoice(%q) = (%q, %v), want (%q, %v)", tt.answer, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Workers != 1 {
		t.Errorf("default Workers = %d, want 1", cfg.Workers)
	}
	if cfg.ItemTimeout != 0 {
		t.Errorf("default ItemTimeout = %v, want 0", cfg.ItemTimeout)
	}
	if cfg.Retries != 0 {
		t.Errorf("default Retries = %d, want 0", cfg.Retries)
	}
	if cfg.AudioBitrate != "192k" {
		t.Errorf("default AudioBitrate = %q, want 192k", cfg.AudioBitrate)
	}
	if cfg.BackgroundWidth != 1920 || cfg.BackgroundHeight != 1080 {
		t.Errorf("default background = %dx%d, want 1920x1080", cfg.BackgroundWidth, cfg.BackgroundHeight)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	f, ok, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil || ok || f != nil {
		t.Errorf("LoadFile(missing) = (%v, %v, %v), want (nil, false, nil)", f, ok, err)
	}
}

func TestLoadFile_ApplyRespectsFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	body := `
workers = 4
item_timeout = "90s"
audio_bitrate = "256k"
color = "never"
validate_audio = true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	f, ok, err := LoadFile(path)
	if err != nil || !ok {
		t.Fatalf("LoadFile: ok=%v err=%v", ok, err)
	}

	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindGlobalFlags(fs, &cfg)
	BindConvertFlags(fs, &cfg)
	if err := fs.Parse([]string{"--workers", "2"}); err != nil {
		t.Fatal(err)
	}

	changed := func(name string) bool {
		fl := fs.Lookup(name)
		return fl != nil && fl.Changed
	}
	if err := f.Apply(&cfg, changed); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2 (flag wins over file)", cfg.Workers)
	}
	if cfg.ItemTimeout != 90*time.Second {
		t.Errorf("ItemTimeout = %v, want 90s", cfg.ItemTimeout)
	}
	if cfg.AudioBitrate != "256k" {
		t.Errorf("AudioBitrate = %q, want 256k", cfg.AudioBitrate)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}
	if !cfg.ValidateAudio {
		t.Error("ValidateAudio should be true from file")
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("wokers = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadFile(path); err == nil {
		t.Error("LoadFile should reject unknown keys")
	}
}

func TestApply_BadDuration(t *testing.T) {
	s := "soon"
	f := &File{ItemTimeout: &s}
	cfg := DefaultConfig()
	if err := f.Apply(&cfg, nil); err == nil {
		t.Error("Apply should reject an unparseable item_timeout")
	}
}
