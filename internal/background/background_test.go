package background

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsure_CreatesBlackImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.jpg")

	created, err := Ensure(path, 1920, 1080)
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if !created {
		t.Error("created should be true for a missing image")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
	b := img.Bounds()
	if b.Dx() != 1920 || b.Dy() != 1080 {
		t.Errorf("size = %dx%d, want 1920x1080", b.Dx(), b.Dy())
	}
	for _, pt := range []image.Point{{0, 0}, {960, 540}, {1919, 1079}} {
		r, g, bl, _ := img.At(pt.X, pt.Y).RGBA()
		// JPEG is lossy; allow a little noise around pure black.
		if r>>8 > 4 || g>>8 > 4 || bl>>8 > 4 {
			t.Errorf("pixel %v = (%d,%d,%d), want black", pt, r>>8, g>>8, bl>>8)
		}
	}
}

func TestEnsure_LeavesExistingUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.jpg")
	original := []byte("user supplied, not even a real jpeg")
	if err := os.WriteFile(path, original, 0o644); err != nil {
		t.Fatal(err)
	}

	created, err := Ensure(path, 1920, 1080)
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if created {
		t.Error("created should be false for an existing image")
	}
	got, _ := os.ReadFile(path)
	if !bytes.Equal(got, original) {
		t.Error("existing background was modified")
	}
}

func TestEnsure_CreatesParentAndPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art", "bg.png")
	created, err := Ensure(path, 64, 36)
	if err != nil || !created {
		t.Fatalf("Ensure = (%v, %v)", created, err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" || cfg.Width != 64 || cfg.Height != 36 {
		t.Errorf("got %s %dx%d", format, cfg.Width, cfg.Height)
	}
}

func TestEnsure_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Ensure(dir, 1920, 1080); err == nil {
		t.Error("directory path should fail")
	}
	if _, err := Ensure(filepath.Join(dir, "bg.jpg"), 0, 1080); err == nil {
		t.Error("zero width should fail")
	}
}
