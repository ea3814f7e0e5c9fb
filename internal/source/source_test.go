package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/audiobatch/internal/config"
)

func TestListFolder_FiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.mp3")
	touch(t, dir, "a.MP3")
	touch(t, dir, "c.Mp3")
	touch(t, dir, "cover.jpg")
	touch(t, dir, "notes.txt")
	touch(t, dir, "mix.mp3.bak")
	touch(t, dir, "track.wav")
	if err := os.Mkdir(filepath.Join(dir, "nested.mp3"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := ListFolder(dir)
	if err != nil {
		t.Fatalf("ListFolder: %v", err)
	}

	want := []string{"a.MP3", "b.mp3", "c.Mp3"}
	if got := Names(files); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, f := range files {
		if !filepath.IsAbs(f.Path) {
			t.Errorf("path not absolute: %q", f.Path)
		}
	}
}

func TestListFolder_NotRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "top.mp3")
	sub := filepath.Join(dir, "disc2")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, sub, "deep.mp3")

	files, err := ListFolder(dir)
	if err != nil {
		t.Fatalf("ListFolder: %v", err)
	}
	if len(files) != 1 || files[0].Name != "top.mp3" {
		t.Errorf("got %v, want [top.mp3]", Names(files))
	}
}

func TestListFolder_MissingIsEmpty(t *testing.T) {
	files, err := ListFolder(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("ListFolder(missing) error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestListFolder_FileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "song.mp3")
	files, err := ListFolder(filepath.Join(dir, "song.mp3"))
	if err != nil {
		t.Fatalf("ListFolder(file) error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestFromPaths_Unfiltered(t *testing.T) {
	files, err := FromPaths([]string{"/music/song.flac", "", "/music/Track 01.mp3"})
	if err != nil {
		t.Fatalf("FromPaths: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].Stem != "song" || files[0].Ext != ".flac" {
		t.Errorf("first file: %+v", files[0])
	}
	if files[1].Stem != "Track 01" || files[1].Name != "Track 01.mp3" {
		t.Errorf("second file: %+v", files[1])
	}
}

func TestSort_DescendingIsReverse(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"10 - x.mp3", "02 - b.mp3", "01 - a.mp3", "B.mp3", "a.mp3"} {
		touch(t, dir, n)
	}
	files, err := ListFolder(dir)
	if err != nil {
		t.Fatal(err)
	}

	asc := Names(Sort(files, config.SortAscending))
	desc := Names(Sort(files, config.SortDescending))
	if len(asc) != len(desc) {
		t.Fatalf("length mismatch %d vs %d", len(asc), len(desc))
	}
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("desc is not the reverse of asc:\n asc  %v\n desc %v", asc, desc)
		}
	}
	// Plain byte-wise comparison: upper case sorts before lower case.
	want := []string{"01 - a.mp3", "02 - b.mp3", "10 - x.mp3", "B.mp3", "a.mp3"}
	if strings.Join(asc, "|") != strings.Join(want, "|") {
		t.Errorf("asc = %v, want %v", asc, want)
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := []File{{Name: "b.mp3"}, {Name: "a.mp3"}}
	_ = Sort(in, config.SortAscending)
	if in[0].Name != "b.mp3" {
		t.Error("Sort mutated its input")
	}
}

func TestHasExt(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.mp3", true},
		{"a.MP3", true},
		{"a.mP3", true},
		{"a.mp4", false},
		{"mp3", false},
		{"a.mp3.part", false},
	}
	for _, tt := range tests {
		if got := HasExt(tt.name, MP3Ext); got != tt.want {
			t.Errorf("HasExt(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}
