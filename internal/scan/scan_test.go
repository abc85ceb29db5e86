package scan

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func rels(files []InputFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = filepath.ToSlash(f.Rel)
	}
	return out
}

func TestDiscoverNonRecursive(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.mp4", "B.MP4", "notes.txt", "sub/c.mp4", "converted/old.mp4")

	files, err := Discover(root, filepath.Join(root, "converted"), false)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"B.MP4", "a.mp4"}
	if got := rels(files); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscoverRecursive(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.mp4", "notes.txt", "sub/c.mp4", "sub/deep/d.mp4", "converted/old.mp4", "converted/thumbnails/x.mp4")

	files, err := Discover(root, filepath.Join(root, "converted"), true)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.mp4", "sub/c.mp4", "sub/deep/d.mp4"}
	if got := rels(files); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscoverEmpty(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "notes.txt")

	files, err := Discover(root, filepath.Join(root, "converted"), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestDiscoverAbsolutePaths(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.mp4")

	files, err := Discover(root, filepath.Join(root, "converted"), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	if want := filepath.Join(root, "a.mp4"); files[0].Path != want {
		t.Errorf("path = %s, want %s", files[0].Path, want)
	}
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		rel    string
		suffix string
		want   string
	}{
		{"flat", "a.mp4", "", "out/a.mp4"},
		{"subdir", "sub/a.mp4", "", "out/sub/a.mp4"},
		{"suffix", "sub/a.mp4", "_small", "out/sub/a_small.mp4"},
		{"dotted stem", "a.b.mp4", "", "out/a.b.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := InputFile{Path: "/videos/" + tt.rel, Rel: filepath.FromSlash(tt.rel)}
			got, err := DeriveOutputPath(in, "out", tt.suffix)
			if err != nil {
				t.Fatal(err)
			}
			if want := filepath.FromSlash(tt.want); got != want {
				t.Errorf("got %s, want %s", got, want)
			}
		})
	}
}

func TestDeriveOutputPathEscape(t *testing.T) {
	in := InputFile{Path: "/videos/evil.mp4", Rel: filepath.Join("..", "evil.mp4")}

	var perr *PathError
	if _, err := DeriveOutputPath(in, "out", ""); !errors.As(err, &perr) {
		t.Fatalf("got %v, want PathError", err)
	}

	deep := InputFile{Path: "/videos/evil.mp4", Rel: filepath.Join("..", "..", "evil.mp4")}
	if _, err := DeriveThumbnailDir(deep, "out"); err == nil {
		t.Error("thumbnail dir derivation accepted escaping path")
	}
}

func TestDeriveThumbnailDir(t *testing.T) {
	in := InputFile{Path: "/videos/sub/a.mp4", Rel: filepath.Join("sub", "a.mp4")}
	got, err := DeriveThumbnailDir(in, "out")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("out", "thumbnails", "sub"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestStem(t *testing.T) {
	tests := []struct{ rel, want string }{
		{"a.mp4", "a"},
		{"sub/clip.mp4", "clip"},
		{"a.b.mp4", "a.b"},
	}
	for _, tt := range tests {
		in := InputFile{Rel: filepath.FromSlash(tt.rel)}
		if got := in.Stem(); got != tt.want {
			t.Errorf("Stem(%s) = %s, want %s", tt.rel, got, tt.want)
		}
	}
}
