// Package scan discovers source videos under a root directory and derives
// the mirrored output paths for their artifacts.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// videoExt is the only container handled; matching is case-insensitive.
const videoExt = ".mp4"

// InputFile is one discovered source video. Rel is the path relative to the
// scan root and drives the mirrored directory layout of every output.
type InputFile struct {
	Path string
	Rel  string
}

// Discover collects .mp4 files under root, non-recursively unless recursive
// is set. Files already inside outputDir are excluded so reruns never pick up
// previous outputs. Results are sorted by relative path for deterministic
// batch order.
func Discover(root, outputDir string, recursive bool) ([]InputFile, error) {
	var files []InputFile

	add := func(path string) error {
		if isWithin(outputDir, path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, InputFile{Path: path, Rel: rel})
		return nil
	}

	if recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if isWithin(outputDir, path) && path != root {
					return filepath.SkipDir
				}
				return nil
			}
			if !matchesExt(path) {
				return nil
			}
			return add(path)
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !matchesExt(e.Name()) {
				continue
			}
			if err := add(filepath.Join(root, e.Name())); err != nil {
				return nil, err
			}
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Rel < files[j].Rel })
	return files, nil
}

func matchesExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), videoExt)
}

// isWithin reports whether path is base or lies under base.
func isWithin(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
