package scan

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PathError reports an output path that could not be derived safely.
type PathError struct {
	Input  string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("bad output path for %s: %s", e.Input, e.Reason)
}

// Stem returns the input's filename without its extension.
func (in InputFile) Stem() string {
	base := filepath.Base(in.Rel)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DeriveOutputPath maps an input to its converted destination:
// outputDir/<rel dir>/<stem><suffix><ext>. The input's directory structure
// relative to the scan root is mirrored under outputDir.
func DeriveOutputPath(in InputFile, outputDir, suffix string) (string, error) {
	name := in.Stem() + suffix + filepath.Ext(in.Rel)
	out := filepath.Join(outputDir, filepath.Dir(in.Rel), name)
	if !isWithin(outputDir, out) {
		return "", &PathError{Input: in.Path, Reason: "escapes output directory"}
	}
	return out, nil
}

// DeriveThumbnailDir maps an input to the directory its thumbnails land in:
// outputDir/thumbnails/<rel dir>. Thumbnails live in their own subtree so
// they never collide with converted files.
func DeriveThumbnailDir(in InputFile, outputDir string) (string, error) {
	dir := filepath.Join(outputDir, "thumbnails", filepath.Dir(in.Rel))
	if !isWithin(outputDir, dir) {
		return "", &PathError{Input: in.Path, Reason: "escapes output directory"}
	}
	return dir, nil
}
