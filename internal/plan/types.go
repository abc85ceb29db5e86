// Package plan decides, per source file, what will be produced: the converted
// output with its target geometry, the thumbnail set with its timestamps, and
// whether the work runs, is skipped, or is only printed. Plans are built
// before any external tool is invoked and never change afterwards.
package plan

import "github.com/vidshrink/vidshrink/internal/scan"

// Action describes the per-file processing decision.
type Action int

const (
	ActionRun Action = iota
	ActionSkipExisting
	ActionDryRun
)

func (a Action) String() string {
	switch a {
	case ActionRun:
		return "run"
	case ActionSkipExisting:
		return "skip-existing"
	case ActionDryRun:
		return "dry-run"
	default:
		return "unknown"
	}
}

// Geometry is a target output resolution. Both dimensions are even, as
// required by 4:2:0 chroma subsampling.
type Geometry struct {
	Width  int
	Height int
}

// ConvertStep is the video conversion artifact of a plan.
type ConvertStep struct {
	Output string
	Target Geometry
}

// ThumbStep is one thumbnail artifact: a single frame grabbed at Timestamp
// seconds and written to Output.
type ThumbStep struct {
	Index     int
	Timestamp float64
	Output    string
}

// Plan holds everything decided for one input file. Convert is nil when
// conversion is disabled or its output already exists; Thumbs holds only the
// thumbnails that will actually be produced.
type Plan struct {
	Input         scan.InputFile
	Action        Action
	Convert       *ConvertStep
	Thumbs        []ThumbStep
	SkippedThumbs int
}
