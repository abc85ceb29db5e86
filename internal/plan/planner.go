package plan

import (
	"fmt"
	"path/filepath"

	"github.com/vidshrink/vidshrink/internal/config"
	"github.com/vidshrink/vidshrink/internal/scan"
	"github.com/vidshrink/vidshrink/pkg/util"
)

// Build produces the complete plan for one input file from the run options
// and the probed source metadata.
//
// Flow:
//  1. Conversion artifact: output path + target geometry, unless
//     thumbnails-only. An existing output with overwrite off drops the step
//     and marks the plan skip-existing.
//  2. Thumbnail artifacts: evenly spaced timestamps, destinations under
//     <outputDir>/thumbnails/<rel dir>. The existing/overwrite check applies
//     per thumbnail, independently of the conversion artifact.
//  3. Dry run keeps every step fully computed; nothing is dropped for
//     existing outputs since no file will be written.
func Build(opts *config.Options, in scan.InputFile, srcWidth, srcHeight int, duration float64) (*Plan, error) {
	p := &Plan{Input: in, Action: ActionRun}
	if opts.DryRun {
		p.Action = ActionDryRun
	}

	if opts.DoConversion() {
		out, err := scan.DeriveOutputPath(in, opts.OutputDir, opts.Suffix)
		if err != nil {
			return nil, err
		}
		target, err := ComputeGeometry(srcWidth, srcHeight, opts.ReducePercent)
		if err != nil {
			return nil, err
		}

		if !opts.DryRun && !opts.Overwrite && util.FileExists(out) {
			p.Action = ActionSkipExisting
		} else {
			p.Convert = &ConvertStep{Output: out, Target: target}
		}
	}

	if opts.DoThumbnails() {
		times, err := SampleTimes(duration, opts.ThumbnailCount)
		if err != nil {
			return nil, err
		}
		dir, err := scan.DeriveThumbnailDir(in, opts.OutputDir)
		if err != nil {
			return nil, err
		}

		stem := in.Stem()
		for i, ts := range times {
			out := filepath.Join(dir, fmt.Sprintf("%s_thumb_%02d.jpg", stem, i+1))
			if !opts.DryRun && !opts.Overwrite && util.FileExists(out) {
				p.SkippedThumbs++
				continue
			}
			p.Thumbs = append(p.Thumbs, ThumbStep{Index: i + 1, Timestamp: ts, Output: out})
		}
	}

	return p, nil
}
