// Package pipeline orchestrates file discovery, per-file planning and
// execution, and batch summary reporting.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/vidshrink/vidshrink/internal/config"
	"github.com/vidshrink/vidshrink/internal/ffmpeg"
	"github.com/vidshrink/vidshrink/internal/plan"
	"github.com/vidshrink/vidshrink/internal/scan"
	"github.com/vidshrink/vidshrink/pkg/util"
)

// Media is the external tool capability the runner drives. The real
// implementation is *ffmpeg.Executor; tests substitute a fake so no
// subprocess ever runs.
type Media interface {
	ProbeVideo(ctx context.Context, path string) (*ffmpeg.VideoInfo, error)
	Encode(ctx context.Context, input, output string, target plan.Geometry, overwrite bool) error
	ExtractFrame(ctx context.Context, input, output string, timestamp float64, overwrite bool) error
}

// Runner processes a batch sequentially, one file at a time, in the
// deterministic order produced by discovery. Per-file failures are recorded
// and never interrupt sibling files.
type Runner struct {
	opts   *config.Options
	enc    config.Encode
	media  Media
	logger zerolog.Logger

	// Out receives dry-run command lines. Defaults to os.Stdout.
	Out io.Writer
}

// New creates a batch runner.
func New(opts *config.Options, enc config.Encode, media Media, logger zerolog.Logger) *Runner {
	return &Runner{
		opts:   opts,
		enc:    enc,
		media:  media,
		logger: logger.With().Str("component", "pipeline").Logger(),
		Out:    os.Stdout,
	}
}

// Run is the top-level batch entry point. It discovers files, processes each
// sequentially, and returns aggregate stats. A completed batch is a success
// even when individual files failed; the error return covers only failures
// before any file was processed.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	files, err := scan.Discover(r.opts.Root, r.opts.OutputDir, r.opts.Recursive)
	if err != nil {
		return stats, fmt.Errorf("discovering input files: %w", err)
	}

	stats.Found = len(files)
	if stats.Found == 0 {
		r.logger.Info().Str("root", r.opts.Root).Msg("no .mp4 files found")
		return stats, nil
	}

	r.logBatchHeader(stats.Found)

	var bar *progressbar.ProgressBar
	if !r.opts.DryRun {
		bar = progressbar.Default(int64(stats.Found), "processing")
	}

	for i, f := range files {
		if ctx.Err() != nil {
			r.logger.Warn().Msg("interrupted")
			break
		}

		r.logger.Info().
			Int("index", i+1).
			Int("total", stats.Found).
			Str("file", f.Rel).
			Msg("processing")

		r.processFile(ctx, f, &stats)

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	r.logger.Info().
		Int("converted", stats.Converted).
		Int("thumbnails", stats.Thumbnails).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Msg("batch complete")

	return stats, nil
}

// processFile handles one video: probe, plan, execute. Every failure is
// scoped to the file (or the single artifact) it occurred on.
func (r *Runner) processFile(ctx context.Context, f scan.InputFile, stats *Stats) {
	info, err := r.media.ProbeVideo(ctx, f.Path)
	if err != nil {
		stats.Failed++
		r.logger.Error().Err(err).Str("file", f.Rel).Msg("probe failed")
		return
	}

	p, err := plan.Build(r.opts, f, info.Width, info.Height, info.Duration.Seconds())
	if err != nil {
		stats.Failed++
		r.logger.Error().Err(err).Str("file", f.Rel).Msg("planning failed")
		return
	}

	if p.Action == plan.ActionSkipExisting {
		stats.Skipped++
		r.logger.Debug().Str("file", f.Rel).Msg("output exists, skipping conversion")
	}

	if p.Convert != nil {
		r.runConvert(ctx, f, p, stats)
	}

	stats.Skipped += p.SkippedThumbs
	for _, step := range p.Thumbs {
		r.runThumb(ctx, f, step, stats)
	}
}

func (r *Runner) runConvert(ctx context.Context, f scan.InputFile, p *plan.Plan, stats *Stats) {
	step := p.Convert

	if p.Action == plan.ActionDryRun {
		args := ffmpeg.EncodeArgs(f.Path, step.Output, step.Target, r.enc, r.opts.Overwrite)
		fmt.Fprintln(r.Out, ffmpeg.CommandLine(r.enc.FFmpegPath, args))
		return
	}

	if err := util.EnsureDir(filepath.Dir(step.Output)); err != nil {
		stats.Failed++
		r.logger.Error().Err(err).Str("file", f.Rel).Msg("creating output directory failed")
		return
	}

	if err := r.media.Encode(ctx, f.Path, step.Output, step.Target, r.opts.Overwrite); err != nil {
		stats.Failed++
		r.logger.Error().Err(err).Str("file", f.Rel).Msg("conversion failed")
		return
	}
	stats.Converted++
}

func (r *Runner) runThumb(ctx context.Context, f scan.InputFile, step plan.ThumbStep, stats *Stats) {
	if r.opts.DryRun {
		args := ffmpeg.FrameArgs(f.Path, step.Output, step.Timestamp, r.opts.Overwrite)
		fmt.Fprintln(r.Out, ffmpeg.CommandLine(r.enc.FFmpegPath, args))
		return
	}

	if err := util.EnsureDir(filepath.Dir(step.Output)); err != nil {
		stats.Failed++
		r.logger.Error().Err(err).Str("file", f.Rel).Msg("creating thumbnail directory failed")
		return
	}

	if err := r.media.ExtractFrame(ctx, f.Path, step.Output, step.Timestamp, r.opts.Overwrite); err != nil {
		stats.Failed++
		r.logger.Error().Err(err).Int("thumb", step.Index).Str("file", f.Rel).Msg("thumbnail failed")
		return
	}
	stats.Thumbnails++
}

func (r *Runner) logBatchHeader(found int) {
	ev := r.logger.Info().Int("files", found)
	if r.opts.DoConversion() {
		scale := float64(100-r.opts.ReducePercent) / 100.0
		ev = ev.Float64("scale", scale).Int("smaller_percent", r.opts.ReducePercent)
	}
	if r.opts.DoThumbnails() {
		ev = ev.Int("thumbnails_per_video", r.opts.ThumbnailCount)
	}
	if r.opts.DryRun {
		ev = ev.Bool("dry_run", true)
	}
	ev.Msg("starting batch")
}
