package ffmpeg

import (
	"context"

	"github.com/vidshrink/vidshrink/internal/plan"
)

// Encode converts one video to the target geometry with the configured
// codec pair.
func (e *Executor) Encode(ctx context.Context, input, output string, target plan.Geometry, overwrite bool) error {
	e.logger.Info().
		Str("input", input).
		Str("output", output).
		Int("width", target.Width).
		Int("height", target.Height).
		Msg("encoding")

	if err := e.run(ctx, EncodeArgs(input, output, target, e.enc, overwrite)); err != nil {
		return &ToolError{Op: "encode", Output: output, Err: err}
	}

	e.logger.Debug().Str("output", output).Msg("encode complete")
	return nil
}

// ExtractFrame grabs a single frame at timestamp seconds and writes it as a
// JPEG to output.
func (e *Executor) ExtractFrame(ctx context.Context, input, output string, timestamp float64, overwrite bool) error {
	e.logger.Debug().
		Str("input", input).
		Str("output", output).
		Float64("timestamp", timestamp).
		Msg("extracting frame")

	if err := e.run(ctx, FrameArgs(input, output, timestamp, overwrite)); err != nil {
		return &ToolError{Op: "thumbnail", Output: output, Err: err}
	}
	return nil
}
