package ffmpeg

import (
	"fmt"

	"github.com/vidshrink/vidshrink/internal/config"
	"github.com/vidshrink/vidshrink/internal/plan"
	"github.com/vidshrink/vidshrink/pkg/util"
)

// EncodeArgs builds the full ffmpeg argument list for one conversion. Pure so
// dry-run rendering and tests share the exact argv the executor runs.
func EncodeArgs(input, output string, target plan.Geometry, enc config.Encode, overwrite bool) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		overwriteFlag(overwrite),
		"-i", input,
		"-vf", fmt.Sprintf("scale=%d:%d", target.Width, target.Height),
		"-c:v", enc.VideoCodec,
		"-preset", enc.Preset,
		"-crf", fmt.Sprintf("%d", enc.CRF),
		"-c:a", enc.AudioCodec,
		"-b:a", enc.AudioBitrate,
		"-movflags", "+faststart",
		output,
	}
}

// FrameArgs builds the ffmpeg argument list for grabbing a single frame at
// the given timestamp in seconds.
func FrameArgs(input, output string, timestamp float64, overwrite bool) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		overwriteFlag(overwrite),
		"-ss", util.FormatSeconds(timestamp),
		"-i", input,
		"-frames:v", "1",
		"-q:v", "2",
		output,
	}
}

func overwriteFlag(overwrite bool) string {
	if overwrite {
		return "-y"
	}
	return "-n"
}
