package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/vidshrink/vidshrink/pkg/util"
)

// VideoInfo contains the source metadata the planner needs
type VideoInfo struct {
	FilePath string
	Width    int
	Height   int
	Duration time.Duration
}

// ProbeVideo extracts resolution and duration from a video file. Any failure,
// including a file with no video stream, comes back as a *ProbeError.
func (e *Executor) ProbeVideo(ctx context.Context, filePath string) (*VideoInfo, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path is required")
	}

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		filePath,
	}

	cmd := exec.CommandContext(ctx, e.ffprobePath, args...)
	output, err := cmd.Output()
	if err != nil {
		return nil, &ProbeError{Path: filePath, Err: fmt.Errorf("ffprobe failed: %w", err)}
	}

	var probe probeResult
	if err := json.Unmarshal(output, &probe); err != nil {
		return nil, &ProbeError{Path: filePath, Err: fmt.Errorf("failed to parse ffprobe output: %w", err)}
	}

	info := &VideoInfo{FilePath: filePath}

	if dur, err := strconv.ParseFloat(probe.Format.Duration, 64); err == nil {
		info.Duration = time.Duration(dur * float64(time.Second))
	}

	for _, stream := range probe.Streams {
		if stream.CodecType == "video" {
			info.Width = stream.Width
			info.Height = stream.Height
			break
		}
	}

	if info.Width < 1 || info.Height < 1 {
		return nil, &ProbeError{Path: filePath, Err: fmt.Errorf("no video stream found")}
	}
	if info.Duration <= 0 {
		return nil, &ProbeError{Path: filePath, Err: fmt.Errorf("could not read duration")}
	}

	e.logger.Debug().
		Str("file", filePath).
		Int("width", info.Width).
		Int("height", info.Height).
		Str("duration", util.FormatDuration(info.Duration)).
		Msg("probed video")

	return info, nil
}

// probeResult matches ffprobe JSON output structure
type probeResult struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}
