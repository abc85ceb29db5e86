package ffmpeg

import "fmt"

// ProbeError marks a source file that could not be inspected. Per-file and
// recoverable: the batch skips the file and continues.
type ProbeError struct {
	Path string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s: %v", e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// ToolError marks a failed encode or frame-extraction invocation. Per-artifact
// and recoverable: partial output is left in place for a rerun with overwrite.
type ToolError struct {
	Op     string // "encode" or "thumbnail"
	Output string
	Err    error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Output, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }
