package util

import (
	"fmt"
	"time"
)

// FormatDuration converts time.Duration to ffmpeg timestamp format
func FormatDuration(d time.Duration) string {
	seconds := d.Seconds()
	hours := int(seconds / 3600)
	minutes := int((seconds - float64(hours*3600)) / 60)
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, secs)
}

// FormatSeconds renders a timestamp in plain seconds with millisecond
// precision, the form ffmpeg accepts for -ss.
func FormatSeconds(seconds float64) string {
	return fmt.Sprintf("%.3f", seconds)
}
