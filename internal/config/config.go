package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default encoding settings
const (
	DefaultCRF          = 23
	DefaultPreset       = "medium"
	DefaultVideoCodec   = "libx264"
	DefaultAudioCodec   = "aac"
	DefaultAudioBitrate = "128k"
)

// Presets lists the x264 speed/efficiency presets accepted by --preset.
var Presets = []string{
	"ultrafast", "superfast", "veryfast", "faster", "fast",
	"medium", "slow", "slower", "veryslow",
}

// Options holds the per-run settings. Constructed once at startup from the
// command line and never mutated afterwards.
type Options struct {
	Root           string
	OutputDir      string
	Suffix         string
	Recursive      bool
	Overwrite      bool
	DryRun         bool
	Thumbnails     bool
	ThumbnailsOnly bool
	ThumbnailCount int
	ReducePercent  int
	Verbose        bool
}

// DoThumbnails reports whether thumbnail extraction is enabled.
func (o *Options) DoThumbnails() bool {
	return o.Thumbnails || o.ThumbnailsOnly
}

// DoConversion reports whether video conversion is enabled.
func (o *Options) DoConversion() bool {
	return !o.ThumbnailsOnly
}

// Validate checks the run options before any file is touched. Errors here are
// configuration errors and abort the whole run.
func (o *Options) Validate() error {
	fi, err := os.Stat(o.Root)
	if err != nil {
		return fmt.Errorf("input directory does not exist: %s", o.Root)
	}
	if !fi.IsDir() {
		return fmt.Errorf("input path is not a directory: %s", o.Root)
	}
	if o.DoConversion() && (o.ReducePercent < 1 || o.ReducePercent > 99) {
		return fmt.Errorf("--smaller must be between 1 and 99, got %d", o.ReducePercent)
	}
	if o.DoThumbnails() && o.ThumbnailCount < 1 {
		return fmt.Errorf("--thumbnail-count must be at least 1, got %d", o.ThumbnailCount)
	}
	return nil
}

// Encode holds the encoder settings that do not vary per file. Values come
// from the optional config file, overridden by flags.
type Encode struct {
	FFmpegPath   string `yaml:"ffmpeg_path"`
	FFprobePath  string `yaml:"ffprobe_path"`
	VideoCodec   string `yaml:"video_codec"`
	AudioCodec   string `yaml:"audio_codec"`
	CRF          int    `yaml:"crf"`
	Preset       string `yaml:"preset"`
	AudioBitrate string `yaml:"audio_bitrate"`
}

// Validate checks the encoder settings.
func (e *Encode) Validate() error {
	if e.CRF < 0 || e.CRF > 51 {
		return fmt.Errorf("--crf must be between 0 and 51, got %d", e.CRF)
	}
	for _, p := range Presets {
		if e.Preset == p {
			return nil
		}
	}
	return fmt.Errorf("unknown preset %q", e.Preset)
}

// LoadEncode reads encoder settings from file or returns defaults. A missing
// file is not an error.
func LoadEncode(path string) (*Encode, error) {
	enc := defaultEncode()

	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return enc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return enc, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, enc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return enc, nil
}

func defaultEncode() *Encode {
	return &Encode{
		FFmpegPath:   "ffmpeg",
		FFprobePath:  "ffprobe",
		VideoCodec:   DefaultVideoCodec,
		AudioCodec:   DefaultAudioCodec,
		CRF:          DefaultCRF,
		Preset:       DefaultPreset,
		AudioBitrate: DefaultAudioBitrate,
	}
}

func findConfigFile() string {
	candidates := []string{
		"./vidshrink.yaml",
		"./vidshrink.yml",
		filepath.Join(os.Getenv("HOME"), ".vidshrink", "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
