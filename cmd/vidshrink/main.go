package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vidshrink/vidshrink/internal/config"
	"github.com/vidshrink/vidshrink/internal/ffmpeg"
	"github.com/vidshrink/vidshrink/internal/logging"
	"github.com/vidshrink/vidshrink/internal/pipeline"
)

var (
	cfgFile string
	verbose bool

	opts         config.Options
	crf          int
	preset       string
	audioBitrate string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(2)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vidshrink <input-dir>",
	Short: "vidshrink - batch-convert MP4 videos to smaller versions",
	Long: "Batch-convert MP4 files under a folder to reduced-dimension versions " +
		"preserving aspect ratio and directory structure, optionally extracting " +
		"evenly spaced thumbnail JPGs per video.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(verbose)
		opts.Verbose = verbose

		root, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		opts.Root = root

		if opts.OutputDir == "" {
			opts.OutputDir = filepath.Join(root, "converted")
		} else if opts.OutputDir, err = filepath.Abs(opts.OutputDir); err != nil {
			return err
		}

		enc, err := config.LoadEncode(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("crf") {
			enc.CRF = crf
		}
		if cmd.Flags().Changed("preset") {
			enc.Preset = preset
		}
		if cmd.Flags().Changed("audio-bitrate") {
			enc.AudioBitrate = audioBitrate
		}

		if err := opts.Validate(); err != nil {
			return err
		}
		if err := enc.Validate(); err != nil {
			return err
		}

		exec, err := ffmpeg.New(log.Logger, *enc)
		if err != nil {
			return err
		}

		runner := pipeline.New(&opts, *enc, exec, log.Logger)

		// Per-file failures are reported in the summary; only errors before
		// any file is processed make the run itself fail.
		_, err = runner.Run(cmd.Context())
		if err != nil {
			log.Error().Err(err).Msg("batch failed")
		}
		return err
	},
}

func init() {
	rootCmd.Flags().IntVar(&opts.ReducePercent, "smaller", 50, "how much to reduce width/height by percent (1-99)")
	rootCmd.Flags().BoolVar(&opts.Recursive, "recursive", false, "include MP4 files in subfolders")
	rootCmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "where converted files go (default: <input-dir>/converted)")
	rootCmd.Flags().StringVar(&opts.Suffix, "suffix", "", "suffix added to output filenames")
	rootCmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "overwrite output files if they already exist")
	rootCmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print planned commands without running ffmpeg")
	rootCmd.Flags().BoolVar(&opts.Thumbnails, "thumbnails", false, "also extract thumbnail JPGs per video")
	rootCmd.Flags().BoolVar(&opts.ThumbnailsOnly, "thumbnails-only", false, "extract thumbnails only, skip conversion")
	rootCmd.Flags().IntVar(&opts.ThumbnailCount, "thumbnail-count", 10, "number of evenly spaced thumbnails per video")

	rootCmd.Flags().IntVar(&crf, "crf", config.DefaultCRF, "x264 quality, lower is higher quality")
	rootCmd.Flags().StringVar(&preset, "preset", config.DefaultPreset, "x264 speed/efficiency preset")
	rootCmd.Flags().StringVar(&audioBitrate, "audio-bitrate", config.DefaultAudioBitrate, "audio bitrate for AAC output")

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "encoder settings file (default: ./vidshrink.yaml)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
