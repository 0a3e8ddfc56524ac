package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mzakyi/viral-clip-generator/internal/config"
	"github.com/mzakyi/viral-clip-generator/internal/domain/audioenergy"
	"github.com/mzakyi/viral-clip-generator/internal/domain/moments"
	"github.com/mzakyi/viral-clip-generator/internal/logging"
	"github.com/mzakyi/viral-clip-generator/internal/pipeline"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <input>",
		Short: "Rank viral moments in a local video or audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0])
		},
	}

	cmd.Flags().String("out", "out", "Output directory")
	cmd.Flags().String("captions", "", "Caption JSON file ({text,start,duration} records); omit to use audio energy")
	cmd.Flags().Int("top", 0, "Number of moments to keep")
	cmd.Flags().Int("min", 0, "Min moment duration seconds")
	cmd.Flags().Int("max", 0, "Max moment duration seconds")
	cmd.Flags().String("strategy", "", "Audio peak strategy: gap or hysteresis")
	cmd.Flags().Bool("render", false, "Render the ranked moments as clips with ffmpeg")

	return cmd
}

func runAnalyze(cmd *cobra.Command, input string) error {
	outDir, _ := cmd.Flags().GetString("out")
	captions, _ := cmd.Flags().GetString("captions")
	topN, _ := cmd.Flags().GetInt("top")
	minSec, _ := cmd.Flags().GetInt("min")
	maxSec, _ := cmd.Flags().GetInt("max")
	strategy, _ := cmd.Flags().GetString("strategy")
	render, _ := cmd.Flags().GetBool("render")

	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	if captions != "" {
		if captions, err = filepath.Abs(captions); err != nil {
			return err
		}
	}

	if topN <= 0 {
		topN = cfg.Detector.TopN
	}
	minClip := cfg.Detector.MinClipSec
	if minSec > 0 {
		minClip = float64(minSec)
	}
	maxClip := cfg.Detector.MaxClipSec
	if maxSec > 0 {
		maxClip = float64(maxSec)
	}
	energy := cfg.EnergyConfig()
	if strategy != "" {
		energy.Strategy = audioStrategy(strategy)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	pcfg := pipeline.Config{
		Input:        absIn,
		CaptionsPath: captions,
		OutDir:       outDir,
		TopN:         topN,
		MinClip:      time.Duration(minClip * float64(time.Second)),
		MaxClip:      time.Duration(maxClip * float64(time.Second)),
		RenderClips:  render,
		Detector: moments.NewDetector(
			moments.WithMinScore(cfg.Detector.MinViralScore),
			moments.WithMergeGap(cfg.Detector.MergeGapSec),
		),
		Energy:      energy,
		FFmpegPath:  getenvDefault("FFMPEG_PATH", "ffmpeg"),
		FFprobePath: getenvDefault("FFPROBE_PATH", "ffprobe"),
		Log:         log,
	}

	if err := pcfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return pipeline.Run(ctx, pcfg)
}

func loadConfig(cmd *cobra.Command) (config.Root, zerolog.Logger, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Root{}, zerolog.Logger{}, err
	}
	level := cfg.LogLevel
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		level = v
	}
	return cfg, logging.New(os.Stderr, level, true), nil
}

func audioStrategy(s string) audioenergy.Strategy {
	if s == string(audioenergy.StrategyHysteresis) {
		return audioenergy.StrategyHysteresis
	}
	return audioenergy.StrategyGap
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
