package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/mzakyi/viral-clip-generator/internal/domain/audioenergy"
	"github.com/mzakyi/viral-clip-generator/internal/domain/moments"
	"github.com/mzakyi/viral-clip-generator/internal/ports"
	"github.com/mzakyi/viral-clip-generator/internal/ports/adapters/captionfile"
	"github.com/mzakyi/viral-clip-generator/internal/ports/adapters/ffmpeg"
	"github.com/mzakyi/viral-clip-generator/internal/ports/adapters/wavfile"
	"github.com/mzakyi/viral-clip-generator/internal/usecase"
)

type Config struct {
	Input        string `validate:"required"`
	CaptionsPath string
	OutDir       string
	TopN         int           `validate:"gt=0"`
	MinClip      time.Duration `validate:"gt=0"`
	MaxClip      time.Duration `validate:"gt=0"`
	RenderClips  bool

	Detector *moments.Detector
	Energy   audioenergy.Config

	// CacheDir is the base directory for local artifacts (extracted
	// audio, etc.). If empty, defaults to ".cache".
	CacheDir string

	FFmpegPath  string
	FFprobePath string

	Log zerolog.Logger
}

var validate = validator.New()

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if _, err := os.Stat(c.Input); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if c.MinClip > c.MaxClip {
		return fmt.Errorf("min clip must be <= max clip")
	}
	return nil
}

func Run(ctx context.Context, cfg Config) error {
	log := cfg.Log

	// adapters
	v := ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath)
	captions := captionfile.New(cfg.CaptionsPath)
	audio := wavfile.New()

	uc := usecase.New(usecase.Deps{
		Video:    v,
		Captions: captions,
		Audio:    audio,
		Log:      log,
	})

	jobID := hash(cfg.Input)
	baseCache := cfg.CacheDir
	if baseCache == "" {
		baseCache = ".cache"
	}
	cacheDir := filepath.Join(baseCache, "runs", jobID)
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return err
	}
	log.Debug().Str("cache", cacheDir).Msg("workspace prepared")

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	runOutDir := buildRunOutDir(outDir, cfg.Input, time.Now().UTC())
	if err := os.MkdirAll(runOutDir, 0o755); err != nil {
		return err
	}
	if cfg.RenderClips {
		if err := os.MkdirAll(filepath.Join(runOutDir, "clips"), 0o755); err != nil {
			return err
		}
	}
	log.Info().Str("out", runOutDir).Msg("output run dir")

	res, err := uc.Run(ctx, usecase.Input{
		Input:       cfg.Input,
		TopN:        cfg.TopN,
		MinClip:     cfg.MinClip,
		MaxClip:     cfg.MaxClip,
		Detector:    cfg.Detector,
		Energy:      cfg.Energy,
		CacheDir:    cacheDir,
		OutDir:      runOutDir,
		RenderClips: cfg.RenderClips,
	})
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(res.Manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	manifestPath := filepath.Join(runOutDir, "manifest.json")
	if err := os.WriteFile(manifestPath, b, 0o644); err != nil {
		return err
	}

	reportPath := filepath.Join(runOutDir, "report.md")
	if err := os.WriteFile(reportPath, []byte(res.Report), 0o644); err != nil {
		return err
	}

	log.Info().
		Int("moments", len(res.Manifest.Moments)).
		Str("source", string(res.Manifest.Source)).
		Str("manifest", manifestPath).
		Msg("analysis complete")
	return nil
}

func buildRunOutDir(outRoot, input string, now time.Time) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name = normalizePathSegment(name)
	if name == "" {
		name = "input"
	}
	ts := now.UTC().Format("20060102-150405Z")
	runSeed := fmt.Sprintf("%s|%d", input, now.UTC().UnixNano())
	suffix := hash(runSeed)[:6]
	return filepath.Join(outRoot, fmt.Sprintf("%s-%s-%s", name, ts, suffix))
}

func normalizePathSegment(s string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:12]
}

// ensure adapters implement ports
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
var _ ports.CaptionSource = (*captionfile.Adapter)(nil)
var _ ports.AudioDecoder = (*wavfile.Adapter)(nil)
