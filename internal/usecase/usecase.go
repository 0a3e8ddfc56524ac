package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/mzakyi/viral-clip-generator/internal/domain/audioenergy"
	"github.com/mzakyi/viral-clip-generator/internal/domain/moments"
	"github.com/mzakyi/viral-clip-generator/internal/domain/report"
	"github.com/mzakyi/viral-clip-generator/internal/ports"
	"github.com/mzakyi/viral-clip-generator/internal/types"
)

type Deps struct {
	Video    ports.VideoTool
	Captions ports.CaptionSource
	Audio    ports.AudioDecoder
	Log      zerolog.Logger
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	Input    string
	TopN     int
	MinClip  time.Duration
	MaxClip  time.Duration
	Detector *moments.Detector
	Energy   audioenergy.Config

	CacheDir    string
	OutDir      string
	RenderClips bool
}

type Result struct {
	Manifest types.Manifest
	Report   string
}

// Run analyzes the input with the linguistic path when captions exist
// and falls back to audio energy otherwise. Analysis failures degrade
// to an empty moment list with a logged diagnostic; only infrastructure
// errors (rendering, unreadable caption files) surface to the caller.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	det := in.Detector
	if det == nil {
		det = moments.NewDetector()
	}

	var (
		found  []types.Moment
		source types.Source
	)

	tr, err := u.d.Captions.Fetch(ctx, in.Input)
	switch {
	case errors.Is(err, ports.ErrNoCaptions) || (err == nil && len(tr.Segments) == 0):
		u.d.Log.Info().Str("input", in.Input).Msg("no transcript available, falling back to audio energy")
		found = u.audioMoments(ctx, in)
		source = types.SourceAudioEnergy
	case err != nil:
		return Result{}, fmt.Errorf("fetch captions: %w", err)
	default:
		u.d.Log.Info().Int("segments", len(tr.Segments)).Msg("analyzing transcript")
		all := det.Analyze(tr)
		found = moments.TopMoments(all, in.TopN, in.MinClip.Seconds(), in.MaxClip.Seconds())
		source = types.SourceLinguistic
	}

	m := types.Manifest{Input: in.Input, Source: source, Moments: found}

	if in.RenderClips {
		for i, mom := range found {
			id := fmt.Sprintf("%03d", i+1)
			clipPath := filepath.Join(in.OutDir, "clips", id+".mp4")
			start := secToDur(mom.Start)
			end := secToDur(mom.End)
			if err := u.d.Video.RenderClip(ctx, in.Input, start, end, clipPath); err != nil {
				return Result{}, fmt.Errorf("render clip %s: %w", id, err)
			}
			m.Clips = append(m.Clips, types.ManifestClip{
				ID:       id,
				StartSec: mom.Start,
				EndSec:   mom.End,
				Score:    mom.Score,
				Reasons:  mom.Reasons,
				Text:     mom.Text,
				File:     filepath.ToSlash(filepath.Join("clips", id+".mp4")),
			})
		}
	}

	return Result{Manifest: m, Report: report.GenerateReport(found)}, nil
}

// audioMoments runs the acoustic path. Extraction or decode failures
// yield no moments rather than an error: "nothing found" is a
// legitimate outcome the caller already handles.
func (u Usecase) audioMoments(ctx context.Context, in Input) []types.Moment {
	wav := filepath.Join(in.CacheDir, "audio.wav")
	if err := u.d.Video.ExtractAudioMono16k(ctx, in.Input, wav); err != nil {
		u.d.Log.Warn().Err(err).Msg("audio extraction failed, no moments detected")
		return nil
	}

	w, err := u.d.Audio.Decode(ctx, wav)
	if err != nil {
		u.d.Log.Warn().Err(err).Msg("audio decode failed, no moments detected")
		return nil
	}

	found := audioenergy.Detect(w, in.Energy)
	if in.TopN >= 0 && len(found) > in.TopN {
		found = found[:in.TopN]
	}
	return found
}

func secToDur(sec float64) time.Duration { return time.Duration(sec * float64(time.Second)) }
