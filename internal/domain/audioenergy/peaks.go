package audioenergy

import (
	"math"
	"sort"

	"github.com/mzakyi/viral-clip-generator/internal/types"
)

// ReasonHighEnergy is the single reason tag for acoustic moments; the
// energy path has no per-dimension breakdown.
const ReasonHighEnergy = "high audio energy"

// Strategy selects how above-threshold frames are grouped into runs.
type Strategy string

const (
	// StrategyGap groups peak frames separated by less than a time gap;
	// scores are mean normalized amplitude in [0..1]. This is the
	// default production behavior.
	StrategyGap Strategy = "gap"

	// StrategyHysteresis opens a run above the threshold and keeps it
	// alive while frames stay above threshold*0.8, riding through brief
	// dips; scores are integer percent energy in [0..100].
	StrategyHysteresis Strategy = "hysteresis"
)

// Config carries the peak-grouping parameters. Zero values are replaced
// by the strategy's defaults.
type Config struct {
	Strategy    Strategy
	Threshold   float64
	MinDuration float64 // seconds
	GapSec      float64 // gap strategy only
	MaxMoments  int     // hysteresis strategy only; <=0 means default
}

// DefaultConfig returns the tuned defaults for a strategy.
func DefaultConfig(s Strategy) Config {
	switch s {
	case StrategyHysteresis:
		return Config{Strategy: s, Threshold: 0.7, MinDuration: 3, MaxMoments: 10}
	default:
		return Config{Strategy: StrategyGap, Threshold: 0.5, MinDuration: 8, GapSec: 6}
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig(c.Strategy)
	if c.Threshold <= 0 {
		c.Threshold = def.Threshold
	}
	if c.MinDuration <= 0 {
		c.MinDuration = def.MinDuration
	}
	if c.GapSec <= 0 {
		c.GapSec = def.GapSec
	}
	if c.MaxMoments <= 0 {
		c.MaxMoments = def.MaxMoments
	}
	return c
}

// Detect runs the full acoustic path on a decoded waveform: envelope
// extraction, the strategy's normalization, then peak grouping. A silent
// or empty waveform yields an empty list, never an error.
func Detect(w types.Waveform, cfg Config) []types.Moment {
	env := ExtractEnvelope(w.Samples, w.SampleRate)
	cfg = cfg.withDefaults()
	if cfg.Strategy == StrategyHysteresis {
		return FindPeaks(env.NormalizeMinMax(), cfg)
	}
	return FindPeaks(env.NormalizeMax(), cfg)
}

// FindPeaks groups above-threshold envelope frames into moments, sorted
// by score descending. The envelope must already be normalized.
func FindPeaks(env Envelope, cfg Config) []types.Moment {
	cfg = cfg.withDefaults()
	if len(env) == 0 {
		return nil
	}
	if cfg.Strategy == StrategyHysteresis {
		return hysteresisPeaks(env, cfg)
	}
	return gapPeaks(env, cfg)
}

func gapPeaks(env Envelope, cfg Config) []types.Moment {
	var peaks []Point
	for _, p := range env {
		if p.Amplitude > cfg.Threshold {
			peaks = append(peaks, p)
		}
	}
	if len(peaks) == 0 {
		return nil
	}

	var out []types.Moment
	runStart := 0
	for i := 1; i <= len(peaks); i++ {
		if i < len(peaks) && peaks[i].Time-peaks[i-1].Time <= cfg.GapSec {
			continue
		}
		run := peaks[runStart:i]
		if d := run[len(run)-1].Time - run[0].Time; d >= cfg.MinDuration {
			out = append(out, types.Moment{
				Start:   run[0].Time,
				End:     run[len(run)-1].Time,
				Score:   meanAmplitude(run),
				Reasons: []string{ReasonHighEnergy},
				Source:  types.SourceAudioEnergy,
			})
		}
		runStart = i
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func hysteresisPeaks(env Envelope, cfg Config) []types.Moment {
	lower := cfg.Threshold * 0.8

	var out []types.Moment
	for i := 0; i < len(env); {
		if env[i].Amplitude <= cfg.Threshold {
			i++
			continue
		}
		j := i + 1
		for j < len(env) && env[j].Amplitude > lower {
			j++
		}
		run := env[i:j]
		if d := run[len(run)-1].Time - run[0].Time; d >= cfg.MinDuration {
			out = append(out, types.Moment{
				Start:   run[0].Time,
				End:     run[len(run)-1].Time,
				Score:   math.Round(meanAmplitude(run) * 100),
				Reasons: []string{ReasonHighEnergy},
				Source:  types.SourceAudioEnergy,
			})
		}
		i = j
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > cfg.MaxMoments {
		out = out[:cfg.MaxMoments]
	}
	return out
}

func meanAmplitude(run []Point) float64 {
	var sum float64
	for _, p := range run {
		sum += p.Amplitude
	}
	return sanitize(sum / float64(len(run)))
}
