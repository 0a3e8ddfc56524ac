// Package audioenergy finds high-energy moments in a decoded waveform by
// thresholding a normalized short-time RMS envelope.
package audioenergy

import "math"

// Framing parameters for the short-time RMS pass.
const (
	FrameSize = 2048
	HopSize   = 512
)

// Point is one envelope frame: its start time and amplitude.
type Point struct {
	Time      float64
	Amplitude float64
}

// Envelope is the time-monotonic sequence of per-frame RMS values.
// Recomputed per call; never shared across calls.
type Envelope []Point

// ExtractEnvelope computes the raw (unnormalized) short-time RMS
// envelope of a mono signal. A nil or empty signal, or a non-positive
// sample rate, yields an empty envelope.
func ExtractEnvelope(samples []float64, sampleRate int) Envelope {
	if len(samples) == 0 || sampleRate <= 0 {
		return nil
	}
	env := make(Envelope, 0, len(samples)/HopSize+1)
	for start := 0; start < len(samples); start += HopSize {
		end := start + FrameSize
		if end > len(samples) {
			end = len(samples)
		}
		var sum float64
		for _, s := range samples[start:end] {
			sum += s * s
		}
		rms := math.Sqrt(sum / float64(end-start))
		env = append(env, Point{
			Time:      float64(start) / float64(sampleRate),
			Amplitude: sanitize(rms),
		})
	}
	return env
}

// NormalizeMax divides every amplitude by the global maximum. A silent
// signal (zero maximum) returns nil: no peaks are possible.
func (e Envelope) NormalizeMax() Envelope {
	var max float64
	for _, p := range e {
		if p.Amplitude > max {
			max = p.Amplitude
		}
	}
	if max == 0 {
		return nil
	}
	out := make(Envelope, len(e))
	for i, p := range e {
		out[i] = Point{Time: p.Time, Amplitude: sanitize(p.Amplitude / max)}
	}
	return out
}

// NormalizeMinMax rescales amplitudes to [0..1] with a small epsilon so
// a flat signal divides cleanly instead of by zero.
func (e Envelope) NormalizeMinMax() Envelope {
	if len(e) == 0 {
		return nil
	}
	min, max := e[0].Amplitude, e[0].Amplitude
	for _, p := range e[1:] {
		if p.Amplitude < min {
			min = p.Amplitude
		}
		if p.Amplitude > max {
			max = p.Amplitude
		}
	}
	const eps = 1e-10
	span := max - min + eps
	out := make(Envelope, len(e))
	for i, p := range e {
		out[i] = Point{Time: p.Time, Amplitude: sanitize((p.Amplitude - min) / span)}
	}
	return out
}

// sanitize guards per-frame numeric anomalies: NaN and infinities become
// zero rather than propagating into threshold comparisons.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
