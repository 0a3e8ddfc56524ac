package audioenergy

import (
	"math"
	"testing"
)

func TestExtractEnvelope_Empty(t *testing.T) {
	if env := ExtractEnvelope(nil, 16000); env != nil {
		t.Fatalf("expected nil envelope for empty signal, got %d points", len(env))
	}
	if env := ExtractEnvelope([]float64{0.5}, 0); env != nil {
		t.Fatalf("expected nil envelope for zero sample rate, got %d points", len(env))
	}
}

func TestExtractEnvelope_TimesMonotonic(t *testing.T) {
	samples := make([]float64, 16000) // 1s
	for i := range samples {
		samples[i] = math.Sin(float64(i) * 0.1)
	}
	env := ExtractEnvelope(samples, 16000)
	if len(env) == 0 {
		t.Fatalf("expected non-empty envelope")
	}
	for i := 1; i < len(env); i++ {
		if env[i].Time <= env[i-1].Time {
			t.Fatalf("times not strictly increasing at %d: %v then %v", i, env[i-1].Time, env[i].Time)
		}
	}
	wantPoints := (len(samples) + HopSize - 1) / HopSize
	if len(env) != wantPoints {
		t.Fatalf("got %d points, want %d", len(env), wantPoints)
	}
}

func TestNormalizeMax_SilentSignal(t *testing.T) {
	env := ExtractEnvelope(make([]float64, 48000), 16000)
	if norm := env.NormalizeMax(); norm != nil {
		t.Fatalf("expected nil for all-silent signal, got %d points", len(norm))
	}
}

func TestNormalizeMax_Range(t *testing.T) {
	samples := make([]float64, 32000)
	for i := 16000; i < 32000; i++ {
		samples[i] = 0.8
	}
	norm := ExtractEnvelope(samples, 16000).NormalizeMax()
	var max float64
	for _, p := range norm {
		if p.Amplitude < 0 || p.Amplitude > 1 {
			t.Fatalf("amplitude %v outside [0,1]", p.Amplitude)
		}
		if p.Amplitude > max {
			max = p.Amplitude
		}
	}
	if max != 1.0 {
		t.Fatalf("max normalized amplitude = %v, want 1.0", max)
	}
}

func TestNormalizeMinMax_FlatSignalDoesNotDivideByZero(t *testing.T) {
	samples := make([]float64, 16000)
	for i := range samples {
		samples[i] = 0.5
	}
	norm := ExtractEnvelope(samples, 16000).NormalizeMinMax()
	for _, p := range norm {
		if math.IsNaN(p.Amplitude) || math.IsInf(p.Amplitude, 0) {
			t.Fatalf("non-finite amplitude %v", p.Amplitude)
		}
		if p.Amplitude < 0 || p.Amplitude > 1 {
			t.Fatalf("amplitude %v outside [0,1]", p.Amplitude)
		}
	}
}
