package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mzakyi/viral-clip-generator/internal/domain/audioenergy"
	"github.com/mzakyi/viral-clip-generator/internal/ports"
	"github.com/mzakyi/viral-clip-generator/internal/types"
)

func TestRun_LinguisticPath(t *testing.T) {
	t.Parallel()

	uc := New(Deps{
		Video:    &fakeVideoTool{},
		Captions: fakeCaptions{tr: viralTranscript()},
		Audio:    fakeDecoder{},
		Log:      zerolog.Nop(),
	})

	res, err := uc.Run(context.Background(), Input{
		Input:   "in.mp4",
		TopN:    5,
		MinClip: 1 * time.Second,
		MaxClip: 60 * time.Second,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Manifest.Source != types.SourceLinguistic {
		t.Fatalf("source = %q, want linguistic", res.Manifest.Source)
	}
	if len(res.Manifest.Moments) == 0 {
		t.Fatalf("expected linguistic moments")
	}
	if res.Report == "" {
		t.Fatalf("expected a rendered report")
	}
}

func TestRun_FallsBackToAudioEnergy(t *testing.T) {
	t.Parallel()

	video := &fakeVideoTool{}
	uc := New(Deps{
		Video:    video,
		Captions: fakeCaptions{err: ports.ErrNoCaptions},
		Audio:    fakeDecoder{w: burstWaveform()},
		Log:      zerolog.Nop(),
	})

	res, err := uc.Run(context.Background(), Input{
		Input:    "in.mp4",
		TopN:     5,
		MinClip:  1 * time.Second,
		MaxClip:  60 * time.Second,
		Energy:   audioenergy.DefaultConfig(audioenergy.StrategyGap),
		CacheDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Manifest.Source != types.SourceAudioEnergy {
		t.Fatalf("source = %q, want audio_energy", res.Manifest.Source)
	}
	if video.extractCalls != 1 {
		t.Fatalf("expected one audio extraction, got %d", video.extractCalls)
	}
	if len(res.Manifest.Moments) != 1 {
		t.Fatalf("expected one burst moment, got %d", len(res.Manifest.Moments))
	}
}

func TestRun_EmptyTranscriptTriggersFallback(t *testing.T) {
	t.Parallel()

	video := &fakeVideoTool{}
	uc := New(Deps{
		Video:    video,
		Captions: fakeCaptions{tr: types.Transcript{}},
		Audio:    fakeDecoder{w: burstWaveform()},
		Log:      zerolog.Nop(),
	})

	res, err := uc.Run(context.Background(), Input{
		Input:    "in.mp4",
		TopN:     5,
		MinClip:  1 * time.Second,
		MaxClip:  60 * time.Second,
		CacheDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Manifest.Source != types.SourceAudioEnergy {
		t.Fatalf("source = %q, want audio_energy fallback", res.Manifest.Source)
	}
	if video.extractCalls != 1 {
		t.Fatalf("expected audio extraction on empty transcript")
	}
}

func TestRun_DecodeFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()

	uc := New(Deps{
		Video:    &fakeVideoTool{},
		Captions: fakeCaptions{err: ports.ErrNoCaptions},
		Audio:    fakeDecoder{err: ports.ErrDecode},
		Log:      zerolog.Nop(),
	})

	res, err := uc.Run(context.Background(), Input{
		Input:    "in.mp4",
		TopN:     5,
		MinClip:  1 * time.Second,
		MaxClip:  60 * time.Second,
		CacheDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("decode failure must not surface as an error, got %v", err)
	}
	if len(res.Manifest.Moments) != 0 {
		t.Fatalf("expected no moments after decode failure, got %d", len(res.Manifest.Moments))
	}
}

func TestRun_CaptionInfrastructureErrorSurfaces(t *testing.T) {
	t.Parallel()

	uc := New(Deps{
		Video:    &fakeVideoTool{},
		Captions: fakeCaptions{err: errors.New("corrupt captions file")},
		Audio:    fakeDecoder{},
		Log:      zerolog.Nop(),
	})

	_, err := uc.Run(context.Background(), Input{
		Input:   "in.mp4",
		TopN:    5,
		MinClip: 1 * time.Second,
		MaxClip: 60 * time.Second,
	})
	if err == nil {
		t.Fatalf("expected caption parse error to surface")
	}
}

func TestRun_RendersClips(t *testing.T) {
	t.Parallel()

	video := &fakeVideoTool{}
	uc := New(Deps{
		Video:    video,
		Captions: fakeCaptions{tr: viralTranscript()},
		Audio:    fakeDecoder{},
		Log:      zerolog.Nop(),
	})

	res, err := uc.Run(context.Background(), Input{
		Input:       "in.mp4",
		TopN:        5,
		MinClip:     1 * time.Second,
		MaxClip:     60 * time.Second,
		OutDir:      t.TempDir(),
		RenderClips: true,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Manifest.Moments) == 0 {
		t.Fatalf("expected moments to render")
	}
	if len(video.renderStarts) != len(res.Manifest.Moments) {
		t.Fatalf("expected %d render calls, got %d", len(res.Manifest.Moments), len(video.renderStarts))
	}
	if len(res.Manifest.Clips) != len(res.Manifest.Moments) {
		t.Fatalf("expected a manifest clip per moment")
	}
	if res.Manifest.Clips[0].ID != "001" {
		t.Fatalf("expected sequential clip ids, got %s", res.Manifest.Clips[0].ID)
	}
}

type fakeVideoTool struct {
	extractCalls int
	renderStarts []time.Duration
}

func (f *fakeVideoTool) ExtractAudioMono16k(_ context.Context, _, _ string) error {
	f.extractCalls++
	return nil
}

func (f *fakeVideoTool) RenderClip(_ context.Context, _ string, start, _ time.Duration, _ string) error {
	f.renderStarts = append(f.renderStarts, start)
	return nil
}

func (f *fakeVideoTool) ProbeDuration(_ context.Context, _ string) (time.Duration, error) {
	return 0, nil
}

type fakeCaptions struct {
	tr  types.Transcript
	err error
}

func (f fakeCaptions) Fetch(_ context.Context, _ string) (types.Transcript, error) {
	return f.tr, f.err
}

type fakeDecoder struct {
	w   types.Waveform
	err error
}

func (f fakeDecoder) Decode(_ context.Context, _ string) (types.Waveform, error) {
	return f.w, f.err
}

func viralTranscript() types.Transcript {
	return types.Transcript{Segments: []types.Segment{
		{Text: "WOW this is INSANE you won't believe it!!!", Start: 0, Duration: 5},
		{Text: "the weather was mild on tuesday", Start: 40, Duration: 5},
	}}
}

// burstWaveform is 15s silence, 10s loud, 15s silence at 16kHz.
func burstWaveform() types.Waveform {
	const sr = 16000
	samples := make([]float64, 40*sr)
	for i := 15 * sr; i < 25*sr; i++ {
		samples[i] = 0.9
	}
	return types.Waveform{Samples: samples, SampleRate: sr}
}
