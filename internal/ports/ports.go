package ports

import (
	"context"
	"errors"
	"time"

	"github.com/mzakyi/viral-clip-generator/internal/types"
)

// ErrNoCaptions means the source has no transcript for the input. It is
// a valid state, not a failure: callers fall back to the audio path.
var ErrNoCaptions = errors.New("no captions available")

// ErrDecode wraps audio decode failures so callers can tell "no peaks
// because silent" apart from "no peaks because the decode failed".
var ErrDecode = errors.New("audio decode failed")

type VideoTool interface {
	ExtractAudioMono16k(ctx context.Context, in, outWav string) error
	RenderClip(ctx context.Context, in string, start, end time.Duration, out string) error
	ProbeDuration(ctx context.Context, in string) (time.Duration, error)
}

type CaptionSource interface {
	Fetch(ctx context.Context, input string) (types.Transcript, error)
}

type AudioDecoder interface {
	Decode(ctx context.Context, wavPath string) (types.Waveform, error)
}
