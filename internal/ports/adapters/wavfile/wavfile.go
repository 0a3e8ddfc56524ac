// Package wavfile decodes WAV files into the mono float waveform the
// energy detector consumes. Stereo input is downmixed by averaging
// channels; integer PCM is normalized to [-1, 1].
package wavfile

import (
	"context"
	"fmt"
	"os"

	"github.com/go-audio/wav"

	"github.com/mzakyi/viral-clip-generator/internal/ports"
	"github.com/mzakyi/viral-clip-generator/internal/types"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Decode(_ context.Context, wavPath string) (types.Waveform, error) {
	f, err := os.Open(wavPath)
	if err != nil {
		return types.Waveform{}, fmt.Errorf("%w: open %s: %v", ports.ErrDecode, wavPath, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return types.Waveform{}, fmt.Errorf("%w: read %s: %v", ports.ErrDecode, wavPath, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.SampleRate <= 0 {
		return types.Waveform{}, fmt.Errorf("%w: %s has no usable format", ports.ErrDecode, wavPath)
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		channels = 1
	}
	bitDepth := dec.BitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := float64(int64(1) << (bitDepth - 1))

	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c]) / scale
		}
		samples[i] = sum / float64(channels)
	}

	return types.Waveform{Samples: samples, SampleRate: buf.Format.SampleRate}, nil
}
