package types

// Source tells consumers which analysis path produced a Moment, and
// therefore which score scale applies.
type Source string

const (
	SourceLinguistic  Source = "linguistic"
	SourceAudioEnergy Source = "audio_energy"
)

// Transcript is an ordered, chronological sequence of caption segments.
type Transcript struct {
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// End is the segment's end time in seconds.
func (s Segment) End() float64 { return s.Start + s.Duration }

// Moment is a scored, time-bounded candidate interval suitable for
// short-form clip extraction. Both analysis paths emit this shape.
type Moment struct {
	Start   float64  `json:"start_time"`
	End     float64  `json:"end_time"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
	Source  Source   `json:"source"`

	// Text is set only on linguistic-path moments.
	Text string `json:"text,omitempty"`
}

// Duration is always derived from the bounds, never cached.
func (m Moment) Duration() float64 { return m.End - m.Start }

// Waveform is a decoded mono audio signal.
type Waveform struct {
	Samples    []float64
	SampleRate int
}

type Manifest struct {
	Input   string         `json:"input"`
	Source  Source         `json:"source"`
	Moments []Moment       `json:"moments"`
	Clips   []ManifestClip `json:"clips,omitempty"`
}

type ManifestClip struct {
	ID       string   `json:"id"`
	StartSec float64  `json:"start_sec"`
	EndSec   float64  `json:"end_sec"`
	Score    float64  `json:"score"`
	Reasons  []string `json:"reasons"`
	Text     string   `json:"text,omitempty"`
	File     string   `json:"file"`
}
