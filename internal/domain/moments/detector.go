package moments

import (
	"sort"
	"strings"

	"github.com/mzakyi/viral-clip-generator/internal/types"
)

// Reason tags surfaced to users. Each dimension has its own trigger
// threshold, distinct from the aggregate candidate threshold.
const (
	ReasonEnergy      = "high-energy language"
	ReasonHook        = "attention-grabbing hook"
	ReasonEmotion     = "strong emotional content"
	ReasonQuestion    = "creates curiosity"
	ReasonConflict    = "drama/conflict"
	ReasonCaps        = "emphasis/excitement"
	ReasonPunctuation = "exclamation/intensity"
	ReasonFallback    = "high engagement potential"
)

const (
	// DefaultMinViralScore is the aggregate bar a segment must clear to
	// become a candidate; low enough that typical transcripts are not
	// empty, high enough to reject neutral narration.
	DefaultMinViralScore = 0.15

	// DefaultMergeGapSec merges candidates whose temporal gap is within
	// this many seconds, collapsing one continuous beat that the caption
	// source split into several segments.
	DefaultMergeGapSec = 10.0

	DefaultTopN       = 5
	DefaultMinClipSec = 10.0
	DefaultMaxClipSec = 60.0
)

// Detector scores transcripts and ranks viral-worthy moments.
type Detector struct {
	lex      Lexicon
	minScore float64
	mergeGap float64
}

type Option func(*Detector)

// WithLexicon swaps the keyword vocabularies, mainly for tests and
// non-English transcripts.
func WithLexicon(lex Lexicon) Option { return func(d *Detector) { d.lex = lex } }

// WithMinScore overrides the aggregate candidate threshold.
func WithMinScore(min float64) Option { return func(d *Detector) { d.minScore = min } }

// WithMergeGap overrides the merge gap in seconds.
func WithMergeGap(gap float64) Option { return func(d *Detector) { d.mergeGap = gap } }

func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		lex:      DefaultLexicon(),
		minScore: DefaultMinViralScore,
		mergeGap: DefaultMergeGapSec,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Analyze scores every transcript segment, keeps the ones above the
// candidate threshold, merges temporally close candidates and returns
// the result sorted by score descending. An empty transcript yields an
// empty slice, never an error.
func (d *Detector) Analyze(tr types.Transcript) []types.Moment {
	var cands []types.Moment
	for _, seg := range tr.Segments {
		s := d.lex.ScoreSegment(seg.Text)
		score := s.Combined()
		if score <= d.minScore {
			continue
		}
		cands = append(cands, types.Moment{
			Start:   seg.Start,
			End:     seg.End(),
			Score:   score,
			Reasons: reasons(s),
			Source:  types.SourceLinguistic,
			Text:    seg.Text,
		})
	}

	merged := d.mergeNearby(cands)

	// Merging takes max() of the pair scores, which can reorder relative
	// ranks, so the score sort must happen after the merge pass.
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Score > merged[j].Score })
	return merged
}

// mergeNearby collapses chronologically adjacent candidates whose gap is
// within the merge threshold. Candidates arrive in transcript order, so
// no sort is needed before merging. Text is concatenated, the score is
// the max of the pair, and reason sets are unioned.
func (d *Detector) mergeNearby(cands []types.Moment) []types.Moment {
	if len(cands) <= 1 {
		return cands
	}

	merged := make([]types.Moment, 0, len(cands))
	cur := cands[0]
	for _, next := range cands[1:] {
		if next.Start-cur.End <= d.mergeGap {
			cur.End = next.End
			cur.Text = strings.TrimSpace(cur.Text + " " + next.Text)
			if next.Score > cur.Score {
				cur.Score = next.Score
			}
			cur.Reasons = unionReasons(cur.Reasons, next.Reasons)
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	return append(merged, cur)
}

// TopMoments filters moments to the [minDur, maxDur] duration window and
// returns the first n. The input must already be sorted by score
// descending for "top" to be meaningful; Analyze guarantees that.
func TopMoments(ms []types.Moment, n int, minDur, maxDur float64) []types.Moment {
	filtered := make([]types.Moment, 0, len(ms))
	for _, m := range ms {
		if d := m.Duration(); d >= minDur && d <= maxDur {
			filtered = append(filtered, m)
		}
	}
	if n >= 0 && len(filtered) > n {
		filtered = filtered[:n]
	}
	return filtered
}

func reasons(s Scores) []string {
	var out []string
	if s.Energy > 0.5 {
		out = append(out, ReasonEnergy)
	}
	if s.Hook > 0.3 {
		out = append(out, ReasonHook)
	}
	if s.Emotion > 0.5 {
		out = append(out, ReasonEmotion)
	}
	if s.Question > 0.5 {
		out = append(out, ReasonQuestion)
	}
	if s.Conflict > 0.5 {
		out = append(out, ReasonConflict)
	}
	if s.Caps > 0.3 {
		out = append(out, ReasonCaps)
	}
	if s.Punctuation > 0.3 {
		out = append(out, ReasonPunctuation)
	}
	if len(out) == 0 {
		out = append(out, ReasonFallback)
	}
	return out
}

func unionReasons(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, r := range a {
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}
	for _, r := range b {
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}
