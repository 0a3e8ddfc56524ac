package moments

import (
	"strings"
	"unicode"
)

// Scores are the seven per-dimension engagement signals for one segment,
// each clamped to [0..1].
type Scores struct {
	Energy      float64
	Hook        float64
	Emotion     float64
	Question    float64
	Conflict    float64
	Caps        float64
	Punctuation float64
}

// Dimension weights for the combined viral score. They sum to 1.0: hook
// phrases and energy vocabulary are the strongest predictors, caps and
// punctuation the weakest (noisy, easily gamed).
const (
	weightEnergy      = 0.25
	weightHook        = 0.25
	weightEmotion     = 0.15
	weightQuestion    = 0.15
	weightConflict    = 0.10
	weightCaps        = 0.05
	weightPunctuation = 0.05
)

// Combined returns the weighted viral score in [0..1].
func (s Scores) Combined() float64 {
	return s.Energy*weightEnergy +
		s.Hook*weightHook +
		s.Emotion*weightEmotion +
		s.Question*weightQuestion +
		s.Conflict*weightConflict +
		s.Caps*weightCaps +
		s.Punctuation*weightPunctuation
}

// ScoreSegment scores one segment's text against the lexicon. Pure and
// deterministic; empty text yields all-zero scores. Caps is measured on
// the original casing, everything else on the lowercased text.
func (lex Lexicon) ScoreSegment(original string) Scores {
	lower := strings.ToLower(original)
	words := strings.Fields(lower)
	if len(words) == 0 {
		return Scores{}
	}
	wc := float64(len(words))

	var energy, emotion, question, conflict int
	for _, w := range words {
		w = strings.Trim(w, ".,!?")
		if _, ok := lex.EnergyWords[w]; ok {
			energy++
		}
		if _, ok := lex.EmotionWords[w]; ok {
			emotion++
		}
		if _, ok := lex.QuestionWords[w]; ok {
			question++
		}
		if _, ok := lex.ConflictWords[w]; ok {
			conflict++
		}
	}

	var hook float64
	for _, phrase := range lex.HookPhrases {
		if strings.Contains(lower, phrase) {
			hook += 0.4
		}
	}

	questionScore := float64(question) / wc * 3
	if strings.Contains(lower, "?") {
		questionScore += 0.4
	}

	var caps, total int
	for _, r := range original {
		if unicode.IsUpper(r) {
			caps++
		}
		total++
	}

	return Scores{
		// The 3x multiplier saturates a dimension once roughly a third
		// of the words match; recall-favoring on purpose since the
		// aggregate threshold filters weak candidates later.
		Energy:      clamp(float64(energy)/wc*3, 0, 1),
		Hook:        clamp(hook, 0, 1),
		Emotion:     clamp(float64(emotion)/wc*3, 0, 1),
		Question:    clamp(questionScore, 0, 1),
		Conflict:    clamp(float64(conflict)/wc*3, 0, 1),
		Caps:        clamp(float64(caps)/float64(total)*5, 0, 1),
		Punctuation: clamp(float64(strings.Count(lower, "!"))*0.3, 0, 1),
	}
}

func clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
