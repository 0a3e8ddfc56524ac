package moments

// Lexicon holds the keyword vocabularies the scorer matches against.
// The zero value is unusable; use DefaultLexicon or supply your own via
// WithLexicon. A Lexicon must not be mutated after construction.
type Lexicon struct {
	EnergyWords   map[string]struct{}
	HookPhrases   []string
	QuestionWords map[string]struct{}
	EmotionWords  map[string]struct{}
	ConflictWords map[string]struct{}
}

// DefaultLexicon returns the built-in English vocabularies, tuned for
// creator/commentary speech.
func DefaultLexicon() Lexicon {
	return Lexicon{
		EnergyWords: wordSet(
			"insane", "crazy", "amazing", "wow", "incredible", "unbelievable",
			"shocking", "mind-blowing", "epic", "huge", "massive", "legendary",
			"perfect", "brilliant", "genius", "absolutely", "literally",
			"explosion", "explode", "destroyed", "killed", "crushed", "dominated",
			"best", "worst", "never", "always", "everyone", "nobody",
			"holy", "omg", "what", "wtf", "damn", "hell", "god",
		),
		HookPhrases: []string{
			"you won't believe", "wait for it", "watch this", "check this out",
			"no way", "are you kidding", "i can't believe", "this is crazy",
			"hold on", "wait", "stop", "listen", "look at this", "pay attention",
			"secret", "nobody tells you", "they don't want", "hidden", "truth",
			"finally", "at last", "here it is", "the moment", "revealed",
		},
		QuestionWords: wordSet("what", "why", "how", "when", "where", "who", "which"),
		EmotionWords: wordSet(
			"love", "hate", "angry", "happy", "sad", "scared", "excited",
			"frustrated", "amazing", "terrible", "awesome", "horrible",
			"beautiful", "ugly", "perfect", "disaster", "nightmare", "dream",
		),
		ConflictWords: wordSet(
			"fight", "argue", "debate", "versus", "against", "battle",
			"war", "conflict", "problem", "issue", "challenge", "struggle",
			"failed", "mistake", "wrong", "disaster", "catastrophe",
		),
	}
}

func wordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
