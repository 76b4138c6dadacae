package classifier

import (
	"github.com/dhvani-labs/vartani/internal/model"
	"github.com/dhvani-labs/vartani/internal/vocab"
)

// DefaultMaxEditDistance is the proximity radius for the typo check.
const DefaultMaxEditDistance = 1

// Reason records which stage of the decision procedure produced a label.
// Diagnostic only: NearMiss and OutOfVocabulary map to the same label.
type Reason string

const (
	ExactMatch      Reason = "exact_match"
	NearMiss        Reason = "near_miss"
	OutOfVocabulary Reason = "out_of_vocabulary"
)

// Result holds the outcome of classifying a single word token.
type Result struct {
	Word   string
	Label  model.Label
	Reason Reason
}

// Classifier labels word tokens against a fixed reference vocabulary.
//
// The decision procedure has two stages: exact membership, then a bounded
// Levenshtein proximity check. A token within MaxEditDistance of any
// vocabulary entry is treated as a probable typo of it; a token matching
// nothing at all receives the same incorrect label. That collapse is
// deliberate — unseen-but-valid words cannot be told apart from garbage
// with only a membership oracle, so both fail the automated check.
//
// Classify is a pure function of (token, vocabulary): deterministic,
// idempotent, total over strings, and safe for concurrent use.
type Classifier struct {
	vocab       *vocab.Vocabulary
	maxDistance int
}

// New creates a Classifier bound to the given vocabulary. A negative
// maxDistance falls back to DefaultMaxEditDistance.
func New(v *vocab.Vocabulary, maxDistance int) *Classifier {
	if maxDistance < 0 {
		maxDistance = DefaultMaxEditDistance
	}
	return &Classifier{vocab: v, maxDistance: maxDistance}
}

// Classify labels one token. It never fails: empty and single-rune tokens
// classify like any other string.
func (c *Classifier) Classify(token string) Result {
	if c.vocab.Contains(token) {
		return Result{Word: token, Label: model.LabelCorrect, Reason: ExactMatch}
	}
	if c.vocab.HasNeighborWithin(token, c.maxDistance) {
		return Result{Word: token, Label: model.LabelIncorrect, Reason: NearMiss}
	}
	return Result{Word: token, Label: model.LabelIncorrect, Reason: OutOfVocabulary}
}
