package vartani

// Label is the spelling verdict for a word.
type Label string

const (
	// LabelCorrect marks an exact vocabulary member.
	LabelCorrect Label = "correct spelling"
	// LabelIncorrect marks everything else, near-misses and unknown
	// words alike.
	LabelIncorrect Label = "incorrect spelling"
)

// WordResult pairs a word with its verdict.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type WordResult struct {
	Word  string `json:"word"`
	Label Label  `json:"classification"`
}
