package model

// Label is the spelling classification assigned to a word. Exactly two
// values exist; every classified word receives one of them.
type Label string

const (
	// LabelCorrect marks a word found verbatim in the reference vocabulary.
	LabelCorrect Label = "correct spelling"
	// LabelIncorrect marks everything else: probable typos (within one edit
	// of a vocabulary entry) and out-of-vocabulary words alike.
	LabelIncorrect Label = "incorrect spelling"
)

// WordResult is vartani's output type — one unique word with its label.
type WordResult struct {
	Word  string `json:"word"`
	Label Label  `json:"classification"`
}
