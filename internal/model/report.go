package model

import "time"

// Report summarises one classification run over a corpus.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	WordsAnalyzed  int `json:"words_analyzed"`  // unique words classified
	CorrectCount   int `json:"correct_count"`   // labelled "correct spelling"
	IncorrectCount int `json:"incorrect_count"` // labelled "incorrect spelling"

	// Fixed-ratio projection onto a target corpus size. The estimate applies
	// ErrorRate to TargetCorpusSize; no sampling or modelling is involved.
	TargetCorpusSize int     `json:"target_corpus_size,omitempty"`
	ErrorRate        float64 `json:"error_rate,omitempty"`
	EstimatedCorrect int     `json:"estimated_correct,omitempty"`
}
