package vartani

type options struct {
	words           []string
	vocabularyPath  string
	maxEditDistance int
	workers         int
}

// Option configures a Checker instance.
type Option func(*options)

// WithVocabulary supplies the reference vocabulary directly. Takes
// precedence over WithVocabularyFile.
func WithVocabulary(words []string) Option {
	return func(o *options) {
		o.words = words
	}
}

// WithVocabularyFile loads the reference vocabulary from a YAML file with
// core_words and code_switched_words lists.
func WithVocabularyFile(path string) Option {
	return func(o *options) {
		o.vocabularyPath = path
	}
}

// WithMaxEditDistance sets the Levenshtein radius for near-miss detection.
// Default: 1. Zero disables near-miss detection entirely.
func WithMaxEditDistance(d int) Option {
	return func(o *options) {
		o.maxEditDistance = d
	}
}

// WithWorkers sets the number of concurrent classification workers used by
// ClassifyBatch and ClassifyText. Default: GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func defaultOptions() options {
	return options{
		maxEditDistance: 1,
	}
}
