package vartani

import (
	"fmt"

	"github.com/dhvani-labs/vartani/internal/engine"
	"github.com/dhvani-labs/vartani/internal/engine/classifier"
	"github.com/dhvani-labs/vartani/internal/engine/tokenizer"
	"github.com/dhvani-labs/vartani/internal/engine/uniq"
	"github.com/dhvani-labs/vartani/internal/model"
	"github.com/dhvani-labs/vartani/internal/vocab"
)

// Checker classifies word spellings against a fixed reference vocabulary.
// Safe for concurrent use; the vocabulary is immutable after New.
type Checker struct {
	engine *engine.Engine
}

// New creates a Checker. Without options the bundled Hindi vocabulary is
// used; WithVocabulary and WithVocabularyFile substitute your own.
func New(opts ...Option) (*Checker, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var v *vocab.Vocabulary
	switch {
	case o.words != nil:
		v = vocab.New(o.words)
		if v.Len() == 0 {
			return nil, fmt.Errorf("vartani: %w", vocab.ErrEmptySource)
		}
	case o.vocabularyPath != "":
		var err error
		v, err = vocab.LoadFile(o.vocabularyPath)
		if err != nil {
			return nil, fmt.Errorf("vartani: %w", err)
		}
	default:
		v = vocab.Default()
	}

	cls := classifier.New(v, o.maxEditDistance)

	var engOpts []engine.Option
	if o.workers > 0 {
		engOpts = append(engOpts, engine.WithWorkers(o.workers))
	}

	return &Checker{engine: engine.New(cls, engOpts...)}, nil
}

// Classify labels a single word. Total: any string, including the empty
// string, gets a verdict.
func (c *Checker) Classify(word string) WordResult {
	results := c.engine.ClassifyWords([]string{word})
	return fromInternal(results[0])
}

// ClassifyBatch labels a batch of words concurrently. Results come back in
// input order; duplicates in the input are classified independently.
func (c *Checker) ClassifyBatch(words []string) []WordResult {
	internal := c.engine.ClassifyWords(words)
	results := make([]WordResult, len(internal))
	for i, r := range internal {
		results[i] = fromInternal(r)
	}
	return results
}

// ClassifyText tokenizes free text the way transcript segments are
// tokenized, deduplicates within the text, and labels each unique word in
// first-occurrence order.
func (c *Checker) ClassifyText(text string) []WordResult {
	collector := uniq.New()
	unique := collector.Add(tokenizer.Words(text)...)
	return c.ClassifyBatch(unique)
}

func fromInternal(r model.WordResult) WordResult {
	return WordResult{Word: r.Word, Label: Label(r.Label)}
}
