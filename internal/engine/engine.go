// Package engine orchestrates the tokenize → dedupe → classify pipeline core.
package engine

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dhvani-labs/vartani/internal/engine/classifier"
	"github.com/dhvani-labs/vartani/internal/engine/tokenizer"
	"github.com/dhvani-labs/vartani/internal/engine/uniq"
	"github.com/dhvani-labs/vartani/internal/model"
)

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers bounds the number of concurrent classification workers.
// Default: GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// Engine turns transcript segments into labelled unique words. Each word is
// classified at most once per Engine lifetime; segments processed later only
// contribute tokens not seen before.
//
// Classification is pure over a read-only vocabulary, so the engine fans
// batch work out across workers without any shared mutable state beyond the
// unique-token collector.
type Engine struct {
	classifier *classifier.Classifier
	collector  *uniq.Collector
	workers    int
}

// New creates an Engine around the given classifier.
func New(cls *classifier.Classifier, opts ...Option) *Engine {
	e := &Engine{
		classifier: cls,
		collector:  uniq.New(),
		workers:    runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ProcessSegment tokenizes one segment and classifies the tokens that have
// not appeared in any earlier segment. Used in streaming mode.
func (e *Engine) ProcessSegment(seg model.Segment) []model.WordResult {
	fresh := e.collector.Add(tokenizer.Words(seg.Text)...)
	return e.ClassifyWords(fresh)
}

// ProcessCorpus tokenizes a batch of segments, collects the unique tokens in
// first-occurrence order, and classifies them concurrently.
func (e *Engine) ProcessCorpus(segs []model.Segment) []model.WordResult {
	var fresh []string
	for _, seg := range segs {
		fresh = append(fresh, e.collector.Add(tokenizer.Words(seg.Text)...)...)
	}
	return e.ClassifyWords(fresh)
}

// ClassifyWords labels the given words, fanning out across the worker pool.
// Results come back in input order regardless of worker interleaving.
func (e *Engine) ClassifyWords(words []string) []model.WordResult {
	if len(words) == 0 {
		return nil
	}

	results := make([]model.WordResult, len(words))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, w := range words {
		i, w := i, w
		g.Go(func() error {
			r := e.classifier.Classify(w)
			results[i] = model.WordResult{Word: r.Word, Label: r.Label}
			return nil
		})
	}
	// Classification is total; no worker can fail.
	_ = g.Wait()

	return results
}

// UniqueWords returns how many distinct tokens the engine has seen.
func (e *Engine) UniqueWords() int {
	return e.collector.Len()
}
