package pipeline

import (
	"context"
	"fmt"

	"github.com/dhvani-labs/vartani/internal/connector"
	"github.com/dhvani-labs/vartani/internal/model"
	"github.com/dhvani-labs/vartani/internal/output"
)

// Processor turns transcript segments into labelled unique words.
// Implemented by engine.Engine.
type Processor interface {
	ProcessSegment(seg model.Segment) []model.WordResult
	ProcessCorpus(segs []model.Segment) []model.WordResult
}

// Pipeline connects a connector, processor, and output into a
// classification pipeline.
type Pipeline struct {
	connector connector.Connector
	processor Processor
	output    output.Output
}

// New creates a Pipeline from the given components.
func New(conn connector.Connector, proc Processor, out output.Output) *Pipeline {
	return &Pipeline{
		connector: conn,
		processor: proc,
		output:    out,
	}
}

// Run executes the pipeline in one-shot mode: read the whole corpus,
// classify its unique words, and write every result. The results are also
// returned so the caller can build a run summary.
func (p *Pipeline) Run(ctx context.Context, cfg connector.Config, params connector.QueryParams) ([]model.WordResult, error) {
	segs, err := p.connector.Query(ctx, cfg, params)
	if err != nil {
		return nil, fmt.Errorf("pipeline query: %w", err)
	}

	results := p.processor.ProcessCorpus(segs)

	for _, r := range results {
		if err := p.output.Write(ctx, r); err != nil {
			return nil, fmt.Errorf("pipeline output: %w", err)
		}
	}
	return results, nil
}

// Stream runs the pipeline in streaming mode, classifying newly seen words
// as segments arrive. Blocks until the context is cancelled or the source
// is exhausted.
func (p *Pipeline) Stream(ctx context.Context, cfg connector.Config) error {
	ch, err := p.connector.Stream(ctx, cfg)
	if err != nil {
		return fmt.Errorf("pipeline stream: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case seg, ok := <-ch:
			if !ok {
				return nil
			}
			for _, r := range p.processor.ProcessSegment(seg) {
				if err := p.output.Write(ctx, r); err != nil {
					return fmt.Errorf("pipeline output: %w", err)
				}
			}
		}
	}
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
