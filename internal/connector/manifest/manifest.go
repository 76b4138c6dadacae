// Package manifest reads ASR training manifests: JSON Lines files with one
// transcript record per line, as produced by common speech toolkits.
package manifest

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/dhvani-labs/vartani/internal/connector"
	"github.com/dhvani-labs/vartani/internal/model"
)

// Lines can carry long conversational transcripts; allow up to 1MB each.
const maxLineSize = 1024 * 1024

func init() {
	connector.Register("manifest", func() connector.Connector {
		return &Connector{}
	})
}

// Connector implements connector.Connector for local JSONL manifest files.
//
// Ingestion fails fast: a missing manifest or a malformed record is an
// error, never an empty corpus — a silently empty token set would make the
// classifier vacuously label nothing.
type Connector struct{}

// entry is one manifest record. Unknown fields are ignored.
type entry struct {
	AudioFilepath string  `json:"audio_filepath"`
	Duration      float64 `json:"duration"`
	Text          string  `json:"text"`
	Speaker       string  `json:"speaker"`
}

func toSegment(e entry) model.Segment {
	var md map[string]any
	if e.Speaker != "" {
		md = map[string]any{"speaker": e.Speaker}
	}
	return model.Segment{
		Source:    "manifest",
		Text:      e.Text,
		AudioPath: e.AudioFilepath,
		Duration:  e.Duration,
		Metadata:  md,
	}
}

// Query reads the whole manifest into a batch of segments.
func (c *Connector) Query(ctx context.Context, cfg connector.Config, params connector.QueryParams) ([]model.Segment, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("manifest connector: open %s: %w", cfg.Path, err)
	}
	defer f.Close()

	var segments []model.Segment
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var e entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("manifest connector: %s line %d: %w", cfg.Path, lineNo, err)
		}
		segments = append(segments, toSegment(e))

		if params.Limit > 0 && len(segments) >= params.Limit {
			return segments[:params.Limit], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("manifest connector: read %s: %w", cfg.Path, err)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("manifest connector: %s contains no records", cfg.Path)
	}
	return segments, nil
}

// Stream decodes the manifest line by line, sending each segment as soon as
// it parses. The file is opened before the goroutine starts so a missing
// manifest surfaces immediately. Decode errors end the stream early; the
// channel is closed either way.
func (c *Connector) Stream(ctx context.Context, cfg connector.Config) (<-chan model.Segment, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("manifest connector: open %s: %w", cfg.Path, err)
	}

	ch := make(chan model.Segment)
	go func() {
		defer close(ch)
		defer f.Close()

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			var e entry
			if err := json.Unmarshal(line, &e); err != nil {
				slog.Error("manifest stream: malformed record, stopping",
					"path", cfg.Path, "line", lineNo, "error", err)
				return
			}
			select {
			case ch <- toSegment(e):
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			slog.Error("manifest stream: read failed", "path", cfg.Path, "error", err)
		}
	}()
	return ch, nil
}
