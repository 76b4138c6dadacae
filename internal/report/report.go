// Package report builds and renders run summaries.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/dhvani-labs/vartani/internal/model"
)

// Default projection parameters for conversational Hindi speech corpora.
const (
	DefaultTargetCorpusSize = 175000
	DefaultErrorRate        = 0.045
)

// Build summarises one run's results. targetCorpusSize <= 0 disables the
// fixed-ratio projection; errorRate outside [0, 1] falls back to the default.
func Build(results []model.WordResult, targetCorpusSize int, errorRate float64) model.Report {
	r := model.Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}

	r.WordsAnalyzed = len(results)
	for _, res := range results {
		if res.Label == model.LabelCorrect {
			r.CorrectCount++
		} else {
			r.IncorrectCount++
		}
	}

	if targetCorpusSize > 0 {
		if errorRate < 0 || errorRate > 1 {
			errorRate = DefaultErrorRate
		}
		r.TargetCorpusSize = targetCorpusSize
		r.ErrorRate = errorRate
		r.EstimatedCorrect = int(float64(targetCorpusSize) * (1 - errorRate))
	}

	return r
}

// Render writes a human-readable summary.
func Render(w io.Writer, r model.Report) error {
	_, err := fmt.Fprintf(w, `--- Classification summary (run %s) ---
Unique words analyzed:  %d
Correct spellings:      %d
Incorrect spellings:    %d
`, r.RunID, r.WordsAnalyzed, r.CorrectCount, r.IncorrectCount)
	if err != nil {
		return fmt.Errorf("report: render: %w", err)
	}

	if r.TargetCorpusSize > 0 {
		_, err = fmt.Fprintf(w, "Estimated correct unique words for a %d-word corpus (error rate %.1f%%): %d\n",
			r.TargetCorpusSize, r.ErrorRate*100, r.EstimatedCorrect)
		if err != nil {
			return fmt.Errorf("report: render: %w", err)
		}
	}
	return nil
}
