package output

import (
	"context"

	"github.com/dhvani-labs/vartani/internal/model"
)

// Output defines the interface for classified-word destinations.
type Output interface {
	Write(ctx context.Context, result model.WordResult) error
	Close() error
}
