package connector

import (
	"context"

	"github.com/dhvani-labs/vartani/internal/model"
)

// Connector defines the interface all transcript source connectors implement.
type Connector interface {
	// Stream reads the source incrementally and sends segments as they are
	// decoded. The channel closes when the source is exhausted.
	Stream(ctx context.Context, cfg Config) (<-chan model.Segment, error)

	// Query fetches the full batch of transcript segments matching params.
	Query(ctx context.Context, cfg Config, params QueryParams) ([]model.Segment, error)
}

// Config holds provider-specific connection settings.
type Config struct {
	Provider string
	Path     string // local resource path (e.g. a manifest file)
	Extra    map[string]string
}

// QueryParams defines filters for batch reads.
type QueryParams struct {
	Limit int // maximum segments to return; 0 = unlimited
}
