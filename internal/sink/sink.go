// Package sink persists generated datasets. Sinks run after generation has
// finished, so they never influence the random stream.
package sink

import (
	"context"

	"github.com/rbotha/hospitalforge/internal/hospital"
)

// Sink writes a complete dataset to a destination.
type Sink interface {
	Write(ctx context.Context, ds *hospital.Dataset) error
}
