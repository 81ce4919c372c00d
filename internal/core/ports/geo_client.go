package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// GeoClient resolves a street address to a grid location during order intake.
type GeoClient interface {
	// GetLocation returns the delivery location for a street name.
	GetLocation(ctx context.Context, street string) (kernel.Location, error)

	// Close releases the underlying connection.
	Close() error
}
