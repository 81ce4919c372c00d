// Package geo resolves street addresses to dispatch grid locations.
package geo

import (
	"context"
	"hash/fnv"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// Client implements ports.GeoClient with a deterministic street hash.
// The same street always resolves to the same cell, so retried order intake
// stays stable without an external geocoding dependency.
type Client struct{}

// NewClient creates a geo client.
func NewClient() *Client {
	return &Client{}
}

// GetLocation maps a street name onto the grid.
func (c *Client) GetLocation(_ context.Context, street string) (kernel.Location, error) {
	span := uint32(kernel.LocationMax-kernel.LocationMin) + 1

	h := fnv.New32a()
	_, _ = h.Write([]byte(street))
	sum := h.Sum32()

	x := kernel.Coordinate(sum%span) + kernel.LocationMin
	y := kernel.Coordinate((sum/span)%span) + kernel.LocationMin

	return kernel.NewLocation(x, y)
}

// Close implements ports.GeoClient; there is no connection to release.
func (c *Client) Close() error {
	return nil
}

var _ ports.GeoClient = (*Client)(nil)
