package store

import (
	"context"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	Close() error

	// visits model related methods.
	CreateVisit(ctx context.Context, create *CreateVisit) (*Visit, error)
	ListVisits(ctx context.Context, find *FindVisit) ([]*Visit, error)
}
