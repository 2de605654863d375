package vehicle

import (
	"context"
)

// Repository defines the interface for vehicle data access. The backing
// record store is an external collaborator; each feed import replaces the
// stock wholesale.
type Repository interface {
	ReplaceAll(ctx context.Context, vehicles []*Vehicle) error
	Get(ctx context.Context, vin string) (*Vehicle, error)
	List(ctx context.Context) ([]*Vehicle, error)
	ListVisible(ctx context.Context) ([]*Vehicle, error)
}
