package bulletin

import (
	"context"
)

// Repository defines the interface for bulletin data access
type Repository interface {
	Create(ctx context.Context, bulletin *Bulletin) error
	Get(ctx context.Context, id string) (*Bulletin, error)
	Update(ctx context.Context, bulletin *Bulletin) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Bulletin, error)
}
