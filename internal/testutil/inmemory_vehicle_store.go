package testutil

import (
	"context"
	"sync"

	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/vehicle"
	ierr "github.com/lukilot/bawaria-motors-configurator-sub000/internal/errors"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/types"
)

// InMemoryVehicleStore implements vehicle.Repository
type InMemoryVehicleStore struct {
	mu       sync.RWMutex
	vehicles map[string]*vehicle.Vehicle
	order    []string
}

// NewInMemoryVehicleStore creates a new in-memory vehicle store
func NewInMemoryVehicleStore() *InMemoryVehicleStore {
	return &InMemoryVehicleStore{
		vehicles: make(map[string]*vehicle.Vehicle),
	}
}

func (s *InMemoryVehicleStore) ReplaceAll(ctx context.Context, vehicles []*vehicle.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vehicles = make(map[string]*vehicle.Vehicle, len(vehicles))
	s.order = make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		if v == nil {
			return ierr.NewError("vehicle cannot be nil").
				WithHint("Vehicle cannot be nil").
				Mark(ierr.ErrValidation)
		}
		copied := *v
		s.vehicles[v.VIN] = &copied
		s.order = append(s.order, v.VIN)
	}
	return nil
}

func (s *InMemoryVehicleStore) Get(ctx context.Context, vin string) (*vehicle.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vehicles[vin]
	if !ok {
		return nil, ierr.NewError("vehicle not found").
			WithHint("Vehicle not found").
			WithReportableDetails(map[string]interface{}{
				"vin": vin,
			}).
			Mark(ierr.ErrNotFound)
	}
	copied := *v
	return &copied, nil
}

func (s *InMemoryVehicleStore) List(ctx context.Context) ([]*vehicle.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*vehicle.Vehicle, 0, len(s.order))
	for _, vin := range s.order {
		copied := *s.vehicles[vin]
		items = append(items, &copied)
	}
	return items, nil
}

func (s *InMemoryVehicleStore) ListVisible(ctx context.Context) ([]*vehicle.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*vehicle.Vehicle, 0, len(s.order))
	for _, vin := range s.order {
		if s.vehicles[vin].Visibility != types.VisibilityPublic {
			continue
		}
		copied := *s.vehicles[vin]
		items = append(items, &copied)
	}
	return items, nil
}

func (s *InMemoryVehicleStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = make(map[string]*vehicle.Vehicle)
	s.order = nil
}
