package service

import (
	"context"
	"time"

	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/api/dto"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/bulletin"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/vehicle"
	"github.com/shopspring/decimal"
)

// VehicleService exposes the imported stock to the catalogue: wholesale
// replacement after a feed import and per-vehicle display-price resolution
// at render time
type VehicleService interface {
	ReplaceStock(ctx context.Context, vehicles []*vehicle.Vehicle) error
	GetVehicle(ctx context.Context, vin string) (*dto.VehicleResponse, error)
	ListVehicles(ctx context.Context) ([]*dto.VehicleResponse, error)
}

type vehicleService struct {
	ServiceParams
	engine    DiscountEngineService
	pricing   PricingService
	bulletins BulletinService
}

func NewVehicleService(serviceParams ServiceParams) VehicleService {
	return &vehicleService{
		ServiceParams: serviceParams,
		engine:        NewDiscountEngineService(serviceParams),
		pricing:       NewPricingService(serviceParams),
		bulletins:     NewBulletinService(serviceParams),
	}
}

func (s *vehicleService) ReplaceStock(ctx context.Context, vehicles []*vehicle.Vehicle) error {
	if err := s.VehicleRepo.ReplaceAll(ctx, vehicles); err != nil {
		s.Logger.Errorw("failed to replace stock", "error", err)
		return err
	}

	s.Logger.Infow("stock replaced", "vehicles", len(vehicles))
	return nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, vin string) (*dto.VehicleResponse, error) {
	v, err := s.VehicleRepo.Get(ctx, vin)
	if err != nil {
		return nil, err
	}

	active, err := s.bulletins.GetActiveBulletins(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	price, match := s.resolvePrice(v, active)
	return dto.NewVehicleResponse(v, price, match), nil
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]*dto.VehicleResponse, error) {
	vehicles, err := s.VehicleRepo.ListVisible(ctx)
	if err != nil {
		return nil, err
	}

	// the active set is fetched once and reused across the whole page
	active, err := s.bulletins.GetActiveBulletins(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	items := make([]*dto.VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		price, match := s.resolvePrice(v, active)
		items[i] = dto.NewVehicleResponse(v, price, match)
	}
	return items, nil
}

// resolvePrice runs the matcher and resolver for one vehicle. A manual
// override suppresses rule evaluation entirely, so no match is reported for
// overridden units.
func (s *vehicleService) resolvePrice(v *vehicle.Vehicle, active []*bulletin.Bulletin) (price decimal.Decimal, match *bulletin.MatchResult) {
	if v.HasOverridePrice() {
		return s.pricing.DisplayPrice(v, nil), nil
	}

	match = s.engine.BestRule(v, active)
	return s.pricing.DisplayPrice(v, match), match
}
