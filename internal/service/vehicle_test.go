package service

import (
	"context"
	"testing"

	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/config"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/bulletin"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/vehicle"
	ierr "github.com/lukilot/bawaria-motors-configurator-sub000/internal/errors"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/logger"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/testutil"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type VehicleServiceSuite struct {
	suite.Suite
	ctx           context.Context
	vehicleStore  *testutil.InMemoryVehicleStore
	bulletinStore *testutil.InMemoryBulletinStore
	service       VehicleService
}

func TestVehicleService(t *testing.T) {
	suite.Run(t, new(VehicleServiceSuite))
}

func (s *VehicleServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()
	s.vehicleStore = testutil.NewInMemoryVehicleStore()
	s.bulletinStore = testutil.NewInMemoryBulletinStore()

	l, err := logger.NewLogger(config.GetDefaultConfig())
	s.Require().NoError(err)

	s.service = NewVehicleService(ServiceParams{
		Logger:       l,
		Config:       config.GetDefaultConfig(),
		VehicleRepo:  s.vehicleStore,
		BulletinRepo: s.bulletinStore,
	})
}

func (s *VehicleServiceSuite) seedVehicle(vin string, listPrice int64) *vehicle.Vehicle {
	v := &vehicle.Vehicle{
		VIN:            vin,
		StatusCode:     190,
		ModelCode:      "28EM",
		ModelName:      "320i Sedan",
		BodyGroup:      "G20",
		ProductionDate: "2024-03-15",
		ListPrice:      decimal.NewFromInt(listPrice),
		Visibility:     types.VisibilityPublic,
		ProcessingType: types.ProcessingTypeShowroom,
	}
	s.Require().NoError(s.service.ReplaceStock(s.ctx, []*vehicle.Vehicle{v}))
	return v
}

func (s *VehicleServiceSuite) seedBulletin(name string, rule *bulletin.Rule) *bulletin.Bulletin {
	b := &bulletin.Bulletin{
		ID:        types.GenerateUUID(),
		Name:      name,
		Enabled:   true,
		Rules:     []*bulletin.Rule{rule},
		BaseModel: types.GetDefaultBaseModel(s.ctx),
	}
	if rule.ID == "" {
		rule.ID = types.GenerateUUID()
	}
	s.Require().NoError(s.bulletinStore.Create(s.ctx, b))
	return b
}

func (s *VehicleServiceSuite) TestReplaceStockIsWholesale() {
	s.seedVehicle("WBA0001", 200000)

	replacement := &vehicle.Vehicle{
		VIN:        "WBA0002",
		StatusCode: 190,
		ListPrice:  decimal.NewFromInt(150000),
		Visibility: types.VisibilityPublic,
	}
	s.NoError(s.service.ReplaceStock(s.ctx, []*vehicle.Vehicle{replacement}))

	_, err := s.service.GetVehicle(s.ctx, "WBA0001")
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	resp, err := s.service.GetVehicle(s.ctx, "WBA0002")
	s.NoError(err)
	s.Equal("WBA0002", resp.VIN)
}

func (s *VehicleServiceSuite) TestGetVehicleWithoutBulletins() {
	s.seedVehicle("WBA0001", 233234)

	resp, err := s.service.GetVehicle(s.ctx, "WBA0001")
	s.NoError(err)
	s.True(resp.DisplayPrice.Equal(decimal.NewFromInt(233234)))
	s.Nil(resp.AppliedBulletinID)
	s.Nil(resp.AppliedRuleID)
}

func (s *VehicleServiceSuite) TestGetVehicleAppliesBestRule() {
	s.seedVehicle("WBA0001", 233234)
	b := s.seedBulletin("flat thousand", &bulletin.Rule{
		DiscountAmount: decimal.NewFromInt(1000),
	})

	resp, err := s.service.GetVehicle(s.ctx, "WBA0001")
	s.NoError(err)
	// 233,234 - 1,000 rounded up to the nearest thousand
	s.True(resp.DisplayPrice.Equal(decimal.NewFromInt(233000)), "got %s", resp.DisplayPrice)
	s.Require().NotNil(resp.AppliedBulletinID)
	s.Equal(b.ID, *resp.AppliedBulletinID)
	s.Require().NotNil(resp.AppliedRuleID)
	s.Equal(b.Rules[0].ID, *resp.AppliedRuleID)
}

func (s *VehicleServiceSuite) TestOverrideReportsNoAppliedRule() {
	v := s.seedVehicle("WBA0001", 233234)
	override := decimal.NewFromInt(200000)
	v.SpecialPrice = &override
	s.Require().NoError(s.service.ReplaceStock(s.ctx, []*vehicle.Vehicle{v}))

	s.seedBulletin("huge discount", &bulletin.Rule{
		DiscountAmount: decimal.NewFromInt(50000),
	})

	resp, err := s.service.GetVehicle(s.ctx, "WBA0001")
	s.NoError(err)
	s.True(resp.DisplayPrice.Equal(override), "got %s", resp.DisplayPrice)
	s.Nil(resp.AppliedBulletinID)
	s.Nil(resp.AppliedRuleID)
}

func (s *VehicleServiceSuite) TestDisabledBulletinDoesNotApply() {
	s.seedVehicle("WBA0001", 233234)
	b := s.seedBulletin("switched off", &bulletin.Rule{
		DiscountAmount: decimal.NewFromInt(1000),
	})
	b.Enabled = false
	s.Require().NoError(s.bulletinStore.Update(s.ctx, b))

	resp, err := s.service.GetVehicle(s.ctx, "WBA0001")
	s.NoError(err)
	s.True(resp.DisplayPrice.Equal(decimal.NewFromInt(233234)))
	s.Nil(resp.AppliedBulletinID)
}

func (s *VehicleServiceSuite) TestListVehiclesExcludesInternal() {
	public := &vehicle.Vehicle{
		VIN:        "WBA0001",
		StatusCode: 190,
		ListPrice:  decimal.NewFromInt(200000),
		Visibility: types.VisibilityPublic,
	}
	internal := &vehicle.Vehicle{
		VIN:        "WBA0002",
		StatusCode: 190,
		ListPrice:  decimal.NewFromInt(180000),
		Visibility: types.VisibilityInternal,
	}
	s.Require().NoError(s.service.ReplaceStock(s.ctx, []*vehicle.Vehicle{public, internal}))

	items, err := s.service.ListVehicles(s.ctx)
	s.NoError(err)
	s.Len(items, 1)
	s.Equal("WBA0001", items[0].VIN)

	// the internal unit is still addressable directly
	resp, err := s.service.GetVehicle(s.ctx, "WBA0002")
	s.NoError(err)
	s.Equal("WBA0002", resp.VIN)
}
