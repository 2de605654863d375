package service

import (
	"testing"

	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/config"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/bulletin"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/vehicle"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PricingServiceSuite struct {
	suite.Suite
	pricing PricingService
}

func TestPricingService(t *testing.T) {
	suite.Run(t, new(PricingServiceSuite))
}

func (s *PricingServiceSuite) SetupTest() {
	l, err := logger.NewLogger(config.GetDefaultConfig())
	s.Require().NoError(err)

	s.pricing = NewPricingService(ServiceParams{
		Logger: l,
		Config: config.GetDefaultConfig(),
	})
}

func matchWith(rule *bulletin.Rule) *bulletin.MatchResult {
	return &bulletin.MatchResult{
		Bulletin:    &bulletin.Bulletin{ID: "b-1"},
		Rule:        rule,
		Specificity: specificityGlobal,
	}
}

func (s *PricingServiceSuite) TestListPriceStandsWithoutMatch() {
	v := &vehicle.Vehicle{ListPrice: decimal.NewFromInt(233234)}

	got := s.pricing.DisplayPrice(v, nil)
	s.True(got.Equal(decimal.NewFromInt(233234)), "got %s", got)
}

func (s *PricingServiceSuite) TestFlatDiscountRoundsUpToThousand() {
	v := &vehicle.Vehicle{ListPrice: decimal.NewFromInt(233234)}
	match := matchWith(&bulletin.Rule{DiscountAmount: decimal.NewFromInt(1000)})

	// 233,234 - 1,000 = 232,234, snapped up to the next round figure
	got := s.pricing.DisplayPrice(v, match)
	s.True(got.Equal(decimal.NewFromInt(233000)), "got %s", got)
}

func (s *PricingServiceSuite) TestExactMultipleStays() {
	v := &vehicle.Vehicle{ListPrice: decimal.NewFromInt(235000)}
	match := matchWith(&bulletin.Rule{DiscountAmount: decimal.NewFromInt(1000)})

	got := s.pricing.DisplayPrice(v, match)
	s.True(got.Equal(decimal.NewFromInt(234000)), "got %s", got)
}

func (s *PricingServiceSuite) TestPercentDiscount() {
	v := &vehicle.Vehicle{ListPrice: decimal.NewFromInt(200000)}
	match := matchWith(&bulletin.Rule{DiscountPercent: decimal.NewFromInt(5)})

	// 200,000 x 0.95 = 190,000, already a round figure
	got := s.pricing.DisplayPrice(v, match)
	s.True(got.Equal(decimal.NewFromInt(190000)), "got %s", got)
}

func (s *PricingServiceSuite) TestDiscountClampedAtZero() {
	v := &vehicle.Vehicle{ListPrice: decimal.NewFromInt(5000)}
	match := matchWith(&bulletin.Rule{DiscountAmount: decimal.NewFromInt(9000)})

	got := s.pricing.DisplayPrice(v, match)
	s.True(got.IsZero(), "got %s", got)
}

func (s *PricingServiceSuite) TestManualOverrideSuppressesRules() {
	override := decimal.NewFromInt(200000)
	v := &vehicle.Vehicle{
		ListPrice:    decimal.NewFromInt(233234),
		SpecialPrice: &override,
	}
	match := matchWith(&bulletin.Rule{DiscountAmount: decimal.NewFromInt(50000)})

	// the override wins outright, no rounding applied
	got := s.pricing.DisplayPrice(v, match)
	s.True(got.Equal(override), "got %s", got)
}

func (s *PricingServiceSuite) TestOverrideAboveListIgnored() {
	override := decimal.NewFromInt(300000)
	v := &vehicle.Vehicle{
		ListPrice:    decimal.NewFromInt(233234),
		SpecialPrice: &override,
	}

	got := s.pricing.DisplayPrice(v, nil)
	s.True(got.Equal(decimal.NewFromInt(233234)), "got %s", got)
}
