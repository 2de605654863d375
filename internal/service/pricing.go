package service

import (
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/bulletin"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/vehicle"
	"github.com/shopspring/decimal"
)

// priceStep is the round figure displayed prices snap to after a rule
// discount is applied
const priceStep = 1000

// PricingService resolves the final displayed price for a vehicle from its
// list price, an optional manual override and the winning discount match
type PricingService interface {
	DisplayPrice(v *vehicle.Vehicle, match *bulletin.MatchResult) decimal.Decimal
}

type pricingService struct {
	ServiceParams
}

func NewPricingService(serviceParams ServiceParams) PricingService {
	return &pricingService{
		ServiceParams: serviceParams,
	}
}

// DisplayPrice applies the pricing priority order: a manual override strictly
// below list price wins outright; otherwise a matched rule discounts the list
// price, clamped at zero and rounded up to the next multiple of 1000; with no
// match the list price stands unmodified. The rounding is a ceiling, never
// floor or nearest: the displayed figure is always at or above what the
// discount literally computes to.
func (s *pricingService) DisplayPrice(v *vehicle.Vehicle, match *bulletin.MatchResult) decimal.Decimal {
	if v.HasOverridePrice() {
		return *v.SpecialPrice
	}

	if match == nil {
		return v.ListPrice
	}

	discounted := v.ListPrice.Sub(match.Rule.EffectiveDiscount(v.ListPrice))
	if discounted.IsNegative() {
		discounted = decimal.Zero
	}

	return ceilToStep(discounted)
}

func ceilToStep(price decimal.Decimal) decimal.Decimal {
	step := decimal.NewFromInt(priceStep)
	return price.Div(step).Ceil().Mul(step)
}
