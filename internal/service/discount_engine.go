package service

import (
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/bulletin"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/vehicle"
	"github.com/samber/lo"
)

// Specificity contributions per targeting dimension. A global rule matches
// every vehicle at a fixed score below any targeted match.
const (
	specificityModelCode = 10
	specificityBodyGroup = 5
	specificityYear      = 2
	specificityGlobal    = 1
)

// DiscountEngineService determines the single best-matching rule for a
// vehicle across a collection of bulletins. Callers must pass only bulletins
// that are active and within their validity window; the engine does not
// re-check the window.
type DiscountEngineService interface {
	BestRule(v *vehicle.Vehicle, bulletins []*bulletin.Bulletin) *bulletin.MatchResult
}

type discountEngineService struct {
	ServiceParams
}

func NewDiscountEngineService(serviceParams ServiceParams) DiscountEngineService {
	return &discountEngineService{
		ServiceParams: serviceParams,
	}
}

// BestRule evaluates every (bulletin, rule) pair independently and returns
// the match with the strictly largest effective discount, ties broken by the
// strictly larger specificity, then by stable input order (the earlier pair
// wins). Returns nil when nothing matches; that is a valid, non-error
// outcome.
func (s *discountEngineService) BestRule(v *vehicle.Vehicle, bulletins []*bulletin.Bulletin) *bulletin.MatchResult {
	var best *bulletin.MatchResult

	for _, b := range bulletins {
		for _, r := range b.Rules {
			if !r.IsUsable() {
				continue
			}

			specificity := matchRule(v, r)
			if specificity == 0 {
				continue
			}

			discount := r.EffectiveDiscount(v.ListPrice)
			if best != nil &&
				!discount.GreaterThan(best.Discount) &&
				!(discount.Equal(best.Discount) && specificity > best.Specificity) {
				continue
			}

			best = &bulletin.MatchResult{
				Bulletin:    b,
				Rule:        r,
				Discount:    discount,
				Specificity: specificity,
			}
		}
	}

	return best
}

// matchRule scores a single rule against a vehicle. A declared targeting
// dimension the vehicle fails short-circuits to 0 (no match).
func matchRule(v *vehicle.Vehicle, r *bulletin.Rule) int {
	if r.IsGlobal() {
		return specificityGlobal
	}

	specificity := 0

	if len(r.ModelCodes) > 0 {
		if !lo.Contains(r.ModelCodes, v.ModelCode) {
			return 0
		}
		specificity += specificityModelCode
	}

	if len(r.BodyGroups) > 0 {
		if !lo.Contains(r.BodyGroups, v.EffectiveBodyGroup()) {
			return 0
		}
		specificity += specificityBodyGroup
	}

	if r.YearMin != nil || r.YearMax != nil {
		year, ok := v.ProductionYear()
		if !ok {
			// a vehicle with no parseable production date never matches a
			// year-bound rule
			return 0
		}
		if r.YearMin != nil && year < *r.YearMin {
			return 0
		}
		if r.YearMax != nil && year > *r.YearMax {
			return 0
		}
		specificity += specificityYear
	}

	return specificity
}
