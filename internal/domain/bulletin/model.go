package bulletin

import (
	"time"

	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/types"
	"github.com/shopspring/decimal"
)

// Bulletin is a named, independently activatable container of discount rules
// with an optional inclusive validity window. Bulletins are authored in the
// admin console; the discount engine only reads them.
type Bulletin struct {
	ID         string     `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	ValidFrom  *time.Time `json:"valid_from,omitempty" db:"valid_from"`
	ValidUntil *time.Time `json:"valid_until,omitempty" db:"valid_until"`
	Enabled    bool       `json:"enabled" db:"enabled"`
	Rules      []*Rule    `json:"rules" db:"rules"`
	types.BaseModel
}

// IsActiveOn checks if the bulletin participates in matching on the given
// day. Bounds are inclusive at date-only granularity; an absent bound leaves
// that side open.
func (b *Bulletin) IsActiveOn(t time.Time) bool {
	if !b.Enabled {
		return false
	}

	day := toDate(t)
	if b.ValidFrom != nil && day.Before(toDate(*b.ValidFrom)) {
		return false
	}
	if b.ValidUntil != nil && day.After(toDate(*b.ValidUntil)) {
		return false
	}

	return true
}

func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Rule is a targeting predicate plus a discount payload. A rule with every
// targeting field empty is a global rule and matches every vehicle at the
// lowest priority tier.
type Rule struct {
	ID              string          `json:"id" db:"id"`
	ModelCodes      []string        `json:"model_codes,omitempty" db:"model_codes"`
	BodyGroups      []string        `json:"body_groups,omitempty" db:"body_groups"`
	YearMin         *int            `json:"year_min,omitempty" db:"year_min"`
	YearMax         *int            `json:"year_max,omitempty" db:"year_max"`
	DiscountPercent decimal.Decimal `json:"discount_percent" db:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount" db:"discount_amount"`
}

// IsGlobal reports whether the rule declares no targeting dimension at all
func (r *Rule) IsGlobal() bool {
	return len(r.ModelCodes) == 0 && len(r.BodyGroups) == 0 && r.YearMin == nil && r.YearMax == nil
}

// IsUsable checks the invariant that a rule carries a non-zero discount
// percent or amount
func (r *Rule) IsUsable() bool {
	return r.DiscountPercent.IsPositive() || r.DiscountAmount.IsPositive()
}

// EffectiveDiscount is the currency value this rule would subtract from the
// given list price: the percent and flat components are summed, not
// compounded.
func (r *Rule) EffectiveDiscount(listPrice decimal.Decimal) decimal.Decimal {
	return listPrice.Mul(r.DiscountPercent).Div(decimal.NewFromInt(100)).Add(r.DiscountAmount)
}

// MatchResult identifies the winning bulletin and rule for a vehicle, the
// computed discount magnitude and the specificity score used to break ties.
// It is transient and never persisted.
type MatchResult struct {
	Bulletin    *Bulletin       `json:"bulletin"`
	Rule        *Rule           `json:"rule"`
	Discount    decimal.Decimal `json:"discount"`
	Specificity int             `json:"specificity"`
}
