package dto

import (
	"context"
	"time"

	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/bulletin"
	ierr "github.com/lukilot/bawaria-motors-configurator-sub000/internal/errors"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/types"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateBulletinRequest represents the request to create a new bulletin
type CreateBulletinRequest struct {
	Name       string              `json:"name" validate:"required"`
	ValidFrom  *time.Time          `json:"valid_from,omitempty"`
	ValidUntil *time.Time          `json:"valid_until,omitempty"`
	Enabled    bool                `json:"enabled"`
	Rules      []CreateRuleRequest `json:"rules" validate:"required,min=1,dive"`
}

// CreateRuleRequest represents one targeting rule inside a bulletin
type CreateRuleRequest struct {
	ModelCodes      []string        `json:"model_codes,omitempty"`
	BodyGroups      []string        `json:"body_groups,omitempty"`
	YearMin         *int            `json:"year_min,omitempty"`
	YearMax         *int            `json:"year_max,omitempty"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
}

func (r *CreateBulletinRequest) Validate() error {
	if r.ValidFrom != nil && r.ValidUntil != nil && r.ValidUntil.Before(*r.ValidFrom) {
		return ierr.NewError("valid_until cannot be before valid_from").
			WithHint("Bulletin validity window is inverted").
			Mark(ierr.ErrValidation)
	}

	for i, rule := range r.Rules {
		if err := rule.Validate(); err != nil {
			return ierr.WithError(err).
				WithHintf("Rule %d is invalid", i+1).
				Mark(ierr.ErrValidation)
		}
	}

	return validator.ValidateRequest(r)
}

func (r *CreateRuleRequest) Validate() error {
	if r.DiscountPercent.IsNegative() || r.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return ierr.NewError("discount_percent must be between 0 and 100").
			WithHint("Discount percent is out of range").
			WithReportableDetails(map[string]any{
				"discount_percent": r.DiscountPercent.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if r.DiscountAmount.IsNegative() {
		return ierr.NewError("discount_amount cannot be negative").
			WithHint("Discount amount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if !r.DiscountPercent.IsPositive() && !r.DiscountAmount.IsPositive() {
		return ierr.NewError("rule must carry a non-zero discount percent or amount").
			WithHint("A rule without any discount payload is unusable").
			Mark(ierr.ErrValidation)
	}
	if r.YearMin != nil && r.YearMax != nil && *r.YearMax < *r.YearMin {
		return ierr.NewError("year_max cannot be below year_min").
			WithHint("Production year window is inverted").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToBulletin converts the request to a domain bulletin
func (r *CreateBulletinRequest) ToBulletin(ctx context.Context) *bulletin.Bulletin {
	rules := make([]*bulletin.Rule, len(r.Rules))
	for i, rule := range r.Rules {
		rules[i] = &bulletin.Rule{
			ID:              types.GenerateUUID(),
			ModelCodes:      rule.ModelCodes,
			BodyGroups:      rule.BodyGroups,
			YearMin:         rule.YearMin,
			YearMax:         rule.YearMax,
			DiscountPercent: rule.DiscountPercent,
			DiscountAmount:  rule.DiscountAmount,
		}
	}

	return &bulletin.Bulletin{
		ID:         types.GenerateUUID(),
		Name:       r.Name,
		ValidFrom:  r.ValidFrom,
		ValidUntil: r.ValidUntil,
		Enabled:    r.Enabled,
		Rules:      rules,
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}
}

// BulletinResponse represents a bulletin in responses
type BulletinResponse struct {
	bulletin.Bulletin
}

// NewBulletinResponse creates a new bulletin response from a domain bulletin
func NewBulletinResponse(b *bulletin.Bulletin) *BulletinResponse {
	if b == nil {
		return nil
	}
	return &BulletinResponse{Bulletin: *b}
}
