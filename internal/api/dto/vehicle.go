package dto

import (
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/bulletin"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/vehicle"
	"github.com/shopspring/decimal"
)

// VehicleResponse represents a vehicle in responses, together with the
// resolved display price and, for transparency UIs, the identifiers of the
// winning bulletin and rule when a discount applied.
type VehicleResponse struct {
	vehicle.Vehicle
	DisplayPrice      decimal.Decimal `json:"display_price"`
	AppliedBulletinID *string         `json:"applied_bulletin_id,omitempty"`
	AppliedRuleID     *string         `json:"applied_rule_id,omitempty"`
}

// NewVehicleResponse creates a vehicle response from a domain vehicle, the
// resolved display price and the winning match, if any
func NewVehicleResponse(v *vehicle.Vehicle, displayPrice decimal.Decimal, match *bulletin.MatchResult) *VehicleResponse {
	if v == nil {
		return nil
	}

	resp := &VehicleResponse{
		Vehicle:      *v,
		DisplayPrice: displayPrice,
	}
	if match != nil {
		resp.AppliedBulletinID = &match.Bulletin.ID
		resp.AppliedRuleID = &match.Rule.ID
	}
	return resp
}
