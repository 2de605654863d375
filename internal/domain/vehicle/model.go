package vehicle

import (
	"strconv"

	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/types"
	"github.com/shopspring/decimal"
)

// Vehicle represents one physical unit from the manufacturer stock feed.
// Vehicles are created or replaced wholesale on each feed import; the
// normalizer is the only writer of derived fields.
type Vehicle struct {
	VIN            string               `json:"vin" db:"vin"`
	StatusCode     int                  `json:"status_code" db:"status_code"`
	ModelCode      string               `json:"model_code" db:"model_code"`
	ModelName      string               `json:"model_name" db:"model_name"`
	BodyGroup      string               `json:"body_group,omitempty" db:"body_group"`
	ColorCode      string               `json:"color_code" db:"color_code"`
	UpholsteryCode string               `json:"upholstery_code" db:"upholstery_code"`
	OptionCodes    []string             `json:"option_codes" db:"option_codes"`
	ListPrice      decimal.Decimal      `json:"list_price" db:"list_price"`
	SpecialPrice   *decimal.Decimal     `json:"special_price,omitempty" db:"special_price"`
	ProductionDate string               `json:"production_date" db:"production_date"`
	SalesStatus    string               `json:"sales_status" db:"sales_status"`
	Reservation    string               `json:"reservation" db:"reservation"`
	Visibility     types.Visibility     `json:"visibility" db:"visibility"`
	ProcessingType types.ProcessingType `json:"processing_type" db:"processing_type"`
}

// ProductionYear returns the production year parsed from the first four
// characters of the production date. The second return value is false when
// no parseable year is present.
func (v *Vehicle) ProductionYear() (int, bool) {
	if len(v.ProductionDate) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(v.ProductionDate[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// EffectiveBodyGroup returns the body group from the feed, or the static
// chassis fallback derived from the model code when the feed left it empty.
func (v *Vehicle) EffectiveBodyGroup() string {
	if v.BodyGroup != "" {
		return v.BodyGroup
	}
	return FallbackChassis(v.ModelCode)
}

// HasOverridePrice reports whether a manually-set special price is present
// and strictly below the list price. Only such overrides are honoured.
func (v *Vehicle) HasOverridePrice() bool {
	return v.SpecialPrice != nil && v.SpecialPrice.LessThan(v.ListPrice)
}
