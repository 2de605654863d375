package vehicle

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductionYear(t *testing.T) {
	v := &Vehicle{ProductionDate: "2024-03-15"}
	year, ok := v.ProductionYear()
	assert.True(t, ok)
	assert.Equal(t, 2024, year)

	v = &Vehicle{ProductionDate: ""}
	_, ok = v.ProductionYear()
	assert.False(t, ok)

	v = &Vehicle{ProductionDate: "n/a"}
	_, ok = v.ProductionYear()
	assert.False(t, ok)
}

func TestEffectiveBodyGroup(t *testing.T) {
	v := &Vehicle{ModelCode: "28EM", BodyGroup: "G21"}
	assert.Equal(t, "G21", v.EffectiveBodyGroup())

	// feed left the body group empty, chassis lookup takes over
	v = &Vehicle{ModelCode: "28EM"}
	assert.Equal(t, "G20", v.EffectiveBodyGroup())

	v = &Vehicle{ModelCode: "unknown"}
	assert.Equal(t, "", v.EffectiveBodyGroup())
}

func TestHasOverridePrice(t *testing.T) {
	list := decimal.NewFromInt(233234)

	v := &Vehicle{ListPrice: list}
	assert.False(t, v.HasOverridePrice())

	override := decimal.NewFromInt(200000)
	v = &Vehicle{ListPrice: list, SpecialPrice: &override}
	assert.True(t, v.HasOverridePrice())

	// an override at or above list price is not honoured
	equal := list
	v = &Vehicle{ListPrice: list, SpecialPrice: &equal}
	assert.False(t, v.HasOverridePrice())
}
