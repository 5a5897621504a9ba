// Package wms derives warehouse figures: unit conversions, the category
// tree, cycle count differences and stock levels.
package wms

import (
	"strconv"

	"erp/internal/models"
)

// BaseUnit is the unit every conversion chain ends at.
const BaseUnit = "EA"

const (
	ConversionBase       = "기본 단위"
	ConversionImpossible = "변환 불가"
)

// ConversionRate multiplies rates along the base-unit chain of code until it
// reaches EA. ok is false for unknown units, broken chains and cycles.
func ConversionRate(units []models.Unit, code string) (rate float64, ok bool) {
	byCode := make(map[string]models.Unit, len(units))
	for _, u := range units {
		byCode[u.Code] = u
	}
	u, found := byCode[code]
	if !found {
		return 0, false
	}
	if u.Code == u.BaseUnit {
		return 1, u.Code == BaseUnit
	}
	rate = u.ConversionRate
	seen := map[string]bool{u.Code: true}
	current := u.BaseUnit
	for current != BaseUnit {
		if seen[current] {
			return 0, false
		}
		seen[current] = true
		parent, found := byCode[current]
		if !found {
			return 0, false
		}
		rate *= parent.ConversionRate
		current = parent.BaseUnit
	}
	return rate, true
}

// Conversion renders the conversion column, e.g. "1BOX = 12EA".
func Conversion(units []models.Unit, u models.Unit) string {
	if u.BaseUnit == u.Code {
		return ConversionBase
	}
	rate, ok := ConversionRate(units, u.Code)
	if !ok {
		return ConversionImpossible
	}
	return "1" + u.Code + " = " + strconv.FormatFloat(rate, 'f', -1, 64) + BaseUnit
}

// BaseUnitCount counts units that are their own base.
func BaseUnitCount(units []models.Unit) int {
	n := 0
	for _, u := range units {
		if u.BaseUnit == u.Code {
			n++
		}
	}
	return n
}
