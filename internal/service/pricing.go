package service

import (
	"strconv"
	"strings"

	"github.com/motorent/internal/model"
)

// chargeDigits 去掉货币符号与千分位后解析整数，无数字时返回 0。
func chargeDigits(charge string) int {
	var digits strings.Builder
	for _, r := range charge {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	value, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return value
}

// PriceForTiers maps a rental duration onto the rate table. The table is a
// step function over the canonical bands: the monthly flat rate from 30 days,
// the two-week flat rate from 14, the weekly flat rate from 7, and the daily
// rate multiplied out below that. There is no interpolation between bands, so
// six days at the daily rate may cost more than the seven-day flat rate; the
// bulk discount only applies past the threshold.
//
// A table with fewer than four tiers cannot be priced; ok is false and the
// caller falls back to the vehicle's flat price.
func PriceForTiers(days int, tiers []model.RateTier) (price int, ok bool) {
	if len(tiers) < 4 {
		return 0, false
	}
	switch {
	case days >= 30:
		return chargeDigits(tiers[3].Charge), true
	case days >= 14:
		return chargeDigits(tiers[2].Charge), true
	case days >= 7:
		return chargeDigits(tiers[1].Charge), true
	default:
		return chargeDigits(tiers[0].Charge) * days, true
	}
}

// PriceFor prices a rental of the given whole-day duration for a vehicle,
// falling back to the flat price field when the rate table is incomplete.
func PriceFor(days int, vehicle model.Vehicle) int {
	if days < 1 {
		days = 1
	}
	if price, ok := PriceForTiers(days, vehicle.RentalCharges); ok {
		return price
	}
	return chargeDigits(vehicle.Price)
}
