package model

import "strings"

// Canonical rate tier durations, in band order. The position carries meaning:
// index 0 is the per-day rate, 1 the weekly flat rate, 2 the two-week flat
// rate, 3 the monthly flat rate.
var CanonicalTierDurations = [4]string{"1 Day", "7 Days", "2 Weeks", "1 Month"}

// RateTier is one row of a vehicle's duration-banded pricing table. All
// fields are display strings as entered by the operator ("£3,500", "700 km").
type RateTier struct {
	Duration    string `json:"duration"`
	Charge      string `json:"charge"`
	MaxKM       string `json:"max_km"`
	ExtraCharge string `json:"extra_charge"`
}

// DefaultRateTiers returns a fresh table with the four canonical durations
// and blank charges, the shape every new vehicle form starts from.
func DefaultRateTiers() []RateTier {
	tiers := make([]RateTier, 0, len(CanonicalTierDurations))
	for _, duration := range CanonicalTierDurations {
		tiers = append(tiers, RateTier{Duration: duration})
	}
	return tiers
}

// Vehicle 描述车队中的一辆车。Slug 是主键，创建时由名称派生，
// 更新时沿用原有路由键，绝不重新派生。
type Vehicle struct {
	Slug          string     `json:"slug"`
	Name          string     `json:"name"`
	Price         string     `json:"price"`
	CC            string     `json:"cc"`
	Fuel          string     `json:"fuel"`
	TopSpeed      string     `json:"topSpeed"`
	Description   string     `json:"description"`
	Image         string     `json:"image"`
	YearMF        string     `json:"year_mf"`
	FuelUse       string     `json:"fuel_use"`
	Color         string     `json:"color"`
	MaxPassengers string     `json:"max_passengers"`
	Transmission  string     `json:"transmission"`
	Type          string     `json:"type"`
	RentalCharges []RateTier `json:"rental_charges"`
}

// Slugify derives a vehicle slug from its display name: lower-cased, spaces
// replaced with hyphens. The derivation is idempotent, so slugifying an
// existing slug returns it unchanged.
func Slugify(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	return strings.Join(fields, "-")
}
