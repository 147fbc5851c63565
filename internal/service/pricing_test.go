package service

import (
	"testing"

	"github.com/motorent/internal/model"
)

func rateTable(daily, weekly, fortnight, monthly string) []model.RateTier {
	return []model.RateTier{
		{Duration: "1 Day", Charge: daily},
		{Duration: "7 Days", Charge: weekly},
		{Duration: "2 Weeks", Charge: fortnight},
		{Duration: "1 Month", Charge: monthly},
	}
}

func TestPriceForTiersBoundaries(t *testing.T) {
	tiers := rateTable("£600", "£3,000", "£5,500", "£9,000")

	cases := []struct {
		days int
		want int
	}{
		{1, 600},
		{6, 3600},
		{7, 3000},
		{13, 3000},
		{14, 5500},
		{29, 5500},
		{30, 9000},
		{31, 9000},
		{365, 9000},
	}

	for _, tc := range cases {
		got, ok := PriceForTiers(tc.days, tiers)
		if !ok {
			t.Fatalf("days=%d: expected a priced result", tc.days)
		}
		if got != tc.want {
			t.Fatalf("days=%d: expected %d, got %d", tc.days, tc.want, got)
		}
	}
}

func TestPriceForTiersMultipliesDailyRate(t *testing.T) {
	tiers := rateTable("£500", "£3,000", "£5,500", "£9,000")
	for days := 1; days <= 6; days++ {
		got, _ := PriceForTiers(days, tiers)
		if got != 500*days {
			t.Fatalf("days=%d: expected %d, got %d", days, 500*days, got)
		}
	}
}

// 六天按日价累加可能比七天的整租价还贵，这是有意的阶梯折扣设计。
func TestShortDurationMayExceedWeeklyRate(t *testing.T) {
	tiers := rateTable("£1,000", "£5,000", "£9,000", "£15,000")
	sixDays, _ := PriceForTiers(6, tiers)
	sevenDays, _ := PriceForTiers(7, tiers)
	if sixDays <= sevenDays {
		t.Fatalf("expected the step discontinuity: 6 days (%d) should exceed 7 days (%d)", sixDays, sevenDays)
	}
}

func TestPriceForYamahaScenario(t *testing.T) {
	vehicle := model.Vehicle{
		Name: "Yamaha R15",
		RentalCharges: rateTable("£1,000", "£6,000", "£10,000", "£15,000"),
	}

	cases := []struct {
		days int
		want int
	}{
		{1, 1000},
		{6, 6000},
		{7, 6000},
		{20, 10000},
		{45, 15000},
	}
	for _, tc := range cases {
		if got := PriceFor(tc.days, vehicle); got != tc.want {
			t.Fatalf("days=%d: expected %d, got %d", tc.days, tc.want, got)
		}
	}
}

func TestPriceForFallsBackToFlatPrice(t *testing.T) {
	vehicle := model.Vehicle{
		Name:  "Honda CB350",
		Price: "£2,400",
		RentalCharges: []model.RateTier{
			{Duration: "1 Day", Charge: "£400"},
		},
	}
	if got := PriceFor(10, vehicle); got != 2400 {
		t.Fatalf("expected flat-price fallback 2400, got %d", got)
	}
}

func TestChargeWithoutDigitsPricesToZero(t *testing.T) {
	tiers := rateTable("TBC", "£3,000", "£5,500", "£9,000")
	got, ok := PriceForTiers(3, tiers)
	if !ok {
		t.Fatal("expected a priced result")
	}
	if got != 0 {
		t.Fatalf("digit-free charge must price to 0, got %d", got)
	}
}

func TestPriceForIsPure(t *testing.T) {
	vehicle := model.Vehicle{RentalCharges: rateTable("£500", "£3,000", "£5,500", "£9,000")}
	first := PriceFor(14, vehicle)
	for i := 0; i < 5; i++ {
		if PriceFor(14, vehicle) != first {
			t.Fatal("repeated calls with identical inputs must agree")
		}
	}
}
