package roi

import (
	"math"
	"testing"

	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/config"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
)

func buildCommerceReward(t *testing.T, mutate func(*config.CommerceRewardAssumptions)) *sheet.Report {
	t.Helper()
	conf := config.DefaultConfiguration()
	if mutate != nil {
		mutate(&conf.Reports.CommerceReward)
	}
	report, err := BuildTemplate(TemplateCommerceReward, *conf)
	if err != nil {
		t.Fatalf("BuildTemplate(%s) unexpected error: %v", TemplateCommerceReward, err)
	}
	return report
}

func TestCommerceRewardPerUserEconomics(t *testing.T) {
	report := buildCommerceReward(t, nil)
	checkCells(t, report, map[sheet.Address]float64{
		"brand_spend_per_user":   2.40,
		"cash_credit_per_user":   0.72,
		"reward_points_per_user": 0.72,
		"total_rewards_per_user": 1.44,
		"margin_per_user":        0.96,
	})
	// Margin is 40% of the $0.20 CPV the brand pays.
	if pct := cellNumber(t, report, "margin_percentage_per_user"); math.Abs(pct-40) > 1e-9 {
		t.Errorf("margin_percentage_per_user = %v, expected 40", pct)
	}
}

func TestCommerceRewardTierLimits(t *testing.T) {
	report := buildCommerceReward(t, nil)
	checkCells(t, report, map[sheet.Address]float64{
		"bronze_cash_limit":          0.40,
		"silver_cash_limit":          1.20,
		"gold_cash_limit":            2.80,
		"platinum_cash_limit":        30,
		"bronze_max_monthly_views":   6,
		"silver_max_monthly_views":   20,
		"gold_max_monthly_views":     46,
		"platinum_max_monthly_views": 500,
		"weighted_avg_cash_limit":    1.776,
	})
}

func TestCommerceRewardMonthlySummary(t *testing.T) {
	report := buildCommerceReward(t, nil)
	checkCells(t, report, map[sheet.Address]float64{
		"monthly_bag_revenue":  4000,
		"monthly_active_users": 6000,
		"monthly_ad_views":     72000,
		"monthly_ad_revenue":   14400,
	})
}

func TestCommerceRewardGrowthProjection(t *testing.T) {
	report := buildCommerceReward(t, nil)

	// 15% quarterly bag growth and 25% brand growth from Q1 on.
	checkCells(t, report, map[sheet.Address]float64{
		"bags_q1":   10000,
		"bags_q2":   11500,
		"bags_q4":   10000 * 1.15 * 1.15 * 1.15,
		"brands_q1": 10,
		"brands_q4": 10 * 1.25 * 1.25 * 1.25,
	})

	// Q1 has no brand growth yet, so the fill rate sits at the base.
	if fr := cellNumber(t, report, "fill_rate_q1"); math.Abs(fr-0.85) > 1e-9 {
		t.Errorf("fill_rate_q1 = %v, expected 0.85", fr)
	}
	// Each quarter may only improve toward the cap, never past it.
	prev := 0.0
	for _, addr := range []sheet.Address{"fill_rate_q1", "fill_rate_q2", "fill_rate_q3", "fill_rate_q4"} {
		fr := cellNumber(t, report, addr)
		if fr < prev {
			t.Errorf("%s = %v decreased from %v", addr, fr, prev)
		}
		if fr > 0.95+1e-9 {
			t.Errorf("%s = %v exceeds the 0.95 cap", addr, fr)
		}
		prev = fr
	}
}

func TestCommerceRewardFillRateCap(t *testing.T) {
	report := buildCommerceReward(t, func(a *config.CommerceRewardAssumptions) {
		a.FillRateImprovementFactor = 5.0
	})
	// An extreme improvement factor saturates at the configured cap.
	if fr := cellNumber(t, report, "fill_rate_q4"); math.Abs(fr-0.95) > 1e-9 {
		t.Errorf("fill_rate_q4 = %v, expected the 0.95 cap", fr)
	}
}
