package roi

import (
	"math"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/config"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
)

// cellNumber fetches the evaluated numeric value of one cell.
func cellNumber(t *testing.T, r *sheet.Report, addr sheet.Address) float64 {
	t.Helper()
	c, err := r.Get(addr)
	if err != nil {
		t.Fatalf("Get(%s) unexpected error: %v", addr, err)
	}
	v, ok := c.Value()
	if !ok {
		t.Fatalf("cell %s has no value", addr)
	}
	if v.IsText {
		t.Fatalf("cell %s holds text %q, expected a number", addr, v.Text)
	}
	return v.Number
}

func checkCells(t *testing.T, r *sheet.Report, expected map[sheet.Address]float64) {
	t.Helper()
	for addr, want := range expected {
		if got := cellNumber(t, r, addr); math.Abs(got-want) > 1e-9 {
			t.Errorf("cell %s = %v, expected %v", addr, got, want)
		}
	}
}

func TestDigitalAdsDefaults(t *testing.T) {
	conf := config.DefaultConfiguration()
	report, err := BuildTemplate(TemplateDigitalAds, *conf)
	if err != nil {
		t.Fatalf("BuildTemplate(%s) unexpected error: %v", TemplateDigitalAds, err)
	}

	checkCells(t, report, map[sheet.Address]float64{
		"total_impressions":   100000,
		"total_clicks":        1000,
		"total_conversions":   25,
		"total_sales":         625,
		"net_profit":          -375,
		"roi_percent":         -37.5,
		"cost_per_click":      1.0,
		"cost_per_conversion": 40.0,
		"roas":                0.625,
	})
}

func TestDigitalAdsZeroCPM(t *testing.T) {
	conf := config.DefaultConfiguration()
	conf.Reports.DigitalAds.CPM = 0
	report, err := BuildTemplate(TemplateDigitalAds, *conf)
	if err != nil {
		t.Fatalf("BuildTemplate unexpected error: %v", err)
	}

	// A zero CPM collapses the funnel rather than dividing by zero.
	checkCells(t, report, map[sheet.Address]float64{
		"total_impressions": 0,
		"total_clicks":      0,
		"total_sales":       0,
		"roi_percent":       -100,
	})
}

func TestFlyerDefaults(t *testing.T) {
	conf := config.DefaultConfiguration()
	report, err := BuildTemplate(TemplateFlyer, *conf)
	if err != nil {
		t.Fatalf("BuildTemplate(%s) unexpected error: %v", TemplateFlyer, err)
	}

	checkCells(t, report, map[sheet.Address]float64{
		"total_print_cost":        600,
		"total_distribution_cost": 500,
		"campaign_cost":           1100,
		"total_impressions":       5000,
		"total_responses":         40,
		"total_conversions":       4,
		"total_sales":             100,
		"net_profit":              -1000,
		"cost_per_impression":     0.22,
		"cost_per_response":       27.5,
		"cost_per_conversion":     275,
	})
	if roi := cellNumber(t, report, "roi_percent"); math.Abs(roi-(-1000.0/1100.0*100)) > 1e-9 {
		t.Errorf("roi_percent = %v, expected %v", roi, -1000.0/1100.0*100)
	}
}

func TestBagBuddyScenarios(t *testing.T) {
	conf := config.DefaultConfiguration()
	report, err := BuildTemplate(TemplateBagBuddy, *conf)
	if err != nil {
		t.Fatalf("BuildTemplate(%s) unexpected error: %v", TemplateBagBuddy, err)
	}

	// Conservative: 2% scan rate, 20% conversion over 5000 bags at $0.15/slot.
	checkCells(t, report, map[sheet.Address]float64{
		"conservative_campaign_cost":        750,
		"conservative_total_bags":           5000,
		"conservative_physical_impressions": 25000,
		"conservative_qr_scans":             100,
		"conservative_digital_impressions":  100,
		"conservative_total_impressions":    25100,
		"conservative_conversions":          20,
		"conservative_revenue":              500,
		"conservative_net_profit":           -250,
		"conservative_trees_planted":        0.5,
	})
	if roi := cellNumber(t, report, "conservative_roi"); math.Abs(roi-(-100.0/3)) > 1e-9 {
		t.Errorf("conservative_roi = %v, expected %v", roi, -100.0/3)
	}

	// All three default scenarios share the platform constants.
	for _, prefix := range []sheet.Address{"conservative", "moderate", "optimistic"} {
		if cost := cellNumber(t, report, prefix+"_campaign_cost"); cost != 750 {
			t.Errorf("%s_campaign_cost = %v, expected 750", prefix, cost)
		}
	}
}

func TestBagBuddyCustomScenario(t *testing.T) {
	conf := config.DefaultConfiguration()
	conf.Reports.BagBuddy.Scenarios = []config.BagBuddyScenario{
		{Name: "Pilot Launch", ScanRatePercent: 4.0, ConversionRatePercent: 50.0},
	}
	report, err := BuildTemplate(TemplateBagBuddy, *conf)
	if err != nil {
		t.Fatalf("BuildTemplate unexpected error: %v", err)
	}

	// Scenario names with spaces map to underscore prefixes.
	checkCells(t, report, map[sheet.Address]float64{
		"pilot_launch_qr_scans":    200,
		"pilot_launch_conversions": 100,
		"pilot_launch_revenue":     2500,
	})
}

func TestInvestorDefaults(t *testing.T) {
	conf := config.DefaultConfiguration()
	report, err := BuildTemplate(TemplateInvestor, *conf)
	if err != nil {
		t.Fatalf("BuildTemplate(%s) unexpected error: %v", TemplateInvestor, err)
	}

	checkCells(t, report, map[sheet.Address]float64{
		"unrealized_gain": 50000,
		"roi_percent":     50,
		"moic":            1.5,
	})
	annualized := cellNumber(t, report, "annualized_return")
	expected := (math.Pow(1.5, 0.5) - 1) * 100
	if math.Abs(annualized-expected) > 1e-9 {
		t.Errorf("annualized_return = %v, expected %v", annualized, expected)
	}
	margin := cellNumber(t, report, "profit_margin")
	if math.Abs(margin-100.0/3) > 1e-9 {
		t.Errorf("profit_margin = %v, expected %v", margin, 100.0/3)
	}
}

func TestInvestorZeroGuards(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.InvestorAssumptions)
		address sheet.Address
	}{
		{"zero period", func(a *config.InvestorAssumptions) { a.InvestmentPeriodYears = 0 }, "annualized_return"},
		{"zero investment", func(a *config.InvestorAssumptions) { a.InitialInvestment = 0 }, "annualized_return"},
		{"zero current value", func(a *config.InvestorAssumptions) { a.CurrentValue = 0 }, "profit_margin"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			conf := config.DefaultConfiguration()
			test.mutate(&conf.Reports.Investor)
			report, err := BuildTemplate(TemplateInvestor, *conf)
			if err != nil {
				t.Fatalf("BuildTemplate unexpected error: %v", err)
			}
			if got := cellNumber(t, report, test.address); got != 0 {
				t.Errorf("%s = %v, expected 0", test.address, got)
			}
		})
	}
}

func TestCrossChannelPicksBetterChannel(t *testing.T) {
	conf := config.DefaultConfiguration()
	report, err := BuildTemplate(TemplateCrossChannel, *conf)
	if err != nil {
		t.Fatalf("BuildTemplate(%s) unexpected error: %v", TemplateCrossChannel, err)
	}

	adsROI := cellNumber(t, report, "ads_roi_percent")
	flyerROI := cellNumber(t, report, "flyer_roi_percent")
	if diff := cellNumber(t, report, "roi_difference"); math.Abs(diff-(adsROI-flyerROI)) > 1e-9 {
		t.Errorf("roi_difference = %v, expected %v", diff, adsROI-flyerROI)
	}

	c, err := report.Get("better_channel")
	if err != nil {
		t.Fatalf("Get(better_channel) unexpected error: %v", err)
	}
	v, ok := c.Value()
	if !ok {
		t.Fatal("better_channel has no value")
	}
	if !v.IsText {
		t.Fatalf("better_channel = %v, expected a text verdict", v)
	}
	// Defaults: ads lose 37.5% while flyers lose 90.9%.
	if v.Text != "Digital Ads" {
		t.Errorf("better_channel = %q, expected %q", v.Text, "Digital Ads")
	}
}

func TestComparisonPortfolio(t *testing.T) {
	conf := config.DefaultConfiguration()
	conf.Reports.Comparison = config.ComparisonConfig{
		Enabled: true,
		Campaigns: []config.CampaignRecord{
			{
				CampaignID:      "Spring-Promo",
				CampaignName:    "Spring Promo",
				TotalInvestment: 1000,
				TotalRevenue:    2500,
				NewCustomers:    50,
				Impressions:     100000,
				Engagements:     2000,
				Clicks:          1000,
				Conversions:     50,
				AdSpend:         800,
				CreativeCost:    150,
				PlatformFee:     50,
			},
			{
				CampaignID:      "fall push",
				CampaignName:    "Fall Push",
				TotalInvestment: 2000,
				TotalRevenue:    3000,
				NewCustomers:    100,
				Impressions:     200000,
				Engagements:     3000,
				Clicks:          1500,
				Conversions:     100,
				AdSpend:         1700,
				CreativeCost:    200,
				PlatformFee:     100,
			},
		},
	}
	report, err := NewComparisonReport(conf.Reports.Comparison)
	if err != nil {
		t.Fatalf("NewComparisonReport unexpected error: %v", err)
	}
	if err := report.Seal(); err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}
	if err := report.Evaluate(); err != nil {
		t.Fatalf("Evaluate() unexpected error: %v", err)
	}

	checkCells(t, report, map[sheet.Address]float64{
		"spring_promo_roi":  150,
		"spring_promo_cac":  20,
		"spring_promo_roas": 2.5,
		"fall_push_roi":     50,
		"fall_push_cac":     20,
		"total_investment":  3000,
		"total_revenue":     5500,
		"total_profit":      2500,
		"total_customers":   150,
		"avg_roi":           100,
	})
	if overall := cellNumber(t, report, "overall_roi"); math.Abs(overall-2500.0/3000*100) > 1e-9 {
		t.Errorf("overall_roi = %v, expected %v", overall, 2500.0/3000*100)
	}
}

func TestComparisonRequiresCampaigns(t *testing.T) {
	_, err := NewComparisonReport(config.ComparisonConfig{Enabled: true})
	if err == nil || !strings.Contains(err.Error(), "at least one campaign") {
		t.Errorf("NewComparisonReport with no campaigns returned %v, expected an error", err)
	}
}

func TestBuildTemplateUnknownName(t *testing.T) {
	conf := config.DefaultConfiguration()
	_, err := BuildTemplate("payroll", *conf)
	if err == nil || !strings.Contains(err.Error(), "unknown report template") {
		t.Errorf("BuildTemplate(payroll) returned %v, expected unknown-template error", err)
	}
}

func TestBuildReportsRespectsEnabledFlags(t *testing.T) {
	conf := config.DefaultConfiguration()
	reports, err := BuildReports(zap.NewNop(), *conf)
	if err != nil {
		t.Fatalf("BuildReports unexpected error: %v", err)
	}
	// Defaults enable digital ads, flyer, bagbuddy, and commerce reward.
	if len(reports) != 4 {
		t.Fatalf("BuildReports returned %d reports, expected 4", len(reports))
	}

	conf.Reports.Flyer.Enabled = false
	conf.Reports.CommerceReward.Enabled = false
	reports, err = BuildReports(nil, *conf)
	if err != nil {
		t.Fatalf("BuildReports unexpected error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("BuildReports returned %d reports, expected 2", len(reports))
	}
}

func TestTemplateNames(t *testing.T) {
	names := TemplateNames()
	if len(names) != 7 {
		t.Fatalf("TemplateNames() returned %d names, expected 7", len(names))
	}
	for _, name := range names {
		conf := config.DefaultConfiguration()
		// The comparison template is data-driven and refuses to build
		// without at least one measured campaign.
		conf.Reports.Comparison.Campaigns = []config.CampaignRecord{
			{CampaignID: "spring-promo", CampaignName: "Spring Promo", TotalInvestment: 400, TotalRevenue: 1000, NewCustomers: 20},
		}
		if _, err := BuildTemplate(name, *conf); err != nil {
			t.Errorf("BuildTemplate(%s) unexpected error: %v", name, err)
		}
	}
}

func TestBuildTemplateComparison(t *testing.T) {
	conf := config.DefaultConfiguration()
	conf.Reports.Comparison.Campaigns = []config.CampaignRecord{
		{CampaignID: "spring-promo", CampaignName: "Spring Promo", TotalInvestment: 400, TotalRevenue: 1000, NewCustomers: 20},
	}
	report, err := BuildTemplate(TemplateComparison, *conf)
	if err != nil {
		t.Fatalf("BuildTemplate(%s) unexpected error: %v", TemplateComparison, err)
	}
	checkCells(t, report, map[sheet.Address]float64{
		"spring_promo_roi":  150,
		"spring_promo_cac":  20,
		"spring_promo_roas": 2.5,
	})
}
