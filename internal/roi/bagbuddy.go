package roi

import (
	"strings"

	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/config"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/pkg/constants"
)

// NewBagBuddyReport builds the interactive scenario sheet: shared platform
// assumptions feed conservative/moderate/optimistic performance columns,
// each with its own funnel and ROI metrics.
func NewBagBuddyReport(a config.BagBuddyAssumptions) (*sheet.Report, error) {
	scenarios := a.Scenarios
	if len(scenarios) == 0 {
		scenarios = config.DefaultScenarios()
	}

	r := sheet.NewReport("BagBuddy ROI Calculator")

	platform := r.Section("Platform Constants")
	platform.Number("cost_per_slot", "Cost per Bag Slot", a.CostPerSlot, sheet.FormatCurrency)
	platform.Number("bags_per_quarter", "Bags Distributed per Quarter", a.BagsPerQuarter, sheet.FormatInteger)
	platform.Number("slots_per_bag", "Ad Slots per Bag", a.SlotsPerBag, sheet.FormatInteger)
	platform.Number("impressions_per_bag", "Impressions per Bag (per brand)", a.ImpressionsPerBag, sheet.FormatInteger)

	campaign := r.Section("Campaign Parameters")
	campaign.Number("num_quarters", "Number of Quarters", a.NumQuarters, sheet.FormatInteger)
	campaign.Number("avg_revenue", "Average Revenue per Conversion", a.AvgRevenuePerConversion, sheet.FormatCurrency)

	perf := r.Section("Performance Assumptions")
	for _, sc := range scenarios {
		p := scenarioPrefix(sc.Name)
		perf.Number(p+"_scan_rate", sc.Name+": Scan Rate", sc.ScanRatePercent, sheet.FormatPercent)
		perf.Number(p+"_conversion_rate", sc.Name+": Conversion Rate", sc.ConversionRatePercent, sheet.FormatPercent)
	}

	for _, sc := range scenarios {
		addScenarioResults(r, sc.Name)
	}

	return r, nil
}

func scenarioPrefix(name string) sheet.Address {
	return sheet.Address(strings.ToLower(strings.ReplaceAll(name, " ", "_")))
}

// addScenarioResults defines the calculated column for one scenario. Cell
// addresses are prefixed with the scenario name so all three columns share
// the platform constants.
func addScenarioResults(r *sheet.Report, scenario string) {
	p := scenarioPrefix(scenario)
	addr := func(suffix string) sheet.Address { return p + sheet.Address(suffix) }
	ref := func(suffix string) sheet.Expr { return sheet.Ref(addr(suffix)) }

	sec := r.Section("Calculated Results: " + scenario)

	sec.Formula(addr("_campaign_cost"), "Campaign Cost",
		sheet.Mul(sheet.Ref("cost_per_slot"), sheet.Ref("bags_per_quarter"), sheet.Ref("num_quarters")),
		sheet.FormatCurrency)
	sec.Formula(addr("_total_bags"), "Total Bags",
		sheet.Mul(sheet.Ref("bags_per_quarter"), sheet.Ref("num_quarters")),
		sheet.FormatInteger)
	sec.Formula(addr("_physical_impressions"), "Physical Impressions",
		sheet.Mul(ref("_total_bags"), sheet.Ref("impressions_per_bag")),
		sheet.FormatInteger)
	sec.Formula(addr("_qr_scans"), "QR Code Scans",
		sheet.Trunc(sheet.Div(sheet.Mul(ref("_total_bags"), ref("_scan_rate")), sheet.Num(100))),
		sheet.FormatInteger)
	// Each scan is one digital impression.
	sec.Formula(addr("_digital_impressions"), "Digital Impressions (from scans)",
		ref("_qr_scans"),
		sheet.FormatInteger)
	sec.Formula(addr("_total_impressions"), "Total Impressions",
		sheet.Add(ref("_physical_impressions"), ref("_digital_impressions")),
		sheet.FormatInteger)
	sec.Formula(addr("_conversions"), "Conversions/Sales",
		sheet.Trunc(sheet.Div(sheet.Mul(ref("_qr_scans"), ref("_conversion_rate")), sheet.Num(100))),
		sheet.FormatInteger)
	sec.Formula(addr("_revenue"), "Total Revenue",
		sheet.Mul(ref("_conversions"), sheet.Ref("avg_revenue")),
		sheet.FormatCurrency)
	sec.Formula(addr("_net_profit"), "Net Profit/Loss",
		sheet.Sub(ref("_revenue"), ref("_campaign_cost")),
		sheet.FormatCurrency)
	sec.Formula(addr("_roi"), "ROI",
		sheet.Mul(guardedRatio(sheet.Sub(ref("_revenue"), ref("_campaign_cost")), addr("_campaign_cost")), sheet.Num(100)),
		sheet.FormatPercent)
	sec.Formula(addr("_cpi"), "Cost per Impression (CPI)",
		guardedRatio(ref("_campaign_cost"), addr("_total_impressions")),
		sheet.FormatCurrency4)
	sec.Formula(addr("_cpe"), "Cost per Engagement (CPE)",
		guardedRatio(ref("_campaign_cost"), addr("_qr_scans")),
		sheet.FormatCurrency)
	sec.Formula(addr("_cpa"), "Cost per Conversion (CPA)",
		guardedRatio(ref("_campaign_cost"), addr("_conversions")),
		sheet.FormatCurrency)
	// Environmental impact: one tree planted per $1000 of revenue.
	sec.Formula(addr("_trees_planted"), "Trees Planted",
		sheet.Div(ref("_revenue"), sheet.Num(constants.TreesPerRevenueDollar)),
		sheet.FormatNumber)
}
