package roi

import (
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/config"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
)

// NewDigitalAdsReport builds the digital advertising funnel:
// budget/CPM -> impressions -> clicks -> conversions -> revenue, with the
// standard cost-efficiency ratios.
func NewDigitalAdsReport(a config.DigitalAdsAssumptions) (*sheet.Report, error) {
	name := a.CampaignName
	if name == "" {
		name = "Digital Ads Campaign"
	}
	r := sheet.NewReport(name)

	setup := r.Section("Campaign Setup")
	setup.Number("ad_budget", "Ad Budget", a.AdBudget, sheet.FormatCurrency)
	setup.Number("cpm", "CPM (Cost per 1000 Impressions)", a.CPM, sheet.FormatCurrency)
	setup.Number("ctr_percent", "Click-Through Rate", a.CTRPercent, sheet.FormatPercent)
	setup.Number("conversion_rate_percent", "Conversion Rate", a.ConversionRatePercent, sheet.FormatPercent)
	setup.Number("avg_revenue_per_conversion", "Avg Revenue per Conversion", a.AvgRevenuePerConversion, sheet.FormatCurrency)

	funnel := r.Section("Performance Funnel")
	// Impressions = Budget / CPM * 1000, truncated to a whole count.
	funnel.Formula("total_impressions", "Total Impressions",
		sheet.Trunc(sheet.Mul(guardedRatio(sheet.Ref("ad_budget"), "cpm"), sheet.Num(1000))),
		sheet.FormatInteger)
	funnel.Formula("total_clicks", "Total Clicks",
		sheet.Trunc(sheet.Mul(sheet.Ref("total_impressions"), sheet.Div(sheet.Ref("ctr_percent"), sheet.Num(100)))),
		sheet.FormatInteger)
	funnel.Formula("total_conversions", "Total Conversions",
		sheet.Trunc(sheet.Mul(sheet.Ref("total_clicks"), sheet.Div(sheet.Ref("conversion_rate_percent"), sheet.Num(100)))),
		sheet.FormatInteger)

	revenue := r.Section("Revenue")
	revenue.Formula("total_sales", "Total Sales",
		sheet.Mul(sheet.Ref("total_conversions"), sheet.Ref("avg_revenue_per_conversion")),
		sheet.FormatCurrency)
	revenue.Formula("net_profit", "Net Profit/Loss",
		sheet.Sub(sheet.Ref("total_sales"), sheet.Ref("ad_budget")),
		sheet.FormatCurrency)

	metrics := r.Section("ROI & Cost Metrics")
	metrics.Formula("roi_percent", "ROI",
		sheet.Mul(guardedRatio(sheet.Sub(sheet.Ref("total_sales"), sheet.Ref("ad_budget")), "ad_budget"), sheet.Num(100)),
		sheet.FormatPercent)
	metrics.Formula("cost_per_click", "Cost per Click (CPC)",
		guardedRatio(sheet.Ref("ad_budget"), "total_clicks"),
		sheet.FormatCurrency)
	metrics.Formula("cost_per_conversion", "Cost per Conversion (CPA)",
		guardedRatio(sheet.Ref("ad_budget"), "total_conversions"),
		sheet.FormatCurrency)
	metrics.Formula("roas", "ROAS",
		guardedRatio(sheet.Ref("total_sales"), "ad_budget"),
		sheet.FormatNumber)

	return r, nil
}
