package roi

import (
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/config"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
)

// NewFlyerReport builds the print flyer campaign funnel. Each flyer is one
// impression; responses and conversions are whole counts derived from the
// configured rates.
func NewFlyerReport(a config.FlyerAssumptions) (*sheet.Report, error) {
	name := a.CampaignName
	if name == "" {
		name = "Flyer Campaign"
	}
	r := sheet.NewReport(name)

	setup := r.Section("Campaign Setup")
	setup.Number("num_flyers", "Number of Flyers", a.NumFlyers, sheet.FormatInteger)
	setup.Number("print_cost_per_flyer", "Print Cost per Flyer", a.PrintCostPerFlyer, sheet.FormatCurrency)
	setup.Number("distribution_cost_per_flyer", "Distribution Cost per Flyer", a.DistributionCostPerFlyer, sheet.FormatCurrency)
	setup.Number("response_rate_percent", "Response Rate", a.ResponseRatePercent, sheet.FormatPercent)
	setup.Number("conversion_rate_percent", "Conversion Rate", a.ConversionRatePercent, sheet.FormatPercent)
	setup.Number("avg_revenue_per_conversion", "Avg Revenue per Conversion", a.AvgRevenuePerConversion, sheet.FormatCurrency)

	costs := r.Section("Campaign Cost Breakdown")
	costs.Formula("total_print_cost", "Total Printing Cost",
		sheet.Mul(sheet.Ref("num_flyers"), sheet.Ref("print_cost_per_flyer")),
		sheet.FormatCurrency)
	costs.Formula("total_distribution_cost", "Total Distribution Cost",
		sheet.Mul(sheet.Ref("num_flyers"), sheet.Ref("distribution_cost_per_flyer")),
		sheet.FormatCurrency)
	costs.Formula("campaign_cost", "Total Campaign Cost",
		sheet.Add(sheet.Ref("total_print_cost"), sheet.Ref("total_distribution_cost")),
		sheet.FormatCurrency)

	funnel := r.Section("Performance Funnel")
	// Every distributed flyer counts as one impression.
	funnel.Formula("total_impressions", "Total Impressions",
		sheet.Ref("num_flyers"),
		sheet.FormatInteger)
	funnel.Formula("total_responses", "Total Responses",
		sheet.Trunc(sheet.Mul(sheet.Ref("num_flyers"), sheet.Div(sheet.Ref("response_rate_percent"), sheet.Num(100)))),
		sheet.FormatInteger)
	funnel.Formula("total_conversions", "Total Conversions",
		sheet.Trunc(sheet.Mul(sheet.Ref("total_responses"), sheet.Div(sheet.Ref("conversion_rate_percent"), sheet.Num(100)))),
		sheet.FormatInteger)

	revenue := r.Section("Revenue")
	revenue.Formula("total_sales", "Total Sales",
		sheet.Mul(sheet.Ref("total_conversions"), sheet.Ref("avg_revenue_per_conversion")),
		sheet.FormatCurrency)
	revenue.Formula("net_profit", "Net Profit/Loss",
		sheet.Sub(sheet.Ref("total_sales"), sheet.Ref("campaign_cost")),
		sheet.FormatCurrency)

	metrics := r.Section("ROI & Cost Metrics")
	metrics.Formula("roi_percent", "ROI",
		sheet.Mul(guardedRatio(sheet.Sub(sheet.Ref("total_sales"), sheet.Ref("campaign_cost")), "campaign_cost"), sheet.Num(100)),
		sheet.FormatPercent)
	metrics.Formula("cost_per_impression", "Cost per Impression (CPI)",
		guardedRatio(sheet.Ref("campaign_cost"), "total_impressions"),
		sheet.FormatCurrency4)
	metrics.Formula("cost_per_response", "Cost per Response",
		guardedRatio(sheet.Ref("campaign_cost"), "total_responses"),
		sheet.FormatCurrency)
	metrics.Formula("cost_per_conversion", "Cost per Conversion (CPA)",
		guardedRatio(sheet.Ref("campaign_cost"), "total_conversions"),
		sheet.FormatCurrency)
	metrics.Formula("roas", "ROAS",
		guardedRatio(sheet.Ref("total_sales"), "campaign_cost"),
		sheet.FormatNumber)

	return r, nil
}
