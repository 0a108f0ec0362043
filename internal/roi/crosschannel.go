package roi

import (
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/config"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
)

// NewCrossChannelReport builds the side-by-side channel sheet: the digital
// ads funnel and the flyer funnel computed in one sheet with prefixed
// addresses, followed by a head-to-head comparison.
func NewCrossChannelReport(ads config.DigitalAdsAssumptions, flyer config.FlyerAssumptions) (*sheet.Report, error) {
	r := sheet.NewReport("Cross-Channel Comparison")

	addDigitalChannel(r, ads)
	addFlyerChannel(r, flyer)

	cmp := r.Section("Head to Head")
	cmp.Formula("roi_difference", "ROI Difference (Ads - Flyer)",
		sheet.Sub(sheet.Ref("ads_roi_percent"), sheet.Ref("flyer_roi_percent")), sheet.FormatPercent)
	cmp.Formula("profit_difference", "Net Profit Difference (Ads - Flyer)",
		sheet.Sub(sheet.Ref("ads_net_profit"), sheet.Ref("flyer_net_profit")), sheet.FormatCurrency)
	cmp.Formula("cpa_difference", "Cost per Conversion Difference (Ads - Flyer)",
		sheet.Sub(sheet.Ref("ads_cost_per_conversion"), sheet.Ref("flyer_cost_per_conversion")), sheet.FormatCurrency)
	cmp.Formula("total_spend", "Combined Spend",
		sheet.Add(sheet.Ref("ads_budget"), sheet.Ref("flyer_campaign_cost")), sheet.FormatCurrency)
	cmp.Formula("total_sales", "Combined Sales",
		sheet.Add(sheet.Ref("ads_total_sales"), sheet.Ref("flyer_total_sales")), sheet.FormatCurrency)
	cmp.Formula("blended_roi", "Blended ROI",
		sheet.Mul(guardedRatio(
			sheet.Sub(sheet.Ref("total_sales"), sheet.Ref("total_spend")),
			"total_spend"), sheet.Num(100)), sheet.FormatPercent)
	cmp.Formula("better_channel", "Better ROI Channel",
		sheet.If(sheet.Lt(sheet.Ref("flyer_roi_percent"), sheet.Ref("ads_roi_percent")),
			sheet.Str("Digital Ads"), sheet.Str("Flyer")), sheet.FormatText)

	return r, nil
}

func addDigitalChannel(r *sheet.Report, a config.DigitalAdsAssumptions) {
	sec := r.Section("Digital Ads Channel")
	sec.Literal("ads_campaign_name", "Campaign", sheet.TextValue(a.CampaignName), sheet.FormatText)
	sec.Number("ads_budget", "Ad Budget", a.AdBudget, sheet.FormatCurrency)
	sec.Number("ads_cpm", "CPM", a.CPM, sheet.FormatCurrency)
	sec.Number("ads_ctr", "CTR", a.CTRPercent, sheet.FormatPercent)
	sec.Number("ads_conversion_rate", "Conversion Rate", a.ConversionRatePercent, sheet.FormatPercent)
	sec.Number("ads_avg_revenue", "Avg Revenue per Conversion", a.AvgRevenuePerConversion, sheet.FormatCurrency)
	sec.Formula("ads_impressions", "Impressions",
		sheet.Trunc(sheet.Mul(guardedRatio(sheet.Ref("ads_budget"), "ads_cpm"), sheet.Num(1000))), sheet.FormatInteger)
	sec.Formula("ads_clicks", "Clicks",
		sheet.Trunc(sheet.Div(sheet.Mul(sheet.Ref("ads_impressions"), sheet.Ref("ads_ctr")), sheet.Num(100))), sheet.FormatInteger)
	sec.Formula("ads_conversions", "Conversions",
		sheet.Trunc(sheet.Div(sheet.Mul(sheet.Ref("ads_clicks"), sheet.Ref("ads_conversion_rate")), sheet.Num(100))), sheet.FormatInteger)
	sec.Formula("ads_total_sales", "Total Sales",
		sheet.Mul(sheet.Ref("ads_conversions"), sheet.Ref("ads_avg_revenue")), sheet.FormatCurrency)
	sec.Formula("ads_net_profit", "Net Profit",
		sheet.Sub(sheet.Ref("ads_total_sales"), sheet.Ref("ads_budget")), sheet.FormatCurrency)
	sec.Formula("ads_roi_percent", "ROI",
		sheet.Mul(guardedRatio(sheet.Ref("ads_net_profit"), "ads_budget"), sheet.Num(100)), sheet.FormatPercent)
	sec.Formula("ads_cost_per_conversion", "Cost per Conversion",
		guardedRatio(sheet.Ref("ads_budget"), "ads_conversions"), sheet.FormatCurrency)
}

func addFlyerChannel(r *sheet.Report, a config.FlyerAssumptions) {
	sec := r.Section("Flyer Channel")
	sec.Literal("flyer_campaign_name", "Campaign", sheet.TextValue(a.CampaignName), sheet.FormatText)
	sec.Number("flyer_count", "Number of Flyers", a.NumFlyers, sheet.FormatInteger)
	sec.Number("flyer_print_cost", "Print Cost per Flyer", a.PrintCostPerFlyer, sheet.FormatCurrency)
	sec.Number("flyer_distribution_cost", "Distribution Cost per Flyer", a.DistributionCostPerFlyer, sheet.FormatCurrency)
	sec.Number("flyer_response_rate", "Response Rate", a.ResponseRatePercent, sheet.FormatPercent)
	sec.Number("flyer_conversion_rate", "Conversion Rate", a.ConversionRatePercent, sheet.FormatPercent)
	sec.Number("flyer_avg_revenue", "Avg Revenue per Conversion", a.AvgRevenuePerConversion, sheet.FormatCurrency)
	sec.Formula("flyer_campaign_cost", "Campaign Cost",
		sheet.Mul(sheet.Ref("flyer_count"),
			sheet.Add(sheet.Ref("flyer_print_cost"), sheet.Ref("flyer_distribution_cost"))), sheet.FormatCurrency)
	sec.Formula("flyer_responses", "Responses",
		sheet.Trunc(sheet.Div(sheet.Mul(sheet.Ref("flyer_count"), sheet.Ref("flyer_response_rate")), sheet.Num(100))), sheet.FormatInteger)
	sec.Formula("flyer_conversions", "Conversions",
		sheet.Trunc(sheet.Div(sheet.Mul(sheet.Ref("flyer_responses"), sheet.Ref("flyer_conversion_rate")), sheet.Num(100))), sheet.FormatInteger)
	sec.Formula("flyer_total_sales", "Total Sales",
		sheet.Mul(sheet.Ref("flyer_conversions"), sheet.Ref("flyer_avg_revenue")), sheet.FormatCurrency)
	sec.Formula("flyer_net_profit", "Net Profit",
		sheet.Sub(sheet.Ref("flyer_total_sales"), sheet.Ref("flyer_campaign_cost")), sheet.FormatCurrency)
	sec.Formula("flyer_roi_percent", "ROI",
		sheet.Mul(guardedRatio(sheet.Ref("flyer_net_profit"), "flyer_campaign_cost"), sheet.Num(100)), sheet.FormatPercent)
	sec.Formula("flyer_cost_per_conversion", "Cost per Conversion",
		guardedRatio(sheet.Ref("flyer_campaign_cost"), "flyer_conversions"), sheet.FormatCurrency)
}
