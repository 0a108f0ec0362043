package roi

import (
	"fmt"
	"strings"

	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/config"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
)

// NewComparisonReport builds the measured-campaign comparison sheet: each
// past campaign gets a section of recorded results plus derived performance
// metrics, followed by portfolio-level totals.
func NewComparisonReport(c config.ComparisonConfig) (*sheet.Report, error) {
	if len(c.Campaigns) == 0 {
		return nil, fmt.Errorf("comparison report requires at least one campaign")
	}

	r := sheet.NewReport("Campaign Comparison")

	prefixes := make([]sheet.Address, 0, len(c.Campaigns))
	for i, record := range c.Campaigns {
		p := campaignPrefix(record, i)
		prefixes = append(prefixes, p)
		addCampaignSection(r, p, record)
	}

	addPortfolioSection(r, prefixes)

	return r, nil
}

// campaignPrefix derives a cell address prefix from the campaign ID, falling
// back to the position when no usable ID is present.
func campaignPrefix(record config.CampaignRecord, i int) sheet.Address {
	id := strings.ToLower(strings.TrimSpace(record.CampaignID))
	id = strings.ReplaceAll(id, " ", "_")
	id = strings.ReplaceAll(id, "-", "_")
	if id == "" {
		id = fmt.Sprintf("campaign%d", i+1)
	}
	return sheet.Address(id)
}

func addCampaignSection(r *sheet.Report, p sheet.Address, record config.CampaignRecord) {
	addr := func(suffix string) sheet.Address { return p + sheet.Address(suffix) }
	ref := func(suffix string) sheet.Expr { return sheet.Ref(addr(suffix)) }

	name := record.CampaignName
	if name == "" {
		name = string(p)
	}

	sec := r.Section("Campaign: " + name)
	sec.Literal(addr("_name"), "Campaign Name", sheet.TextValue(name), sheet.FormatText)
	sec.Number(addr("_investment"), "Total Investment", record.TotalInvestment, sheet.FormatCurrency)
	sec.Number(addr("_revenue"), "Total Revenue", record.TotalRevenue, sheet.FormatCurrency)
	sec.Number(addr("_customers"), "New Customers", record.NewCustomers, sheet.FormatInteger)
	sec.Number(addr("_impressions"), "Impressions", record.Impressions, sheet.FormatInteger)
	sec.Number(addr("_engagements"), "Engagements", record.Engagements, sheet.FormatInteger)
	sec.Number(addr("_clicks"), "Clicks", record.Clicks, sheet.FormatInteger)
	sec.Number(addr("_conversions"), "Conversions", record.Conversions, sheet.FormatInteger)
	sec.Number(addr("_ad_spend"), "Ad Spend", record.AdSpend, sheet.FormatCurrency)
	sec.Number(addr("_creative_cost"), "Creative Cost", record.CreativeCost, sheet.FormatCurrency)
	sec.Number(addr("_platform_fee"), "Platform Fee", record.PlatformFee, sheet.FormatCurrency)

	sec.Formula(addr("_profit"), "Profit",
		sheet.Sub(ref("_revenue"), ref("_investment")), sheet.FormatCurrency)
	sec.Formula(addr("_roi"), "ROI",
		sheet.Mul(guardedRatio(ref("_profit"), addr("_investment")), sheet.Num(100)), sheet.FormatPercent)
	sec.Formula(addr("_cac"), "Customer Acquisition Cost",
		guardedRatio(ref("_investment"), addr("_customers")), sheet.FormatCurrency)
	sec.Formula(addr("_engagement_rate"), "Engagement Rate",
		sheet.Mul(guardedRatio(ref("_engagements"), addr("_impressions")), sheet.Num(100)), sheet.FormatPercent)
	sec.Formula(addr("_ctr"), "Click-Through Rate",
		sheet.Mul(guardedRatio(ref("_clicks"), addr("_impressions")), sheet.Num(100)), sheet.FormatPercent)
	sec.Formula(addr("_cvr"), "Conversion Rate",
		sheet.Mul(guardedRatio(ref("_conversions"), addr("_clicks")), sheet.Num(100)), sheet.FormatPercent)
	sec.Formula(addr("_cpc"), "Cost per Click",
		guardedRatio(ref("_investment"), addr("_clicks")), sheet.FormatCurrency)
	sec.Formula(addr("_cpa"), "Cost per Conversion",
		guardedRatio(ref("_investment"), addr("_conversions")), sheet.FormatCurrency)
	sec.Formula(addr("_revenue_per_customer"), "Revenue per Customer",
		guardedRatio(ref("_revenue"), addr("_customers")), sheet.FormatCurrency)
	sec.Formula(addr("_roas"), "ROAS",
		guardedRatio(ref("_revenue"), addr("_investment")), sheet.FormatNumber)
}

func addPortfolioSection(r *sheet.Report, prefixes []sheet.Address) {
	refs := func(suffix string) []sheet.Expr {
		out := make([]sheet.Expr, 0, len(prefixes))
		for _, p := range prefixes {
			out = append(out, sheet.Ref(p+sheet.Address(suffix)))
		}
		return out
	}

	sec := r.Section("Portfolio Totals")
	sec.Formula("total_investment", "Total Investment",
		sheet.Add(refs("_investment")...), sheet.FormatCurrency)
	sec.Formula("total_revenue", "Total Revenue",
		sheet.Add(refs("_revenue")...), sheet.FormatCurrency)
	sec.Formula("total_profit", "Total Profit",
		sheet.Sub(sheet.Ref("total_revenue"), sheet.Ref("total_investment")), sheet.FormatCurrency)
	sec.Formula("total_customers", "Total New Customers",
		sheet.Add(refs("_customers")...), sheet.FormatInteger)
	sec.Formula("overall_roi", "Overall ROI",
		sheet.Mul(guardedRatio(sheet.Ref("total_profit"), "total_investment"), sheet.Num(100)), sheet.FormatPercent)

	n := sheet.Num(float64(len(prefixes)))
	sec.Formula("avg_roi", "Average ROI",
		sheet.Div(sheet.Add(refs("_roi")...), n), sheet.FormatPercent)
	sec.Formula("avg_profit", "Average Profit",
		sheet.Div(sheet.Add(refs("_profit")...), n), sheet.FormatCurrency)
	sec.Formula("avg_cac", "Average CAC",
		sheet.Div(sheet.Add(refs("_cac")...), n), sheet.FormatCurrency)
	sec.Formula("avg_engagement_rate", "Average Engagement Rate",
		sheet.Div(sheet.Add(refs("_engagement_rate")...), n), sheet.FormatPercent)
	sec.Formula("avg_ctr", "Average CTR",
		sheet.Div(sheet.Add(refs("_ctr")...), n), sheet.FormatPercent)
	sec.Formula("avg_cvr", "Average CVR",
		sheet.Div(sheet.Add(refs("_cvr")...), n), sheet.FormatPercent)
	sec.Formula("avg_roas", "Average ROAS",
		sheet.Div(sheet.Add(refs("_roas")...), n), sheet.FormatNumber)
}
