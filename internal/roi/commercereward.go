package roi

import (
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/config"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/pkg/constants"
)

// NewCommerceRewardReport builds the commerce-reward business model sheet:
// users buy bags at retail, watch ads to earn cash credits and reward
// points, and brands pay per verified view. The sheet covers per-user and
// per-bag unit economics, tier limits, the monthly P&L, store value, brand
// ROI against Meta/TikTok benchmarks, investor metrics, and a year-one
// growth projection with an ad slot fill rate model.
func NewCommerceRewardReport(a config.CommerceRewardAssumptions) (*sheet.Report, error) {
	r := sheet.NewReport("Commerce-Reward Business Model")

	assum := r.Section("Business Assumptions")
	assum.Number("bag_retail_price", "Bag Retail Price", a.BagRetailPrice, sheet.FormatCurrency)
	assum.Number("bags_sold_per_month", "Bags Sold per Month", a.BagsSoldPerMonth, sheet.FormatInteger)
	assum.Number("bag_sales_growth_quarterly", "Quarterly Bag Sales Growth", a.BagSalesGrowthQuarterly, sheet.FormatPercent)
	assum.Number("initial_brands_enrolled", "Initial Brands Enrolled", a.InitialBrandsEnrolled, sheet.FormatInteger)
	assum.Number("brand_growth_rate_quarterly", "Quarterly Brand Growth", a.BrandGrowthRateQuarterly, sheet.FormatPercent)
	assum.Number("cpv_brand_pays", "CPV Brand Pays", a.CPVBrandPays, sheet.FormatCurrency)
	assum.Number("cash_credit_per_view", "Cash Credit per View", a.CashCreditPerView, sheet.FormatCurrency)
	assum.Number("reward_points_per_view", "Reward Points per View", a.RewardPointsPerView, sheet.FormatCurrency)
	assum.Number("platform_margin_per_view", "Platform Margin per View", a.PlatformMarginPerView, sheet.FormatCurrency)
	assum.Number("active_user_rate", "Active User Rate", a.ActiveUserRate, sheet.FormatPercent)
	assum.Number("avg_ads_to_recover_bag", "Avg Ads to Recover Bag Cost", a.AvgAdsToRecoverBag, sheet.FormatNumber)
	assum.Number("avg_monthly_ad_views", "Avg Monthly Ad Views per Active User", a.AvgMonthlyAdViews, sheet.FormatNumber)
	assum.Number("bronze_cash_limit_bags", "Bronze Cash Limit (bag values/month)", a.BronzeCashLimitBags, sheet.FormatNumber)
	assum.Number("silver_cash_limit_bags", "Silver Cash Limit (bag values/month)", a.SilverCashLimitBags, sheet.FormatNumber)
	assum.Number("gold_cash_limit_bags", "Gold Cash Limit (bag values/month)", a.GoldCashLimitBags, sheet.FormatNumber)
	assum.Number("platinum_daily_cap", "Platinum Daily Cap", a.PlatinumDailyCap, sheet.FormatCurrency)
	assum.Number("pct_bronze", "Users in Bronze", a.PctBronze, sheet.FormatPercent)
	assum.Number("pct_silver", "Users in Silver", a.PctSilver, sheet.FormatPercent)
	assum.Number("pct_gold", "Users in Gold", a.PctGold, sheet.FormatPercent)
	assum.Number("pct_platinum", "Users in Platinum", a.PctPlatinum, sheet.FormatPercent)
	assum.Number("reward_redemption_rate", "Reward Redemption Rate", a.RewardRedemptionRate, sheet.FormatPercent)
	assum.Number("repeat_visit_increase", "Repeat Visit Increase", a.RepeatVisitIncrease, sheet.FormatPercent)
	assum.Number("basket_size_uplift", "Basket Size Uplift", a.BasketSizeUplift, sheet.FormatPercent)
	assum.Number("avg_basket_value", "Average Basket Value", a.AvgBasketValue, sheet.FormatCurrency)
	assum.Number("meta_cpm", "Meta CPM Benchmark", a.MetaCPM, sheet.FormatCurrency)
	assum.Number("tiktok_cpm", "TikTok CPM Benchmark", a.TikTokCPM, sheet.FormatCurrency)
	assum.Number("industry_avg_ctr", "Industry Average CTR", a.IndustryAvgCTR, sheet.FormatPercent)
	assum.Number("marketing_cost_per_user", "Marketing Cost per Acquired User", a.MarketingCostPerUser, sheet.FormatCurrency)
	assum.Number("avg_user_lifetime_months", "Avg User Lifetime (months)", a.AvgUserLifetimeMonths, sheet.FormatNumber)
	assum.Number("base_fill_rate", "Base Ad Slot Fill Rate", a.BaseFillRatePercent, sheet.FormatPercent)
	assum.Number("fill_rate_cap", "Fill Rate Cap", a.FillRateCapPercent, sheet.FormatPercent)
	assum.Number("fill_rate_improvement_factor", "Fill Rate Improvement per Brand Doubling", a.FillRateImprovementFactor, sheet.FormatNumber)

	perUser := r.Section("Per-User Economics (Monthly)")
	perUser.Formula("brand_spend_per_user", "Brand Spend per Active User",
		sheet.Mul(sheet.Ref("avg_monthly_ad_views"), sheet.Ref("cpv_brand_pays")), sheet.FormatCurrency)
	perUser.Formula("cash_credit_per_user", "Cash Credit Earned",
		sheet.Mul(sheet.Ref("avg_monthly_ad_views"), sheet.Ref("cash_credit_per_view")), sheet.FormatCurrency)
	perUser.Formula("reward_points_per_user", "Reward Points Earned",
		sheet.Mul(sheet.Ref("avg_monthly_ad_views"), sheet.Ref("reward_points_per_view")), sheet.FormatCurrency)
	perUser.Formula("total_rewards_per_user", "Total User Rewards",
		sheet.Add(sheet.Ref("cash_credit_per_user"), sheet.Ref("reward_points_per_user")), sheet.FormatCurrency)
	perUser.Formula("margin_per_user", "Platform Margin per User",
		sheet.Mul(sheet.Ref("avg_monthly_ad_views"), sheet.Ref("platform_margin_per_view")), sheet.FormatCurrency)
	perUser.Formula("margin_percentage_per_user", "Margin % of Brand Spend",
		sheet.Mul(guardedRatio(sheet.Ref("margin_per_user"), "brand_spend_per_user"), sheet.Num(100)), sheet.FormatPercent)

	perBag := r.Section("Per-Bag Economics")
	perBag.Formula("brand_revenue_per_bag", "Brand Revenue per Bag",
		sheet.Mul(sheet.Ref("avg_ads_to_recover_bag"), sheet.Ref("cpv_brand_pays")), sheet.FormatCurrency)
	perBag.Formula("margin_per_bag", "Platform Margin per Bag (ads)",
		sheet.Mul(sheet.Ref("avg_ads_to_recover_bag"), sheet.Ref("platform_margin_per_view")), sheet.FormatCurrency)
	perBag.Formula("user_earnings_per_bag", "User Earnings per Bag",
		sheet.Mul(sheet.Ref("avg_ads_to_recover_bag"),
			sheet.Add(sheet.Ref("cash_credit_per_view"), sheet.Ref("reward_points_per_view"))), sheet.FormatCurrency)
	perBag.Formula("total_revenue_per_bag", "Total Revenue per Bag",
		sheet.Add(sheet.Ref("bag_retail_price"), sheet.Ref("brand_revenue_per_bag")), sheet.FormatCurrency)
	perBag.Formula("net_margin_per_bag", "Net Margin per Bag",
		sheet.Add(sheet.Ref("bag_retail_price"), sheet.Ref("margin_per_bag")), sheet.FormatCurrency)
	perBag.Formula("user_net_cost_per_bag", "User Net Cost per Bag",
		sheet.Sub(sheet.Ref("bag_retail_price"), sheet.Ref("user_earnings_per_bag")), sheet.FormatCurrency)

	tiers := r.Section("Tier Economics")
	tiers.Formula("bronze_cash_limit", "Bronze Monthly Cash Limit",
		sheet.Mul(sheet.Ref("bronze_cash_limit_bags"), sheet.Ref("bag_retail_price")), sheet.FormatCurrency)
	tiers.Formula("silver_cash_limit", "Silver Monthly Cash Limit",
		sheet.Mul(sheet.Ref("silver_cash_limit_bags"), sheet.Ref("bag_retail_price")), sheet.FormatCurrency)
	tiers.Formula("gold_cash_limit", "Gold Monthly Cash Limit",
		sheet.Mul(sheet.Ref("gold_cash_limit_bags"), sheet.Ref("bag_retail_price")), sheet.FormatCurrency)
	tiers.Formula("platinum_cash_limit", "Platinum Monthly Cash Limit",
		sheet.Mul(sheet.Ref("platinum_daily_cap"), sheet.Num(constants.DaysPerMonth)), sheet.FormatCurrency)
	tiers.Formula("bronze_max_monthly_views", "Bronze Max Monthly Paid Views",
		sheet.Trunc(guardedRatio(sheet.Ref("bronze_cash_limit"), "cash_credit_per_view")), sheet.FormatInteger)
	tiers.Formula("silver_max_monthly_views", "Silver Max Monthly Paid Views",
		sheet.Trunc(guardedRatio(sheet.Ref("silver_cash_limit"), "cash_credit_per_view")), sheet.FormatInteger)
	tiers.Formula("gold_max_monthly_views", "Gold Max Monthly Paid Views",
		sheet.Trunc(guardedRatio(sheet.Ref("gold_cash_limit"), "cash_credit_per_view")), sheet.FormatInteger)
	tiers.Formula("platinum_max_monthly_views", "Platinum Max Monthly Paid Views",
		sheet.Trunc(guardedRatio(sheet.Ref("platinum_cash_limit"), "cash_credit_per_view")), sheet.FormatInteger)
	tiers.Formula("weighted_avg_cash_limit", "Weighted Avg Cash Limit",
		sheet.Add(
			sheet.Div(sheet.Mul(sheet.Ref("bronze_cash_limit"), sheet.Ref("pct_bronze")), sheet.Num(100)),
			sheet.Div(sheet.Mul(sheet.Ref("silver_cash_limit"), sheet.Ref("pct_silver")), sheet.Num(100)),
			sheet.Div(sheet.Mul(sheet.Ref("gold_cash_limit"), sheet.Ref("pct_gold")), sheet.Num(100)),
			sheet.Div(sheet.Mul(sheet.Ref("platinum_cash_limit"), sheet.Ref("pct_platinum")), sheet.Num(100)),
		), sheet.FormatCurrency)

	monthly := r.Section("Monthly Business Summary")
	monthly.Formula("monthly_bag_revenue", "Bag Sales Revenue",
		sheet.Mul(sheet.Ref("bags_sold_per_month"), sheet.Ref("bag_retail_price")), sheet.FormatCurrency)
	monthly.Formula("monthly_active_users", "Active Users",
		sheet.Div(sheet.Mul(sheet.Ref("bags_sold_per_month"), sheet.Ref("active_user_rate")), sheet.Num(100)), sheet.FormatInteger)
	monthly.Formula("monthly_ad_views", "Total Ad Views",
		sheet.Mul(sheet.Ref("monthly_active_users"), sheet.Ref("avg_monthly_ad_views")), sheet.FormatInteger)
	monthly.Formula("monthly_ad_revenue", "Ad Revenue",
		sheet.Mul(sheet.Ref("monthly_ad_views"), sheet.Ref("cpv_brand_pays")), sheet.FormatCurrency)
	monthly.Formula("monthly_total_revenue", "Total Revenue",
		sheet.Add(sheet.Ref("monthly_bag_revenue"), sheet.Ref("monthly_ad_revenue")), sheet.FormatCurrency)
	monthly.Formula("monthly_cash_credits", "Cash Credits Paid",
		sheet.Mul(sheet.Ref("monthly_ad_views"), sheet.Ref("cash_credit_per_view")), sheet.FormatCurrency)
	monthly.Formula("monthly_reward_points", "Reward Points Issued",
		sheet.Mul(sheet.Ref("monthly_ad_views"), sheet.Ref("reward_points_per_view")), sheet.FormatCurrency)
	monthly.Formula("monthly_user_rewards", "Total User Rewards",
		sheet.Add(sheet.Ref("monthly_cash_credits"), sheet.Ref("monthly_reward_points")), sheet.FormatCurrency)
	monthly.Formula("monthly_gross_margin", "Gross Margin (ads)",
		sheet.Mul(sheet.Ref("monthly_ad_views"), sheet.Ref("platform_margin_per_view")), sheet.FormatCurrency)
	monthly.Formula("monthly_total_margin", "Total Margin",
		sheet.Add(sheet.Ref("monthly_bag_revenue"), sheet.Ref("monthly_gross_margin")), sheet.FormatCurrency)
	monthly.Formula("monthly_margin_percentage", "Margin % of Revenue",
		sheet.Mul(guardedRatio(sheet.Ref("monthly_total_margin"), "monthly_total_revenue"), sheet.Num(100)), sheet.FormatPercent)
	monthly.Formula("avg_revenue_per_bag_sold", "Avg Revenue per Bag Sold",
		guardedRatio(sheet.Ref("monthly_total_revenue"), "bags_sold_per_month"), sheet.FormatCurrency)
	monthly.Formula("avg_margin_per_bag_sold", "Avg Margin per Bag Sold",
		guardedRatio(sheet.Ref("monthly_total_margin"), "bags_sold_per_month"), sheet.FormatCurrency)

	store := r.Section("Store Value (Monthly)")
	store.Formula("rewards_generated", "Rewards Generated",
		sheet.Mul(sheet.Ref("monthly_active_users"), sheet.Ref("total_rewards_per_user")), sheet.FormatCurrency)
	store.Formula("reward_redemption_value", "Rewards Redeemed at Stores",
		sheet.Div(sheet.Mul(sheet.Ref("rewards_generated"), sheet.Ref("reward_redemption_rate")), sheet.Num(100)), sheet.FormatCurrency)
	store.Formula("estimated_transactions", "Estimated Redemption Transactions",
		sheet.Div(sheet.Mul(sheet.Ref("monthly_active_users"), sheet.Ref("reward_redemption_rate")), sheet.Num(100)), sheet.FormatInteger)
	store.Formula("repeat_visits_gained", "Additional Repeat Visits",
		sheet.Div(sheet.Mul(sheet.Ref("estimated_transactions"), sheet.Ref("repeat_visit_increase")), sheet.Num(100)), sheet.FormatInteger)
	store.Formula("baseline_basket_value", "Baseline Basket Value",
		sheet.Mul(sheet.Ref("estimated_transactions"), sheet.Ref("avg_basket_value")), sheet.FormatCurrency)
	store.Formula("uplifted_basket_value", "Uplifted Basket Value",
		sheet.Mul(sheet.Ref("baseline_basket_value"),
			sheet.Add(sheet.Num(1), sheet.Div(sheet.Ref("basket_size_uplift"), sheet.Num(100)))), sheet.FormatCurrency)
	store.Formula("incremental_basket_value", "Incremental Basket Value",
		sheet.Sub(sheet.Ref("uplifted_basket_value"), sheet.Ref("baseline_basket_value")), sheet.FormatCurrency)
	store.Formula("total_store_value", "Total Monthly Store Value",
		sheet.Add(sheet.Ref("reward_redemption_value"), sheet.Ref("incremental_basket_value")), sheet.FormatCurrency)

	brand := r.Section("Brand ROI vs Benchmarks")
	brand.Formula("cost_per_engaged_customer", "Cost per Engaged Customer",
		sheet.Ref("cpv_brand_pays"), sheet.FormatCurrency)
	brand.Formula("effective_cpm", "Effective CPM (all views verified)",
		sheet.Mul(sheet.Ref("cpv_brand_pays"), sheet.Num(1000)), sheet.FormatCurrency)
	// CPM buys impressions; dividing by CTR yields the cost of one engaged
	// click on a traditional platform.
	brand.Formula("meta_effective_cost", "Meta Effective Cost per Engagement",
		sheet.If(sheet.Eq(sheet.Ref("industry_avg_ctr"), sheet.Num(0)), sheet.Num(0),
			sheet.Div(sheet.Div(sheet.Ref("meta_cpm"), sheet.Num(1000)),
				sheet.Div(sheet.Ref("industry_avg_ctr"), sheet.Num(100)))), sheet.FormatCurrency)
	brand.Formula("tiktok_effective_cost", "TikTok Effective Cost per Engagement",
		sheet.If(sheet.Eq(sheet.Ref("industry_avg_ctr"), sheet.Num(0)), sheet.Num(0),
			sheet.Div(sheet.Div(sheet.Ref("tiktok_cpm"), sheet.Num(1000)),
				sheet.Div(sheet.Ref("industry_avg_ctr"), sheet.Num(100)))), sheet.FormatCurrency)
	brand.Formula("total_brand_spend", "Total Monthly Brand Spend",
		sheet.Mul(sheet.Ref("monthly_active_users"), sheet.Ref("avg_monthly_ad_views"), sheet.Ref("cpv_brand_pays")), sheet.FormatCurrency)
	brand.Formula("cost_per_basket_influenced", "Cost per Basket Influenced",
		guardedRatio(sheet.Ref("total_brand_spend"), "estimated_transactions"), sheet.FormatCurrency)
	brand.Formula("savings_vs_meta", "Savings vs Meta",
		sheet.Mul(guardedRatio(
			sheet.Sub(sheet.Ref("meta_effective_cost"), sheet.Ref("cost_per_engaged_customer")),
			"meta_effective_cost"), sheet.Num(100)), sheet.FormatPercent)
	brand.Formula("savings_vs_tiktok", "Savings vs TikTok",
		sheet.Mul(guardedRatio(
			sheet.Sub(sheet.Ref("tiktok_effective_cost"), sheet.Ref("cost_per_engaged_customer")),
			"tiktok_effective_cost"), sheet.Num(100)), sheet.FormatPercent)

	investor := r.Section("Investor Metrics")
	// One bag purchased per month over the user's lifetime.
	investor.Formula("bag_ltv", "LTV from Bag Purchases",
		sheet.Mul(sheet.Ref("avg_user_lifetime_months"), sheet.Ref("net_margin_per_bag")), sheet.FormatCurrency)
	investor.Formula("ad_ltv", "LTV from Ad Margin",
		sheet.Mul(sheet.Ref("avg_user_lifetime_months"), sheet.Ref("avg_monthly_ad_views"),
			sheet.Ref("platform_margin_per_view")), sheet.FormatCurrency)
	investor.Formula("customer_ltv", "Customer Lifetime Value",
		sheet.Add(sheet.Ref("bag_ltv"), sheet.Ref("ad_ltv")), sheet.FormatCurrency)
	investor.Formula("ltv_cac_ratio", "LTV:CAC Ratio",
		guardedRatio(sheet.Ref("customer_ltv"), "marketing_cost_per_user"), sheet.FormatNumber)
	investor.Formula("monthly_margin_per_user", "Monthly Margin per User",
		sheet.Add(sheet.Ref("margin_per_user"), sheet.Ref("bag_retail_price")), sheet.FormatCurrency)
	investor.Formula("payback_months", "CAC Payback (months)",
		guardedRatio(sheet.Ref("marketing_cost_per_user"), "monthly_margin_per_user"), sheet.FormatNumber)
	investor.Formula("contribution_margin_pct", "Contribution Margin",
		sheet.Mul(
			sheet.Div(sheet.Ref("monthly_margin_per_user"),
				sheet.Add(sheet.Ref("bag_retail_price"), sheet.Ref("brand_spend_per_user"))),
			sheet.Num(100)), sheet.FormatPercent)

	addGrowthProjection(r)

	return r, nil
}

// addGrowthProjection defines the year-one projection: bag sales and brand
// partnerships compound quarterly, and the ad slot fill rate improves with
// brand count up to a cap.
func addGrowthProjection(r *sheet.Report) {
	sec := r.Section("Year 1 Growth Projection")

	quarters := []string{"q1", "q2", "q3", "q4"}

	sec.Formula("bags_q1", "Bags/Month Q1", sheet.Ref("bags_sold_per_month"), sheet.FormatInteger)
	sec.Formula("brands_q1", "Brands Q1", sheet.Ref("initial_brands_enrolled"), sheet.FormatNumber)
	for i := 1; i < len(quarters); i++ {
		prev, q := quarters[i-1], quarters[i]
		sec.Formula(sheet.Address("bags_"+q), "Bags/Month "+labelQ(q),
			sheet.Mul(sheet.Ref(sheet.Address("bags_"+prev)),
				sheet.Add(sheet.Num(1), sheet.Div(sheet.Ref("bag_sales_growth_quarterly"), sheet.Num(100)))),
			sheet.FormatInteger)
		sec.Formula(sheet.Address("brands_"+q), "Brands "+labelQ(q),
			sheet.Mul(sheet.Ref(sheet.Address("brands_"+prev)),
				sheet.Add(sheet.Num(1), sheet.Div(sheet.Ref("brand_growth_rate_quarterly"), sheet.Num(100)))),
			sheet.FormatNumber)
	}
	sec.Formula("avg_bags_year1", "Avg Bags/Month Year 1",
		sheet.Div(sheet.Add(
			sheet.Ref("bags_q1"), sheet.Ref("bags_q2"), sheet.Ref("bags_q3"), sheet.Ref("bags_q4")),
			sheet.Num(constants.QuartersPerYear)), sheet.FormatInteger)
	sec.Formula("avg_brands_year1", "Avg Brands Year 1",
		sheet.Div(sheet.Add(
			sheet.Ref("brands_q1"), sheet.Ref("brands_q2"), sheet.Ref("brands_q3"), sheet.Ref("brands_q4")),
			sheet.Num(constants.QuartersPerYear)), sheet.FormatNumber)

	for _, q := range quarters {
		qa := func(p string) sheet.Address { return sheet.Address(p + "_" + q) }
		// Fill rate grows linearly with relative brand growth, capped.
		sec.Formula(qa("fill_rate"), "Fill Rate "+labelQ(q),
			sheet.Min(
				sheet.Div(sheet.Ref("fill_rate_cap"), sheet.Num(100)),
				sheet.Add(
					sheet.Div(sheet.Ref("base_fill_rate"), sheet.Num(100)),
					sheet.Mul(
						sheet.Sub(guardedRatio(sheet.Ref(qa("brands")), "initial_brands_enrolled"), sheet.Num(1)),
						sheet.Ref("fill_rate_improvement_factor")))),
			sheet.FormatNumber)
		sec.Formula(qa("bag_revenue"), "Bag Revenue "+labelQ(q),
			sheet.Mul(sheet.Ref(qa("bags")), sheet.Ref("bag_retail_price"), sheet.Num(constants.MonthsPerQuarter)), sheet.FormatCurrency)
		sec.Formula(qa("active_users"), "Active Users "+labelQ(q),
			sheet.Div(sheet.Mul(sheet.Ref(qa("bags")), sheet.Ref("active_user_rate")), sheet.Num(100)), sheet.FormatInteger)
		sec.Formula(qa("ad_views"), "Monthly Ad Views "+labelQ(q),
			sheet.Mul(sheet.Ref(qa("active_users")), sheet.Ref("avg_monthly_ad_views")), sheet.FormatInteger)
		sec.Formula(qa("ad_revenue"), "Ad Revenue "+labelQ(q),
			sheet.Mul(
				sheet.Ref(qa("ad_views")), sheet.Ref("cpv_brand_pays"),
				sheet.Div(sheet.Ref(qa("fill_rate")), sheet.Div(sheet.Ref("base_fill_rate"), sheet.Num(100))),
				sheet.Num(constants.MonthsPerQuarter)), sheet.FormatCurrency)
		sec.Formula(qa("total_revenue"), "Total Revenue "+labelQ(q),
			sheet.Add(sheet.Ref(qa("bag_revenue")), sheet.Ref(qa("ad_revenue"))), sheet.FormatCurrency)
	}

	sec.Formula("annual_bag_revenue", "Year 1 Bag Revenue",
		sheet.Add(sheet.Ref("bag_revenue_q1"), sheet.Ref("bag_revenue_q2"),
			sheet.Ref("bag_revenue_q3"), sheet.Ref("bag_revenue_q4")), sheet.FormatCurrency)
	sec.Formula("annual_ad_revenue", "Year 1 Ad Revenue",
		sheet.Add(sheet.Ref("ad_revenue_q1"), sheet.Ref("ad_revenue_q2"),
			sheet.Ref("ad_revenue_q3"), sheet.Ref("ad_revenue_q4")), sheet.FormatCurrency)
	sec.Formula("annual_total_revenue", "Year 1 Total Revenue",
		sheet.Add(sheet.Ref("annual_bag_revenue"), sheet.Ref("annual_ad_revenue")), sheet.FormatCurrency)

	sec.Formula("base_annual_bag_revenue", "Base Annual Bag Revenue (no growth)",
		sheet.Mul(sheet.Ref("monthly_bag_revenue"), sheet.Num(constants.MonthsPerYear)), sheet.FormatCurrency)
	sec.Formula("base_annual_ad_revenue", "Base Annual Ad Revenue (no growth)",
		sheet.Mul(sheet.Ref("monthly_ad_revenue"), sheet.Num(constants.MonthsPerYear)), sheet.FormatCurrency)
	sec.Formula("base_annual_revenue", "Base Annual Revenue (no growth)",
		sheet.Add(sheet.Ref("base_annual_bag_revenue"), sheet.Ref("base_annual_ad_revenue")), sheet.FormatCurrency)

	sec.Formula("bag_revenue_lift", "Bag Revenue Lift",
		sheet.Sub(sheet.Ref("annual_bag_revenue"), sheet.Ref("base_annual_bag_revenue")), sheet.FormatCurrency)
	sec.Formula("bag_revenue_lift_pct", "Bag Revenue Lift %",
		sheet.Mul(guardedRatio(sheet.Ref("bag_revenue_lift"), "base_annual_bag_revenue"), sheet.Num(100)), sheet.FormatPercent)
	sec.Formula("ad_revenue_lift", "Ad Revenue Lift",
		sheet.Sub(sheet.Ref("annual_ad_revenue"), sheet.Ref("base_annual_ad_revenue")), sheet.FormatCurrency)
	sec.Formula("ad_revenue_lift_pct", "Ad Revenue Lift %",
		sheet.Mul(guardedRatio(sheet.Ref("ad_revenue_lift"), "base_annual_ad_revenue"), sheet.Num(100)), sheet.FormatPercent)
	sec.Formula("total_revenue_lift", "Total Revenue Lift",
		sheet.Sub(sheet.Ref("annual_total_revenue"), sheet.Ref("base_annual_revenue")), sheet.FormatCurrency)
	sec.Formula("total_revenue_lift_pct", "Total Revenue Lift %",
		sheet.Mul(guardedRatio(sheet.Ref("total_revenue_lift"), "base_annual_revenue"), sheet.Num(100)), sheet.FormatPercent)

	sec.Formula("year_end_fill_rate", "Year-End Fill Rate",
		sheet.Mul(sheet.Ref("fill_rate_q4"), sheet.Num(100)), sheet.FormatPercent)
	sec.Formula("avg_fill_rate", "Average Fill Rate",
		sheet.Mul(
			sheet.Div(sheet.Add(sheet.Ref("fill_rate_q1"), sheet.Ref("fill_rate_q2"),
				sheet.Ref("fill_rate_q3"), sheet.Ref("fill_rate_q4")), sheet.Num(constants.QuartersPerYear)),
			sheet.Num(100)), sheet.FormatPercent)
}

func labelQ(q string) string {
	switch q {
	case "q1":
		return "Q1"
	case "q2":
		return "Q2"
	case "q3":
		return "Q3"
	default:
		return "Q4"
	}
}
