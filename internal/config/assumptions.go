package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kshipra-ai/bagbuddy-roi-analysis/pkg/constants"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/pkg/mathutil"
)

// ReportsConfig selects and parameterizes the report templates. Every
// assumption a template recognizes is an explicit field with a named
// default; nothing is passed through loosely-typed maps.
type ReportsConfig struct {
	DigitalAds     DigitalAdsAssumptions
	Flyer          FlyerAssumptions
	BagBuddy       BagBuddyAssumptions
	CommerceReward CommerceRewardAssumptions
	Investor       InvestorAssumptions
	CrossChannel   CrossChannelConfig
	Comparison     ComparisonConfig
}

// DigitalAdsAssumptions parameterizes the digital advertising funnel.
type DigitalAdsAssumptions struct {
	Enabled                 bool
	CampaignName            string
	AdBudget                float64
	CPM                     float64
	CTRPercent              float64
	ConversionRatePercent   float64
	AvgRevenuePerConversion float64
}

// FlyerAssumptions parameterizes the print flyer campaign funnel.
type FlyerAssumptions struct {
	Enabled                  bool
	CampaignName             string
	NumFlyers                float64
	PrintCostPerFlyer        float64
	DistributionCostPerFlyer float64
	ResponseRatePercent      float64
	ConversionRatePercent    float64
	AvgRevenuePerConversion  float64
}

// BagBuddyScenario holds the per-scenario performance assumptions of the
// three-column scenario sheet.
type BagBuddyScenario struct {
	Name                  string
	ScanRatePercent       float64
	ConversionRatePercent float64
}

// BagBuddyAssumptions parameterizes the BagBuddy platform scenario sheet.
type BagBuddyAssumptions struct {
	Enabled                 bool
	CostPerSlot             float64
	BagsPerQuarter          float64
	SlotsPerBag             float64
	ImpressionsPerBag       float64
	NumQuarters             float64
	AvgRevenuePerConversion float64
	Scenarios               []BagBuddyScenario
}

// CommerceRewardAssumptions parameterizes the commerce-reward business
// model: users buy bags, watch ads for cash credits and reward points,
// brands pay per verified view.
type CommerceRewardAssumptions struct {
	Enabled bool

	// Pricing
	BagRetailPrice   float64
	BagsSoldPerMonth float64

	// Business growth
	BagSalesGrowthQuarterly  float64
	InitialBrandsEnrolled    float64
	BrandGrowthRateQuarterly float64

	// Ad economics
	CPVBrandPays          float64
	CashCreditPerView     float64
	RewardPointsPerView   float64
	PlatformMarginPerView float64

	// User engagement and behavior
	ActiveUserRate     float64
	AvgAdsToRecoverBag float64
	AvgMonthlyAdViews  float64

	// Tier limits (monthly cash credit unlock caps)
	BronzeCashLimitBags float64
	SilverCashLimitBags float64
	GoldCashLimitBags   float64
	PlatinumDailyCap    float64

	// User distribution by tier (%)
	PctBronze   float64
	PctSilver   float64
	PctGold     float64
	PctPlatinum float64

	// Store and redemption
	RewardRedemptionRate float64
	RepeatVisitIncrease  float64
	BasketSizeUplift     float64
	AvgBasketValue       float64

	// Brand benchmarks
	MetaCPM        float64
	TikTokCPM      float64
	IndustryAvgCTR float64

	// Investor metrics
	MarketingCostPerUser  float64
	AvgUserLifetimeMonths float64

	// Ad slot fill rate model for the growth projection
	BaseFillRatePercent       float64
	FillRateCapPercent        float64
	FillRateImprovementFactor float64
}

// InvestorAssumptions parameterizes the investor portfolio report.
type InvestorAssumptions struct {
	Enabled               bool
	InitialInvestment     float64
	CurrentValue          float64
	InvestmentPeriodYears float64
}

// CrossChannelConfig enables the side-by-side channel comparison sheet,
// which reuses the digital ads and flyer assumptions.
type CrossChannelConfig struct {
	Enabled bool
}

// CampaignRecord holds measured results of one past campaign for the
// comparison report.
type CampaignRecord struct {
	CampaignID      string
	CampaignName    string
	TotalInvestment float64
	TotalRevenue    float64
	NewCustomers    float64
	Impressions     float64
	Engagements     float64
	Clicks          float64
	Conversions     float64
	AdSpend         float64
	CreativeCost    float64
	PlatformFee     float64
}

// ComparisonConfig enables the measured-campaign comparison report.
type ComparisonConfig struct {
	Enabled   bool
	Campaigns []CampaignRecord
}

// setDefaults registers the benchmark defaults so an unset key in the
// config file falls back to the published industry figure.
func setDefaults(v *viper.Viper) {
	v.SetDefault("reports.digitalads.enabled", true)
	v.SetDefault("reports.digitalads.campaignname", "Digital Ads Campaign")
	v.SetDefault("reports.digitalads.adbudget", 1000.0)
	v.SetDefault("reports.digitalads.cpm", constants.DefaultCPM)
	v.SetDefault("reports.digitalads.ctrpercent", constants.DefaultCTR)
	v.SetDefault("reports.digitalads.conversionratepercent", constants.DefaultAdsConversionRate)
	v.SetDefault("reports.digitalads.avgrevenueperconversion", constants.DefaultAvgRevenue)

	v.SetDefault("reports.flyer.enabled", true)
	v.SetDefault("reports.flyer.campaignname", "Flyer Campaign")
	v.SetDefault("reports.flyer.numflyers", constants.DefaultBagsPerQuarter)
	v.SetDefault("reports.flyer.printcostperflyer", constants.DefaultPrintCost)
	v.SetDefault("reports.flyer.distributioncostperflyer", constants.DefaultDistributionCost)
	v.SetDefault("reports.flyer.responseratepercent", constants.DefaultResponseRate)
	v.SetDefault("reports.flyer.conversionratepercent", constants.DefaultFlyerConversionRate)
	v.SetDefault("reports.flyer.avgrevenueperconversion", constants.DefaultAvgRevenue)

	v.SetDefault("reports.bagbuddy.enabled", true)
	v.SetDefault("reports.bagbuddy.costperslot", constants.DefaultCostPerSlot)
	v.SetDefault("reports.bagbuddy.bagsperquarter", constants.DefaultBagsPerQuarter)
	v.SetDefault("reports.bagbuddy.slotsperbag", constants.DefaultSlotsPerBag)
	v.SetDefault("reports.bagbuddy.impressionsperbag", constants.DefaultImpressionsPerBag)
	v.SetDefault("reports.bagbuddy.numquarters", 1.0)
	v.SetDefault("reports.bagbuddy.avgrevenueperconversion", constants.DefaultAvgRevenue)

	v.SetDefault("reports.commercereward.enabled", true)
	v.SetDefault("reports.commercereward.bagretailprice", 0.40)
	v.SetDefault("reports.commercereward.bagssoldpermonth", 10000.0)
	v.SetDefault("reports.commercereward.bagsalesgrowthquarterly", 15.0)
	v.SetDefault("reports.commercereward.initialbrandsenrolled", 10.0)
	v.SetDefault("reports.commercereward.brandgrowthratequarterly", 25.0)
	v.SetDefault("reports.commercereward.cpvbrandpays", 0.20)
	v.SetDefault("reports.commercereward.cashcreditperview", 0.06)
	v.SetDefault("reports.commercereward.rewardpointsperview", 0.06)
	v.SetDefault("reports.commercereward.platformmarginperview", 0.08)
	v.SetDefault("reports.commercereward.activeuserrate", 60.0)
	v.SetDefault("reports.commercereward.avgadstorecoverbag", 3.0)
	v.SetDefault("reports.commercereward.avgmonthlyadviews", 12.0)
	v.SetDefault("reports.commercereward.bronzecashlimitbags", 1.0)
	v.SetDefault("reports.commercereward.silvercashlimitbags", 3.0)
	v.SetDefault("reports.commercereward.goldcashlimitbags", 7.0)
	v.SetDefault("reports.commercereward.platinumdailycap", 1.00)
	v.SetDefault("reports.commercereward.pctbronze", 60.0)
	v.SetDefault("reports.commercereward.pctsilver", 25.0)
	v.SetDefault("reports.commercereward.pctgold", 12.0)
	v.SetDefault("reports.commercereward.pctplatinum", 3.0)
	v.SetDefault("reports.commercereward.rewardredemptionrate", 75.0)
	v.SetDefault("reports.commercereward.repeatvisitincrease", 15.0)
	v.SetDefault("reports.commercereward.basketsizeuplift", 8.0)
	v.SetDefault("reports.commercereward.avgbasketvalue", 25.00)
	v.SetDefault("reports.commercereward.metacpm", 10.00)
	v.SetDefault("reports.commercereward.tiktokcpm", 8.50)
	v.SetDefault("reports.commercereward.industryavgctr", 1.0)
	v.SetDefault("reports.commercereward.marketingcostperuser", 2.00)
	v.SetDefault("reports.commercereward.avguserlifetimemonths", 12.0)
	v.SetDefault("reports.commercereward.basefillratepercent", 85.0)
	v.SetDefault("reports.commercereward.fillratecappercent", 95.0)
	v.SetDefault("reports.commercereward.fillrateimprovementfactor", 0.08)

	v.SetDefault("reports.investor.enabled", false)
	v.SetDefault("reports.investor.initialinvestment", 100000.0)
	v.SetDefault("reports.investor.currentvalue", 150000.0)
	v.SetDefault("reports.investor.investmentperiodyears", 2.0)

	v.SetDefault("reports.crosschannel.enabled", false)
	v.SetDefault("reports.comparison.enabled", false)
}

// DefaultConfiguration returns the configuration the templates assume when
// no config file is provided, e.g. for the stateless recompute endpoint.
func DefaultConfiguration() *Configuration {
	v := viper.New()
	setDefaults(v)
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		// Defaults are compiled in; a decode failure is a programming error.
		panic(fmt.Sprintf("failed to build default configuration: %v", err))
	}
	return &configuration
}

// DefaultScenarios returns the three standard BagBuddy scenarios.
func DefaultScenarios() []BagBuddyScenario {
	return []BagBuddyScenario{
		{Name: "Conservative", ScanRatePercent: 2.0, ConversionRatePercent: 20.0},
		{Name: "Moderate", ScanRatePercent: 2.5, ConversionRatePercent: 25.0},
		{Name: "Optimistic", ScanRatePercent: 3.0, ConversionRatePercent: 30.0},
	}
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings rather than failing; a questionable assumption still
// produces a computable report.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Reports.DigitalAds.Enabled {
		ads := c.Reports.DigitalAds
		if ads.AdBudget < 0 {
			warnings = append(warnings, fmt.Sprintf("digital ads budget is negative (%.2f)", ads.AdBudget))
		}
		warnings = append(warnings, validateRate("digital ads CTR", ads.CTRPercent)...)
		warnings = append(warnings, validateRate("digital ads conversion rate", ads.ConversionRatePercent)...)
	}

	if c.Reports.Flyer.Enabled {
		flyer := c.Reports.Flyer
		if flyer.NumFlyers < 0 {
			warnings = append(warnings, fmt.Sprintf("flyer count is negative (%.0f)", flyer.NumFlyers))
		}
		if flyer.PrintCostPerFlyer < 0 || flyer.DistributionCostPerFlyer < 0 {
			warnings = append(warnings, "flyer unit costs must not be negative")
		}
		warnings = append(warnings, validateRate("flyer response rate", flyer.ResponseRatePercent)...)
		warnings = append(warnings, validateRate("flyer conversion rate", flyer.ConversionRatePercent)...)
	}

	if c.Reports.BagBuddy.Enabled {
		for _, sc := range c.Reports.BagBuddy.Scenarios {
			warnings = append(warnings, validateRate(fmt.Sprintf("scenario %q scan rate", sc.Name), sc.ScanRatePercent)...)
			warnings = append(warnings, validateRate(fmt.Sprintf("scenario %q conversion rate", sc.Name), sc.ConversionRatePercent)...)
		}
	}

	if c.Reports.CommerceReward.Enabled {
		cr := c.Reports.CommerceReward
		tierSum := cr.PctBronze + cr.PctSilver + cr.PctGold + cr.PctPlatinum
		if !mathutil.WithinTolerance(tierSum, 100.0, 0.5) {
			warnings = append(warnings, fmt.Sprintf("tier percentages sum to %.1f%%, expected 100%%", tierSum))
		}
		perView := cr.CashCreditPerView + cr.RewardPointsPerView + cr.PlatformMarginPerView
		if !mathutil.WithinTolerance(perView, cr.CPVBrandPays, constants.CurrencyTolerance) {
			warnings = append(warnings, fmt.Sprintf("per-view economics do not balance: credits+points+margin=%.2f vs CPV=%.2f", perView, cr.CPVBrandPays))
		}
	}

	return warnings
}

func validateRate(name string, pct float64) []string {
	if pct < 0 {
		return []string{fmt.Sprintf("%s is negative (%.2f%%)", name, pct)}
	}
	if pct > 100 {
		return []string{fmt.Sprintf("%s exceeds 100%% (%.2f%%)", name, pct)}
	}
	return nil
}
