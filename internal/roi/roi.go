// Package roi defines the marketing report templates: each template is a
// fixed recipe of cell definitions over typed assumptions, producing a
// sealed, evaluated sheet.Report.
package roi

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/config"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
)

// Template names accepted by BuildTemplate and the recompute API.
const (
	TemplateDigitalAds     = "digital_ads"
	TemplateFlyer          = "flyer"
	TemplateBagBuddy       = "bagbuddy"
	TemplateCommerceReward = "commerce_reward"
	TemplateInvestor       = "investor"
	TemplateCrossChannel   = "cross_channel"
	TemplateComparison     = "comparison"
)

// TemplateNames lists every template that can be built standalone.
func TemplateNames() []string {
	return []string{
		TemplateDigitalAds,
		TemplateFlyer,
		TemplateBagBuddy,
		TemplateCommerceReward,
		TemplateInvestor,
		TemplateCrossChannel,
		TemplateComparison,
	}
}

// BuildReports constructs, seals, and evaluates every enabled report.
func BuildReports(logger *zap.Logger, conf config.Configuration) ([]*sheet.Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	type builder struct {
		name    string
		enabled bool
		build   func() (*sheet.Report, error)
	}

	builders := []builder{
		{TemplateDigitalAds, conf.Reports.DigitalAds.Enabled, func() (*sheet.Report, error) {
			return NewDigitalAdsReport(conf.Reports.DigitalAds)
		}},
		{TemplateFlyer, conf.Reports.Flyer.Enabled, func() (*sheet.Report, error) {
			return NewFlyerReport(conf.Reports.Flyer)
		}},
		{TemplateBagBuddy, conf.Reports.BagBuddy.Enabled, func() (*sheet.Report, error) {
			return NewBagBuddyReport(conf.Reports.BagBuddy)
		}},
		{TemplateCommerceReward, conf.Reports.CommerceReward.Enabled, func() (*sheet.Report, error) {
			return NewCommerceRewardReport(conf.Reports.CommerceReward)
		}},
		{TemplateInvestor, conf.Reports.Investor.Enabled, func() (*sheet.Report, error) {
			return NewInvestorReport(conf.Reports.Investor)
		}},
		{TemplateCrossChannel, conf.Reports.CrossChannel.Enabled, func() (*sheet.Report, error) {
			return NewCrossChannelReport(conf.Reports.DigitalAds, conf.Reports.Flyer)
		}},
		{TemplateComparison, conf.Reports.Comparison.Enabled, func() (*sheet.Report, error) {
			return NewComparisonReport(conf.Reports.Comparison)
		}},
	}

	var results []*sheet.Report
	for _, b := range builders {
		if !b.enabled {
			logger.Debug(fmt.Sprintf("skipping report %s because it is disabled", b.name),
				zap.String("op", "roi.BuildReports"),
			)
			continue
		}
		report, err := buildAndEvaluate(b.build)
		if err != nil {
			return results, fmt.Errorf("report %s: %w", b.name, err)
		}
		logger.Debug(fmt.Sprintf("built report %s with %d cells", b.name, report.Store().Len()),
			zap.String("op", "roi.BuildReports"),
		)
		results = append(results, report)
	}

	return results, nil
}

// BuildTemplate constructs one named template with the given assumptions,
// sealed and evaluated. Used by the stateless recompute API.
func BuildTemplate(name string, conf config.Configuration) (*sheet.Report, error) {
	var build func() (*sheet.Report, error)
	switch name {
	case TemplateDigitalAds:
		build = func() (*sheet.Report, error) { return NewDigitalAdsReport(conf.Reports.DigitalAds) }
	case TemplateFlyer:
		build = func() (*sheet.Report, error) { return NewFlyerReport(conf.Reports.Flyer) }
	case TemplateBagBuddy:
		build = func() (*sheet.Report, error) { return NewBagBuddyReport(conf.Reports.BagBuddy) }
	case TemplateCommerceReward:
		build = func() (*sheet.Report, error) { return NewCommerceRewardReport(conf.Reports.CommerceReward) }
	case TemplateInvestor:
		build = func() (*sheet.Report, error) { return NewInvestorReport(conf.Reports.Investor) }
	case TemplateCrossChannel:
		build = func() (*sheet.Report, error) {
			return NewCrossChannelReport(conf.Reports.DigitalAds, conf.Reports.Flyer)
		}
	case TemplateComparison:
		build = func() (*sheet.Report, error) { return NewComparisonReport(conf.Reports.Comparison) }
	default:
		return nil, fmt.Errorf("unknown report template %q", name)
	}
	return buildAndEvaluate(build)
}

func buildAndEvaluate(build func() (*sheet.Report, error)) (*sheet.Report, error) {
	report, err := build()
	if err != nil {
		return nil, err
	}
	if err := report.Seal(); err != nil {
		return nil, err
	}
	if err := report.Evaluate(); err != nil {
		return nil, err
	}
	return report, nil
}

// guardedRatio wraps num/den in the IF(denominator=0, 0, ...) guard used by
// every ratio metric in the workbook.
func guardedRatio(num sheet.Expr, den sheet.Address) sheet.Expr {
	return sheet.If(sheet.Eq(sheet.Ref(den), sheet.Num(0)), sheet.Num(0), sheet.Div(num, sheet.Ref(den)))
}
