package roi

import (
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/config"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
)

// NewInvestorReport builds the investor portfolio sheet: overall return,
// annualized return, MOIC and profit margin for a single position.
func NewInvestorReport(a config.InvestorAssumptions) (*sheet.Report, error) {
	r := sheet.NewReport("Investor Portfolio")

	pos := r.Section("Position")
	pos.Number("initial_investment", "Initial Investment", a.InitialInvestment, sheet.FormatCurrency)
	pos.Number("current_value", "Current Value", a.CurrentValue, sheet.FormatCurrency)
	pos.Number("investment_period_years", "Investment Period (years)", a.InvestmentPeriodYears, sheet.FormatNumber)

	ret := r.Section("Returns")
	ret.Formula("unrealized_gain", "Unrealized Gain",
		sheet.Sub(sheet.Ref("current_value"), sheet.Ref("initial_investment")),
		sheet.FormatCurrency)
	ret.Formula("roi_percent", "ROI",
		sheet.Mul(guardedRatio(sheet.Ref("unrealized_gain"), "initial_investment"), sheet.Num(100)),
		sheet.FormatPercent)
	// Geometric mean return per year over the holding period.
	ret.Formula("annualized_return", "Annualized Return",
		sheet.If(sheet.Eq(sheet.Ref("investment_period_years"), sheet.Num(0)),
			sheet.Num(0),
			sheet.If(sheet.Eq(sheet.Ref("initial_investment"), sheet.Num(0)),
				sheet.Num(0),
				sheet.Mul(
					sheet.Sub(
						sheet.Pow(
							sheet.Div(sheet.Ref("current_value"), sheet.Ref("initial_investment")),
							sheet.Div(sheet.Num(1), sheet.Ref("investment_period_years"))),
						sheet.Num(1)),
					sheet.Num(100)))),
		sheet.FormatPercent)
	ret.Formula("moic", "Multiple on Invested Capital",
		guardedRatio(sheet.Ref("current_value"), "initial_investment"),
		sheet.FormatNumber)
	ret.Formula("profit_margin", "Profit Margin",
		sheet.Mul(guardedRatio(sheet.Ref("unrealized_gain"), "current_value"), sheet.Num(100)),
		sheet.FormatPercent)

	return r, nil
}
