// Package format renders cell values for display. All rounding happens
// here, at the display boundary; values flowing between cells keep full
// precision.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
)

var printer = message.NewPrinter(language.English)

// Display renders a cell value according to its format tag.
func Display(v sheet.Value, tag sheet.FormatTag) string {
	if v.IsText {
		return v.Text
	}
	switch tag {
	case sheet.FormatCurrency:
		return Currency(v.Number)
	case sheet.FormatCurrency4:
		return currencyFixed(v.Number, 4)
	case sheet.FormatPercent:
		return Fixed(v.Number, 2) + "%"
	case sheet.FormatInteger:
		return groupThousands(decimal.NewFromFloat(v.Number).StringFixed(0))
	case sheet.FormatText:
		return v.Text
	default:
		return Fixed(v.Number, 2)
	}
}

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	return currencyFixed(amount, 2)
}

// Fixed rounds to the given number of decimals, half away from zero.
func Fixed(amount float64, places int32) string {
	return decimal.NewFromFloat(amount).StringFixed(places)
}

func currencyFixed(amount float64, places int32) string {
	d := decimal.NewFromFloat(amount)
	neg := d.IsNegative()
	formatted := groupThousands(d.Abs().StringFixed(places))
	if neg {
		return "-$" + formatted
	}
	return "$" + formatted
}

// groupThousands inserts locale separators into the integer part of an
// already-rounded decimal string.
func groupThousands(formatted string) string {
	parts := strings.SplitN(formatted, ".", 2)
	n, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return formatted
	}
	grouped := printer.Sprintf("%d", n)
	if len(parts) == 2 {
		return grouped + "." + parts[1]
	}
	return grouped
}
