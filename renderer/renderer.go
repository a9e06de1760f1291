// Package renderer formats chart series and account lists as markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"

	ledger "github.com/Snowbotx9/ledger-obsidian-traveller"
)

// Money formats an amount in the given ISO currency code, e.g. "$1,234.50".
func Money(a ledger.Amount, currency string) string {
	cur := *money.New(0, currency).Currency()
	return cur.Formatter().Format(a.Decimal().Shift(int32(cur.Fraction)).IntPart())
}

// SignedMoney is Money with an explicit sign, and "-" for zero, so delta
// columns scan easily.
func SignedMoney(a ledger.Amount, currency string) string {
	if a.IsZero() {
		return "-"
	}
	if a.IsPositive() {
		return "+" + Money(a, currency)
	}
	return Money(a, currency)
}

// chartRenderer formats a chart series into a markdown string.
type chartRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *chartRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// ChartMarkdown renders a chart series as a markdown table, one row per
// bucket in series order.
func ChartMarkdown(title string, series ledger.ChartData, currency string, signed bool) string {
	r := &chartRenderer{Builder: &strings.Builder{}}

	r.Printf("# %s\n\n", title)
	if len(series) == 0 {
		r.Printf("No data in range.\n")
		return r.String()
	}

	r.Printf("| Bucket | Value |\n")
	r.Printf("|:---|---:|\n")
	for _, point := range series {
		value := Money(point.Y, currency)
		if signed {
			value = SignedMoney(point.Y, currency)
		}
		r.Printf("| %s | %s |\n", point.X, value)
	}
	r.Printf("\n")
	return r.String()
}

// AccountsMarkdown renders the compressed account list as a bullet list.
func AccountsMarkdown(paths []string) string {
	r := &chartRenderer{Builder: &strings.Builder{}}

	r.Printf("# Accounts\n\n")
	if len(paths) == 0 {
		r.Printf("No accounts.\n")
		return r.String()
	}
	for _, path := range paths {
		r.Printf("- %s\n", path)
	}
	r.Printf("\n")
	return r.String()
}
