// Package projection turns budget plans, savings accounts and payments into
// month-by-month forecasts and calendar events. All functions are pure: they take
// the reference time explicitly and never modify their inputs.
package projection

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Horizons offered to users. The functions accept any month count.
var Horizons = []int{6, 12, 24}

// DefaultHorizon is used when the caller does not pick one
const DefaultHorizon = 12

var shortMonths = [...]string{"sty", "lut", "mar", "kwi", "maj", "cze", "lip", "sie", "wrz", "paź", "lis", "gru"}

// MonthLabel formats t as a short Polish month and year, e.g. "sty 2026".
// Series are joined by this label, so every series must use it.
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", shortMonths[t.Month()-1], t.Year())
}

// MonthStart returns the first day of the i-th month counted from now's month
func MonthStart(now time.Time, i int) time.Time {
	return time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, now.Location())
}

// HorizonEnd returns the last instant of the final month in a horizon of months
func HorizonEnd(now time.Time, months int) time.Time {
	return MonthStart(now, months).Add(-time.Nanosecond)
}

// ValidHorizon reports whether months is one of the offered horizons
func ValidHorizon(months int) bool {
	for _, h := range Horizons {
		if h == months {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
