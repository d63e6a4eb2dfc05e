// Package format holds the French display helpers shared by the API and the reports.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	dateLayout    = "02/01/2006"
	isoDateLayout = "2006-01-02"

	// CurrencySuffix follows the grouped amount (Guinean franc).
	CurrencySuffix = " F"
)

var (
	printer = message.NewPrinter(language.French)

	// CLDR french grouping uses (narrow) no-break spaces; the PDF fonts only know plain ones.
	spaceReplacer = strings.NewReplacer("\u00a0", " ", "\u202f", " ")
)

// Date formats t as dd/mm/yyyy. The zero time gives "".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// ISODate formats t as yyyy-mm-dd.
func ISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// ParseISODate parses a yyyy-mm-dd string in UTC. An empty string gives the zero time.
func ParseISODate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(isoDateLayout, s, time.UTC)
}

// Number groups thousands the french way: 3500000 -> "3 500 000".
func Number(d decimal.Decimal) string {
	var s string
	if d.IsInteger() {
		s = printer.Sprintf("%d", d.IntPart())
	} else {
		s = printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
	}
	return spaceReplacer.Replace(s)
}

// Amount formats a raw amount for display: 250000 -> "250 000 F".
func Amount(d decimal.Decimal) string {
	return Number(d) + CurrencySuffix
}

// AcademicYear returns the school year t belongs to ("2024-2025"); years start in September.
func AcademicYear(t time.Time) string {
	start := AcademicYearStart(t)
	return fmt.Sprintf("%d-%d", start.Year(), start.Year()+1)
}

// AcademicYearStart returns September 1st of the school year t belongs to.
func AcademicYearStart(t time.Time) time.Time {
	y := t.Year()
	if t.Month() < time.September {
		y--
	}
	return time.Date(y, time.September, 1, 0, 0, 0, 0, t.Location())
}
