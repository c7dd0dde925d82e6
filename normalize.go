package finbook

import (
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnparsable reports an amount string with no numeric content at all.
// The returned amount is still zero, so callers that want the historical
// "silently zero" behavior can ignore the error; callers that need to tell
// a failed parse from a genuine zero can check for it.
var ErrUnparsable = errors.New("no numeric content in amount")

// RateSource resolves a currency code to its conversion rate into the home
// currency. Absence of a rate is not an error; the normalizer degrades to
// the raw value.
type RateSource interface {
	Rate(code string) (decimal.Decimal, bool)
}

// StaticRates is a fixed in-memory RateSource, for tests and offline use.
type StaticRates map[string]decimal.Decimal

// Rate implements RateSource.
func (r StaticRates) Rate(code string) (decimal.Decimal, bool) {
	rate, ok := r[code]
	return rate, ok
}

// Normalizer turns free-form user input into canonical amounts and
// timestamps. Now is the clock used to resolve relative time expressions;
// it defaults to time.Now.
type Normalizer struct {
	Rates RateSource
	Home  string // home currency code, defaults to CNY
	Now   func() time.Time
}

const defaultHomeCurrency = "CNY"

func (n *Normalizer) now() time.Time {
	if n.Now != nil {
		return n.Now()
	}
	return time.Now()
}

func (n *Normalizer) home() string {
	if n.Home != "" {
		return n.Home
	}
	return defaultHomeCurrency
}

// amountRE matches "<number><optional unit>" where the unit is an alphabetic
// currency code or a known symbol. Input is uppercased before matching.
var amountRE = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([A-Z$¥€]*)$`)

// nonNumericRE strips everything that cannot be part of a decimal number.
var nonNumericRE = regexp.MustCompile(`[^0-9.]`)

// currency words and symbols accepted as units, mapped to ISO codes.
var unitAliases = map[string]string{
	"$":       "USD",
	"¥":       "CNY",
	"€":       "EUR",
	"DOLLAR":  "USD",
	"DOLLARS": "USD",
	"YUAN":    "CNY",
	"EURO":    "EUR",
	"EUROS":   "EUR",
}

// NormalizeAmount converts a free-form amount string into a canonical value
// in the home currency.
//
// "30" and "30 CNY" stay 30; "30 USD" becomes 30 times the USD rate. A known
// misspelling CHY is corrected to CNY. When the unit is unknown to the rate
// source the raw value is kept with a warning. When the whole pattern fails,
// non-numeric characters are stripped and the remainder parsed; if nothing
// numeric remains the result is zero together with ErrUnparsable. This
// function never returns any other error.
func (n *Normalizer) NormalizeAmount(raw string) (decimal.Decimal, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "CHY", "CNY")

	if m := amountRE.FindStringSubmatch(s); m != nil {
		value, err := decimal.NewFromString(m[1])
		if err != nil {
			// The regexp guarantees a well-formed number.
			return decimal.Zero, nil
		}
		unit := m[2]
		if alias, ok := unitAliases[unit]; ok {
			unit = alias
		}
		if unit == "" || unit == n.home() {
			return value, nil
		}
		if n.Rates != nil {
			if rate, ok := n.Rates.Rate(unit); ok {
				return value.Mul(rate), nil
			}
		}
		log.Printf("no rate for currency %q, keeping raw value %s", unit, value)
		return value, nil
	}

	// Pattern miss: salvage whatever digits remain.
	stripped := nonNumericRE.ReplaceAllString(s, "")
	if stripped != "" {
		if value, err := decimal.NewFromString(stripped); err == nil {
			return value, nil
		}
	}
	log.Printf("cannot normalize amount %q", raw)
	return decimal.Zero, ErrUnparsable
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	offset := int(t.Weekday() - time.Monday)
	for offset < 0 {
		offset += 7
	}
	return t.AddDate(0, 0, -offset)
}

// NormalizeTime converts a free-form time string into a canonical timestamp.
//
// Relative expressions (today, yesterday, this/last/next week, month, year)
// are resolved against the clock at call time, keeping the current wall-clock
// time of day. Anything else is parsed as `yyyy/MM/dd HH:mm`, then as
// `yyyy/MM/dd` at midnight. When all parsing fails the current moment is
// returned; this function never fails.
func (n *Normalizer) NormalizeTime(raw string) Timestamp {
	s := strings.ToLower(strings.TrimSpace(raw))
	now := n.now()

	var day time.Time
	switch s {
	case "today":
		day = now
	case "yesterday":
		day = now.AddDate(0, 0, -1)
	case "this week":
		day = startOfWeek(now)
	case "last week":
		day = startOfWeek(now.AddDate(0, 0, -7))
	case "next week":
		day = startOfWeek(now.AddDate(0, 0, 7))
	case "this month":
		day = time.Date(now.Year(), now.Month(), 1, now.Hour(), now.Minute(), 0, 0, now.Location())
	case "last month":
		day = time.Date(now.Year(), now.Month()-1, 1, now.Hour(), now.Minute(), 0, 0, now.Location())
	case "next month":
		day = time.Date(now.Year(), now.Month()+1, 1, now.Hour(), now.Minute(), 0, 0, now.Location())
	case "this year":
		day = time.Date(now.Year(), time.January, 1, now.Hour(), now.Minute(), 0, 0, now.Location())
	case "last year":
		day = time.Date(now.Year()-1, time.January, 1, now.Hour(), now.Minute(), 0, 0, now.Location())
	case "next year":
		day = time.Date(now.Year()+1, time.January, 1, now.Hour(), now.Minute(), 0, 0, now.Location())
	default:
		if ts, err := ParseTimestamp(s); err == nil {
			return ts
		}
		if d, err := time.Parse(DateOnlyFormat, s); err == nil {
			return NewTimestamp(d) // midnight assumed
		}
		return NewTimestamp(now)
	}
	return NewTimestamp(day)
}
