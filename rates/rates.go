// Package rates fetches currency conversion rates from a public exchange-rate
// API and serves them as a lookup table keyed by currency code.
//
// A rate answers "how many units of the home currency is one unit of this
// currency worth", so converting a foreign amount is a single multiplication.
package rates

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultURL is the endpoint serving the latest rates for a base currency.
// The base currency code is appended to the path.
const DefaultURL = "https://open.er-api.com/v6/latest/"

// Service holds a snapshot of conversion rates toward a home currency.
type Service struct {
	home  string
	table map[string]decimal.Decimal
}

// Daily returns a service loaded from the default endpoint through a
// day-cached HTTP client, so repeated invocations on the same day hit the
// network once.
func Daily(home string) (*Service, error) {
	return Fetch(daily(), DefaultURL+home, home)
}

// Fetch loads the rates for home from addr using client.
//
// The endpoint publishes rates base=home: one unit of home buys r units of
// the quoted currency. The table stores the inverse, so that Rate multiplies.
func Fetch(client *http.Client, addr, home string) (*Service, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error fetching rates for %q: %w", home, err)
	}
	path := "$.rates"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing rates for %q: %q %w", home, path, err)
	}
	jrates, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error parsing rates for %q: %q is not an object", home, path)
	}

	table := make(map[string]decimal.Decimal, len(jrates))
	one := decimal.NewFromInt(1)
	for code, jrate := range jrates {
		r, ok := jrate.(float64)
		if !ok || r == 0 {
			continue
		}
		table[code] = one.Div(decimal.NewFromFloat(r))
	}
	table[home] = one
	return &Service{home: home, table: table}, nil
}

// Home returns the currency the table converts into.
func (s *Service) Home() string { return s.home }

// Rate returns the multiplier turning one unit of code into home currency.
func (s *Service) Rate(code string) (decimal.Decimal, bool) {
	r, ok := s.table[code]
	return r, ok
}

// Codes returns how many currencies the snapshot covers.
func (s *Service) Codes() int { return len(s.table) }
