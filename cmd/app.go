// Package cmd implements the CLI application to manage personal accounts and
// their transaction ledger.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"sync"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/rates"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Commands lists every subcommand of the application. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&registerCmd{},
	&loginCmd{},
	&profileCmd{},
	&statusCmd{},

	&depositCmd{},
	&withdrawCmd{},
	&transferCmd{},

	&addCmd{},
	&txCmd{},
	&summaryCmd{},
	&expenseCmd{},
	&abnormalCmd{},
	&budgetCmd{},

	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var accountsFile = flag.String("accounts-file", "accounts.csv", "Path to the accounts file (CSV format)")
var ledgerFile = flag.String("ledger-file", "transactions.csv", "Path to the transaction ledger file (CSV format)")
var extendedLedger = flag.Bool("extended", false, "Use the extended 13-column ledger layout")
var homeCurrency = flag.String("home", "CNY", "Home currency code, all amounts are normalized into it")
var username = flag.String("u", "", "Username the command acts for")

// Accounts opens the application's account store.
func Accounts() *finbook.AccountStore {
	return finbook.NewAccountStore(*accountsFile)
}

// Ledger opens the application's transaction store.
func Ledger() *finbook.TransactionStore {
	schema := finbook.SchemaLegacy
	if *extendedLedger {
		schema = finbook.SchemaExtended
	}
	return finbook.NewTransactionStore(*ledgerFile, schema)
}

// Service returns the transaction service over the application ledger.
func Service() *finbook.TransactionService {
	return &finbook.TransactionService{Store: Ledger()}
}

// CurrentUser returns the username given with -u, or an error when missing.
func CurrentUser() (string, error) {
	if *username == "" {
		return "", fmt.Errorf("no user selected, use the global -u flag")
	}
	return *username, nil
}

// lazyRates fetches the daily rate table on the first foreign-currency
// lookup, so commands handling plain amounts never touch the network. When
// the service is unreachable every lookup misses and foreign amounts are
// kept raw.
type lazyRates struct {
	once sync.Once
	svc  *rates.Service
}

func (l *lazyRates) Rate(code string) (decimal.Decimal, bool) {
	l.once.Do(func() {
		svc, err := rates.Daily(*homeCurrency)
		if err != nil {
			log.Printf("rate service unavailable, foreign amounts kept raw: %v", err)
			return
		}
		l.svc = svc
	})
	if l.svc == nil {
		return decimal.Zero, false
	}
	return l.svc.Rate(code)
}

// NewNormalizer builds the input normalizer over the daily rate service.
func NewNormalizer() *finbook.Normalizer {
	return &finbook.Normalizer{Home: *homeCurrency, Rates: &lazyRates{}}
}
