package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// useTempFiles points the global file flags at a fresh temp directory.
func useTempFiles(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	oldAccounts, oldLedger, oldUser := *accountsFile, *ledgerFile, *username
	*accountsFile = filepath.Join(dir, "accounts.csv")
	*ledgerFile = filepath.Join(dir, "transactions.csv")
	t.Cleanup(func() {
		*accountsFile, *ledgerFile, *username = oldAccounts, oldLedger, oldUser
	})
}

func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing flags for %s: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), f)
}

func TestRegisterDepositWithdraw(t *testing.T) {
	useTempFiles(t)

	if got := run(t, &registerCmd{}, "alice", "secret"); got != subcommands.ExitSuccess {
		t.Fatalf("register = %v", got)
	}
	// Duplicate registration must fail.
	if got := run(t, &registerCmd{}, "alice", "other"); got == subcommands.ExitSuccess {
		t.Fatal("duplicate register must fail")
	}

	*username = "alice"
	if got := run(t, &depositCmd{}, "100"); got != subcommands.ExitSuccess {
		t.Fatalf("deposit = %v", got)
	}
	if got := run(t, &withdrawCmd{}, "30"); got != subcommands.ExitSuccess {
		t.Fatalf("withdraw = %v", got)
	}
	// Overdraft rejected.
	if got := run(t, &withdrawCmd{}, "1000"); got == subcommands.ExitSuccess {
		t.Fatal("overdraft must fail")
	}

	account, found, err := Accounts().FindByUsername("alice")
	if err != nil || !found {
		t.Fatalf("FindByUsername: found=%v err=%v", found, err)
	}
	if want := decimal.NewFromInt(70); !account.Balance.Equal(want) {
		t.Errorf("balance = %s, want %s", account.Balance, want)
	}
}

func TestAddAndSummary(t *testing.T) {
	useTempFiles(t)

	if got := run(t, &registerCmd{}, "alice", "secret"); got != subcommands.ExitSuccess {
		t.Fatalf("register = %v", got)
	}
	*username = "alice"

	if got := run(t, &addCmd{}, "Expense", "42.50", "2025/08/10 10:00", "store"); got != subcommands.ExitSuccess {
		t.Fatalf("add = %v", got)
	}

	txs, err := Ledger().ReadByOwner("alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 || !txs[0].Amount.Equal(decimal.RequireFromString("42.5")) {
		t.Fatalf("unexpected ledger content: %+v", txs)
	}

	summary, err := Service().BuildSummary("alice")
	if err != nil {
		t.Fatal(err)
	}
	if summary == "" {
		t.Fatal("empty summary")
	}
}

func TestStatus_RequiresAdmin(t *testing.T) {
	useTempFiles(t)

	run(t, &registerCmd{}, "alice", "secret")
	run(t, &registerCmd{}, "-admin", "root", "secret")

	*username = "alice"
	if got := run(t, &statusCmd{}, "alice", "FROZEN"); got == subcommands.ExitSuccess {
		t.Fatal("non-admin must not change statuses")
	}

	*username = "root"
	if got := run(t, &statusCmd{}, "alice", "FROZEN"); got != subcommands.ExitSuccess {
		t.Fatalf("admin status change = %v", got)
	}

	account, _, err := Accounts().FindByUsername("alice")
	if err != nil {
		t.Fatal(err)
	}
	if account.Status != finbook.StatusFrozen {
		t.Errorf("status = %s, want FROZEN", account.Status)
	}
}
