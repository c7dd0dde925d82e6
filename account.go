package finbook

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of an account. Accounts are never
// physically deleted; they transition to Closed or Frozen instead.
type AccountStatus string

const (
	StatusActive  AccountStatus = "ACTIVE"
	StatusFrozen  AccountStatus = "FROZEN"
	StatusPending AccountStatus = "PENDING"
	StatusClosed  AccountStatus = "CLOSED"
)

// ParseAccountStatus parses a string into an AccountStatus.
func ParseAccountStatus(s string) (AccountStatus, error) {
	switch AccountStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive, nil
	case StatusFrozen:
		return StatusFrozen, nil
	case StatusPending:
		return StatusPending, nil
	case StatusClosed:
		return StatusClosed, nil
	default:
		return "", fmt.Errorf("unknown account status: %q", s)
	}
}

// AccountType discriminates the two account variants. Variant behavior is
// dispatched with a switch on this tag, there is no type hierarchy.
type AccountType string

const (
	TypePersonal AccountType = "Personal"
	TypeAdmin    AccountType = "Admin"
)

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "personal":
		return TypePersonal, nil
	case "admin":
		return TypeAdmin, nil
	default:
		return "", fmt.Errorf("unknown account type: %q", s)
	}
}

// Account is one record of the account file, keyed by Username.
//
// The username, creation time and account type are fixed at registration;
// everything else is editable through the store's update primitive.
type Account struct {
	Username     string
	Password     string
	Phone        string
	Email        string
	Gender       string
	Address      string
	CreationTime string
	Status       AccountStatus
	Type         AccountType
	Balance      decimal.Decimal
}

// IsAdmin reports whether the account is the administrative variant.
func (a Account) IsAdmin() bool { return a.Type == TypeAdmin }

// CanTransact reports whether ledger operations are allowed for this account.
// Only active accounts may move money.
func (a Account) CanTransact() bool { return a.Status == StatusActive }

// Validate checks the record invariants before it is persisted.
func (a Account) Validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return fmt.Errorf("empty username")
	}
	if a.Balance.IsNegative() {
		return fmt.Errorf("negative balance %s for %q", a.Balance, a.Username)
	}
	switch a.Status {
	case StatusActive, StatusFrozen, StatusPending, StatusClosed:
	default:
		return fmt.Errorf("unknown account status %q for %q", a.Status, a.Username)
	}
	switch a.Type {
	case TypePersonal, TypeAdmin:
	default:
		return fmt.Errorf("unknown account type %q for %q", a.Type, a.Username)
	}
	// Rows are positional: a field containing the delimiter or a newline
	// would corrupt the file and be skipped on the next read.
	for _, f := range []string{a.Username, a.Password, a.Phone, a.Email,
		a.Gender, a.Address, a.CreationTime} {
		if strings.ContainsAny(f, ",\n") {
			return fmt.Errorf("field %q contains the delimiter", f)
		}
	}
	return nil
}

// accountFields is the arity of one account row.
const accountFields = 10

// AccountHeader is the fixed header line of the account file.
const AccountHeader = "username,password,phone,email,gender,address,creationTime,accountStatus,accountType,balance"

// encodeAccount renders one CSV row. The balance always carries two decimals.
func encodeAccount(a Account) string {
	return strings.Join([]string{
		a.Username, a.Password, a.Phone, a.Email, a.Gender, a.Address,
		a.CreationTime, string(a.Status), string(a.Type),
		a.Balance.StringFixed(2),
	}, ",")
}

// decodeAccount parses one CSV row into an Account. The accountType field
// selects the concrete variant at construction time.
func decodeAccount(line string) (Account, error) {
	parts := strings.Split(line, ",")
	if len(parts) != accountFields {
		return Account{}, fmt.Errorf("want %d fields, got %d", accountFields, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	status, err := ParseAccountStatus(parts[7])
	if err != nil {
		return Account{}, err
	}
	typ, err := ParseAccountType(parts[8])
	if err != nil {
		return Account{}, err
	}
	balance, err := decimal.NewFromString(parts[9])
	if err != nil {
		return Account{}, fmt.Errorf("invalid balance %q: %w", parts[9], err)
	}
	return Account{
		Username:     parts[0],
		Password:     parts[1],
		Phone:        parts[2],
		Email:        parts[3],
		Gender:       parts[4],
		Address:      parts[5],
		CreationTime: parts[6],
		Status:       status,
		Type:         typ,
		Balance:      balance,
	}, nil
}
