package finbook

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Operation is the direction of a transaction. The amount is always positive;
// the sign lives here.
type Operation string

const (
	Income  Operation = "Income"
	Expense Operation = "Expense"
)

// ParseOperation parses a string into an Operation.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown operation: %q", s)
	}
}

// Schema selects the row layout of a transaction file. A store is configured
// for exactly one schema; mixing schemas in one file is a caller error.
type Schema int

const (
	// SchemaLegacy is the 5-field row: user,operation,amount,time,merchant.
	SchemaLegacy Schema = iota
	// SchemaExtended is the 13-field row that adds classification fields.
	SchemaExtended
)

// Header returns the fixed header line for the schema.
func (sc Schema) Header() string {
	switch sc {
	case SchemaLegacy:
		return "user,operation,amount,time,merchant"
	case SchemaExtended:
		return "user,operation,amount,time,merchant,type,remark,category,payment_method,location,tag,attachment,recurrence"
	default:
		panic("unknown schema")
	}
}

// Fields returns the row arity for the schema.
func (sc Schema) Fields() int {
	switch sc {
	case SchemaLegacy:
		return 5
	case SchemaExtended:
		return 13
	default:
		panic("unknown schema")
	}
}

// Transaction is one immutable row of the transaction file. Corrections are
// modeled as new transactions, never as mutations.
type Transaction struct {
	Owner     string // username of the owning account
	Operation Operation
	Amount    decimal.Decimal // always > 0
	Time      Timestamp
	Merchant  string // or a sentinel for pure income

	// Extended schema fields, zero-valued under SchemaLegacy.
	Type          string
	Remark        string
	Category      string
	PaymentMethod string
	Location      string
	Tag           string
	Attachment    string
	Recurrence    string
}

// Validate checks the record invariants before it is persisted.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Owner) == "" {
		return fmt.Errorf("transaction without owner")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Time.IsZero() {
		return fmt.Errorf("transaction without timestamp")
	}
	switch t.Operation {
	case Income, Expense:
	default:
		return fmt.Errorf("unknown operation %q", t.Operation)
	}
	// Rows are positional: a field containing the delimiter or a newline
	// would corrupt the file and be skipped on the next read.
	for _, f := range []string{t.Owner, t.Merchant, t.Type, t.Remark, t.Category,
		t.PaymentMethod, t.Location, t.Tag, t.Attachment, t.Recurrence} {
		if strings.ContainsAny(f, ",\n") {
			return fmt.Errorf("field %q contains the delimiter", f)
		}
	}
	return nil
}

// IsTransfer reports whether the classification tag marks this transaction
// as a transfer.
func (t Transaction) IsTransfer() bool {
	return strings.EqualFold(t.Type, "transfer")
}

// encodeTransaction renders one CSV row in the given schema.
func encodeTransaction(t Transaction, sc Schema) string {
	fields := []string{
		t.Owner, string(t.Operation), t.Amount.StringFixed(2), t.Time.String(), t.Merchant,
	}
	if sc == SchemaExtended {
		fields = append(fields,
			t.Type, t.Remark, t.Category, t.PaymentMethod,
			t.Location, t.Tag, t.Attachment, t.Recurrence)
	}
	return strings.Join(fields, ",")
}

// decodeTransaction parses one CSV row in the given schema.
func decodeTransaction(line string, sc Schema) (Transaction, error) {
	parts := strings.Split(line, ",")
	if len(parts) != sc.Fields() {
		return Transaction{}, fmt.Errorf("want %d fields, got %d", sc.Fields(), len(parts))
	}
	op, err := ParseOperation(parts[1])
	if err != nil {
		return Transaction{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid amount %q: %w", parts[2], err)
	}
	ts, err := ParseTimestamp(parts[3])
	if err != nil {
		return Transaction{}, err
	}
	t := Transaction{
		Owner:     strings.TrimSpace(parts[0]),
		Operation: op,
		Amount:    amount,
		Time:      ts,
		Merchant:  parts[4],
	}
	if sc == SchemaExtended {
		t.Type = parts[5]
		t.Remark = parts[6]
		t.Category = parts[7]
		t.PaymentMethod = parts[8]
		t.Location = parts[9]
		t.Tag = parts[10]
		t.Attachment = parts[11]
		t.Recurrence = parts[12]
	}
	return t, nil
}
