package renderer

import (
	"bytes"
	"fmt"

	"github.com/finbook/finbook"
	md "github.com/nao1215/markdown"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx finbook.Transaction, currency string) string {
	amount := finbook.M(tx.Amount, currency)
	switch tx.Operation {
	case finbook.Income:
		return fmt.Sprintf("Received %s from %s on %s", amount, tx.Merchant, tx.Time)
	case finbook.Expense:
		return fmt.Sprintf("Spent %s at %s on %s", amount, tx.Merchant, tx.Time)
	default:
		return fmt.Sprintf("%s %s %s", tx.Operation, amount, tx.Merchant)
	}
}

// TransactionsMarkdown renders a ledger listing as a markdown table.
func TransactionsMarkdown(title string, txs []finbook.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.Time.String(),
			string(tx.Operation),
			finbook.M(tx.Amount, currency).String(),
			tx.Merchant,
			tx.Category,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Time", "Operation", "Amount", "Merchant/Payee", "Category"},
		Rows:   rows,
	})
	return doc.String()
}

// AbnormalMarkdown renders the abnormal-transfer report. Flagged transfers
// are listed newest-last in ledger order; a clean ledger yields a short
// all-clear note instead of an empty table.
func AbnormalMarkdown(txs []finbook.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Abnormal Transfers")
	flagged := finbook.DetectAbnormal(txs)
	if len(flagged) == 0 {
		doc.PlainText("No abnormal transfers detected.")
		return doc.String()
	}

	threshold := finbook.M(finbook.AbnormalThreshold, currency)
	doc.PlainText(fmt.Sprintf("%d transfer(s) above %s:", len(flagged), threshold))

	rows := make([][]string, 0, len(flagged))
	for _, tx := range flagged {
		rows = append(rows, []string{
			tx.Time.String(),
			finbook.M(tx.Amount, currency).String(),
			tx.Merchant,
			tx.Remark,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Time", "Amount", "Merchant/Payee", "Remark"},
		Rows:   rows,
	})
	return doc.String()
}
