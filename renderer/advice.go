package renderer

import (
	"bytes"
	"fmt"

	"github.com/finbook/finbook"
	md "github.com/nao1215/markdown"
)

// AdviceMarkdown renders a budget recommendation as a markdown report.
// budgetStatus is the warning line from the budget check, empty when the
// spending is comfortable.
func AdviceMarkdown(rec finbook.Recommendation, monthExpense finbook.Money, budgetStatus string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Budget Recommendation")
	doc.PlainText(fmt.Sprintf("Mode: **%s** (%s)", rec.Mode, rec.Mode.Reason()))

	currency := monthExpense.Currency()
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Spent this month", monthExpense.String()},
			{"Suggested budget", finbook.M(rec.SuggestedBudget, currency).String()},
			{"Suggested saving", finbook.M(rec.SuggestedSaving, currency).String()},
		},
	})

	if budgetStatus != "" {
		doc.PlainText("")
		doc.PlainText("> " + budgetStatus)
	}
	return doc.String()
}
