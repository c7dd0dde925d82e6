package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/docs"
	"github.com/finbook/finbook/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his personal finances: balances, spending,
			unusual transfers and budget advice. Check the ledger first before assuming anything
			about his accounts.

			Devise a plan of questions to ask each expert and come up with the best response to
			the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns the web-search expert for questions the ledger
// cannot answer, like prices, merchants or currency news.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher,
		well aware of merchants, prices, currencies and financial news.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert researcher. You can search and find out about anything related to
			merchants, prices, currencies and financial news. You leverage Google Search to
			ground your assertions.
				`}}},
		},
	}
}

// Books binds the expert functions to the user's account and ledger.
type Books struct {
	Accounts *finbook.AccountStore
	Service  *finbook.TransactionService
	Username string
	Currency string
}

// NewBookkeeper returns the expert in charge of reading the user's accounts
// and ledger through function tools.
func NewBookkeeper(b *Books) *Expert {
	lib := []Function{b.balanceFunc(), b.transactionsFunc(), b.monthExpenseFunc(), b.budgetFunc()}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's accounts and
		transaction ledger. He can compute balances, monthly spending, list transactions and
		produce budget recommendations.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's accounts and transaction ledger.
				You know how to use the Tools to extract relevant information about the user's finances.
				You are part of a team of experts, yours is everything recorded in the ledger. They might
				ask you approximate questions, figure out what they meant.

				Use the available tools to get information about the user's finances:
				  - account balance
				  - transaction listing
				  - spending of the current month
				  - budget recommendation
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func respond(id, name string, output string, err error) *genai.FunctionResponse {
	r := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
	if err != nil {
		r.Response["error"] = err.Error()
		return r
	}
	r.Response["output"] = output
	return r
}

func (b *Books) balanceFunc() *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Balance",
			Description: "Balance returns the user's current account balance, formatted in the home currency.",
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The formatted balance.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			account, found, err := b.Accounts.FindByUsername(b.Username)
			if err != nil {
				return respond(id, "Balance", "", err)
			}
			if !found {
				return respond(id, "Balance", "", fmt.Errorf("account %q not found", b.Username))
			}
			return respond(id, "Balance", finbook.M(account.Balance, b.Currency).String(), nil)
		},
	}
}

func (b *Books) transactionsFunc() *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Transactions",
			Description: "Transactions lists every ledger entry of the user as a markdown table, oldest first.",
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the user's transactions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			txs, err := b.Service.Store.ReadByOwner(b.Username)
			if err != nil {
				return respond(id, "Transactions", "", err)
			}
			return respond(id, "Transactions", renderer.TransactionsMarkdown("Ledger", txs, b.Currency), nil)
		},
	}
}

func (b *Books) monthExpenseFunc() *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "MonthExpense",
			Description: "MonthExpense returns the user's total spending for the current calendar month.",
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The formatted total of this month's expenses.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			total, err := b.Service.CurrentMonthExpense(b.Username)
			if err != nil {
				return respond(id, "MonthExpense", "", err)
			}
			return respond(id, "MonthExpense", finbook.M(total, b.Currency).String(), nil)
		},
	}
}

func (b *Books) budgetFunc() *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "BudgetAdvice",
			Description: `BudgetAdvice computes a budget recommendation from the user's history.

			` + must(docs.GetTopic("budget")),
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted budget recommendation report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			txs, err := b.Service.Store.ReadByOwner(b.Username)
			if err != nil {
				return respond(id, "BudgetAdvice", "", err)
			}
			spent, err := b.Service.CurrentMonthExpense(b.Username)
			if err != nil {
				return respond(id, "BudgetAdvice", "", err)
			}
			rec := finbook.Recommend(txs, time.Now().Month())
			status := finbook.CheckBudget(spent, rec.SuggestedBudget)
			report := renderer.AdviceMarkdown(rec, finbook.M(spent, b.Currency), status)
			return respond(id, "BudgetAdvice", report, nil)
		},
	}
}
