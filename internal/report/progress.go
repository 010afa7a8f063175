package report

import (
	"github.com/pennywise-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Progress computes the spending figures for a budget from a snapshot of
// transactions.
//
// A transaction matches when its date falls into the budget's month and it
// references the budget's category. The overall budget matches transactions
// of every category. Transactions of other users must not be part of the
// snapshot, the engine does not filter by user.
//
// A budget with no matching transactions has zero spend, this is not an
// error.
func Progress(budget models.Budget, transactions []models.Transaction) BudgetProgress {
	spent := decimal.Zero

	for _, transaction := range transactions {
		if !matches(budget, transaction) {
			continue
		}

		spent = spent.Add(transaction.Amount)
	}

	// The percentage is zero for a zero limit. Not a divide-by-zero
	// error: a zero limit means "do not spend", every spend is over it.
	percentage := decimal.Zero
	if budget.Limit.IsPositive() {
		percentage = spent.Div(budget.Limit).Mul(oneHundred).Round(1)
	}

	return BudgetProgress{
		Budget:     budget,
		Spent:      spent,
		Remaining:  budget.Limit.Sub(spent),
		Percentage: percentage,
	}
}

// matches reports whether a transaction counts towards a budget.
func matches(budget models.Budget, transaction models.Transaction) bool {
	if !budget.Month.Contains(transaction.Date) {
		return false
	}

	return budget.CategoryID == nil || *budget.CategoryID == transaction.CategoryID
}
