// Package report implements the budget aggregation and reporting engine.
//
// All computations are pure: they operate on a snapshot of the user's data
// that the caller passes in and hold no state between calls. Callers must
// refetch their snapshot after a successful write, previously computed
// figures are stale at that point.
package report

import (
	"github.com/google/uuid"
	"github.com/pennywise-app/backend/internal/models"
	"github.com/pennywise-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetProgress contains the derived spending figures for one budget.
type BudgetProgress struct {
	Budget     models.Budget   `json:"budget"`                        // The budget the figures are for
	Spent      decimal.Decimal `json:"spent" example:"150.75"`        // Sum of the matching transaction amounts
	Remaining  decimal.Decimal `json:"remaining" example:"99.25"`     // Limit minus spent. Negative when over budget
	Percentage decimal.Decimal `json:"percentage" example:"60.3"`     // Spent share of the limit in percent, rounded to one decimal place
}

// CategoryProgress is the progress of one category's budget, with the
// category name resolved for display.
type CategoryProgress struct {
	CategoryID uuid.UUID `json:"categoryId"`              // ID of the category
	Name       string    `json:"name" example:"Health"`   // Name of the category
	BudgetProgress
}

// Dashboard is the roll-up of all budget progress for one month.
type Dashboard struct {
	Month      types.Month        `json:"month"`      // The month the dashboard is for
	Overall    *BudgetProgress    `json:"overall"`    // Progress of the overall budget. Not set when no overall budget exists
	Categories []CategoryProgress `json:"categories"` // Progress per category, in category creation order
}

// HistoryPoint is the spending of one category in one month.
type HistoryPoint struct {
	Month types.Month     `json:"month"`                // The month
	Spent decimal.Decimal `json:"spent" example:"42.1"` // Total spent in the month. May be zero
}

// WeekPoint is the total spending in one ISO week.
type WeekPoint struct {
	Week  types.Week      `json:"week" example:"2024-W35"` // The ISO week
	Spent decimal.Decimal `json:"spent" example:"13.37"`   // Total spent in the week. May be zero
}
