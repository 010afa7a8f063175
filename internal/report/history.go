package report

import (
	"github.com/google/uuid"
	"github.com/pennywise-app/backend/internal/models"
	"github.com/pennywise-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// MonthlyHistory buckets the spending of one category by calendar month.
//
// The result is ordered ascending by month and contains one point for
// every month that has a transaction or a budget for the category. Months
// with a budget but no transactions are reported with zero spend so that
// charts show the budgeted month.
func MonthlyHistory(categoryID uuid.UUID, transactions []models.Transaction, budgets []models.Budget) []HistoryPoint {
	spent := make(map[types.Month]decimal.Decimal)

	for _, transaction := range transactions {
		if transaction.CategoryID != categoryID {
			continue
		}

		month := types.MonthOf(transaction.Date)
		spent[month] = spent[month].Add(transaction.Amount)
	}

	for _, budget := range budgets {
		if budget.CategoryID == nil || *budget.CategoryID != categoryID {
			continue
		}

		if _, ok := spent[budget.Month]; !ok {
			spent[budget.Month] = decimal.Zero
		}
	}

	points := make([]HistoryPoint, 0, len(spent))
	for month, amount := range spent {
		points = append(points, HistoryPoint{Month: month, Spent: amount})
	}

	slices.SortFunc(points, func(a, b HistoryPoint) int {
		if a.Month.Before(b.Month) {
			return -1
		}
		if a.Month.After(b.Month) {
			return 1
		}
		return 0
	})

	return points
}

// WeeklySeries buckets all spending by ISO week for the weeks
// intersecting the given calendar month.
//
// The result is contiguous and ordered ascending: every intersecting week
// is present, with zero spend when nothing happened, so that chart axes
// have no gaps. Transactions are bucketed by the ISO week containing their
// timestamp. A week that spans a month boundary is a single bucket, so
// transactions from the neighboring month count as well when they fall
// into an intersecting week.
func WeeklySeries(transactions []models.Transaction, month types.Month) []WeekPoint {
	first := types.WeekOf(month.FirstDay())
	last := types.WeekOf(month.LastDay())

	totals := make(map[types.Week]decimal.Decimal)
	for _, transaction := range transactions {
		week := types.WeekOf(transaction.Date)
		if week.Before(first) || week.After(last) {
			continue
		}

		totals[week] = totals[week].Add(transaction.Amount)
	}

	var points []WeekPoint
	for week := first; !week.After(last); week = week.Next() {
		points = append(points, WeekPoint{Week: week, Spent: totals[week]})
	}

	return points
}
