package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pennywise-app/backend/internal/models"
	"github.com/pennywise-app/backend/internal/types"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// ErrNoOverallBudget is reported by BuildDashboard when the user has no
// overall budget for the requested month.
var ErrNoOverallBudget = fmt.Errorf("%w overall budget for this month", models.ErrResourceNotFound)

// Source provides the snapshot the dashboard is computed from.
//
// The three reads are independent of each other and may be executed
// concurrently. A failed read must return an error, never empty data: an
// empty slice means "the user has no data", which is a valid state.
type Source interface {
	Categories(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	Budgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error)
	Transactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
}

// BuildDashboard computes the budget roll-up of one user for one month.
//
// The snapshot is fetched concurrently from the source, all three reads
// have to succeed before anything is computed. Categories that have a
// budget for the month are reported in category creation order; categories
// without a budget are omitted.
//
// When the user has no overall budget for the month, BuildDashboard
// returns ErrNoOverallBudget together with a dashboard that still carries
// the per-category progress. Callers decide the fallback, e.g. rendering
// "no budget set".
func BuildDashboard(ctx context.Context, source Source, userID uuid.UUID, month types.Month) (Dashboard, error) {
	var (
		categories   []models.Category
		budgets      []models.Budget
		transactions []models.Transaction
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		categories, err = source.Categories(ctx, userID)
		return
	})
	g.Go(func() (err error) {
		budgets, err = source.Budgets(ctx, userID)
		return
	})
	g.Go(func() (err error) {
		transactions, err = source.Transactions(ctx, userID)
		return
	})

	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	dashboard := buildDashboard(categories, budgets, transactions, month)
	if dashboard.Overall == nil {
		return dashboard, ErrNoOverallBudget
	}

	return dashboard, nil
}

// buildDashboard is the pure computation over a complete snapshot.
func buildDashboard(categories []models.Category, budgets []models.Budget, transactions []models.Transaction, month types.Month) Dashboard {
	dashboard := Dashboard{
		Month:      month,
		Categories: []CategoryProgress{},
	}

	// One pass over the budgets, one map lookup per category. Keeps the
	// roll-up at O(categories + budgets + transactions).
	var overall *models.Budget
	budgetByCategory := make(map[uuid.UUID]models.Budget)
	for _, budget := range budgets {
		if !budget.Month.Equal(month) {
			continue
		}

		if budget.CategoryID == nil {
			b := budget
			overall = &b
			continue
		}

		budgetByCategory[*budget.CategoryID] = budget
	}

	// Category creation order is the display order
	slices.SortStableFunc(categories, func(a, b models.Category) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	for _, category := range categories {
		budget, ok := budgetByCategory[category.ID]
		if !ok {
			continue
		}

		dashboard.Categories = append(dashboard.Categories, CategoryProgress{
			CategoryID:     category.ID,
			Name:           category.Name,
			BudgetProgress: Progress(budget, transactions),
		})
	}

	if overall != nil {
		progress := Progress(*overall, transactions)
		dashboard.Overall = &progress
	}

	return dashboard
}
