package v1

import (
	"github.com/google/uuid"
	"github.com/pennywise-app/backend/internal/models"
	"github.com/pennywise-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	CategoryID *uuid.UUID      `json:"categoryId" example:"5b75bbea-e684-4ccb-88e0-9f2ef0344b56"` // ID of the category. Omit for the overall budget
	Month      types.Month     `json:"month" example:"2024-08"`                                   // The month the budget is for
	Limit      decimal.Decimal `json:"limit" example:"250"`                                       // Spending limit for the month
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:     userID,
		CategoryID: editable.CategoryID,
		Month:      editable.Month,
		Limit:      editable.Limit,
	}
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
}

func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			CategoryID: model.CategoryID,
			Month:      model.Month,
			Limit:      model.Limit,
		},
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Month string `form:"month" example:"2024-08"` // Only return budgets for this month
}
