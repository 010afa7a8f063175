package models

import (
	"github.com/google/uuid"
	"github.com/pennywise-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget represents a spending limit for one category and month.
//
// A budget without a category is the overall budget of the user for the
// month. There is at most one budget per user, category and month;
// budgets are immutable once created.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId" gorm:"uniqueIndex:budget_user_category_month"`                            // ID of the owning user
	User       User            `json:"-"`                                                                               // The owning user
	CategoryID *uuid.UUID      `json:"categoryId" gorm:"uniqueIndex:budget_user_category_month"`                        // ID of the category. Not set for the overall budget
	Category   Category        `json:"-"`                                                                               // The category the budget limits
	Month      types.Month     `json:"month" gorm:"uniqueIndex:budget_user_category_month" example:"2024-08-01T00:00:00Z"` // The month the budget is for
	Limit      decimal.Decimal `json:"limit" gorm:"type:DECIMAL(20,8)" example:"250"`                                   // Spending limit for the month
}

// BeforeSave validates the budget.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	// Ensure that the category ID is nil and not a pointer to a nil UUID
	// when it is not set
	if b.CategoryID != nil && *b.CategoryID == uuid.Nil {
		b.CategoryID = nil
	}

	if b.Limit.IsNegative() {
		return ErrBudgetLimitNegative
	}

	if b.Month.IsZero() {
		return ErrBudgetMonthNotSet
	}

	return nil
}

// BeforeCreate verifies that the overall budget is unique for the month.
//
// The unique index on (user_id, category_id, month) does not catch this
// case since sqlite treats NULL values as distinct from each other.
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	err := b.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	if b.CategoryID != nil {
		return nil
	}

	var count int64
	err = tx.Model(&Budget{}).
		Where("user_id = ? AND category_id IS NULL AND month = ?", b.UserID, b.Month).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrOverallBudgetExists
	}

	return nil
}

// IsOverall reports whether this is the overall budget for the month.
func (b Budget) IsOverall() bool {
	return b.CategoryID == nil
}
