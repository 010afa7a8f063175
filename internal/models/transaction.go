package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single dated spend against a category.
//
// Amounts are positive spend magnitudes. Transactions are immutable once
// created; correcting a mistake means deleting and recreating.
type Transaction struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId"`                                                        // ID of the owning user
	User       User            `json:"-"`                                                             // The owning user
	CategoryID uuid.UUID       `json:"categoryId" example:"5b75bbea-e684-4ccb-88e0-9f2ef0344b56"`     // ID of the category the money was spent on
	Category   Category        `json:"-"`                                                             // The category the money was spent on
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"150.75"`             // The amount spent
	Note       string          `json:"note" example:"Dentist appointment" default:""`                 // Notes about the transaction
	Date       time.Time       `json:"date" example:"2024-08-29T14:30:00Z"`                           // Date and time of the spend. Stored in UTC
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave validates the transaction and normalizes the date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	if t.CategoryID == uuid.Nil {
		return ErrTransactionNoCategory
	}

	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}
