package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a spending bucket, e.g. "Food".
//
// Categories are never physically deleted once transactions reference
// them, only soft deleted.
type Category struct {
	DefaultModel
	UserID uuid.UUID `json:"userId" gorm:"uniqueIndex:category_user_name"`                              // ID of the owning user
	User   User      `json:"-"`                                                                         // The owning user
	Name   string    `json:"name" gorm:"uniqueIndex:category_user_name" example:"Food"`                 // Name of the category
	Note   string    `json:"note" example:"Groceries and eating out" default:""`                        // Notes about the category
}

// BeforeSave trims whitespace and verifies that the name is set.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	return nil
}

// Transactions returns all transactions for this category.
func (c Category) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.Where(&Transaction{CategoryID: c.ID}).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
