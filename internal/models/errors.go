package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors. These are returned from the BeforeSave hooks of the
// models, before anything is written to the database.
var (
	ErrUsernameEmpty             = errors.New("the username must not be empty")
	ErrUsernameNotUnique         = errors.New("this username is already taken")
	ErrCategoryNameEmpty         = errors.New("the category name must not be empty")
	ErrCategoryNameNotUnique     = errors.New("the category name must be unique for the user")
	ErrBudgetLimitNegative       = errors.New("the budget limit must not be negative")
	ErrBudgetMonthNotSet         = errors.New("the month must be set for a budget")
	ErrBudgetNotUnique           = errors.New("there already is a budget for this category and month")
	ErrOverallBudgetExists       = errors.New("there already is an overall budget for this month")
	ErrTransactionNoCategory     = errors.New("the transaction must reference a category")
	ErrTransactionAmountNegative = errors.New("the transaction amount must not be negative")
)
