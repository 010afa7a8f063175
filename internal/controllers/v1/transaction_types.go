package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/pennywise-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"5b75bbea-e684-4ccb-88e0-9f2ef0344b56"` // ID of the category
	Amount     decimal.Decimal `json:"amount" example:"14.50"`                                    // The amount spent
	Note       string          `json:"note" example:"Lunch" default:""`                           // A note about the transaction
	Date       time.Time       `json:"date" example:"2024-08-12T00:00:00Z"`                       // Date of the transaction. Defaults to the current time
}

func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:     userID,
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		Note:       editable.Note,
		Date:       editable.Date,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
}

func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			CategoryID: model.CategoryID,
			Amount:     model.Amount,
			Note:       model.Note,
			Date:       model.Date,
		},
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Category string `form:"category" example:"5b75bbea-e684-4ccb-88e0-9f2ef0344b56"` // Only return transactions for this category
	Month    string `form:"month" example:"2024-08"`                                 // Only return transactions in this month
}
