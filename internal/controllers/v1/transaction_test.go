package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pennywise-app/backend/internal/controllers/v1"
	"github.com/pennywise-app/backend/test"
)

func (suite *TestSuiteStandard) TestTransactionsCreateAndGet() {
	food := suite.createTestCategory(v1.CategoryEditable{Name: "Food"})
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: food.ID,
		Amount:     testDecimal("14.50"),
		Note:       "Lunch",
		Date:       time.Date(2024, 8, 12, 12, 0, 0, 0, time.UTC),
	})

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(food.ID, response.Data.CategoryID)
	suite.Assert().True(response.Data.Amount.Equal(testDecimal("14.50")))
	suite.Assert().Equal("Lunch", response.Data.Note)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	food := suite.createTestCategory(v1.CategoryEditable{Name: "Food"})

	// Unknown category
	r := suite.request(http.MethodPost, "/v1/transactions", v1.TransactionEditable{
		CategoryID: uuid.New(),
		Amount:     testDecimal("10"),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Negative amount
	r = suite.request(http.MethodPost, "/v1/transactions", v1.TransactionEditable{
		CategoryID: food.ID,
		Amount:     testDecimal("-10"),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsDateDefaultsToNow() {
	food := suite.createTestCategory(v1.CategoryEditable{Name: "Food"})

	transaction := suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: food.ID,
		Amount:     testDecimal("10"),
	})

	suite.Assert().False(transaction.Date.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionsListFilters() {
	food := suite.createTestCategory(v1.CategoryEditable{Name: "Food"})
	health := suite.createTestCategory(v1.CategoryEditable{Name: "Health"})

	_ = suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: food.ID,
		Amount:     testDecimal("20"),
		Date:       time.Date(2024, 8, 5, 12, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: food.ID,
		Amount:     testDecimal("30"),
		Date:       time.Date(2024, 7, 20, 12, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: health.ID,
		Amount:     testDecimal("150.75"),
		Date:       time.Date(2024, 8, 29, 14, 30, 0, 0, time.UTC),
	})

	tests := []struct {
		name  string
		url   string
		count int
	}{
		{"All transactions", "/v1/transactions", 3},
		{"Filter by category", fmt.Sprintf("/v1/transactions?category=%s", food.ID), 2},
		{"Filter by month", "/v1/transactions?month=2024-08", 2},
		{"Category and month", fmt.Sprintf("/v1/transactions?category=%s&month=2024-08", food.ID), 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			suite.Assert().Len(response.Data, tt.count)
		})
	}

	// Invalid filter values are rejected
	r := suite.request(http.MethodGet, "/v1/transactions?category=notauuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodGet, "/v1/transactions?month=notamonth", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	food := suite.createTestCategory(v1.CategoryEditable{Name: "Food"})
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: food.ID,
		Amount:     testDecimal("10"),
	})

	r := suite.request(http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsUserIsolation() {
	food := suite.createTestCategory(v1.CategoryEditable{Name: "Food"})
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: food.ID,
		Amount:     testDecimal("10"),
	})

	otherToken := suite.registerAndLogin("grace", "another password")
	r := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "", map[string]string{
		"Authorization": "Bearer " + otherToken,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
