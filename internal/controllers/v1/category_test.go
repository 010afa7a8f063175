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

func (suite *TestSuiteStandard) TestCategoriesCreateAndGet() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Food", Note: "Groceries"})
	suite.Assert().NotEqual(uuid.Nil, category.ID)

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Food", response.Data.Name)
	suite.Assert().Equal("Groceries", response.Data.Note)
}

func (suite *TestSuiteStandard) TestCategoriesListCreationOrder() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Food"})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Health"})

	r := suite.request(http.MethodGet, "/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Food", response.Data[0].Name)
	suite.Assert().Equal("Health", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestCategoriesDuplicateName() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Food"})

	r := suite.request(http.MethodPost, "/v1/categories", v1.CategoryEditable{Name: "Food"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	category := suite.createTestCategory(v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing category", category.ID.String(), http.StatusOK},
		{"No category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, fmt.Sprintf("/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	category := suite.createTestCategory(v1.CategoryEditable{})

	r := suite.request(http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesUserIsolation() {
	category := suite.createTestCategory(v1.CategoryEditable{})

	// Another user cannot see the category
	otherToken := suite.registerAndLogin("grace", "another password")
	r := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.ID), "", map[string]string{
		"Authorization": "Bearer " + otherToken,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	category := suite.createTestCategory(v1.CategoryEditable{})

	r := suite.request(http.MethodOptions, fmt.Sprintf("/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoriesHistory() {
	food := suite.createTestCategory(v1.CategoryEditable{Name: "Food"})
	health := suite.createTestCategory(v1.CategoryEditable{Name: "Health"})

	_ = suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: food.ID,
		Amount:     testDecimal("20"),
		Date:       time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: food.ID,
		Amount:     testDecimal("30.50"),
		Date:       time.Date(2024, 8, 12, 12, 0, 0, 0, time.UTC),
	})

	// Spending in other categories must not show up in the history
	_ = suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: health.ID,
		Amount:     testDecimal("150.75"),
		Date:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	})

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/categories/%s/history", food.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryHistoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("2024-07", response.Data[0].Month.String())
	suite.Assert().True(response.Data[0].Spent.Equal(testDecimal("20")))
	suite.Assert().Equal("2024-08", response.Data[1].Month.String())
	suite.Assert().True(response.Data[1].Spent.Equal(testDecimal("30.50")))
}
