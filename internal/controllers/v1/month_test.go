package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/pennywise-app/backend/internal/controllers/v1"
	"github.com/pennywise-app/backend/internal/types"
	"github.com/pennywise-app/backend/test"
)

func (suite *TestSuiteStandard) TestMonthDashboard() {
	health := suite.createTestCategory(v1.CategoryEditable{Name: "Health"})

	_ = suite.createTestBudget(v1.BudgetEditable{
		Month: types.NewMonth(2024, 8),
		Limit: testDecimal("1000"),
	})
	_ = suite.createTestBudget(v1.BudgetEditable{
		CategoryID: &health.ID,
		Month:      types.NewMonth(2024, 8),
		Limit:      testDecimal("250"),
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: health.ID,
		Amount:     testDecimal("150.75"),
		Date:       time.Date(2024, 8, 29, 14, 30, 0, 0, time.UTC),
	})

	r := suite.request(http.MethodGet, "/v1/months/2024-08/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthDashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Error)

	suite.Require().NotNil(response.Data.Overall)
	suite.Assert().True(response.Data.Overall.Spent.Equal(testDecimal("150.75")))
	suite.Assert().True(response.Data.Overall.Remaining.Equal(testDecimal("849.25")))

	suite.Require().Len(response.Data.Categories, 1)
	progress := response.Data.Categories[0]
	suite.Assert().Equal("Health", progress.Name)
	suite.Assert().True(progress.Spent.Equal(testDecimal("150.75")))
	suite.Assert().True(progress.Remaining.Equal(testDecimal("99.25")))
	suite.Assert().True(progress.Percentage.Equal(testDecimal("60.3")))
}

func (suite *TestSuiteStandard) TestMonthDashboardNoOverallBudget() {
	health := suite.createTestCategory(v1.CategoryEditable{Name: "Health"})
	_ = suite.createTestBudget(v1.BudgetEditable{
		CategoryID: &health.ID,
		Month:      types.NewMonth(2024, 8),
		Limit:      testDecimal("250"),
	})

	r := suite.request(http.MethodGet, "/v1/months/2024-08/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The per-category progress is still usable, the error says why the
	// overall section is empty
	var response v1.MonthDashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, "overall budget")
	suite.Assert().Nil(response.Data.Overall)
	suite.Assert().Len(response.Data.Categories, 1)
}

func (suite *TestSuiteStandard) TestMonthDashboardCategoriesWithoutBudgetOmitted() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Health"})
	_ = suite.createTestBudget(v1.BudgetEditable{
		Month: types.NewMonth(2024, 8),
		Limit: testDecimal("1000"),
	})

	r := suite.request(http.MethodGet, "/v1/months/2024-08/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthDashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Data.Categories)
}

func (suite *TestSuiteStandard) TestMonthDashboardInvalidMonth() {
	r := suite.request(http.MethodGet, "/v1/months/notamonth/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMonthWeeks() {
	food := suite.createTestCategory(v1.CategoryEditable{Name: "Food"})

	// 2024-08-02 is in week 31, which starts in July
	_ = suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: food.ID,
		Amount:     testDecimal("20"),
		Date:       time.Date(2024, 8, 2, 12, 0, 0, 0, time.UTC),
	})
	// 2024-07-30 is in the same week and counts as well
	_ = suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: food.ID,
		Amount:     testDecimal("5"),
		Date:       time.Date(2024, 7, 30, 12, 0, 0, 0, time.UTC),
	})

	r := suite.request(http.MethodGet, "/v1/months/2024-08/weeks", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthWeeksResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// August 2024 intersects the ISO weeks 31 through 35
	suite.Require().Len(response.Data, 5)
	suite.Assert().Equal("2024-W31", response.Data[0].Week.String())
	suite.Assert().True(response.Data[0].Spent.Equal(testDecimal("25")))

	for _, point := range response.Data[1:] {
		suite.Assert().True(point.Spent.IsZero())
	}
}

func (suite *TestSuiteStandard) TestMonthWeeksInvalidMonth() {
	r := suite.request(http.MethodGet, "/v1/months/2024-13/weeks", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
