package models_test

import (
	"github.com/google/uuid"
	"github.com/pennywise-app/backend/internal/models"
	"github.com/pennywise-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetLimitNegative() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Budget{
		UserID: user.ID,
		Month:  types.NewMonth(2024, 8),
		Limit:  decimal.New(-1, 0),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrBudgetLimitNegative)
}

func (suite *TestSuiteStandard) TestBudgetMonthNotSet() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Budget{
		UserID: user.ID,
		Limit:  decimal.New(100, 0),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrBudgetMonthNotSet)
}

func (suite *TestSuiteStandard) TestBudgetNilCategoryNormalized() {
	user := suite.createTestUser(models.User{})

	// A pointer to the nil UUID means "overall budget", same as no pointer
	nilID := uuid.Nil
	budget := suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		CategoryID: &nilID,
		Limit:      decimal.New(100, 0),
	})

	suite.Assert().Nil(budget.CategoryID)
	suite.Assert().True(budget.IsOverall())
}

func (suite *TestSuiteStandard) TestBudgetUniquePerCategoryAndMonth() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	_ = suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		CategoryID: &category.ID,
		Month:      types.NewMonth(2024, 8),
		Limit:      decimal.New(100, 0),
	})

	err := models.DB.Create(&models.Budget{
		UserID:     user.ID,
		CategoryID: &category.ID,
		Month:      types.NewMonth(2024, 8),
		Limit:      decimal.New(200, 0),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetNotUnique)

	// Another month is fine
	err = models.DB.Create(&models.Budget{
		UserID:     user.ID,
		CategoryID: &category.ID,
		Month:      types.NewMonth(2024, 9),
		Limit:      decimal.New(200, 0),
	}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestOverallBudgetUniquePerMonth() {
	user := suite.createTestUser(models.User{})

	_ = suite.createTestBudget(models.Budget{
		UserID: user.ID,
		Month:  types.NewMonth(2024, 8),
		Limit:  decimal.New(1000, 0),
	})

	// sqlite does not catch this with the unique index since the category
	// ID is NULL, the BeforeCreate hook has to
	err := models.DB.Create(&models.Budget{
		UserID: user.ID,
		Month:  types.NewMonth(2024, 8),
		Limit:  decimal.New(2000, 0),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrOverallBudgetExists)

	// Another month and another user are fine
	err = models.DB.Create(&models.Budget{
		UserID: user.ID,
		Month:  types.NewMonth(2024, 9),
		Limit:  decimal.New(1000, 0),
	}).Error
	suite.Assert().Nil(err)

	other := suite.createTestUser(models.User{Username: "grace"})
	err = models.DB.Create(&models.Budget{
		UserID: other.ID,
		Month:  types.NewMonth(2024, 8),
		Limit:  decimal.New(1000, 0),
	}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestBudgetZeroLimitAllowed() {
	user := suite.createTestUser(models.User{})

	budget := suite.createTestBudget(models.Budget{
		UserID: user.ID,
		Month:  types.NewMonth(2024, 8),
	})

	suite.Assert().True(budget.Limit.IsZero())
}
