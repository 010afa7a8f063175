package models_test

import (
	"github.com/pennywise-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryTrimmed() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{
		UserID: user.ID,
		Name:   "  Food ",
		Note:   " Groceries and eating out ",
	})

	suite.Assert().Equal("Food", category.Name)
	suite.Assert().Equal("Groceries and eating out", category.Note)
}

func (suite *TestSuiteStandard) TestCategoryNameEmpty() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Category{UserID: user.ID, Name: "   "}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameEmpty)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerUser() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food"})

	err := models.DB.Create(&models.Category{UserID: user.ID, Name: "Food"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	// The same name is fine for another user
	other := suite.createTestUser(models.User{Username: "grace"})
	err = models.DB.Create(&models.Category{UserID: other.ID, Name: "Food"}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestCategoryTransactions() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})
	other := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Health"})

	_ = suite.createTestTransaction(models.Transaction{UserID: user.ID, CategoryID: category.ID})
	_ = suite.createTestTransaction(models.Transaction{UserID: user.ID, CategoryID: category.ID})
	_ = suite.createTestTransaction(models.Transaction{UserID: user.ID, CategoryID: other.ID})

	transactions, err := category.Transactions(models.DB)
	suite.Assert().Nil(err)
	suite.Assert().Len(transactions, 2)
}

func (suite *TestSuiteStandard) TestCategorySoftDeleteKeepsTransactions() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})
	transaction := suite.createTestTransaction(models.Transaction{UserID: user.ID, CategoryID: category.ID})

	err := models.DB.Delete(&category).Error
	suite.Assert().Nil(err)

	// The category is gone from queries
	err = models.DB.First(&models.Category{}, category.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// The transaction still exists and references the category
	var found models.Transaction
	err = models.DB.First(&found, transaction.ID).Error
	suite.Assert().Nil(err)
	suite.Assert().Equal(category.ID, found.CategoryID)
}

func (suite *TestSuiteStandard) TestCategoryNotFoundError() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestCategory(models.Category{UserID: user.ID})

	err := models.DB.Where("name = ?", "does not exist").First(&models.Category{}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no category matching your query", err.Error())
}
