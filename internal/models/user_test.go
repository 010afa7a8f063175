package models_test

import (
	"encoding/json"

	"github.com/pennywise-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserTrimmedAndLowercased() {
	user := suite.createTestUser(models.User{Username: "  Ada "})

	suite.Assert().Equal("ada", user.Username)
}

func (suite *TestSuiteStandard) TestUserNameEmpty() {
	err := models.DB.Create(&models.User{Username: "   "}).Error

	suite.Assert().ErrorIs(err, models.ErrUsernameEmpty)
}

func (suite *TestSuiteStandard) TestUserNameUnique() {
	_ = suite.createTestUser(models.User{Username: "ada"})

	// The normalization makes this a duplicate
	err := models.DB.Create(&models.User{Username: "ADA", PasswordHash: "x"}).Error
	suite.Assert().ErrorIs(err, models.ErrUsernameNotUnique)
}

func (suite *TestSuiteStandard) TestUserPasswordHashNotSerialized() {
	user := suite.createTestUser(models.User{Username: "ada", PasswordHash: "secret"})

	data, err := json.Marshal(user)
	suite.Assert().Nil(err)
	suite.Assert().NotContains(string(data), "secret")
}
