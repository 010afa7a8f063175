package v1

import (
	"github.com/pennywise-app/backend/internal/models"
)

// UserEditable represents the credentials for registration and login
type UserEditable struct {
	Username string `json:"username" example:"ada"`           // Name the user logs in with. Case insensitive
	Password string `json:"password" example:"correct horse"` // The user's password
}

type User struct {
	models.DefaultModel
	Username string `json:"username" example:"ada"` // Name the user logs in with
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Username:     model.Username,
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`                                   // Data for the user
	Error *string `json:"error" example:"the username is not set"` // The error, if any occurred
}

// LoginData is the payload returned on a successful login.
type LoginData struct {
	User  User   `json:"user"`                            // The authenticated user
	Token string `json:"token" example:"eyJhbGciOiJI..."` // Bearer token for the Authorization header
}

type LoginResponse struct {
	Data  *LoginData `json:"data"`                                          // The user and their token
	Error *string    `json:"error" example:"username or password is wrong"` // The error, if any occurred
}
