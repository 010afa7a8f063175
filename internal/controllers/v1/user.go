package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pennywise-app/backend/internal/auth"
	"github.com/pennywise-app/backend/internal/config"
	"github.com/pennywise-app/backend/internal/httputil"
	"github.com/pennywise-app/backend/internal/models"
)

// RegisterUserRoutes registers the routes for registration and login with
// the RouterGroup that is passed. These routes are not authenticated.
func RegisterUserRoutes(r *gin.RouterGroup, cfg config.Config) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", RegisterUser)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", Login(cfg))
}

// @Summary		Register user
// @Description	Creates a new user account
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201			{object}	UserResponse
// @Failure		400			{object}	UserResponse
// @Failure		500			{object}	UserResponse
// @Param			credentials	body		UserEditable	true	"Credentials"
// @Router			/v1/users/register [post]
func RegisterUser(c *gin.Context) {
	var editable UserEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	if len(editable.Password) < 8 {
		e := errPasswordTooShort.Error()
		c.JSON(http.StatusBadRequest, UserResponse{Error: &e})
		return
	}

	hash, err := auth.HashPassword(editable.Password)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, UserResponse{Error: &e})
		return
	}

	user := models.User{
		Username:     editable.Username,
		PasswordHash: hash,
	}

	if err := models.DB.Create(&user).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// Login returns the handler that verifies credentials and mints a token.
//
// @Summary		Log in
// @Description	Verifies the credentials and returns a bearer token for the Authorization header
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		401			{object}	LoginResponse
// @Failure		500			{object}	LoginResponse
// @Param			credentials	body		UserEditable	true	"Credentials"
// @Router			/v1/users/login [post]
func Login(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable UserEditable

		if err := httputil.BindData(c, &editable); err != nil {
			e := err.Error()
			c.JSON(status(err), LoginResponse{Error: &e})
			return
		}

		// Usernames are stored lowercased, match that here
		username := strings.ToLower(strings.TrimSpace(editable.Username))

		var user models.User
		err := models.DB.
			Where("username = ?", username).
			First(&user).Error
		if err != nil {
			// Wrong usernames and wrong passwords are indistinguishable
			// to the client
			if errors.Is(err, models.ErrResourceNotFound) {
				e := errUsernameOrPasswordWrong.Error()
				c.JSON(http.StatusUnauthorized, LoginResponse{Error: &e})
				return
			}

			e := err.Error()
			c.JSON(status(err), LoginResponse{Error: &e})
			return
		}

		if !auth.CheckPassword(user.PasswordHash, editable.Password) {
			e := errUsernameOrPasswordWrong.Error()
			c.JSON(http.StatusUnauthorized, LoginResponse{Error: &e})
			return
		}

		token, err := auth.GenerateToken([]byte(cfg.JWTSecret), user, cfg.JWTValidity)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusInternalServerError, LoginResponse{Error: &e})
			return
		}

		c.JSON(http.StatusOK, LoginResponse{Data: &LoginData{
			User:  newUser(user),
			Token: token,
		}})
	}
}
