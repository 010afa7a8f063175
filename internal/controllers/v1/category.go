package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennywise-app/backend/internal/auth"
	"github.com/pennywise-app/backend/internal/httputil"
	"github.com/pennywise-app/backend/internal/models"
	"github.com/pennywise-app/backend/internal/report"
	pw_uuid "github.com/pennywise-app/backend/internal/uuid"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.DELETE("/:id", DeleteCategory)
		r.GET("/:id/history", GetCategoryHistory)
	}
}

// getUserCategory fetches a category, scoped to the authenticated user.
func getUserCategory(c *gin.Context, id pw_uuid.UUID) (models.Category, error) {
	var category models.Category

	err := models.DB.
		Where(&models.Category{UserID: auth.CurrentUser(c).ID}).
		First(&category, id.UUID).Error

	return category, err
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidUUID)
		return
	}

	_, err := getUserCategory(c, uri.ID)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category := editable.model(auth.CurrentUser(c).ID)

	if err := models.DB.Create(&category).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	data := newCategory(category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// @Summary		List categories
// @Description	Returns a list of the user's categories in creation order
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	var categories []models.Category

	err := models.DB.
		Where(&models.Category{UserID: auth.CurrentUser(c).ID}).
		Order("created_at ASC").
		Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	category, err := getUserCategory(c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	data := newCategory(category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Delete category
// @Description	Deletes a category. The category's transactions are kept
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidUUID)
		return
	}

	category, err := getUserCategory(c, uri.ID)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	// Soft delete: transactions keep referencing the category
	if err := models.DB.Delete(&category).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Category history
// @Description	Returns the monthly spending history of a category, one point per month that has a transaction or a budget
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryHistoryResponse
// @Failure		400	{object}	CategoryHistoryResponse
// @Failure		404	{object}	CategoryHistoryResponse
// @Failure		500	{object}	CategoryHistoryResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id}/history [get]
func GetCategoryHistory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, CategoryHistoryResponse{Error: &e})
		return
	}

	category, err := getUserCategory(c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryHistoryResponse{Error: &e})
		return
	}

	// A fresh snapshot per request, history is never served from a cache.
	// The category is already scoped to the user, so its transactions are
	// sufficient; MonthlyHistory filters by category either way.
	transactions, err := category.Transactions(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryHistoryResponse{Error: &e})
		return
	}

	source := report.GormSource{DB: models.DB}
	budgets, err := source.Budgets(c.Request.Context(), auth.CurrentUser(c).ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryHistoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryHistoryResponse{
		Data: report.MonthlyHistory(category.ID, transactions, budgets),
	})
}
