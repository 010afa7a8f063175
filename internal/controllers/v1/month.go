package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennywise-app/backend/internal/auth"
	"github.com/pennywise-app/backend/internal/httputil"
	"github.com/pennywise-app/backend/internal/models"
	"github.com/pennywise-app/backend/internal/report"
	"github.com/pennywise-app/backend/internal/types"
)

// RegisterMonthRoutes registers the month based reporting routes with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month/dashboard", httputil.OptionsGet)
	r.GET("/:month/dashboard", GetMonthDashboard)

	r.OPTIONS("/:month/weeks", httputil.OptionsGet)
	r.GET("/:month/weeks", GetMonthWeeks)
}

type MonthDashboardResponse struct {
	Data  *report.Dashboard `json:"data"`                                                   // The dashboard for the month
	Error *string           `json:"error" example:"the month must be specified in YYYY-MM format"` // The error, if any occurred
}

type MonthWeeksResponse struct {
	Data  []report.WeekPoint `json:"data"`                                                   // Weekly spending for the weeks intersecting the month
	Error *string            `json:"error" example:"the month must be specified in YYYY-MM format"` // The error, if any occurred
}

// parseURIMonth binds and parses the month from the URI.
func parseURIMonth(c *gin.Context) (types.Month, error) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		return types.Month{}, httputil.ErrInvalidMonth
	}

	month, err := types.ParseMonth(uri.Month)
	if err != nil {
		return types.Month{}, httputil.ErrInvalidMonth
	}

	return month, nil
}

// @Summary		Month dashboard
// @Description	Returns the budget progress of a month: the overall budget and every category that has a budget, with spent amount, remaining amount and percentage
// @Description	When no overall budget exists for the month, the per-category progress is still returned together with the error
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthDashboardResponse
// @Failure		400		{object}	MonthDashboardResponse
// @Failure		404		{object}	MonthDashboardResponse
// @Failure		500		{object}	MonthDashboardResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month}/dashboard [get]
func GetMonthDashboard(c *gin.Context) {
	month, err := parseURIMonth(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthDashboardResponse{Error: &e})
		return
	}

	source := report.GormSource{DB: models.DB}
	dashboard, err := report.BuildDashboard(c.Request.Context(), source, auth.CurrentUser(c).ID, month)
	if err != nil {
		// The dashboard is still usable without an overall budget, the
		// client renders "no budget set" for the overall section
		if errors.Is(err, report.ErrNoOverallBudget) {
			e := err.Error()
			c.JSON(http.StatusOK, MonthDashboardResponse{Data: &dashboard, Error: &e})
			return
		}

		e := err.Error()
		c.JSON(status(err), MonthDashboardResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthDashboardResponse{Data: &dashboard})
}

// @Summary		Weekly spending
// @Description	Returns the total spending per ISO week for all weeks intersecting the month. The series is contiguous, weeks without spending are reported with zero
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthWeeksResponse
// @Failure		400		{object}	MonthWeeksResponse
// @Failure		500		{object}	MonthWeeksResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month}/weeks [get]
func GetMonthWeeks(c *gin.Context) {
	month, err := parseURIMonth(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthWeeksResponse{Error: &e})
		return
	}

	source := report.GormSource{DB: models.DB}
	transactions, err := source.Transactions(c.Request.Context(), auth.CurrentUser(c).ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthWeeksResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthWeeksResponse{Data: report.WeeklySeries(transactions, month)})
}
