package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/stormbless/foodprint-backend/models"
	"github.com/stormbless/foodprint-backend/services"
	"github.com/stormbless/foodprint-backend/utils"
)

type ImpactController struct {
	Entries *services.FoodEntryService
}

func NewImpactController(entries *services.FoodEntryService) *ImpactController {
	return &ImpactController{Entries: entries}
}

// dashboardDatesValid checks both query dates and rejects inverted ranges
// (startDate after endDate); same-day ranges are fine. The direction check
// compares parsed days, since the validator accepts unpadded months and
// days that would mis-order as strings.
func dashboardDatesValid(startDate, endDate string) bool {
	if !utils.DateValid(startDate) {
		return false
	}
	if !utils.DateValid(endDate) {
		return false
	}
	return !utils.ParseDay(startDate).After(utils.ParseDay(endDate))
}

// GetDashboardData aggregates the caller's stored entries over an inclusive
// date range into totals, per-food breakdowns and a time series. 204 when
// the range holds no entries.
func (h *ImpactController) GetDashboardData(c *gin.Context) {
	userEmail := c.GetString("userEmail")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	if !dashboardDatesValid(startDate, endDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input invalid"})
		return
	}

	start := utils.ParseDay(startDate)
	end := utils.ParseDay(endDate)

	foodEntries, err := h.Entries.FoodEntries(c.Request.Context(), userEmail, start, end)
	if err != nil {
		log.Error().Err(err).Str("userEmail", userEmail).Msg("loading food entries failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if len(foodEntries) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	impactSummary, err := services.ImpactSummary(foodEntries)
	if err != nil {
		log.Error().Err(err).Msg("impact summary failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.DashboardData{
		ImpactSummary:  impactSummary,
		FoodImpacts:    services.FoodImpacts(foodEntries),
		ImpactOverTime: services.ImpactOverTime(foodEntries),
	})
}
