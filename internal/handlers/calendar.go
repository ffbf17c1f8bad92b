package handlers

import (
	"net/http"
	"strconv"
	"time"

	"carelog-be/internal/models"
	"carelog-be/internal/report"
	"carelog-be/internal/repository"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	recordRepo *repository.RecordRepository
}

func NewCalendarHandler(recordRepo *repository.RecordRepository) *CalendarHandler {
	return &CalendarHandler{recordRepo: recordRepo}
}

// parseYearMonth reads ?year= and ?month=, defaulting to the current month.
func parseYearMonth(c *gin.Context) (int, time.Month, bool) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if s := c.Query("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 1 {
			return 0, 0, false
		}
		year = y
	}
	if s := c.Query("month"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, false
		}
		month = time.Month(m)
	}
	return year, month, true
}

// GetCalendar godoc
// @Summary Get the month calendar grid
// @Description Returns the 42-cell grid for a month with each day's activity records
// @Tags calendar
// @Security ApiKeyAuth
// @Param year query int false "Year" default(current year)
// @Param month query int false "Month 1-12" default(current month)
// @Success 200 {object} models.CalendarResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /calendar [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "year and month must be valid integers",
		})
		return
	}

	first, last := report.MonthBounds(year, month)
	records, err := h.recordRepo.ListWindow(c.Request.Context(), first, last)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load records",
		})
		return
	}

	c.JSON(http.StatusOK, models.CalendarResponse{
		Year:  year,
		Month: int(month),
		Days:  report.MonthGrid(year, month, records),
	})
}

// GetCalendarSummary godoc
// @Summary Get the compact month summary
// @Description Returns per-day counts, type colors, and client names for the mini calendar
// @Tags calendar
// @Security ApiKeyAuth
// @Param year query int false "Year"
// @Param month query int false "Month 1-12"
// @Success 200 {object} models.CalendarSummaryResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /calendar/summary [get]
func (h *CalendarHandler) GetCalendarSummary(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "year and month must be valid integers",
		})
		return
	}

	first, last := report.MonthBounds(year, month)
	records, err := h.recordRepo.ListWindow(c.Request.Context(), first, last)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to load records",
		})
		return
	}

	c.JSON(http.StatusOK, models.CalendarSummaryResponse{
		Year:  year,
		Month: int(month),
		Days:  report.MonthSummary(year, month, records),
	})
}
