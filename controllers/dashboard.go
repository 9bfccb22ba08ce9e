// controllers/dashboard.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salonshop-backend/services"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// GetSummary returns the headline booking and staffing counters (Admin only)
func (dc *DashboardController) GetSummary(c *gin.Context) {
	summary, err := dc.dashboard.Summary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetStats returns the extended statistics including revenue (Admin only)
func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.dashboard.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetRecentBookings returns the latest bookings feed (Admin only)
func (dc *DashboardController) GetRecentBookings(c *gin.Context) {
	bookings, err := dc.dashboard.RecentBookings(c.Request.Context(), intQuery(c, "limit", 10))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

// GetRevenueByService breaks Completed revenue down per service (Admin only)
func (dc *DashboardController) GetRevenueByService(c *gin.Context) {
	rows, err := dc.dashboard.RevenueByService(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": rows})
}

// GetBookingsByDate returns per-day counts for the last N days (Admin only)
func (dc *DashboardController) GetBookingsByDate(c *gin.Context) {
	rows, err := dc.dashboard.BookingsByDate(c.Request.Context(), intQuery(c, "days", 30))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings_by_date": rows})
}

// GetTopServices ranks services by booking count (Admin only)
func (dc *DashboardController) GetTopServices(c *gin.Context) {
	rows, err := dc.dashboard.TopServices(c.Request.Context(), intQuery(c, "limit", 5))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"top_services": rows})
}
