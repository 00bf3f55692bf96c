package controllers

import (
	"net/http"

	"github.com/atelierhq/atelier/app/services"
	"github.com/atelierhq/atelier/app/views"
	"github.com/atelierhq/atelier/pkg/logger"
)

type AnalyticsController struct {
	reporting *services.ReportingService
}

func NewAnalyticsController() *AnalyticsController {
	return &AnalyticsController{reporting: services.NewReportingService()}
}

// Show renders order totals, the status breakdown and the five best sellers.
func (c *AnalyticsController) Show(w http.ResponseWriter, r *http.Request) {
	totals, err := c.reporting.OrderTotals()
	if err != nil {
		logger.Error("analytics: totals failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	breakdown, err := c.reporting.StatusBreakdown()
	if err != nil {
		logger.Error("analytics: breakdown failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	top, err := c.reporting.TopProducts(5)
	if err != nil {
		logger.Error("analytics: top products failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	views.Render(w, "analytics", map[string]interface{}{
		"Totals":      totals,
		"Breakdown":   breakdown,
		"TopProducts": top,
	})
}
