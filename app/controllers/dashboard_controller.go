package controllers

import (
	"net/http"

	"github.com/atelierhq/atelier/app/services"
	"github.com/atelierhq/atelier/app/views"
	"github.com/atelierhq/atelier/pkg/logger"
)

type DashboardController struct {
	reporting *services.ReportingService
}

func NewDashboardController() *DashboardController {
	return &DashboardController{reporting: services.NewReportingService()}
}

// Show renders the dashboard. ?period=week|month|year picks the revenue
// bucketing; anything else falls back to month.
func (c *DashboardController) Show(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	switch period {
	case "week", "month", "year":
	default:
		period = "month"
	}

	summary, err := c.reporting.Dashboard(period)
	if err != nil {
		logger.Error("dashboard: load failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	views.Render(w, "dashboard", map[string]interface{}{
		"Period":  period,
		"Summary": summary,
	})
}
