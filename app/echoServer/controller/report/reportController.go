package report

import (
	"log/slog"
	"net/http"

	reportsvc "lendingdesk/service/report"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc reportsvc.Service
	Log *slog.Logger
}

// GET /v1/reports/summary
func (h *Controller) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Svc.Summary(c.Request().Context()))
}
