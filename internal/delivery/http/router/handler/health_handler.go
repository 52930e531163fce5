package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness. Readiness is the fx lifecycle's job;
// this endpoint only confirms the process serves requests.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
