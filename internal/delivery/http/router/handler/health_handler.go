package handler

import (
	"net/http"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness. It does not call the backend.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
