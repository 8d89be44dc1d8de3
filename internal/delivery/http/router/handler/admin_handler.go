package handler

import (
	"net/http"

	"passage/internal/delivery/http/response"
	"passage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for admin-only handlers.
type AdminHandler struct {
	authUC usecase.AuthUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(authUC usecase.AuthUsecase) *AdminHandler {
	return &AdminHandler{authUC: authUC}
}

// Stats reports aggregate account numbers.
func (h *AdminHandler) Stats(c echo.Context) error {
	total, err := h.authUC.CountUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"totalUsers": total}, "Stats retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
