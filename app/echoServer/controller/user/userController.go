package user

import (
	"errors"
	"log/slog"
	"net/http"

	"bikerental/app/echoServer/jwtx"
	usersvc "bikerental/service/user"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc usersvc.Service
	Log *slog.Logger
}

// GET /v1/users
func (ct *Controller) List(c echo.Context) error {
	_, role, err := jwtx.Actor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	users, err := ct.Svc.List(c.Request().Context(), role)
	if err != nil {
		if errors.Is(err, usersvc.ErrForbidden) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		}
		ct.Log.Error("user list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": users})
}
