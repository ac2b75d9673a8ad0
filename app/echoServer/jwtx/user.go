package jwtx

import (
	"errors"

	"bikerental/model"

	"github.com/labstack/echo/v4"
)

// Actor reads the authenticated account id and role that the JWT middleware
// stashed in the request context.
func Actor(c echo.Context) (int64, model.Role, error) {
	uid, ok := c.Get("user_id").(int64)
	if !ok {
		return 0, "", errors.New("no user id in context")
	}
	role, ok := c.Get("role").(model.Role)
	if !ok {
		return 0, "", errors.New("no role in context")
	}
	return uid, role, nil
}
