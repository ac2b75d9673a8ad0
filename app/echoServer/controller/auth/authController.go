package auth

import (
	"log/slog"
	"net/http"

	"bikerental/model"
	authsvc "bikerental/service/auth"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/users/register/renter
func (ct *Controller) RegisterRenter(c echo.Context) error {
	var req model.RegisterRenterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	u, token, err := ct.Svc.RegisterRenter(c.Request().Context(), req)
	if err != nil {
		return ct.registerError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "registered", "user": u, "token": token})
}

// POST /v1/users/register/rentee
func (ct *Controller) RegisterRentee(c echo.Context) error {
	var req model.RegisterRenteeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	u, token, err := ct.Svc.RegisterRentee(c.Request().Context(), req)
	if err != nil {
		return ct.registerError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "registered", "user": u, "token": token})
}

func (ct *Controller) registerError(c echo.Context, err error) error {
	switch authsvc.Code(err) {
	case authsvc.ErrEmailTaken:
		return c.JSON(http.StatusConflict, echo.Map{"message": "email already registered"})
	case authsvc.ErrUsernameTaken:
		return c.JSON(http.StatusConflict, echo.Map{"message": "username already taken"})
	case authsvc.ErrBadInput:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
	default:
		ct.Log.Error("register failed",
			"err", err,
			"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"path", c.Path(),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "register failed"})
	}
}

// POST /v1/users/login
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	_, token, err := ct.Svc.Login(c.Request().Context(), req)
	if err != nil {
		if authsvc.Code(err) == authsvc.ErrInvalidCreds {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid email or password"})
		}
		ct.Log.Error("login failed", "err", err, "path", c.Path())
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "login failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "login success", "token": token})
}
