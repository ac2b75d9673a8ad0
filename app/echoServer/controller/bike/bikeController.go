package bike

import (
	"log/slog"
	"net/http"

	"bikerental/app/echoServer/jwtx"
	"bikerental/model"
	bikesvc "bikerental/service/bike"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc bikesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/bikes
func (ct *Controller) Create(c echo.Context) error {
	var req model.CreateBikeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, role, err := jwtx.Actor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	b, err := ct.Svc.Create(c.Request().Context(), uid, role, req.Brand, req.RentalPrice)
	if err != nil {
		switch bikesvc.Code(err) {
		case bikesvc.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "only renters can add bikes"})
		case bikesvc.ErrValidation:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			ct.Log.Error("bike create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, b)
}

// GET /v1/bikes
func (ct *Controller) List(c echo.Context) error {
	uid, role, err := jwtx.Actor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	bikes, err := ct.Svc.List(c.Request().Context(), uid, role)
	if err != nil {
		ct.Log.Error("bike list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": bikes})
}

// GET /v1/bikes/:id
func (ct *Controller) Detail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	b, err := ct.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if bikesvc.Code(err) == bikesvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "bike not found"})
		}
		ct.Log.Error("bike detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, b)
}
