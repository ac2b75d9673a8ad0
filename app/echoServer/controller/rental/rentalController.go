package rental

import (
	"log/slog"
	"net/http"

	"bikerental/app/echoServer/jwtx"
	"bikerental/model"
	ledgersvc "bikerental/service/ledger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ledgersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func (ct *Controller) actor(c echo.Context) (ledgersvc.Actor, bool) {
	uid, role, err := jwtx.Actor(c)
	if err != nil {
		return ledgersvc.Actor{}, false
	}
	return ledgersvc.Actor{ID: uid, Role: role}, true
}

func (ct *Controller) ledgerError(c echo.Context, op string, err error) error {
	switch ledgersvc.Code(err) {
	case ledgersvc.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	case ledgersvc.ErrConflict:
		return c.JSON(http.StatusConflict, echo.Map{"message": "bike state conflict"})
	case ledgersvc.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	case ledgersvc.ErrValidation:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
	case ledgersvc.ErrInsufficient:
		return c.JSON(http.StatusConflict, echo.Map{"message": "insufficient wallet balance"})
	default:
		ct.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

// POST /v1/rentals/bikes/:id/rent
func (ct *Controller) Rent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	// body is optional: amount 0 charges the listed price
	var req RentBikeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	actor, ok := ct.actor(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	h, err := ct.Svc.LogBikeRented(c.Request().Context(), actor, id, req.AmountPaid)
	if err != nil {
		return ct.ledgerError(c, "bike rent", err)
	}
	return c.JSON(http.StatusCreated, h)
}

// POST /v1/rentals/bikes/:id/return
func (ct *Controller) Return(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	actor, ok := ct.actor(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	h, err := ct.Svc.LogBikeReturned(c.Request().Context(), actor, id)
	if err != nil {
		return ct.ledgerError(c, "bike return", err)
	}
	return c.JSON(http.StatusCreated, h)
}

// POST /v1/rentals/renter
func (ct *Controller) RenterRental(c echo.Context) error {
	var req model.StandaloneRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	actor, ok := ct.actor(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	h, err := ct.Svc.LogRenterRental(c.Request().Context(), actor, req.AmountPaid)
	if err != nil {
		return ct.ledgerError(c, "renter rental", err)
	}
	return c.JSON(http.StatusCreated, h)
}

// POST /v1/rentals/rentee
func (ct *Controller) RenteeRental(c echo.Context) error {
	var req model.StandaloneRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	actor, ok := ct.actor(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	h, err := ct.Svc.LogRenteeRental(c.Request().Context(), actor, req.AmountPaid)
	if err != nil {
		return ct.ledgerError(c, "rentee rental", err)
	}
	return c.JSON(http.StatusCreated, h)
}

// GET /v1/history
func (ct *Controller) History(c echo.Context) error {
	actor, ok := ct.actor(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	rows, err := ct.Svc.QueryHistory(c.Request().Context(), actor)
	if err != nil {
		return ct.ledgerError(c, "history", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
