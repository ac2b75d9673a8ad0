package wallet

import (
	"log/slog"
	"net/http"

	"bikerental/app/echoServer/jwtx"
	"bikerental/model"
	walletsvc "bikerental/service/wallet"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc walletsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/wallet
func (ct *Controller) Get(c echo.Context) error {
	uid, _, err := jwtx.Actor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	w, ledger, err := ct.Svc.Get(c.Request().Context(), uid)
	if err != nil {
		if walletsvc.Code(err) == walletsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "wallet not found"})
		}
		ct.Log.Error("wallet get", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"wallet": w, "ledger": ledger})
}

// POST /v1/wallet/topups
func (ct *Controller) Topup(c echo.Context) error {
	var req model.TopupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _, err := jwtx.Actor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	newBal, err := ct.Svc.Topup(c.Request().Context(), uid, req.Amount)
	if err != nil {
		switch walletsvc.Code(err) {
		case walletsvc.ErrValidation:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "amount must be positive"})
		case walletsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "wallet not found"})
		default:
			ct.Log.Error("wallet topup", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"balance": newBal})
}
