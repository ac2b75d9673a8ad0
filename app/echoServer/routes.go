package echoServer

import (
	"net/http"

	"bikerental/app/echoServer/controller/auth"
	"bikerental/app/echoServer/controller/bike"
	"bikerental/app/echoServer/controller/notification"
	"bikerental/app/echoServer/controller/rental"
	"bikerental/app/echoServer/controller/user"
	"bikerental/app/echoServer/controller/wallet"
	"bikerental/model"
	jwtutil "bikerental/util/jwt"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth         *auth.Controller
	User         *user.Controller
	Bike         *bike.Controller
	Rental       *rental.Controller
	Wallet       *wallet.Controller
	Notification *notification.Controller
	JWTSecret    string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register/renter", c.Auth.RegisterRenter)
	pub.POST("/users/register/rentee", c.Auth.RegisterRentee)
	pub.POST("/users/login", c.Auth.Login)

	// Auth
	authed := e.Group("/v1")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:Authorization",
		ParseTokenFunc: func(ctx echo.Context, auth string) (any, error) {
			return jwtutil.ParseAuth(auth, c.JWTSecret)
		},
	}))
	// claims -> user_id + role for everything downstream
	authed.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, ok := ctx.Get("user").(jwt.MapClaims)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			sub, ok := claims["sub"].(float64)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			roleStr, ok := claims["role"].(string)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("user_id", int64(sub))
			ctx.Set("role", model.Role(roleStr))
			return next(ctx)
		}
	})

	// Users
	authed.GET("/users", c.User.List)

	// Bikes
	authed.GET("/bikes", c.Bike.List)
	authed.GET("/bikes/:id", c.Bike.Detail)
	authed.POST("/bikes", c.Bike.Create)

	// Rentals & history
	authed.POST("/rentals/bikes/:id/rent", c.Rental.Rent)
	authed.POST("/rentals/bikes/:id/return", c.Rental.Return)
	authed.POST("/rentals/renter", c.Rental.RenterRental)
	authed.POST("/rentals/rentee", c.Rental.RenteeRental)
	authed.GET("/history", c.Rental.History)

	// Wallet
	authed.GET("/wallet", c.Wallet.Get)
	authed.POST("/wallet/topups", c.Wallet.Topup)

	// Notifications
	authed.GET("/notifications", c.Notification.List)
	authed.POST("/notifications/:id/read", c.Notification.MarkRead)
}
