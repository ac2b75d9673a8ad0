// Package main bike-rental API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"bikerental/app/echoServer"
	authctrl "bikerental/app/echoServer/controller/auth"
	bikectrl "bikerental/app/echoServer/controller/bike"
	notifctrl "bikerental/app/echoServer/controller/notification"
	rentalctrl "bikerental/app/echoServer/controller/rental"
	userctrl "bikerental/app/echoServer/controller/user"
	walletctrl "bikerental/app/echoServer/controller/wallet"
	"bikerental/app/echoServer/validation"
	"bikerental/config"
	"bikerental/metrics"
	bikerepo "bikerental/repository/bike"
	historyrepo "bikerental/repository/history"
	identityrepo "bikerental/repository/identity"
	notifrepo "bikerental/repository/notification"
	userrepo "bikerental/repository/user"
	walletrepo "bikerental/repository/wallet"
	authsvc "bikerental/service/auth"
	bikesvc "bikerental/service/bike"
	identitysvc "bikerental/service/identity"
	ledgersvc "bikerental/service/ledger"
	notifsvc "bikerental/service/notification"
	streaksvc "bikerental/service/streak"
	usersvc "bikerental/service/user"
	walletsvc "bikerental/service/wallet"
	"bikerental/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	// metrics
	reg := prometheus.NewRegistry()
	mc := metrics.NewCollector(reg)

	// repos
	ur := userrepo.New(db)
	ir := identityrepo.New(db)
	br := bikerepo.New(db)
	hr := historyrepo.New(db)
	wr := walletrepo.New(db)
	nr := notifrepo.New(db)

	// services
	ids := identitysvc.New(ir)
	streaks := streaksvc.New(ur)
	as := authsvc.New(db, ur, ids, wr, cfg.JWTSecret)
	bs := bikesvc.New(br)
	ls := ledgersvc.New(db, br, hr, wr, nr, streaks, mc)
	ws := walletsvc.New(db, wr)
	ns := notifsvc.New(nr)
	us := usersvc.New(ur)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	userC := &userctrl.Controller{Svc: us, Log: log}
	bikeC := &bikectrl.Controller{Svc: bs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: ls, V: v, Log: log}
	walletC := &walletctrl.Controller{Svc: ws, V: v, Log: log}
	notifC := &notifctrl.Controller{Svc: ns, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e, mc)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/metrics", echo.WrapHandler(metrics.Handler(reg)))

	echoServer.Register(e, echoServer.C{
		Auth:         authC,
		User:         userC,
		Bike:         bikeC,
		Rental:       rentalC,
		Wallet:       walletC,
		Notification: notifC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
