// Package main lending desk API.
//
// Tracks a lending catalog: items with limited copies, borrowers with
// policy-dependent privileges, and the loan lifecycle from issue to return
// with overdue-fine computation.
package main

import (
	"log/slog"
	"os"

	"lendingdesk/app/echoServer"
	authctrl "lendingdesk/app/echoServer/controller/auth"
	catalogctrl "lendingdesk/app/echoServer/controller/catalog"
	lendingctrl "lendingdesk/app/echoServer/controller/lending"
	memberctrl "lendingdesk/app/echoServer/controller/member"
	reportctrl "lendingdesk/app/echoServer/controller/report"
	"lendingdesk/app/echoServer/validation"
	"lendingdesk/config"
	catalogrepo "lendingdesk/repository/catalog"
	memberrepo "lendingdesk/repository/member"
	authsvc "lendingdesk/service/auth"
	catalogsvc "lendingdesk/service/catalog"
	lendingsvc "lendingdesk/service/lending"
	membersvc "lendingdesk/service/member"
	reportsvc "lendingdesk/service/report"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// in-memory directories; state lives for the life of the process
	cr := catalogrepo.New()
	mr := memberrepo.New()

	// services
	as, err := authsvc.New(cfg.AdminEmail, cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}
	cs := catalogsvc.New(cr)
	ms := membersvc.New(mr)
	ls := lendingsvc.New(cr, mr)
	rs := reportsvc.New(cr, mr, ls)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	catalogC := &catalogctrl.Controller{Svc: cs, V: v, Log: log}
	memberC := &memberctrl.Controller{Svc: ms, V: v, Log: log}
	lendingC := &lendingctrl.Controller{Svc: ls, V: v, Log: log}
	reportC := &reportctrl.Controller{Svc: rs, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	echoServer.Register(e, echoServer.C{
		Auth:    authC,
		Catalog: catalogC,
		Member:  memberC,
		Lending: lendingC,
		Report:  reportC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
