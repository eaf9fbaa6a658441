package echoServer

import (
	"net/http"

	"lendingdesk/app/echoServer/controller/auth"
	"lendingdesk/app/echoServer/controller/catalog"
	"lendingdesk/app/echoServer/controller/lending"
	"lendingdesk/app/echoServer/controller/member"
	"lendingdesk/app/echoServer/controller/report"
	"lendingdesk/app/echoServer/metrics"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth    *auth.Controller
	Catalog *catalog.Controller
	Member  *member.Controller
	Lending *lending.Controller
	Report  *report.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Public
	pub := e.Group("/v1")
	pub.POST("/auth/login", c.Auth.Login)

	// Staff (JWT)
	api := e.Group("/v1")
	api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	api.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			tok, ok := ctx.Get("user").(*jwt.Token)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			sub, _ := claims["sub"].(string)
			role, _ := claims["role"].(string)
			ctx.Set("staff_email", sub)
			ctx.Set("role", role)
			return next(ctx)
		}
	})

	// Catalog
	api.POST("/catalog/items", c.Catalog.Create)
	api.GET("/catalog/items", c.Catalog.List)
	api.GET("/catalog/items/:id", c.Catalog.Detail)

	// Members
	api.POST("/members", c.Member.Register)
	api.GET("/members", c.Member.List)
	api.GET("/members/:id", c.Member.Detail)
	api.GET("/members/:id/loans", c.Lending.History)

	// Loans
	api.POST("/loans", c.Lending.Issue)
	api.POST("/loans/return", c.Lending.Return)
	api.GET("/loans/outstanding", c.Lending.Outstanding)

	// Reports
	api.GET("/reports/summary", c.Report.Summary)
}
