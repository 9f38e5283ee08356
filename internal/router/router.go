package router

import (
	"workshop-genie/internal/cache"
	"workshop-genie/internal/database"
	"workshop-genie/internal/handler"
	"workshop-genie/internal/handler/auth"
	"workshop-genie/internal/handler/bookings"
	"workshop-genie/internal/handler/users"
	"workshop-genie/internal/handler/workshops"
	"workshop-genie/internal/middleware"
	"workshop-genie/internal/service"
	"workshop-genie/internal/store"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Deps 路由需要的相依元件；DB 與 Cache 未設定時為 nil
type Deps struct {
	Store       store.Store
	Accounts    *service.Accounts
	Bookings    *service.Bookings
	DB          database.DB
	Cache       cache.Cache
	AdminAPIKey string
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")
	admin := middleware.RequireAdminKey(d.AdminAPIKey)

	// 健康與就緒檢查
	api.GET("/health", handler.HealthHandler())
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// Workshops
	api.GET("/workshops", workshops.ListHandler(d.Store))
	api.POST("/workshops", workshops.CreateHandler(d.Store), admin)
	api.GET("/workshops/:id", workshops.GetHandler(d.Store))
	api.GET("/workshops/:id/bookings", workshops.BookingsHandler(d.Store))

	// Bookings
	api.POST("/bookings", bookings.CreateHandler(d.Bookings))
	api.GET("/bookings/:id", bookings.GetHandler(d.Store))
	api.PATCH("/bookings/:id/status", bookings.UpdateStatusHandler(d.Store), admin)

	// Users
	api.POST("/users", users.CreateHandler(d.Accounts))
	api.GET("/users/:id", users.GetHandler(d.Store))
	api.GET("/users/:id/bookings", users.BookingsHandler(d.Store))

	// 登入
	api.POST("/auth/login", auth.LoginHandler(d.Accounts))

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
