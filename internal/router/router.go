package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/handler"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently that is only the health check, used by load balancers and
// monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the register/login endpoints under /v1/auth and
// the authenticated /v1/me endpoint.  The jwtSecret verifies tokens on
// the protected route.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}
