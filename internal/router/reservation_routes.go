package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/handler"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/middleware"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/model"
)

// RegisterReservations wires the resource and reservation endpoints.
// All routes require a valid access token; both roles may browse
// resources and manage their own reservations, while approve/deny and
// the cross-requester listing are ADMIN-only.
func RegisterReservations(e *echo.Echo, res *handler.ResourceHandler, r *handler.ReservationHandler, admin *handler.AdminReservationHandler, jwtSecret string) {
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleRequester))

	// Resource browsing and the pre-submission conflict preview.
	auth.GET("/resources", res.ListResources)
	auth.GET("/resources/:id/slots", res.DaySlots)
	auth.GET("/resources/:id/conflicts", res.Conflicts)

	// Requester lifecycle operations.
	auth.POST("/reservations", r.Create)
	auth.GET("/reservations", r.ListMine)
	auth.POST("/reservations/:id/cancel", r.Cancel)

	// Administrative adjudication.
	adm := e.Group("/v1")
	adm.Use(middleware.JWTAuth(jwtSecret))
	adm.Use(middleware.RequireRole(model.RoleAdmin))
	adm.GET("/admin/reservations", admin.List)
	adm.POST("/reservations/:id/approve", admin.Approve)
	adm.POST("/reservations/:id/deny", admin.Deny)
}
