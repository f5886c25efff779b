package handler

// Administrative reservation endpoints.  Routes using this handler are
// wrapped in RequireRole(ADMIN); the engine performs the state-machine
// guards and the approval cascade.

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/model"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/repository"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/scheduler"
)

// AdminReservationHandler serves approve/deny and the cross-requester
// reservation listing.
type AdminReservationHandler struct {
	Engine       *scheduler.Engine
	Reservations *repository.ReservationRepo
}

func NewAdminReservationHandler(engine *scheduler.Engine, reservations *repository.ReservationRepo) *AdminReservationHandler {
	if engine == nil || reservations == nil {
		panic("nil dependency passed to NewAdminReservationHandler")
	}
	return &AdminReservationHandler{Engine: engine, Reservations: reservations}
}

// List handles GET /v1/admin/reservations?status=.  Without a status
// filter it returns everything, newest first.
func (h *AdminReservationHandler) List(c echo.Context) error {
	var status model.ReservationStatus
	if raw := strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))); raw != "" {
		status = model.ReservationStatus(raw)
		if !status.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status " + raw})
		}
	}
	items, err := h.Reservations.List(c.Request().Context(), status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// Approve handles POST /v1/reservations/:id/approve.  On success the
// response reports how many overlapping pending reservations the cascade
// auto-denied.
func (h *AdminReservationHandler) Approve(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	reservationID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	result, err := h.Engine.Approve(c.Request().Context(), reservationID, actorID)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"item":              result.Reservation,
		"auto_denied_count": result.AutoDenied,
	})
}

// Deny handles POST /v1/reservations/:id/deny.  Denying a pending
// reservation turns it down; denying an approved one revokes the
// approval.  Both land in the terminal DENIED state.
func (h *AdminReservationHandler) Deny(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	reservationID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	denied, err := h.Engine.Deny(c.Request().Context(), reservationID, actorID)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": denied})
}
