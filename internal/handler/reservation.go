package handler

// Requester-facing reservation endpoints: create (explicit interval or
// merged day slots), list own, cancel own.  Approval and denial are
// administrative and live in admin_reservation.go.

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/repository"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/scheduler"
)

// ReservationHandler serves requester reservation operations.
type ReservationHandler struct {
	Engine       *scheduler.Engine
	Reservations *repository.ReservationRepo
}

func NewReservationHandler(engine *scheduler.Engine, reservations *repository.ReservationRepo) *ReservationHandler {
	if engine == nil || reservations == nil {
		panic("nil dependency passed to NewReservationHandler")
	}
	return &ReservationHandler{Engine: engine, Reservations: reservations}
}

type createReservationReq struct {
	ResourceID  uint64   `json:"resource_id"`
	Purpose     string   `json:"purpose"`
	Destination string   `json:"destination"`
	Start       string   `json:"start"` // RFC3339; explicit-interval form
	End         string   `json:"end"`   // RFC3339; explicit-interval form
	Date        string   `json:"date"`  // YYYY-MM-DD; slot form
	Slots       []string `json:"slots"` // catalog labels; slot form
}

// Create handles POST /v1/reservations.  The body carries either an
// explicit start/end interval or a date plus a set of slot labels; slot
// selections are merged into minimal contiguous ranges and each range
// becomes its own PENDING reservation.  The whole request is validated
// before anything is written.
func (h *ReservationHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.ResourceID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "resource_id is required"})
	}

	var ranges []scheduler.TimeRange
	switch {
	case len(req.Slots) > 0:
		if req.Start != "" || req.End != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "provide either slots or an explicit interval, not both"})
		}
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
		}
		ranges, err = scheduler.MergeSlots(date, req.Slots)
		if err != nil {
			return writeEngineError(c, err)
		}
	case req.Start != "" && req.End != "":
		start, err := parseRFC3339(req.Start)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "start must be RFC3339"})
		}
		end, err := parseRFC3339(req.End)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "end must be RFC3339"})
		}
		ranges = []scheduler.TimeRange{{Start: start, End: end}}
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "either slots+date or start+end is required"})
	}

	created, err := h.Engine.Create(c.Request().Context(), scheduler.CreateRequest{
		ResourceID:  req.ResourceID,
		RequesterID: userID,
		Purpose:     req.Purpose,
		Destination: req.Destination,
		Ranges:      ranges,
	})
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"items": created, "count": len(created)})
}

// ListMine handles GET /v1/reservations, returning the authenticated
// requester's reservations newest first.
func (h *ReservationHandler) ListMine(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Reservations.ListByRequester(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// Cancel handles POST /v1/reservations/:id/cancel.  Only the requester
// who created a pending reservation may cancel it; the engine enforces
// the ownership rule.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	reservationID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	cancelled, err := h.Engine.Cancel(c.Request().Context(), reservationID, userID)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": cancelled})
}
