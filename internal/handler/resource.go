package handler

// Resource browsing endpoints: the catalog listing, the per-day slot
// availability grid, and the conflict preview used before submitting a
// reservation.  Catalog mutation lives in an external administration
// surface; nothing here writes.

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/config"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/model"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/repository"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/scheduler"
)

// ResourceHandler serves read-only resource views.
type ResourceHandler struct {
	Cfg       config.Config
	Resources *repository.ResourceRepo
	Engine    *scheduler.Engine
}

func NewResourceHandler(cfg config.Config, resources *repository.ResourceRepo, engine *scheduler.Engine) *ResourceHandler {
	if resources == nil || engine == nil {
		panic("nil dependency passed to NewResourceHandler")
	}
	return &ResourceHandler{Cfg: cfg, Resources: resources, Engine: engine}
}

// ListResources handles GET /v1/resources.  Optional ?type= and ?status=
// query parameters filter the catalog.
func (h *ResourceHandler) ListResources(c echo.Context) error {
	resourceType := model.ResourceType(strings.ToUpper(strings.TrimSpace(c.QueryParam("type"))))
	status := model.ResourceStatus(strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))))
	items, err := h.Resources.List(c.Request().Context(), resourceType, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load resources"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// slotView is one row of the booking grid.
type slotView struct {
	Slot    string `json:"slot"`   // catalog label, e.g. "09:00-10:00"
	Status  string `json:"status"` // FREE | PENDING | RESERVED | PAST
	Pending int    `json:"pending,omitempty"`
}

// DaySlots handles GET /v1/resources/:id/slots?date=YYYY-MM-DD.  It
// renders the day's slot catalog annotated with availability: RESERVED
// when an approved reservation overlaps the slot, PENDING with a queue
// count when only pending requests overlap, PAST when the slot has
// already started.  Past-ness follows the same start-time rule used for
// creation validation.
func (h *ResourceHandler) DaySlots(c echo.Context) error {
	resourceID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid resource id"})
	}
	date, err := time.Parse("2006-01-02", c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	ctx := c.Request().Context()
	if _, err := h.Resources.GetResource(ctx, resourceID); err != nil {
		return writeEngineError(c, err)
	}

	slots := scheduler.DaySlots(date, h.Cfg.OpenHour, h.Cfg.CloseHour)
	if len(slots) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"date": c.QueryParam("date"), "slots": []slotView{}})
	}
	// One interval query covers the whole grid; annotate in memory.
	window := scheduler.TimeRange{Start: slots[0].Start, End: slots[len(slots)-1].End}
	existing, err := h.Engine.ListConflicts(ctx, resourceID, window, nil)
	if err != nil {
		return writeEngineError(c, err)
	}

	now := time.Now().UTC()
	views := make([]slotView, 0, len(slots))
	for _, slot := range slots {
		view := slotView{Slot: slot.Label(), Status: "FREE"}
		if slot.Start.Before(now) {
			view.Status = "PAST"
		}
		for i := range existing {
			if !existing[i].Overlaps(slot.Start, slot.End) {
				continue
			}
			if existing[i].Status == model.StatusApproved {
				view.Status = "RESERVED"
				view.Pending = 0
				break
			}
			if view.Status != "PAST" {
				view.Status = "PENDING"
				view.Pending++
			}
		}
		views = append(views, view)
	}
	return c.JSON(http.StatusOK, echo.Map{"date": c.QueryParam("date"), "slots": views})
}

// Conflicts handles GET /v1/resources/:id/conflicts?start=&end=&statuses=.
// It lists reservations overlapping the window so a requester can see how
// many pending requests already queue for a slot.  Statuses default to
// PENDING,APPROVED.
func (h *ResourceHandler) Conflicts(c echo.Context) error {
	resourceID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid resource id"})
	}
	start, err := parseRFC3339(c.QueryParam("start"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start must be RFC3339"})
	}
	end, err := parseRFC3339(c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end must be RFC3339"})
	}
	var statuses []model.ReservationStatus
	if raw := strings.TrimSpace(c.QueryParam("statuses")); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			status := model.ReservationStatus(strings.ToUpper(strings.TrimSpace(s)))
			if !status.Valid() {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status " + s})
			}
			statuses = append(statuses, status)
		}
	}
	ctx := c.Request().Context()
	if _, err := h.Resources.GetResource(ctx, resourceID); err != nil {
		return writeEngineError(c, err)
	}
	items, err := h.Engine.ListConflicts(ctx, resourceID, scheduler.TimeRange{Start: start, End: end}, statuses)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}
