package handler // handler defines http handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/scheduler"
)

// getUserID extracts the authenticated user id from echo.Context.  The
// JWT middleware stores the raw sub claim, so the value may arrive in a
// handful of numeric encodings.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses a numeric path parameter, rejecting zero.
func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// parseRFC3339 parses a query timestamp and normalizes it to UTC.
func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// writeEngineError translates the scheduler's typed errors into HTTP
// responses.  Anything untyped is a storage or infrastructure failure
// and surfaces as 500.
func writeEngineError(c echo.Context, err error) error {
	var validation *scheduler.ValidationError
	if errors.As(err, &validation) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": validation.Reason})
	}
	var notFound *scheduler.NotFoundError
	if errors.As(err, &notFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": notFound.Error()})
	}
	var conflict *scheduler.ConflictError
	if errors.As(err, &conflict) {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":     "interval overlaps an approved reservation",
			"conflicts": len(conflict.Conflicts),
		})
	}
	var transition *scheduler.InvalidTransitionError
	if errors.As(err, &transition) {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":  transition.Error(),
			"from":   transition.From,
			"action": transition.Action,
		})
	}
	var authz *scheduler.AuthorizationError
	if errors.As(err, &authz) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": authz.Reason})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
