package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/model"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/scheduler"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWriteEngineError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "validation maps to 400",
			err:      &scheduler.ValidationError{Reason: "purpose is required"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not found maps to 404",
			err:      &scheduler.NotFoundError{Kind: "reservation", ID: 9},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "conflict maps to 409",
			err:      &scheduler.ConflictError{ResourceID: 1, Conflicts: []model.Reservation{{ID: 2}}},
			wantCode: http.StatusConflict,
		},
		{
			name:     "invalid transition maps to 409",
			err:      &scheduler.InvalidTransitionError{From: model.StatusDenied, Action: "approve"},
			wantCode: http.StatusConflict,
		},
		{
			name:     "authorization maps to 403",
			err:      &scheduler.AuthorizationError{Reason: "only the requester may cancel a reservation"},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "unknown error maps to 500",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			if err := writeEngineError(c, tt.err); err != nil {
				t.Fatalf("writeEngineError() error = %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    uint64
		wantErr bool
	}{
		{name: "uint64", value: uint64(7), want: 7},
		{name: "float64 from JSON claims", value: float64(7), want: 7},
		{name: "int", value: 7, want: 7},
		{name: "numeric string", value: "7", want: 7},
		{name: "missing", value: nil, wantErr: true},
		{name: "garbage string", value: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext()
			if tt.value != nil {
				c.Set("user_id", tt.value)
			}
			got, err := getUserID(c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("getUserID() = %d, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("getUserID() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("getUserID() = %d, want %d", got, tt.want)
			}
		})
	}
}
