package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pestpro_ops/internal/adapter/http/handlers/mocks"
	"pestpro_ops/internal/domain/entities"
	"pestpro_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTimeclockHandler_RecordEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.ITimeclockUseCase) *gin.Engine {
		h := NewTimeclockHandler(uc)
		r := gin.New()
		r.POST("/v1/timeclock/events", h.RecordEvent)
		return r
	}
	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/timeclock/events", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := build(mocks.NewMockITimeclockUseCase(ctrl))

		if w := post(r, "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing employee id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := build(mocks.NewMockITimeclockUseCase(ctrl))

		if w := post(r, `{"event_type":"clock_in"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown event type rejected at binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := build(mocks.NewMockITimeclockUseCase(ctrl))

		if w := post(r, `{"employee_id":"emp-1","event_type":"coffee_break"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out-of-range coordinates rejected at binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := build(mocks.NewMockITimeclockUseCase(ctrl))

		if w := post(r, `{"employee_id":"emp-1","event_type":"clock_in","lat":123.4}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("shift not started maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimeclockUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().RecordEvent(gomock.Any(), gomock.Any()).Return(entities.TimeEvent{}, entities.Shift{}, usecase.ErrShiftNotStarted)

		w := post(r, `{"employee_id":"emp-1","event_type":"break_start"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "SHIFT_NOT_STARTED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimeclockUseCase(ctrl)
		r := build(uc)

		at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		event := entities.TimeEvent{ID: "ev-1", ShiftID: "shift-1", EmployeeID: "emp-1", Type: entities.EventClockIn, Timestamp: at}
		shift := entities.Shift{ID: "shift-1", EmployeeID: "emp-1", ShiftDate: "2025-03-10", ClockInAt: &at}

		uc.EXPECT().RecordEvent(gomock.Any(), gomock.AssignableToTypeOf(usecase.RecordEventCommand{})).DoAndReturn(
			func(_ any, cmd usecase.RecordEventCommand) (entities.TimeEvent, entities.Shift, error) {
				if cmd.EmployeeID != "emp-1" || cmd.Type != entities.EventClockIn {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if !cmd.At.Equal(at) {
					t.Fatalf("expected explicit timestamp, got %v", cmd.At)
				}
				return event, shift, nil
			},
		)

		w := post(r, `{"employee_id":"emp-1","event_type":"clock_in","timestamp":"2025-03-10T09:00:00Z"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		ev, _ := body["event"].(map[string]any)
		sh, _ := body["shift"].(map[string]any)
		if ev["id"] != "ev-1" || sh["id"] != "shift-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimeclockUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().RecordEvent(gomock.Any(), gomock.Any()).Return(entities.TimeEvent{}, entities.Shift{}, errors.New("db"))

		if w := post(r, `{"employee_id":"emp-1","event_type":"clock_in"}`); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapTimeclockError(t *testing.T) {
	if got := mapTimeclockError(usecase.ErrInvalidEmployeeID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapTimeclockError(usecase.ErrInvalidEventType); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapTimeclockError(usecase.ErrShiftNotStarted); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapTimeclockError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
