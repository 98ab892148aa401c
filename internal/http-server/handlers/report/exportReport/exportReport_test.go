package exportReport

import (
	"encoding/csv"
	"errors"
	"guestPass/internal/http-server/handlers/report/getReport/mocks"
	"guestPass/internal/lib/logger/handlers/slogdiscard"
	"guestPass/internal/models"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportReportHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	event := &models.Event{
		ID:        1,
		Name:      "Summer Wedding",
		StartDate: time.Date(2026, 9, 12, 16, 0, 0, 0, time.UTC),
	}

	guests := []models.Guest{
		{ID: 5, EventID: 1, Name: "Maria Sanchez", InvitationCode: "SUM1-MARI-001",
			AdultsCount: 2, ChildrenCount: 1, PassesCount: 3},
		{ID: 6, EventID: 1, Name: "Jordan Lee", InvitationCode: "SUM1-JORD-002",
			AdultsCount: 1, PassesCount: 1},
	}

	attendances := []models.Attendance{
		{ID: 11, GuestID: 5, EventID: 1, CheckedInAt: time.Date(2026, 9, 12, 16, 5, 0, 0, time.UTC)},
	}

	t.Run("Exports CSV", func(t *testing.T) {
		t.Parallel()

		mockProvider := mocks.NewReportProvider(t)
		mockProvider.On("GetEvent", 1).Return(event, nil)
		mockProvider.On("ListGuestsForEvent", 1).Return(guests, nil)
		mockProvider.On("ListAttendancesForEvent", 1).Return(attendances, nil)

		handler := New(logger, mockProvider)

		req, err := http.NewRequest("GET", "/api/events/1/report/export", nil)
		require.NoError(t, err)

		router := chi.NewRouter()
		router.Get("/api/events/{id}/report/export", handler)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Type"), "text/csv")
		assert.Equal(t, `attachment; filename="attendance-event-1.csv"`, rr.Header().Get("Content-Disposition"))

		records, err := csv.NewReader(strings.NewReader(rr.Body.String())).ReadAll()
		require.NoError(t, err)
		// header + two guests + totals
		require.Len(t, records, 4)

		assert.Equal(t, "guest_name", records[0][0])
		assert.Equal(t, "Maria Sanchez", records[1][0])
		assert.Equal(t, "true", records[1][6])
		assert.Equal(t, "3", records[1][11])
		assert.Equal(t, "Jordan Lee", records[2][0])
		assert.Equal(t, "false", records[2][6])
		assert.Equal(t, "TOTAL", records[3][0])
		assert.Equal(t, "4", records[3][5])
		assert.Equal(t, "3", records[3][11])
	})

	t.Run("Event not found", func(t *testing.T) {
		t.Parallel()

		mockProvider := mocks.NewReportProvider(t)
		mockProvider.On("GetEvent", 99).Return(nil, errors.New("event not found"))

		handler := New(logger, mockProvider)

		req, err := http.NewRequest("GET", "/api/events/99/report/export", nil)
		require.NoError(t, err)

		router := chi.NewRouter()
		router.Get("/api/events/{id}/report/export", handler)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "event not found")
	})

	t.Run("Invalid event ID format", func(t *testing.T) {
		t.Parallel()

		mockProvider := mocks.NewReportProvider(t)
		handler := New(logger, mockProvider)

		req, err := http.NewRequest("GET", "/api/events/invalid/report/export", nil)
		require.NoError(t, err)

		router := chi.NewRouter()
		router.Get("/api/events/{id}/report/export", handler)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid event id format")
	})
}
