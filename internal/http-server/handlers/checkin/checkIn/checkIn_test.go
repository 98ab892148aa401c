package checkIn

import (
	"bytes"
	"errors"
	"guestPass/internal/http-server/handlers/checkin/checkIn/mocks"
	"guestPass/internal/lib/logger/handlers/slogdiscard"
	"guestPass/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckInHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	relaxedEvent := &models.Event{
		ID:        1,
		Name:      "Summer Wedding",
		StartDate: time.Date(2026, 9, 12, 16, 0, 0, 0, time.UTC),
	}
	strictEvent := &models.Event{
		ID:                     2,
		Name:                   "Board Dinner",
		StartDate:              time.Date(2026, 10, 2, 19, 0, 0, 0, time.UTC),
		ValidateFullAttendance: true,
	}

	guest := &models.Guest{
		ID:             5,
		EventID:        1,
		Name:           "Maria Sanchez",
		InvitationCode: "SUM1-MARI-001",
		AdultsCount:    2,
		ChildrenCount:  1,
		PassesCount:    3,
	}
	strictGuest := &models.Guest{
		ID:             8,
		EventID:        2,
		Name:           "Jordan Lee",
		InvitationCode: "BOA2-JORD-001",
		AdultsCount:    2,
		PassesCount:    2,
	}

	attendance := &models.Attendance{ID: 11, GuestID: 5, EventID: 1}

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(mock *mocks.CheckInProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success without strict validation",
			eventID:     "1",
			requestBody: `{"invitation_code": "SUM1-MARI-001"}`,
			mockSetup: func(m *mocks.CheckInProvider) {
				m.On("GetEvent", 1).Return(relaxedEvent, nil)
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
				m.On("CreateAttendance", 5, 1, (*int)(nil), (*int)(nil), (*int)(nil)).Return(attendance, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"guest_id":5`)
			},
		},
		{
			name:    "Actuals discarded without strict validation",
			eventID: "1",
			requestBody: `{"invitation_code": "SUM1-MARI-001",
				"actual_adults_count": 2, "actual_children_count": 1, "actual_pets_count": 0}`,
			mockSetup: func(m *mocks.CheckInProvider) {
				m.On("GetEvent", 1).Return(relaxedEvent, nil)
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
				m.On("CreateAttendance", 5, 1, (*int)(nil), (*int)(nil), (*int)(nil)).Return(attendance, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:    "Success with strict validation",
			eventID: "2",
			requestBody: `{"invitation_code": "BOA2-JORD-001",
				"actual_adults_count": 2, "actual_children_count": 0, "actual_pets_count": 0}`,
			mockSetup: func(m *mocks.CheckInProvider) {
				m.On("GetEvent", 2).Return(strictEvent, nil)
				m.On("GetGuestByInvitationCode", "BOA2-JORD-001").Return(strictGuest, nil)
				m.On("CreateAttendance", 8, 2,
					mock.MatchedBy(func(p *int) bool { return p != nil && *p == 2 }),
					mock.MatchedBy(func(p *int) bool { return p != nil && *p == 0 }),
					mock.MatchedBy(func(p *int) bool { return p != nil && *p == 0 }),
				).Return(&models.Attendance{ID: 12, GuestID: 8, EventID: 2}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"guest_id":8`)
			},
		},
		{
			name:        "Strict validation missing counts",
			eventID:     "2",
			requestBody: `{"invitation_code": "BOA2-JORD-001"}`,
			mockSetup: func(m *mocks.CheckInProvider) {
				m.On("GetEvent", 2).Return(strictEvent, nil)
				m.On("GetGuestByInvitationCode", "BOA2-JORD-001").Return(strictGuest, nil)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "requires actual headcounts")
			},
		},
		{
			name:    "Strict validation headcount mismatch",
			eventID: "2",
			requestBody: `{"invitation_code": "BOA2-JORD-001",
				"actual_adults_count": 1, "actual_children_count": 0, "actual_pets_count": 0}`,
			mockSetup: func(m *mocks.CheckInProvider) {
				m.On("GetEvent", 2).Return(strictEvent, nil)
				m.On("GetGuestByInvitationCode", "BOA2-JORD-001").Return(strictGuest, nil)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "headcount does not match allotted passes")
				assert.Contains(t, body, "got 1, expected 2")
			},
		},
		{
			name:        "Already checked in",
			eventID:     "1",
			requestBody: `{"invitation_code": "SUM1-MARI-001"}`,
			mockSetup: func(m *mocks.CheckInProvider) {
				m.On("GetEvent", 1).Return(relaxedEvent, nil)
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
				m.On("CreateAttendance", 5, 1, (*int)(nil), (*int)(nil), (*int)(nil)).
					Return(nil, errors.New("already checked in"))
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "already checked in")
			},
		},
		{
			name:        "Guest belongs to another event",
			eventID:     "2",
			requestBody: `{"invitation_code": "SUM1-MARI-001"}`,
			mockSetup: func(m *mocks.CheckInProvider) {
				m.On("GetEvent", 2).Return(strictEvent, nil)
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "guest not found")
			},
		},
		{
			name:        "Event not found",
			eventID:     "99",
			requestBody: `{"invitation_code": "SUM1-MARI-001"}`,
			mockSetup: func(m *mocks.CheckInProvider) {
				m.On("GetEvent", 99).Return(nil, errors.New("event not found"))
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "event not found")
			},
		},
		{
			name:        "Guest not found",
			eventID:     "1",
			requestBody: `{"invitation_code": "SUM1-XXXX-999"}`,
			mockSetup: func(m *mocks.CheckInProvider) {
				m.On("GetEvent", 1).Return(relaxedEvent, nil)
				m.On("GetGuestByInvitationCode", "SUM1-XXXX-999").Return(nil, errors.New("guest not found"))
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "guest not found")
			},
		},
		{
			name:           "Invalid event ID format",
			eventID:        "invalid",
			requestBody:    `{"invitation_code": "SUM1-MARI-001"}`,
			mockSetup:      func(m *mocks.CheckInProvider) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid event id format")
			},
		},
		{
			name:           "Missing invitation code",
			eventID:        "1",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.CheckInProvider) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "InvitationCode")
			},
		},
		{
			name:           "Invalid JSON",
			eventID:        "1",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.CheckInProvider) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to decode request")
			},
		},
		{
			name:        "Internal error on create",
			eventID:     "1",
			requestBody: `{"invitation_code": "SUM1-MARI-001"}`,
			mockSetup: func(m *mocks.CheckInProvider) {
				m.On("GetEvent", 1).Return(relaxedEvent, nil)
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
				m.On("CreateAttendance", 5, 1, (*int)(nil), (*int)(nil), (*int)(nil)).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to check in")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewCheckInProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(logger, mockProvider)

			req, err := http.NewRequest("POST", "/api/events/"+tc.eventID+"/checkin", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Route("/api/events", func(r chi.Router) {
				r.Route("/{id}", func(r chi.Router) {
					r.Post("/checkin", handler)
				})
			})

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestCheckInWithoutEventID(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockProvider := mocks.NewCheckInProvider(t)
	handler := New(logger, mockProvider)

	req, err := http.NewRequest("POST", "/", bytes.NewBufferString(`{"invitation_code": "SUM1-MARI-001"}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "event id is required")
}
