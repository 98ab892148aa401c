package submitRSVP

import (
	"bytes"
	"errors"
	"guestPass/internal/http-server/handlers/rsvp/submitRSVP/mocks"
	"guestPass/internal/lib/logger/handlers/slogdiscard"
	"guestPass/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRSVPHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	guest := &models.Guest{
		ID:             5,
		EventID:        1,
		Name:           "Maria Sanchez",
		InvitationCode: "SUM1-MARI-001",
		AdultsCount:    2,
		ChildrenCount:  1,
		PetsCount:      0,
		PassesCount:    3,
	}

	stored := &models.RSVPResponse{
		ID:            9,
		GuestID:       5,
		EventID:       1,
		Response:      models.RSVPAttending,
		AdultsCount:   2,
		ChildrenCount: 1,
		PetsCount:     0,
		PassesCount:   3,
	}

	testCases := []struct {
		name           string
		code           string
		requestBody    string
		mockSetup      func(mock *mocks.RSVPSubmitter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Attending within allotment",
			code:        "SUM1-MARI-001",
			requestBody: `{"response": "attending", "adults_count": 2, "children_count": 1, "pets_count": 0}`,
			mockSetup: func(m *mocks.RSVPSubmitter) {
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
				m.On("UpsertRSVPResponse", 5, 1, models.RSVPAttending, 2, 1, 0, 3).Return(stored, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, "party of 3")
				assert.Contains(t, body, `"response":"attending"`)
			},
		},
		{
			name:        "Not attending zeroes the counts",
			code:        "SUM1-MARI-001",
			requestBody: `{"response": "not_attending", "adults_count": 2, "children_count": 1}`,
			mockSetup: func(m *mocks.RSVPSubmitter) {
				declined := &models.RSVPResponse{
					GuestID:  5,
					EventID:  1,
					Response: models.RSVPNotAttending,
				}
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
				m.On("UpsertRSVPResponse", 5, 1, models.RSVPNotAttending, 0, 0, 0, 0).Return(declined, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, "sorry you won't make it")
			},
		},
		{
			name:        "Maybe zeroes the counts",
			code:        "SUM1-MARI-001",
			requestBody: `{"response": "maybe", "adults_count": 1}`,
			mockSetup: func(m *mocks.RSVPSubmitter) {
				maybe := &models.RSVPResponse{
					GuestID:  5,
					EventID:  1,
					Response: models.RSVPMaybe,
				}
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
				m.On("UpsertRSVPResponse", 5, 1, models.RSVPMaybe, 0, 0, 0, 0).Return(maybe, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, "might attend")
			},
		},
		{
			name:        "Exceeds allotted passes",
			code:        "SUM1-MARI-001",
			requestBody: `{"response": "attending", "adults_count": 3, "children_count": 1}`,
			mockSetup: func(m *mocks.RSVPSubmitter) {
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "exceeds allotted passes")
			},
		},
		{
			name:        "Attending with zero attendees",
			code:        "SUM1-MARI-001",
			requestBody: `{"response": "attending"}`,
			mockSetup: func(m *mocks.RSVPSubmitter) {
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "must select at least one attendee")
			},
		},
		{
			name:           "Unknown response value",
			code:           "SUM1-MARI-001",
			requestBody:    `{"response": "probably"}`,
			mockSetup:      func(m *mocks.RSVPSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Response")
			},
		},
		{
			name:           "Missing response",
			code:           "SUM1-MARI-001",
			requestBody:    `{"adults_count": 2}`,
			mockSetup:      func(m *mocks.RSVPSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Response")
			},
		},
		{
			name:           "Invalid JSON",
			code:           "SUM1-MARI-001",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.RSVPSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to decode request")
			},
		},
		{
			name:        "Guest not found",
			code:        "SUM1-XXXX-999",
			requestBody: `{"response": "attending", "adults_count": 1}`,
			mockSetup: func(m *mocks.RSVPSubmitter) {
				m.On("GetGuestByInvitationCode", "SUM1-XXXX-999").Return(nil, errors.New("guest not found"))
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "guest not found")
			},
		},
		{
			name:        "Storage error on upsert",
			code:        "SUM1-MARI-001",
			requestBody: `{"response": "attending", "adults_count": 2}`,
			mockSetup: func(m *mocks.RSVPSubmitter) {
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
				m.On("UpsertRSVPResponse", 5, 1, models.RSVPAttending, 2, 0, 0, 2).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to store rsvp response")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSubmitter := mocks.NewRSVPSubmitter(t)
			tc.mockSetup(mockSubmitter)

			handler := New(logger, mockSubmitter)

			req, err := http.NewRequest("POST", "/api/invite/"+tc.code+"/rsvp", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Route("/api/invite", func(r chi.Router) {
				r.Route("/{code}", func(r chi.Router) {
					r.Post("/rsvp", handler)
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

func TestSubmitRSVPWithoutCode(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockSubmitter := mocks.NewRSVPSubmitter(t)
	handler := New(logger, mockSubmitter)

	req, err := http.NewRequest("POST", "/", bytes.NewBufferString(`{"response": "attending"}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invitation code is required")
}
