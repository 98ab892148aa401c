package getRSVP

import (
	"errors"
	"guestPass/internal/http-server/handlers/rsvp/getRSVP/mocks"
	"guestPass/internal/lib/logger/handlers/slogdiscard"
	"guestPass/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRSVPHandler(t *testing.T) {
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

	testCases := []struct {
		name           string
		code           string
		mockSetup      func(mock *mocks.RSVPGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Unanswered defaults to allotment",
			code: "SUM1-MARI-001",
			mockSetup: func(m *mocks.RSVPGetter) {
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
				m.On("GetRSVPResponse", 5, 1).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","rsvp":"unanswered","adults_count":2,"children_count":1,"pets_count":0,"passes_count":3,"max_passes":3}`,
		},
		{
			name: "Stored answer wins over allotment",
			code: "SUM1-MARI-001",
			mockSetup: func(m *mocks.RSVPGetter) {
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
				m.On("GetRSVPResponse", 5, 1).Return(&models.RSVPResponse{
					GuestID:       5,
					EventID:       1,
					Response:      models.RSVPAttending,
					AdultsCount:   1,
					ChildrenCount: 1,
					PetsCount:     0,
					PassesCount:   2,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","rsvp":"attending","adults_count":1,"children_count":1,"pets_count":0,"passes_count":2,"max_passes":3}`,
		},
		{
			name: "Guest not found",
			code: "SUM1-XXXX-999",
			mockSetup: func(m *mocks.RSVPGetter) {
				m.On("GetGuestByInvitationCode", "SUM1-XXXX-999").Return(nil, errors.New("guest not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"guest not found"}`,
		},
		{
			name: "Storage error on guest lookup",
			code: "SUM1-MARI-001",
			mockSetup: func(m *mocks.RSVPGetter) {
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get guest"}`,
		},
		{
			name: "Storage error on rsvp lookup",
			code: "SUM1-MARI-001",
			mockSetup: func(m *mocks.RSVPGetter) {
				m.On("GetGuestByInvitationCode", "SUM1-MARI-001").Return(guest, nil)
				m.On("GetRSVPResponse", 5, 1).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get rsvp response"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewRSVPGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/api/invite/"+tc.code+"/rsvp", nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Route("/api/invite", func(r chi.Router) {
				r.Route("/{code}", func(r chi.Router) {
					r.Get("/rsvp", handler)
				})
			})

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
