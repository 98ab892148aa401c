package checkIn

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"guestPass/internal/checkin"
	"guestPass/internal/lib/api/response"
	"guestPass/internal/lib/logger/sl"
	"guestPass/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type CheckInRequest struct {
	InvitationCode      string `json:"invitation_code" validate:"required"`
	ActualAdultsCount   *int   `json:"actual_adults_count"`
	ActualChildrenCount *int   `json:"actual_children_count"`
	ActualPetsCount     *int   `json:"actual_pets_count"`
}

type CheckInResponse struct {
	response.Response
	Attendance *models.Attendance `json:"attendance"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CheckInProvider
type CheckInProvider interface {
	GetEvent(eventID int) (*models.Event, error)
	GetGuestByInvitationCode(code string) (*models.Guest, error)
	CreateAttendance(guestID, eventID int, actualAdults, actualChildren, actualPets *int) (*models.Attendance, error)
}

// New records a guest's arrival. One attendance row per guest per event; a
// second scan is a Conflict, not a silent success. Actual headcounts are
// only validated and stored when the event requires full attendance.
func New(log *slog.Logger, provider CheckInProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkin.checkIn.New"

		log = log.With(slog.String("op", op))

		eventIdStr := chi.URLParam(r, "id")
		if eventIdStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIdStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		var req CheckInRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		event, err := provider.GetEvent(eventID)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))

			if err.Error() == "event not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event"))
			return
		}

		guest, err := provider.GetGuestByInvitationCode(req.InvitationCode)
		if err != nil {
			log.Error("failed to get guest", sl.Err(err))

			if err.Error() == "guest not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("guest not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get guest"))
			return
		}

		if guest.EventID != eventID {
			log.Error("invitation code belongs to another event", slog.Int("guest_event_id", guest.EventID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("guest not found"))
			return
		}

		actualAdults, actualChildren, actualPets := req.ActualAdultsCount, req.ActualChildrenCount, req.ActualPetsCount

		if event.ValidateFullAttendance {
			if err = checkin.ValidateStrict(*guest, actualAdults, actualChildren, actualPets); err != nil {
				log.Error("check-in rejected", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
		} else {
			// actuals are only captured under strict validation; reporting
			// falls back to the guest's allotment otherwise
			actualAdults, actualChildren, actualPets = nil, nil, nil
		}

		attendance, err := provider.CreateAttendance(guest.ID, eventID, actualAdults, actualChildren, actualPets)
		if err != nil {
			log.Error("failed to check in", sl.Err(err))

			if err.Error() == "already checked in" {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("already checked in"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to check in"))
			return
		}

		log.Info("guest checked in", slog.Int("guest_id", guest.ID))

		render.JSON(w, r, CheckInResponse{
			Response:   response.OK(),
			Attendance: attendance,
		})
	}
}
