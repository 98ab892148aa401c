package submitRSVP

import (
	"errors"
	"log/slog"
	"net/http"

	"guestPass/internal/lib/api/response"
	"guestPass/internal/lib/logger/sl"
	"guestPass/internal/models"
	"guestPass/internal/rsvp"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type SubmitRequest struct {
	Response      models.RSVPStatus `json:"response" validate:"required,oneof=attending not_attending maybe"`
	AdultsCount   int               `json:"adults_count" validate:"gte=0"`
	ChildrenCount int               `json:"children_count" validate:"gte=0"`
	PetsCount     int               `json:"pets_count" validate:"gte=0"`
}

type SubmitResponse struct {
	response.Response
	Message string               `json:"message"`
	RSVP    *models.RSVPResponse `json:"rsvp"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RSVPSubmitter
type RSVPSubmitter interface {
	GetGuestByInvitationCode(code string) (*models.Guest, error)
	UpsertRSVPResponse(guestID, eventID int, status models.RSVPStatus, adults, children, pets, total int) (*models.RSVPResponse, error)
}

// New stores a guest's answer. The pass-count rules live in the rsvp package;
// on a validation failure nothing is written.
func New(log *slog.Logger, rsvps RSVPSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.submitRSVP.New"

		log = log.With(slog.String("op", op))

		code := chi.URLParam(r, "code")
		if code == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invitation code is required"))
			return
		}

		log = log.With(slog.String("invitation_code", code))

		var req SubmitRequest

		err := render.DecodeJSON(r.Body, &req)
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

		guest, err := rsvps.GetGuestByInvitationCode(code)
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

		counts, err := rsvp.Normalize(req.Response, req.AdultsCount, req.ChildrenCount, req.PetsCount, guest.PassesCount)
		if err != nil {
			log.Error("rsvp rejected", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		stored, err := rsvps.UpsertRSVPResponse(guest.ID, guest.EventID, req.Response,
			counts.Adults, counts.Children, counts.Pets, counts.Total)
		if err != nil {
			log.Error("failed to store rsvp response", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to store rsvp response"))
			return
		}

		log.Info("rsvp stored",
			slog.String("rsvp", string(stored.Response)),
			slog.Int("passes_count", stored.PassesCount),
		)

		render.JSON(w, r, SubmitResponse{
			Response: response.OK(),
			Message:  rsvp.ConfirmationMessage(stored.Response, stored.PassesCount),
			RSVP:     stored,
		})
	}
}
