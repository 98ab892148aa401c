package addGuest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"guestPass/internal/lib/api/response"
	"guestPass/internal/lib/logger/sl"
	"guestPass/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type GuestRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	AdultsCount   int    `json:"adults_count" validate:"gte=0"`
	ChildrenCount int    `json:"children_count" validate:"gte=0"`
	PetsCount     int    `json:"pets_count" validate:"gte=0"`
}

type GuestResponse struct {
	response.Response
	Guest *models.Guest `json:"guest"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestCreator
type GuestCreator interface {
	CreateGuest(guest models.Guest) (*models.Guest, error)
}

func New(log *slog.Logger, guests GuestCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.guest.addGuest.New"

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

		var req GuestRequest

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

		guest, err := guests.CreateGuest(models.Guest{
			EventID:       eventID,
			Name:          req.Name,
			Email:         req.Email,
			Phone:         req.Phone,
			AdultsCount:   req.AdultsCount,
			ChildrenCount: req.ChildrenCount,
			PetsCount:     req.PetsCount,
		})
		if err != nil {
			log.Error("failed to add guest", sl.Err(err))

			if err.Error() == "event not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add guest"))
			return
		}

		log.Info("guest added",
			slog.Int("guest_id", guest.ID),
			slog.String("invitation_code", guest.InvitationCode),
		)

		responseOK(w, r, guest)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, guest *models.Guest) {
	render.JSON(w, r, GuestResponse{
		Response: response.OK(),
		Guest:    guest,
	})
}
