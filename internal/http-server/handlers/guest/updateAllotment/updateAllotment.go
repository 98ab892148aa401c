package updateAllotment

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

type AllotmentRequest struct {
	AdultsCount   int `json:"adults_count" validate:"gte=0"`
	ChildrenCount int `json:"children_count" validate:"gte=0"`
	PetsCount     int `json:"pets_count" validate:"gte=0"`
}

type AllotmentResponse struct {
	response.Response
	Guest *models.Guest `json:"guest"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AllotmentUpdater
type AllotmentUpdater interface {
	UpdateGuestAllotment(guestID, adults, children, pets int) (*models.Guest, error)
}

func New(log *slog.Logger, guests AllotmentUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.guest.updateAllotment.New"

		log = log.With(slog.String("op", op))

		guestIdStr := chi.URLParam(r, "id")
		if guestIdStr == "" {
			log.Error("guest id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("guest id is required"))
			return
		}

		guestID, err := strconv.Atoi(guestIdStr)
		if err != nil {
			log.Error("invalid guest id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid guest id format"))
			return
		}

		log = log.With(slog.Int("guest_id", guestID))

		var req AllotmentRequest

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

		guest, err := guests.UpdateGuestAllotment(guestID, req.AdultsCount, req.ChildrenCount, req.PetsCount)
		if err != nil {
			log.Error("failed to update allotment", sl.Err(err))

			if err.Error() == "guest not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("guest not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update allotment"))
			return
		}

		log.Info("allotment updated", slog.Int("passes_count", guest.PassesCount))

		responseOK(w, r, guest)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, guest *models.Guest) {
	render.JSON(w, r, AllotmentResponse{
		Response: response.OK(),
		Guest:    guest,
	})
}
