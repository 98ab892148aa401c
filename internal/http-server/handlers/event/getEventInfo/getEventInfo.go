package getEventInfo

import (
	"log/slog"
	"net/http"
	"strconv"

	"guestPass/internal/lib/api/response"
	"guestPass/internal/lib/logger/sl"
	"guestPass/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventInfoResponse struct {
	response.Response
	Event  *models.Event  `json:"event"`
	Guests []models.Guest `json:"guests"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(eventID int) (*models.Event, error)
	ListGuestsForEvent(eventID int) ([]models.Guest, error)
}

func New(log *slog.Logger, info EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

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

		event, err := info.GetEvent(eventID)
		if err != nil {
			log.Error("failed to get event information", sl.Err(err))

			if err.Error() == "event not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		guests, err := info.ListGuestsForEvent(eventID)
		if err != nil {
			log.Error("failed to get guest list", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get guest list"))
			return
		}

		log.Info("event info successfully received", slog.Int("guests", len(guests)))

		responseOK(w, r, event, guests)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event, guests []models.Guest) {
	render.JSON(w, r, EventInfoResponse{
		Response: response.OK(),
		Event:    event,
		Guests:   guests,
	})
}
