package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"guestPass/internal/invite"
	"guestPass/internal/lib/api/response"
	"guestPass/internal/lib/logger/sl"
	"guestPass/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Name                   string     `json:"name" validate:"required"`
	Description            string     `json:"description"`
	Location               string     `json:"location"`
	EventType              string     `json:"event_type"`
	DressCode              string     `json:"dress_code"`
	ImageURL               string     `json:"image_url"`
	StartDate              time.Time  `json:"start_date" validate:"required"`
	EndDate                *time.Time `json:"end_date"`
	TemplateID             string     `json:"template_id"`
	ValidateFullAttendance bool       `json:"validate_full_attendance"`
}

type EventResponse struct {
	response.Response
	EventId int `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(event models.Event) (int, error)
}

func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

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
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		templateID := req.TemplateID
		if templateID == "" {
			templateID = invite.DefaultTemplate
		}

		eventId, err := event.CreateEvent(models.Event{
			Name:                   req.Name,
			Description:            req.Description,
			Location:               req.Location,
			EventType:              req.EventType,
			DressCode:              req.DressCode,
			ImageURL:               req.ImageURL,
			StartDate:              req.StartDate,
			EndDate:                req.EndDate,
			TemplateID:             templateID,
			ValidateFullAttendance: req.ValidateFullAttendance,
		})
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.Int("id", eventId))

		responseOK(w, r, eventId)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventId int) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventId:  eventId,
	})
}
