package getRSVP

import (
	"log/slog"
	"net/http"

	"guestPass/internal/lib/api/response"
	"guestPass/internal/lib/logger/sl"
	"guestPass/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type RSVPInfoResponse struct {
	response.Response
	RSVP          models.RSVPStatus `json:"rsvp"`
	AdultsCount   int               `json:"adults_count"`
	ChildrenCount int               `json:"children_count"`
	PetsCount     int               `json:"pets_count"`
	PassesCount   int               `json:"passes_count"`
	MaxPasses     int               `json:"max_passes"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RSVPGetter
type RSVPGetter interface {
	GetGuestByInvitationCode(code string) (*models.Guest, error)
	GetRSVPResponse(guestID, eventID int) (*models.RSVPResponse, error)
}

// New loads the guest's current answer. Without a stored row the editable
// counts default to the guest's allotment and the status is unanswered.
func New(log *slog.Logger, rsvps RSVPGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.getRSVP.New"

		log = log.With(slog.String("op", op))

		code := chi.URLParam(r, "code")
		if code == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invitation code is required"))
			return
		}

		log = log.With(slog.String("invitation_code", code))

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

		stored, err := rsvps.GetRSVPResponse(guest.ID, guest.EventID)
		if err != nil {
			log.Error("failed to get rsvp response", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get rsvp response"))
			return
		}

		resp := RSVPInfoResponse{
			Response:      response.OK(),
			RSVP:          models.RSVPUnanswered,
			AdultsCount:   guest.AdultsCount,
			ChildrenCount: guest.ChildrenCount,
			PetsCount:     guest.PetsCount,
			PassesCount:   guest.PassesCount,
			MaxPasses:     guest.PassesCount,
		}
		if stored != nil {
			resp.RSVP = stored.Response
			resp.AdultsCount = stored.AdultsCount
			resp.ChildrenCount = stored.ChildrenCount
			resp.PetsCount = stored.PetsCount
			resp.PassesCount = stored.PassesCount
		}

		log.Info("rsvp loaded", slog.String("rsvp", string(resp.RSVP)))

		render.JSON(w, r, resp)
	}
}
