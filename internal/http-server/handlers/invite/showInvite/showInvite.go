package showInvite

import (
	"log/slog"
	"net/http"

	"guestPass/internal/invite"
	"guestPass/internal/lib/logger/sl"
	"guestPass/internal/models"

	"github.com/go-chi/chi/v5"
)

const notFoundPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Invitation not found</title></head>
<body style="font-family:sans-serif;text-align:center;padding-top:15vh">
  <h1>Invitation not found</h1>
  <p>The invitation link you followed doesn't exist or is no longer valid.</p>
  <p><a href="/">Back to the home page</a></p>
</body>
</html>`

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InviteProvider
type InviteProvider interface {
	GetGuestByInvitationCode(code string) (*models.Guest, error)
	GetEvent(eventID int) (*models.Event, error)
}

// New serves the guest-facing invitation page. The template comes from the
// event record; ?template= overrides it for organizer previews. The renderer
// guarantees a page comes out even for unknown or failing template ids.
func New(log *slog.Logger, provider InviteProvider, renderer *invite.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invite.showInvite.New"

		log = log.With(slog.String("op", op))

		code := chi.URLParam(r, "code")
		if code == "" {
			notFound(w)
			return
		}

		log = log.With(slog.String("invitation_code", code))

		guest, err := provider.GetGuestByInvitationCode(code)
		if err != nil {
			log.Error("failed to get guest", sl.Err(err))
			notFound(w)
			return
		}

		event, err := provider.GetEvent(guest.EventID)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))
			notFound(w)
			return
		}

		templateID := event.TemplateID
		if override := r.URL.Query().Get("template"); override != "" {
			templateID = override
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		err = renderer.Render(w, invite.Params{
			TemplateID: templateID,
			Event:      *event,
			Guest:      *guest,
			ShowRSVP:   true,
		})
		if err != nil {
			// the fallback render itself failed; headers are already out,
			// so all that is left is to log it
			log.Error("failed to render invitation", sl.Err(err))
			return
		}

		log.Info("invitation rendered", slog.String("template", templateID))
	}
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(notFoundPage))
}
