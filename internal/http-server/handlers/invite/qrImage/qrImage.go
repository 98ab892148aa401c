package qrImage

import (
	"log/slog"
	"net/http"

	"guestPass/internal/lib/api/response"
	"guestPass/internal/lib/logger/sl"
	"guestPass/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/skip2/go-qrcode"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestGetter
type GuestGetter interface {
	GetGuestByInvitationCode(code string) (*models.Guest, error)
}

// New serves the guest's QR payload as a PNG. The encoded string is exactly
// guest.QRCodeData, the same string a check-in scanner parses back out.
func New(log *slog.Logger, guests GuestGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invite.qrImage.New"

		log = log.With(slog.String("op", op))

		code := chi.URLParam(r, "code")
		if code == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invitation code is required"))
			return
		}

		log = log.With(slog.String("invitation_code", code))

		guest, err := guests.GetGuestByInvitationCode(code)
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

		if guest.QRCodeData == "" {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("guest has no qr code"))
			return
		}

		png, err := qrcode.Encode(guest.QRCodeData, qrcode.Medium, 256)
		if err != nil {
			log.Error("failed to encode qr code", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to encode qr code"))
			return
		}

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}
}
