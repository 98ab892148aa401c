package getReport

import (
	"log/slog"
	"net/http"
	"strconv"

	"guestPass/internal/checkin"
	"guestPass/internal/lib/api/response"
	"guestPass/internal/lib/logger/sl"
	"guestPass/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ReportResponse struct {
	response.Response
	Report checkin.Report `json:"report"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReportProvider
type ReportProvider interface {
	GetEvent(eventID int) (*models.Event, error)
	ListGuestsForEvent(eventID int) ([]models.Guest, error)
	ListAttendancesForEvent(eventID int) ([]models.Attendance, error)
}

func New(log *slog.Logger, provider ReportProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.getReport.New"

		log = log.With(slog.String("op", op))

		report, status, errMsg := Build(log, provider, chi.URLParam(r, "id"))
		if errMsg != "" {
			render.Status(r, status)
			render.JSON(w, r, response.Error(errMsg))
			return
		}

		log.Info("report built",
			slog.Int("guests", len(report.Rows)),
			slog.Int("present_total", report.Present.Total),
		)

		render.JSON(w, r, ReportResponse{
			Response: response.OK(),
			Report:   *report,
		})
	}
}

// Build assembles the reconciliation report for a raw event id parameter.
// Shared with the CSV export handler, which serves the same aggregation in a
// different shape.
func Build(log *slog.Logger, provider ReportProvider, eventIdStr string) (*checkin.Report, int, string) {
	if eventIdStr == "" {
		log.Error("event id is required")
		return nil, http.StatusBadRequest, "event id is required"
	}

	eventID, err := strconv.Atoi(eventIdStr)
	if err != nil {
		log.Error("invalid event id format", sl.Err(err))
		return nil, http.StatusBadRequest, "invalid event id format"
	}

	event, err := provider.GetEvent(eventID)
	if err != nil {
		log.Error("failed to get event", sl.Err(err))

		if err.Error() == "event not found" {
			return nil, http.StatusNotFound, "event not found"
		}
		return nil, http.StatusInternalServerError, "failed to get event"
	}

	guests, err := provider.ListGuestsForEvent(eventID)
	if err != nil {
		log.Error("failed to get guest list", sl.Err(err))
		return nil, http.StatusInternalServerError, "failed to get guest list"
	}

	attendances, err := provider.ListAttendancesForEvent(eventID)
	if err != nil {
		log.Error("failed to get attendances", sl.Err(err))
		return nil, http.StatusInternalServerError, "failed to get attendances"
	}

	report := checkin.BuildReport(*event, guests, attendances)

	return &report, http.StatusOK, ""
}
