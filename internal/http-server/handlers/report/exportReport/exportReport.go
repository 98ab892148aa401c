package exportReport

import (
	"fmt"
	"log/slog"
	"net/http"

	"guestPass/internal/checkin"
	"guestPass/internal/http-server/handlers/report/getReport"
	"guestPass/internal/lib/api/response"
	"guestPass/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// New serves the reconciliation report as a CSV download.
func New(log *slog.Logger, provider getReport.ReportProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.exportReport.New"

		log = log.With(slog.String("op", op))

		report, status, errMsg := getReport.Build(log, provider, chi.URLParam(r, "id"))
		if errMsg != "" {
			render.Status(r, status)
			render.JSON(w, r, response.Error(errMsg))
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=\"attendance-event-%d.csv\"", report.EventID))

		if err := checkin.WriteCSV(w, *report); err != nil {
			// headers are already out, nothing useful left to send
			log.Error("failed to write csv", sl.Err(err))
			return
		}

		log.Info("report exported", slog.Int("guests", len(report.Rows)))
	}
}
