package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/goodtill-sales-archiver/internal/scheduler"
	"github.com/vfg2006/goodtill-sales-archiver/internal/usecases/exporting"
	"github.com/vfg2006/goodtill-sales-archiver/pkg/apiErrors"
	"github.com/vfg2006/goodtill-sales-archiver/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ExportServices groups what the export endpoints need
type ExportServices struct {
	Exporter    *exporting.Service
	SyncService *scheduler.DailyExportSyncService
}

// GetExportStatus reports the scheduler state and the last run's summary
func GetExportStatus(services ExportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := services.SyncService.GetStatus()
		status["last_result"] = services.Exporter.LastResult()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Error encoding export status")
		}
	}
}

// RunExport triggers an export run. With ?date=YYYY-MM-DD the given day is
// exported synchronously; without it, a manual run for yesterday is started
// in the background through the scheduler.
func RunExport(services ExportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateStr := r.URL.Query().Get("date")

		if dateStr == "" {
			services.SyncService.TriggerManualSync(r.Context())
			w.WriteHeader(http.StatusAccepted)
			return
		}

		day, err := utils.ParseDate(dateStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
			return
		}

		result, err := services.Exporter.Export(r.Context(), *day)
		if err != nil {
			logrus.WithError(err).WithField("date", dateStr).Error("Export run failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.WithError(err).Error("Error encoding export result")
		}
	}
}
