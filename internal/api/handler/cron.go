package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/margin-insights-api/internal/scheduler"
)

// InsightSyncTrigger é o agendador que pode ser disparado manualmente
type InsightSyncTrigger interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

var _ InsightSyncTrigger = (*scheduler.InsightSnapshotSyncService)(nil)

// RunInsightSync dispara a avaliação de insights de todos os negócios
func RunInsightSync(service InsightSyncTrigger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunInsightSync")

		service.TriggerManualSync()

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Avaliação de insights iniciada com sucesso",
		})
	})
}

func GetCronStatus(service InsightSyncTrigger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"insights": service.GetStatus(),
		})
	})
}
