package run_reconciliation

import (
	"net/http"

	"github.com/m04kA/SPA-BedService/internal/api/handlers"
)

type Handler struct {
	useCase ReconcileStatusesUseCase
	logger  Logger
}

func NewHandler(useCase ReconcileStatusesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reconciliation/run
// Ручной запуск прохода сверки, тот же код, что и у планировщика
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /reconciliation/run - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reconciliation/run - Done: completed=%d, started=%d, cancelled=%d",
		result.Completed, result.Started, result.Cancelled)
	handlers.RespondJSON(w, http.StatusOK, result)
}
