package handler

import (
	"net/http"

	httputil "confbook/pkg/http"
	"confbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type HealthHandler struct {
	log *logger.Logger
}

func NewHealthHandler(log *logger.Logger) *HealthHandler {
	return &HealthHandler{log: log}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Health)
}

// Health reports liveness. State is in-process memory, so alive means ready.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
