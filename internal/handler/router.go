package handler

import (
	"confbook/internal/coordinator"
	"confbook/internal/query"
	"confbook/internal/registration"
	"confbook/internal/validator"
	"confbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	registration *registration.Service
	coordinator  *coordinator.Coordinator
	queries      *query.Service
	validator    *validator.RequestValidator
	log          *logger.Logger
}

func NewHandler(
	reg *registration.Service,
	coord *coordinator.Coordinator,
	queries *query.Service,
	v *validator.RequestValidator,
	log *logger.Logger,
) *Handler {
	return &Handler{
		registration: reg,
		coordinator:  coord,
		queries:      queries,
		validator:    v,
		log:          log,
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/conferences", h.CreateConference)
	router.GET("/api/v1/conferences/search", h.Search)

	router.POST("/api/v1/users", h.CreateUser)
	router.GET("/api/v1/users/:id/suggestions", h.Suggest)

	router.POST("/api/v1/bookings", h.Book)
	router.GET("/api/v1/bookings/:id", h.Status)
	router.POST("/api/v1/bookings/:id/cancel", h.Cancel)
	router.POST("/api/v1/bookings/:id/confirm", h.Confirm)
}
