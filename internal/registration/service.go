// Package registration handles conference and user setup. Registration is a
// boundary operation: after it succeeds, conferences are mutated only by the
// coordinator and users not at all.
package registration

import (
	"context"
	"errors"
	"strings"

	"confbook/internal/inventory"
	"confbook/internal/validator"
	apperrors "confbook/pkg/errors"
	"confbook/pkg/logger"
	"confbook/pkg/model"
)

type Service struct {
	store     *inventory.Store
	validator *validator.RequestValidator
	log       *logger.Logger
}

func NewService(store *inventory.Store, v *validator.RequestValidator, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		validator: v,
		log:       log,
	}
}

// CreateConference registers a new conference with all seats free.
func (s *Service) CreateConference(ctx context.Context, req *model.CreateConferenceRequest) (*model.Conference, error) {
	if err := s.validator.ValidateConference(req); err != nil {
		s.log.Warn("conference validation failed", "name", req.Name, "error", err)
		return nil, apperrors.Validation("Invalid conference", map[string]any{"error": err.Error()})
	}
	if req.Capacity < 1 {
		return nil, apperrors.InvalidCapacity("available slots must be greater than 0")
	}
	if !req.StartTime.Before(req.EndTime) {
		return nil, apperrors.InvalidWindow("start time must be before end time")
	}

	conf := &model.Conference{
		Name:           req.Name,
		Location:       req.Location,
		Topics:         trimTopics(req.Topics),
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Capacity:       req.Capacity,
		AvailableSlots: req.Capacity,
	}
	if err := s.store.AddConference(conf); err != nil {
		if errors.Is(err, inventory.ErrDuplicateConference) {
			return nil, apperrors.DuplicateName(req.Name)
		}
		return nil, apperrors.Internal("Failed to register conference", err)
	}

	s.log.Info("conference registered",
		"name", conf.Name,
		"location", conf.Location,
		"capacity", conf.Capacity,
		"start_time", conf.StartTime,
		"end_time", conf.EndTime,
	)
	return conf, nil
}

// CreateUser registers a new attendee.
func (s *Service) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if err := s.validator.ValidateUser(req); err != nil {
		s.log.Warn("user validation failed", "user_id", req.UserID, "error", err)
		return nil, apperrors.Validation("Invalid user", map[string]any{"error": err.Error()})
	}

	user := &model.User{
		ID:               req.UserID,
		InterestedTopics: trimTopics(req.InterestedTopics),
	}
	if err := s.store.AddUser(user); err != nil {
		if errors.Is(err, inventory.ErrDuplicateUser) {
			return nil, apperrors.DuplicateUser(req.UserID)
		}
		return nil, apperrors.Internal("Failed to register user", err)
	}

	s.log.Info("user registered", "user_id", user.ID, "topics", len(user.InterestedTopics))
	return user, nil
}

func trimTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, topic := range topics {
		if topic = strings.TrimSpace(topic); topic != "" {
			out = append(out, topic)
		}
	}
	return out
}
