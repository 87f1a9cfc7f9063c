package registration

import (
	"context"
	"testing"
	"time"

	"confbook/internal/inventory"
	"confbook/internal/validator"
	apperrors "confbook/pkg/errors"
	"confbook/pkg/logger"
	"confbook/pkg/model"
)

func newService() (*Service, *inventory.Store) {
	store := inventory.NewStore()
	v := validator.NewRequestValidator(logger.Discard())
	return NewService(store, v, logger.Discard()), store
}

func conferenceRequest() *model.CreateConferenceRequest {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	return &model.CreateConferenceRequest{
		Name:      "GopherCon 2026",
		Location:  "Berlin",
		Topics:    []string{" go ", "cloud", ""},
		StartTime: start,
		EndTime:   start.Add(8 * time.Hour),
		Capacity:  100,
	}
}

func TestCreateConference(t *testing.T) {
	svc, store := newService()

	conf, err := svc.CreateConference(context.Background(), conferenceRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if conf.AvailableSlots != 100 {
		t.Errorf("expected all seats free, got %d", conf.AvailableSlots)
	}
	if len(conf.Topics) != 2 || conf.Topics[0] != "go" {
		t.Errorf("expected trimmed topics [go cloud], got %v", conf.Topics)
	}

	stored, err := store.ConferenceSnapshot("GopherCon 2026")
	if err != nil {
		t.Fatalf("expected conference persisted: %v", err)
	}
	if len(stored.Waitlist) != 0 {
		t.Error("expected empty waitlist on registration")
	}
}

func TestCreateConference_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CreateConferenceRequest)
		code   string
	}{
		{"invalid name characters", func(r *model.CreateConferenceRequest) { r.Name = "Gopher@Con" }, apperrors.CodeValidation},
		{"negative capacity", func(r *model.CreateConferenceRequest) { r.Capacity = -3 }, apperrors.CodeInvalidCapacity},
		{"start equals end", func(r *model.CreateConferenceRequest) { r.EndTime = r.StartTime }, apperrors.CodeInvalidWindow},
		{"start after end", func(r *model.CreateConferenceRequest) {
			r.StartTime, r.EndTime = r.EndTime, r.StartTime
		}, apperrors.CodeInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService()
			req := conferenceRequest()
			tt.mutate(req)
			_, err := svc.CreateConference(context.Background(), req)
			if !apperrors.IsCode(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestCreateConference_DuplicateName(t *testing.T) {
	svc, _ := newService()

	if _, err := svc.CreateConference(context.Background(), conferenceRequest()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateConference(context.Background(), conferenceRequest())
	if !apperrors.IsCode(err, apperrors.CodeDuplicateName) {
		t.Fatalf("expected DUPLICATE_NAME, got %v", err)
	}
}

func TestCreateUser(t *testing.T) {
	svc, store := newService()

	user, err := svc.CreateUser(context.Background(), &model.CreateUserRequest{
		UserID:           "alice",
		InterestedTopics: []string{"go", " rust "},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(user.InterestedTopics) != 2 || user.InterestedTopics[1] != "rust" {
		t.Errorf("expected trimmed topics, got %v", user.InterestedTopics)
	}

	if _, err := store.User("alice"); err != nil {
		t.Fatalf("expected user persisted: %v", err)
	}
}

func TestCreateUser_Duplicate(t *testing.T) {
	svc, _ := newService()
	req := &model.CreateUserRequest{UserID: "alice", InterestedTopics: []string{"go"}}

	if _, err := svc.CreateUser(context.Background(), req); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateUser(context.Background(), req)
	if !apperrors.IsCode(err, apperrors.CodeDuplicateUser) {
		t.Fatalf("expected DUPLICATE_USER, got %v", err)
	}
}

func TestCreateUser_InvalidID(t *testing.T) {
	svc, _ := newService()
	_, err := svc.CreateUser(context.Background(), &model.CreateUserRequest{
		UserID:           "alice@corp",
		InterestedTopics: []string{"go"},
	})
	if !apperrors.IsCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}
