package validator

import (
	"testing"
	"time"

	"confbook/pkg/logger"
	"confbook/pkg/model"
)

func validConferenceRequest() *model.CreateConferenceRequest {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	return &model.CreateConferenceRequest{
		Name:      "GopherCon 2026",
		Location:  "Berlin",
		Topics:    []string{"go", "cloud"},
		StartTime: start,
		EndTime:   start.Add(8 * time.Hour),
		Capacity:  100,
	}
}

func TestValidateConference(t *testing.T) {
	v := NewRequestValidator(logger.Discard())

	tests := []struct {
		name    string
		mutate  func(*model.CreateConferenceRequest)
		wantErr bool
	}{
		{"valid request", func(r *model.CreateConferenceRequest) {}, false},
		{"missing name", func(r *model.CreateConferenceRequest) { r.Name = "" }, true},
		{"name with punctuation", func(r *model.CreateConferenceRequest) { r.Name = "Gopher-Con!" }, true},
		{"location with punctuation", func(r *model.CreateConferenceRequest) { r.Location = "Berlin/Mitte" }, true},
		{"no topics", func(r *model.CreateConferenceRequest) { r.Topics = nil }, true},
		{"empty topic element", func(r *model.CreateConferenceRequest) { r.Topics = []string{"go", ""} }, true},
		{"missing start", func(r *model.CreateConferenceRequest) { r.StartTime = time.Time{} }, true},
		{"zero capacity", func(r *model.CreateConferenceRequest) { r.Capacity = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validConferenceRequest()
			tt.mutate(req)
			err := v.ValidateConference(req)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
		})
	}
}

func TestValidateUser(t *testing.T) {
	v := NewRequestValidator(logger.Discard())

	if err := v.ValidateUser(&model.CreateUserRequest{UserID: "alice 42", InterestedTopics: []string{"go"}}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	if err := v.ValidateUser(&model.CreateUserRequest{UserID: "alice@corp", InterestedTopics: []string{"go"}}); err == nil {
		t.Error("expected error for non-alphanumeric user id")
	}
	if err := v.ValidateUser(&model.CreateUserRequest{UserID: "alice", InterestedTopics: nil}); err == nil {
		t.Error("expected error for missing topics")
	}
}

func TestValidateBook(t *testing.T) {
	v := NewRequestValidator(logger.Discard())

	if err := v.ValidateBook(&model.BookRequest{ConferenceID: "gophercon", UserID: "alice"}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	if err := v.ValidateBook(&model.BookRequest{UserID: "alice"}); err == nil {
		t.Error("expected error for missing conference id")
	}
}

func TestValidationErrors_Message(t *testing.T) {
	errs := ValidationErrors{
		{Field: "Name", Message: "is required"},
		{Field: "Capacity", Message: "failed required validation"},
	}
	msg := errs.Error()
	if msg == "" {
		t.Fatal("expected non-empty message")
	}
	if want := "validation failed: 2 error(s)"; len(msg) < len(want) || msg[:len(want)] != want {
		t.Errorf("unexpected message prefix: %s", msg)
	}
}
