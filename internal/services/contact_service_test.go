package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Isaiahshap/pulse/internal/models"
)

type stubContactStore struct {
	saved   []models.ContactMessage
	saveErr error
	offset  int
	limit   int
}

func (s *stubContactStore) Save(_ context.Context, message *models.ContactMessage) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, *message)
	return nil
}

func (s *stubContactStore) Get(_ context.Context, id string) (*models.ContactMessage, error) {
	for _, message := range s.saved {
		if message.ID == id {
			return &message, nil
		}
	}
	return nil, ErrMessageNotFound
}

func (s *stubContactStore) List(_ context.Context, offset, limit int) ([]models.ContactMessage, int, error) {
	s.offset = offset
	s.limit = limit
	return s.saved, len(s.saved), nil
}

type stubContactPublisher struct {
	published []models.ContactMessage
}

func (s *stubContactPublisher) PublishContact(message models.ContactMessage) {
	s.published = append(s.published, message)
}

func newTestContactService(store ContactStore, publisher ContactPublisher) *ContactService {
	service := NewContactService(store, publisher, nil)
	service.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	service.newID = func() string { return "msg-1" }
	return service
}

func TestSubmitStoresAndPublishes(t *testing.T) {
	store := &stubContactStore{}
	publisher := &stubContactPublisher{}
	service := newTestContactService(store, publisher)

	message, err := service.Submit(context.Background(), ContactInput{
		Name:    "  Jordan Lee ",
		Email:   "Jordan@Example.com",
		Message: "Do you offer trial passes?",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if message.ID != "msg-1" || message.Subject != models.SubjectGeneral {
		t.Fatalf("unexpected message: %+v", message)
	}
	if message.Name != "Jordan Lee" || message.Email != "jordan@example.com" {
		t.Fatalf("expected normalized fields, got %+v", message)
	}
	if len(store.saved) != 1 || len(publisher.published) != 1 {
		t.Fatalf("expected one stored and one published message, got %d/%d", len(store.saved), len(publisher.published))
	}

	stored, err := service.Get(context.Background(), "msg-1")
	if err != nil || stored.Email != "jordan@example.com" {
		t.Fatalf("expected stored message, got %+v (%v)", stored, err)
	}
	if _, err := service.Get(context.Background(), "missing"); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestSubmitWithoutStoreSurfacesMessage(t *testing.T) {
	service := newTestContactService(nil, nil)

	message, err := service.Submit(context.Background(), ContactInput{
		Name:    "Sam",
		Email:   "sam@example.com",
		Subject: "training",
		Message: "Personal training rates?",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if message.Subject != models.SubjectTraining {
		t.Fatalf("expected training subject, got %q", message.Subject)
	}

	messages, total, err := service.List(context.Background(), 1, 10)
	if err != nil || total != 0 || len(messages) != 0 {
		t.Fatalf("expected empty inbox without store, got %d/%d (%v)", len(messages), total, err)
	}
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	service := newTestContactService(&stubContactStore{}, nil)

	_, err := service.Submit(context.Background(), ContactInput{
		Email:   "not-an-email",
		Subject: "billing",
	})
	if !errors.Is(err, ErrInvalidContact) {
		t.Fatalf("expected ErrInvalidContact, got %v", err)
	}

	var validationErr *ContactValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ContactValidationError, got %T", err)
	}
	want := map[string]string{"name": "required", "email": "email", "subject": "oneof", "message": "required"}
	for field, tag := range want {
		if validationErr.Fields[field] != tag {
			t.Fatalf("expected %s=%s, got %+v", field, tag, validationErr.Fields)
		}
	}
}

func TestSubmitPropagatesStoreFailure(t *testing.T) {
	publisher := &stubContactPublisher{}
	service := newTestContactService(&stubContactStore{saveErr: errors.New("disk full")}, publisher)

	_, err := service.Submit(context.Background(), ContactInput{
		Name:    "Sam",
		Email:   "sam@example.com",
		Message: "Hello",
	})
	if err == nil {
		t.Fatalf("expected store error")
	}
	if len(publisher.published) != 0 {
		t.Fatalf("expected nothing published after a failed save")
	}
}

func TestListTranslatesPageToOffset(t *testing.T) {
	store := &stubContactStore{}
	service := newTestContactService(store, nil)

	if _, _, err := service.List(context.Background(), 3, 20); err != nil {
		t.Fatalf("List: %v", err)
	}
	if store.offset != 40 || store.limit != 20 {
		t.Fatalf("expected offset 40 limit 20, got %d/%d", store.offset, store.limit)
	}
}
