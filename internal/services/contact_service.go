package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Isaiahshap/pulse/internal/models"
)

type ContactStore interface {
	Save(ctx context.Context, message *models.ContactMessage) error
	Get(ctx context.Context, id string) (*models.ContactMessage, error)
	List(ctx context.Context, offset, limit int) ([]models.ContactMessage, int, error)
}

type ContactPublisher interface {
	PublishContact(message models.ContactMessage)
}

type ContactInput struct {
	Name    string `json:"name" form:"name" validate:"required,max=120"`
	Email   string `json:"email" form:"email" validate:"required,email,max=254"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=32"`
	Subject string `json:"subject" form:"subject" validate:"required,oneof=general membership training classes"`
	Message string `json:"message" form:"message" validate:"required,max=5000"`
}

// ContactValidationError maps each rejected field to the rule it broke.
type ContactValidationError struct {
	Fields map[string]string
}

func (e *ContactValidationError) Error() string {
	return fmt.Sprintf("invalid contact submission: %d field(s)", len(e.Fields))
}

func (e *ContactValidationError) Unwrap() error { return ErrInvalidContact }

type ContactService struct {
	store     ContactStore
	publisher ContactPublisher
	validate  *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// NewContactService accepts a nil store (submissions are only surfaced) and a
// nil publisher (nobody is listening).
func NewContactService(store ContactStore, publisher ContactPublisher, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{
		store:     store,
		publisher: publisher,
		validate:  newValidator(),
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.NewString() },
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*models.ContactMessage, error) {
	input = normalizeContactInput(input)
	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := make(map[string]string, len(fieldErrs))
			for _, fieldErr := range fieldErrs {
				fields[fieldErr.Field()] = fieldErr.Tag()
			}
			return nil, &ContactValidationError{Fields: fields}
		}
		return nil, fmt.Errorf("validate contact: %w", err)
	}

	message := &models.ContactMessage{
		ID:         s.newID(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Subject:    models.ContactSubject(input.Subject),
		Message:    input.Message,
		ReceivedAt: s.now(),
	}

	s.logger.Info("contact form submitted",
		zap.String("id", message.ID),
		zap.String("name", message.Name),
		zap.String("email", message.Email),
		zap.String("phone", message.Phone),
		zap.String("subject", string(message.Subject)),
		zap.Int("message_length", len(message.Message)),
	)

	if s.store != nil {
		if err := s.store.Save(ctx, message); err != nil {
			s.logger.Error("store contact message", zap.String("id", message.ID), zap.Error(err))
			return nil, fmt.Errorf("save contact message: %w", err)
		}
	}
	if s.publisher != nil {
		s.publisher.PublishContact(*message)
	}

	return message, nil
}

// List pages through stored submissions, newest first. Without a store the
// inbox is always empty.
func (s *ContactService) List(ctx context.Context, page, limit int) ([]models.ContactMessage, int, error) {
	if s.store == nil {
		return []models.ContactMessage{}, 0, nil
	}
	return s.store.List(ctx, (page-1)*limit, limit)
}

// Get returns one stored submission; ErrMessageNotFound from the store passes
// through unchanged.
func (s *ContactService) Get(ctx context.Context, id string) (*models.ContactMessage, error) {
	if s.store == nil {
		return nil, ErrMessageNotFound
	}
	return s.store.Get(ctx, id)
}

func normalizeContactInput(input ContactInput) ContactInput {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Subject = strings.ToLower(strings.TrimSpace(input.Subject))
	input.Message = strings.TrimSpace(input.Message)
	if input.Subject == "" {
		input.Subject = string(models.SubjectGeneral)
	}
	return input
}
