package activity

import (
	"context"
	"errors"
	"strings"
	"time"

	"riavet-admin/internal/middleware"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

const systemOperator = "system"

// Service es el journal de actividad. Implementa resource.Recorder.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Record(ctx context.Context, entity, action, entityID string) error {
	entity = strings.TrimSpace(entity)
	action = strings.TrimSpace(action)
	if entity == "" || action == "" {
		return ErrInvalidInput
	}

	op, ok := middleware.GetOperator(ctx)
	if !ok {
		op = systemOperator
	}

	return s.repo.Append(ctx, Entry{
		ID:       uuid.NewString(),
		Entity:   entity,
		Action:   action,
		EntityID: strings.TrimSpace(entityID),
		Operator: op,
		At:       s.now().UTC(),
	})
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return s.repo.Recent(ctx, ClampLimit(limit))
}
