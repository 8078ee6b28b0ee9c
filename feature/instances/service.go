package instances

import (
	"context"
	"errors"
	"strings"

	"status-notifier/core/models"

	"go.uber.org/zap"
)

// ErrKeyRequired is returned by UpdateStatus for an empty key.
var ErrKeyRequired = errors.New("key is required")

// Service exposes instance operations to the management API.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new instance service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// List returns every stored instance.
func (s *Service) List(ctx context.Context) ([]models.Instance, error) {
	return s.store.FindAll(ctx)
}

// UpdateStatus overwrites the status of the instance stored under key.
// It never creates an instance.
func (s *Service) UpdateStatus(ctx context.Context, key, status string) (*models.Instance, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrKeyRequired
	}

	inst, err := s.store.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	previous := inst.Status
	inst.Status = status
	if err := s.store.Save(ctx, inst); err != nil {
		return nil, err
	}

	s.logger.Info("Instance status overridden",
		zap.String("key", key),
		zap.String("from", previous),
		zap.String("to", status),
	)
	return inst, nil
}
