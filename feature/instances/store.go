package instances

import (
	"context"
	"errors"
	"fmt"

	"status-notifier/core/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no instance has the requested key.
var ErrNotFound = errors.New("instance not found")

// Store persists instances with GORM. It implements reconcile.InstanceStore.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new instance store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindAll returns every stored instance in insertion order.
func (s *Store) FindAll(ctx context.Context) ([]models.Instance, error) {
	var out []models.Instance
	if err := s.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to load instances: %w", err)
	}
	return out, nil
}

// FindByKey returns the oldest instance stored under key.
func (s *Store) FindByKey(ctx context.Context, key string) (*models.Instance, error) {
	var inst models.Instance
	err := s.db.WithContext(ctx).Where("instance_key = ?", key).Order("id").First(&inst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load instance %s: %w", key, err)
	}
	return &inst, nil
}

// Save inserts inst when its ID is zero and replaces the stored row otherwise.
func (s *Store) Save(ctx context.Context, inst *models.Instance) error {
	if err := s.db.WithContext(ctx).Save(inst).Error; err != nil {
		return fmt.Errorf("failed to save instance %s: %w", inst.Key, err)
	}
	return nil
}
