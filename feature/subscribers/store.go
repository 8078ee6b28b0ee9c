package subscribers

import (
	"context"
	"errors"
	"fmt"

	"status-notifier/core/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no subscriber has the requested email.
var ErrNotFound = errors.New("subscriber not found")

// Store persists subscribers and their server keys. It implements
// reconcile.SubscriberStore.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new subscriber store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) withServers(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Servers", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id")
}

// FindAll returns every subscriber with its server keys.
func (s *Store) FindAll(ctx context.Context) ([]models.Subscriber, error) {
	var out []models.Subscriber
	if err := s.withServers(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to load subscribers: %w", err)
	}
	return out, nil
}

// FindByServers returns the subscribers watching key.
func (s *Store) FindByServers(ctx context.Context, key string) ([]models.Subscriber, error) {
	watchers := s.db.Model(&models.SubscriberServer{}).Select("subscriber_id").Where("server_key = ?", key)

	var out []models.Subscriber
	if err := s.withServers(ctx).Where("id IN (?)", watchers).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to load subscribers of %s: %w", key, err)
	}
	return out, nil
}

// FindByEmail returns the oldest subscriber registered with email.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	err := s.withServers(ctx).Where("email = ?", email).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriber %s: %w", email, err)
	}
	return &sub, nil
}

// Save inserts sub when its ID is zero and replaces it otherwise. The stored
// server keys are replaced by sub.Servers in one transaction.
func (s *Store) Save(ctx context.Context, sub *models.Subscriber) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(sub).Error; err != nil {
			return err
		}
		if err := tx.Where("subscriber_id = ?", sub.ID).Delete(&models.SubscriberServer{}).Error; err != nil {
			return err
		}
		if len(sub.Servers) == 0 {
			return nil
		}
		for i := range sub.Servers {
			sub.Servers[i].ID = 0
			sub.Servers[i].SubscriberID = sub.ID
		}
		return tx.Create(&sub.Servers).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save subscriber %s: %w", sub.Email, err)
	}
	return nil
}
