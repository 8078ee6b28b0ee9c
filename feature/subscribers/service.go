package subscribers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"status-notifier/core/models"

	"go.uber.org/zap"
)

// ErrInvalidSubscriber is wrapped by every validation failure of Upsert.
var ErrInvalidSubscriber = errors.New("invalid subscriber")

// Input is an incoming subscriber registration.
type Input struct {
	Firstname string   `json:"firstname" yaml:"firstname"`
	Lastname  string   `json:"lastname" yaml:"lastname"`
	Email     string   `json:"email" yaml:"email"`
	Servers   []string `json:"servers" yaml:"servers"`
}

// Service handles subscriber registration.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new subscriber service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// List returns every subscriber, or only those watching server when it is
// non-empty.
func (s *Service) List(ctx context.Context, server string) ([]models.Subscriber, error) {
	if server = strings.TrimSpace(server); server != "" {
		return s.store.FindByServers(ctx, server)
	}
	return s.store.FindAll(ctx)
}

// Upsert registers a subscriber. A subscriber already registered with the
// same email is replaced, keeping its ID. It reports whether a new
// subscriber was created.
func (s *Service) Upsert(ctx context.Context, in Input) (*models.Subscriber, bool, error) {
	sub := models.Subscriber{
		Firstname: strings.TrimSpace(in.Firstname),
		Lastname:  strings.TrimSpace(in.Lastname),
		Email:     strings.TrimSpace(in.Email),
	}
	sub.SetKeys(in.Servers)

	if err := validate(sub); err != nil {
		return nil, false, err
	}

	existing, err := s.store.FindByEmail(ctx, sub.Email)
	switch {
	case err == nil:
		sub.ID = existing.ID
	case !errors.Is(err, ErrNotFound):
		return nil, false, err
	}
	created := sub.ID == 0

	if err := s.store.Save(ctx, &sub); err != nil {
		return nil, false, err
	}

	s.logger.Info("Subscriber saved",
		zap.Uint("id", sub.ID),
		zap.String("email", sub.Email),
		zap.Strings("servers", sub.Keys()),
		zap.Bool("created", created),
	)
	return &sub, created, nil
}

func validate(sub models.Subscriber) error {
	switch {
	case sub.Firstname == "" && sub.Lastname == "":
		return fmt.Errorf("%w: firstname or lastname is required", ErrInvalidSubscriber)
	case sub.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidSubscriber)
	case len(sub.Servers) == 0:
		return fmt.Errorf("%w: at least one server is required", ErrInvalidSubscriber)
	}
	return nil
}
