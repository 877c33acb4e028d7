package automobile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ferdiebergado/autokit/internal/config"
	"github.com/ferdiebergado/autokit/internal/platform/broker"
)

// Store is the data-access interface for automobile records, one method
// per query shape.
type Store interface {
	Create(ctx context.Context, params CreateParams) (Automobile, error)
	ListActive(ctx context.Context) ([]Automobile, error)
	Find(ctx context.Context, id uuid.UUID) (Automobile, error)
	FindByName(ctx context.Context, name string) ([]Automobile, error)
	FindByColor(ctx context.Context, color string) ([]Automobile, error)
	FindByNameAndColor(ctx context.Context, name, color string) ([]Automobile, error)
	FindByColorPrefix(ctx context.Context, prefix string, page, size int) ([]Automobile, error)
	UpdateFields(ctx context.Context, id uuid.UUID, name, color string, originalColor bool) (Automobile, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

// service orchestrates the store, the mapper and the publisher.
type service struct {
	store     Store
	publisher broker.Publisher
	cfg       *config.Broker
}

var _ Service = &service{}

func NewService(store Store, publisher broker.Publisher, cfg *config.Broker) *service {
	return &service{
		store:     store,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create persists a new record and publishes it to the single-item
// topic. A publish failure surfaces as an error even though the record
// was already persisted; there is no compensating rollback.
func (s *service) Create(ctx context.Context, req Request) (uuid.UUID, error) {
	saved, err := s.store.Create(ctx, newCreateParams(req))
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("Automobile created.", "id", saved.ID)

	if err := s.publisher.Publish(ctx, s.cfg.Topic, saved.ID.String(), toResponse(saved)); err != nil {
		return uuid.Nil, err
	}

	return saved.ID, nil
}

func (s *service) ListActive(ctx context.Context) ([]Response, error) {
	automobiles, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(automobiles), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Response, error) {
	a, err := s.store.Find(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return toResponse(a), nil
}

func (s *service) FindByName(ctx context.Context, name string) ([]Response, error) {
	automobiles, err := s.store.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toResponses(automobiles), nil
}

// FindByColor publishes the whole result set to the list topic before
// returning it. The same publish-failure semantics as Create apply.
func (s *service) FindByColor(ctx context.Context, color string) ([]Response, error) {
	automobiles, err := s.store.FindByColor(ctx, color)
	if err != nil {
		return nil, err
	}

	responses := toResponses(automobiles)
	if err := s.publisher.Publish(ctx, s.cfg.ListTopic, color, responses); err != nil {
		return nil, err
	}

	return responses, nil
}

func (s *service) FindByNameAndColor(ctx context.Context, name, color string) ([]Response, error) {
	automobiles, err := s.store.FindByNameAndColor(ctx, name, color)
	if err != nil {
		return nil, err
	}
	return toResponses(automobiles), nil
}

func (s *service) FindByColorPrefix(ctx context.Context, prefix string, page, size int) ([]Response, error) {
	automobiles, err := s.store.FindByColorPrefix(ctx, prefix, page, size)
	if err != nil {
		return nil, err
	}
	return toResponses(automobiles), nil
}

// Update rewrites name and color and recomputes the original-color
// flag. The flag only ever transitions from true to false: it flips
// when a non-empty incoming color differs from the stored one, or when
// the caller explicitly marks the color as not original.
func (s *service) Update(ctx context.Context, id uuid.UUID, req Request) (Response, error) {
	current, err := s.store.Find(ctx, id)
	if err != nil {
		return Response{}, err
	}

	originalColor := current.OriginalColor
	if req.Color != "" && req.Color != current.Color {
		originalColor = false
	}
	if req.OriginalColor != nil && !*req.OriginalColor {
		originalColor = false
	}

	updated, err := s.store.UpdateFields(ctx, id, req.Name, req.Color, originalColor)
	if err != nil {
		return Response{}, err
	}

	slog.Info("Automobile updated.", "id", updated.ID)
	return toResponse(updated), nil
}

// SoftDelete reports success regardless of whether the id existed.
func (s *service) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.SoftDelete(ctx, id); err != nil {
		return err
	}
	slog.Info("Automobile removed.", "id", id)
	return nil
}

func (s *service) DeleteAll(ctx context.Context) error {
	if err := s.store.DeleteAll(ctx); err != nil {
		return err
	}
	slog.Info("All automobiles removed.")
	return nil
}
