package automobile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type StubService struct {
	CreateFunc             func(ctx context.Context, req Request) (uuid.UUID, error)
	ListActiveFunc         func(ctx context.Context) ([]Response, error)
	GetFunc                func(ctx context.Context, id uuid.UUID) (Response, error)
	FindByNameFunc         func(ctx context.Context, name string) ([]Response, error)
	FindByColorFunc        func(ctx context.Context, color string) ([]Response, error)
	FindByNameAndColorFunc func(ctx context.Context, name, color string) ([]Response, error)
	FindByColorPrefixFunc  func(ctx context.Context, prefix string, page, size int) ([]Response, error)
	UpdateFunc             func(ctx context.Context, id uuid.UUID, req Request) (Response, error)
	SoftDeleteFunc         func(ctx context.Context, id uuid.UUID) error
	DeleteAllFunc          func(ctx context.Context) error
}

var _ Service = &StubService{}

func (s *StubService) Create(ctx context.Context, req Request) (uuid.UUID, error) {
	if s.CreateFunc == nil {
		return uuid.Nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, req)
}

func (s *StubService) ListActive(ctx context.Context) ([]Response, error) {
	if s.ListActiveFunc == nil {
		return nil, errors.New("ListActive() not implemented by stub")
	}
	return s.ListActiveFunc(ctx)
}

func (s *StubService) Get(ctx context.Context, id uuid.UUID) (Response, error) {
	if s.GetFunc == nil {
		return Response{}, errors.New("Get() not implemented by stub")
	}
	return s.GetFunc(ctx, id)
}

func (s *StubService) FindByName(ctx context.Context, name string) ([]Response, error) {
	if s.FindByNameFunc == nil {
		return nil, errors.New("FindByName() not implemented by stub")
	}
	return s.FindByNameFunc(ctx, name)
}

func (s *StubService) FindByColor(ctx context.Context, color string) ([]Response, error) {
	if s.FindByColorFunc == nil {
		return nil, errors.New("FindByColor() not implemented by stub")
	}
	return s.FindByColorFunc(ctx, color)
}

func (s *StubService) FindByNameAndColor(ctx context.Context, name, color string) ([]Response, error) {
	if s.FindByNameAndColorFunc == nil {
		return nil, errors.New("FindByNameAndColor() not implemented by stub")
	}
	return s.FindByNameAndColorFunc(ctx, name, color)
}

func (s *StubService) FindByColorPrefix(ctx context.Context, prefix string, page, size int) ([]Response, error) {
	if s.FindByColorPrefixFunc == nil {
		return nil, errors.New("FindByColorPrefix() not implemented by stub")
	}
	return s.FindByColorPrefixFunc(ctx, prefix, page, size)
}

func (s *StubService) Update(ctx context.Context, id uuid.UUID, req Request) (Response, error) {
	if s.UpdateFunc == nil {
		return Response{}, errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, id, req)
}

func (s *StubService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if s.SoftDeleteFunc == nil {
		return errors.New("SoftDelete() not implemented by stub")
	}
	return s.SoftDeleteFunc(ctx, id)
}

func (s *StubService) DeleteAll(ctx context.Context) error {
	if s.DeleteAllFunc == nil {
		return errors.New("DeleteAll() not implemented by stub")
	}
	return s.DeleteAllFunc(ctx)
}

// memoryStore is an in-memory Store used by the service tests. Records
// keep insertion order.
type memoryStore struct {
	records []Automobile
	err     error
}

var _ Store = &memoryStore{}

func (m *memoryStore) Create(_ context.Context, params CreateParams) (Automobile, error) {
	if m.err != nil {
		return Automobile{}, m.err
	}
	a := Automobile{
		ID:            uuid.New(),
		Name:          params.Name,
		Color:         params.Color,
		OriginalColor: params.OriginalColor,
	}
	m.records = append(m.records, a)
	return a, nil
}

func (m *memoryStore) ListActive(_ context.Context) ([]Automobile, error) {
	if m.err != nil {
		return nil, m.err
	}
	var active []Automobile
	for _, a := range m.records {
		if !a.Deleted {
			active = append(active, a)
		}
	}
	return active, nil
}

func (m *memoryStore) Find(_ context.Context, id uuid.UUID) (Automobile, error) {
	if m.err != nil {
		return Automobile{}, m.err
	}
	for _, a := range m.records {
		if a.ID == id {
			return a, nil
		}
	}
	return Automobile{}, ErrNotFound
}

func (m *memoryStore) FindByName(_ context.Context, name string) ([]Automobile, error) {
	return m.filter(func(a Automobile) bool { return a.Name == name })
}

func (m *memoryStore) FindByColor(_ context.Context, color string) ([]Automobile, error) {
	return m.filter(func(a Automobile) bool { return a.Color == color })
}

func (m *memoryStore) FindByNameAndColor(_ context.Context, name, color string) ([]Automobile, error) {
	return m.filter(func(a Automobile) bool { return a.Name == name && a.Color == color })
}

func (m *memoryStore) FindByColorPrefix(_ context.Context, prefix string, page, size int) ([]Automobile, error) {
	matches, err := m.filter(func(a Automobile) bool {
		return len(a.Color) >= len(prefix) && a.Color[:len(prefix)] == prefix
	})
	if err != nil {
		return nil, err
	}

	start := page * size
	if start >= len(matches) {
		return nil, nil
	}
	end := start + size
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end], nil
}

func (m *memoryStore) UpdateFields(_ context.Context, id uuid.UUID, name, color string, originalColor bool) (Automobile, error) {
	if m.err != nil {
		return Automobile{}, m.err
	}
	for i, a := range m.records {
		if a.ID == id {
			m.records[i].Name = name
			m.records[i].Color = color
			m.records[i].OriginalColor = originalColor
			return m.records[i], nil
		}
	}
	return Automobile{}, ErrNotFound
}

func (m *memoryStore) SoftDelete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, a := range m.records {
		if a.ID == id {
			m.records[i].Deleted = true
		}
	}
	return nil
}

func (m *memoryStore) DeleteAll(_ context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.records = nil
	return nil
}

func (m *memoryStore) filter(keep func(Automobile) bool) ([]Automobile, error) {
	if m.err != nil {
		return nil, m.err
	}
	var matches []Automobile
	for _, a := range m.records {
		if keep(a) {
			matches = append(matches, a)
		}
	}
	return matches, nil
}
