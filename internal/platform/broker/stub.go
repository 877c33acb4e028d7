package broker

import (
	"context"
	"errors"
)

type StubPublisher struct {
	PublishFunc func(ctx context.Context, topic, key string, payload any) error
	CloseFunc   func() error
}

var _ Publisher = (*StubPublisher)(nil)

func (s *StubPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	if s.PublishFunc == nil {
		return errors.New("Publish() not implemented by stub")
	}
	return s.PublishFunc(ctx, topic, key, payload)
}

func (s *StubPublisher) Close() error {
	if s.CloseFunc == nil {
		return nil
	}
	return s.CloseFunc()
}
