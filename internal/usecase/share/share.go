package share

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/its-jojoo/sharebutton/internal/adapter/storage"
	"github.com/its-jojoo/sharebutton/internal/core"
)

//go:generate mockgen -destination=mock_store_test.go -package=share github.com/its-jojoo/sharebutton/internal/adapter/storage Store

// Service receives shares and hands them to the store.
type Service struct {
	store storage.Store
	log   logrus.FieldLogger
}

func New(store storage.Store, log logrus.FieldLogger) *Service {
	return &Service{store: store, log: log}
}

// Submit validates req and appends it. A missing or empty content yields a
// *core.ValidationError; store failures are wrapped.
func (s *Service) Submit(ctx context.Context, req core.ShareRequest) (core.SharedItem, error) {
	if err := req.Validate(); err != nil {
		return core.SharedItem{}, err
	}

	item, err := s.store.Append(ctx, req.Item())
	if err != nil {
		return core.SharedItem{}, errors.Wrap(err, "append share")
	}

	s.log.WithFields(itemFields(item)).Info("Received share")
	return item, nil
}

// List returns every share in insertion order.
func (s *Service) List(ctx context.Context) ([]core.SharedItem, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list shares")
	}
	return items, nil
}

func itemFields(it core.SharedItem) logrus.Fields {
	f := logrus.Fields{
		"id":         it.ID,
		"content":    it.Content,
		"receivedAt": it.ReceivedAt,
	}
	if len(it.Type) > 0 {
		f["type"] = it.TypeLabel()
	}
	if len(it.Timestamp) > 0 {
		f["timestamp"] = string(it.Timestamp)
	}
	return f
}
