package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tuanvumaihuynh/inventory-service/internal/event"
)

var _ event.Publisher = (*MockPublisher)(nil)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishInventoryChanged(ctx context.Context, ev event.InventoryChangedEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}
