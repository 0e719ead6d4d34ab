package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tuanvumaihuynh/inventory-service/internal/model"
	"github.com/tuanvumaihuynh/inventory-service/internal/repository"
)

var _ repository.InventoryRepository = (*MockInventoryRepository)(nil)

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Insert(ctx context.Context, inv model.Inventory) (string, error) {
	args := m.Called(ctx, inv)
	return args.String(0), args.Error(1)
}

func (m *MockInventoryRepository) Replace(ctx context.Context, id string, inv model.Inventory) (bool, error) {
	args := m.Called(ctx, id, inv)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryRepository) List(ctx context.Context) ([]model.Inventory, error) {
	args := m.Called(ctx)
	if items := args.Get(0); items != nil {
		return items.([]model.Inventory), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryRepository) Get(ctx context.Context, id string) (model.Inventory, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Inventory), args.Bool(1), args.Error(2)
}
