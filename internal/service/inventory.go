package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tuanvumaihuynh/inventory-service/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-service/internal/event"
	"github.com/tuanvumaihuynh/inventory-service/internal/model"
	"github.com/tuanvumaihuynh/inventory-service/internal/repository"
	"github.com/tuanvumaihuynh/inventory-service/pkg/ptr"
	"github.com/tuanvumaihuynh/inventory-service/pkg/validator"
)

type CreateInventoryParams struct {
	Name        string   `json:"name" validate:"required,notblank,max=255"`
	Description string   `json:"description" validate:"max=1024"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}

type UpdateInventoryParams struct {
	ID          string   `json:"inventoryId" validate:"required"`
	Name        string   `json:"name" validate:"required,notblank,max=255"`
	Description string   `json:"description" validate:"max=1024"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}

// InventoryService exposes CRUD over inventory records. Every failure is one of
// apperr.ValidationErr, apperr.InventoryNotFoundErr or apperr.StoreErr.
type InventoryService interface {
	CreateInventory(ctx context.Context, params CreateInventoryParams) (model.Inventory, error)
	UpdateInventory(ctx context.Context, params UpdateInventoryParams) (model.Inventory, error)
	DeleteInventory(ctx context.Context, id string) error
	ListInventory(ctx context.Context) ([]model.Inventory, error)
	GetInventory(ctx context.Context, id string) (model.Inventory, error)
}

// DefaultPublishTimeout bounds how long a mutation waits for its change event.
const DefaultPublishTimeout = 5 * time.Second

type inventoryService struct {
	logger         *slog.Logger
	validator      validator.Validator
	inventoryRepo  repository.InventoryRepository
	publisher      event.Publisher
	publishTimeout time.Duration
}

type Option func(*inventoryService)

// WithPublishTimeout overrides DefaultPublishTimeout. Non-positive values are ignored.
func WithPublishTimeout(d time.Duration) Option {
	return func(s *inventoryService) {
		if d > 0 {
			s.publishTimeout = d
		}
	}
}

func NewInventoryService(
	logger *slog.Logger,
	validator validator.Validator,
	inventoryRepo repository.InventoryRepository,
	publisher event.Publisher,
	opts ...Option,
) InventoryService {
	s := &inventoryService{
		logger:         logger.With(slog.String("service", "inventory")),
		validator:      validator,
		inventoryRepo:  inventoryRepo,
		publisher:      publisher,
		publishTimeout: DefaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *inventoryService) CreateInventory(ctx context.Context, params CreateInventoryParams) (model.Inventory, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Inventory{}, apperr.ValidationErr.WrapParent(err)
	}

	inv := model.Inventory{
		Name:        params.Name,
		Description: params.Description,
		Quantity:    ptr.Deref(params.Quantity),
		Price:       ptr.Deref(params.Price),
	}

	id, err := s.inventoryRepo.Insert(ctx, inv)
	if err != nil {
		return model.Inventory{}, apperr.StoreErr.WrapParent(fmt.Errorf("inventory repository insert: %w", err))
	}
	inv.ID = id

	s.publish(ctx, event.ChangeTypeCreated, id, &inv)

	return inv, nil
}

func (s *inventoryService) UpdateInventory(ctx context.Context, params UpdateInventoryParams) (model.Inventory, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Inventory{}, apperr.ValidationErr.WrapParent(err)
	}

	inv := model.Inventory{
		ID:          params.ID,
		Name:        params.Name,
		Description: params.Description,
		Quantity:    ptr.Deref(params.Quantity),
		Price:       ptr.Deref(params.Price),
	}

	found, err := s.inventoryRepo.Replace(ctx, params.ID, inv)
	if err != nil {
		return model.Inventory{}, apperr.StoreErr.WrapParent(fmt.Errorf("inventory repository replace: %w", err))
	}
	if !found {
		return model.Inventory{}, apperr.InventoryNotFoundErr
	}

	s.publish(ctx, event.ChangeTypeUpdated, inv.ID, &inv)

	return inv, nil
}

func (s *inventoryService) DeleteInventory(ctx context.Context, id string) error {
	if id == "" {
		return apperr.ValidationErr.WrapParent(fmt.Errorf("inventory id is required"))
	}

	found, err := s.inventoryRepo.Delete(ctx, id)
	if err != nil {
		return apperr.StoreErr.WrapParent(fmt.Errorf("inventory repository delete: %w", err))
	}
	if !found {
		return apperr.InventoryNotFoundErr
	}

	s.publish(ctx, event.ChangeTypeDeleted, id, nil)

	return nil
}

func (s *inventoryService) ListInventory(ctx context.Context) ([]model.Inventory, error) {
	items, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, apperr.StoreErr.WrapParent(fmt.Errorf("inventory repository list: %w", err))
	}

	if items == nil {
		items = []model.Inventory{}
	}

	return items, nil
}

func (s *inventoryService) GetInventory(ctx context.Context, id string) (model.Inventory, error) {
	inv, found, err := s.inventoryRepo.Get(ctx, id)
	if err != nil {
		return model.Inventory{}, apperr.StoreErr.WrapParent(fmt.Errorf("inventory repository get: %w", err))
	}
	if !found {
		return model.Inventory{}, apperr.InventoryNotFoundErr
	}

	return inv, nil
}

// publish runs after the mutation is durable, so a failure is logged rather than returned.
// The event outlives a cancelled request but never waits longer than publishTimeout.
func (s *inventoryService) publish(ctx context.Context, typ event.ChangeType, id string, inv *model.Inventory) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	ev := event.InventoryChangedEvent{
		Type:        typ,
		InventoryID: id,
		Inventory:   inv,
		OccurredAt:  time.Now(),
	}

	if err := s.publisher.PublishInventoryChanged(ctx, ev); err != nil {
		s.logger.ErrorContext(ctx, "error publishing inventory changed event",
			slog.String("type", string(typ)),
			slog.String("inventory_id", id),
			slog.Any("error", err),
		)
	}
}
