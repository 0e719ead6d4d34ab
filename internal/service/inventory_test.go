package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-service/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-service/internal/event"
	eventmocks "github.com/tuanvumaihuynh/inventory-service/internal/event/mocks"
	"github.com/tuanvumaihuynh/inventory-service/internal/model"
	"github.com/tuanvumaihuynh/inventory-service/internal/repository/mocks"
	"github.com/tuanvumaihuynh/inventory-service/internal/service"
	"github.com/tuanvumaihuynh/inventory-service/pkg/ptr"
	"github.com/tuanvumaihuynh/inventory-service/pkg/validator"
	"github.com/tuanvumaihuynh/inventory-service/pkg/zerror"
)

type fixture struct {
	svc       service.InventoryService
	repo      *mocks.MockInventoryRepository
	publisher *eventmocks.MockPublisher
	logs      *bytes.Buffer
}

func newFixture(t *testing.T, opts ...service.Option) fixture {
	t.Helper()

	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	repo := new(mocks.MockInventoryRepository)
	publisher := new(eventmocks.MockPublisher)

	return fixture{
		svc:       service.NewInventoryService(slog.New(slog.NewJSONHandler(logs, nil)), v, repo, publisher, opts...),
		repo:      repo,
		publisher: publisher,
		logs:      logs,
	}
}

func changeOf(typ event.ChangeType, id string) any {
	return mock.MatchedBy(func(ev event.InventoryChangedEvent) bool {
		return ev.Type == typ && ev.InventoryID == id && !ev.OccurredAt.IsZero()
	})
}

func TestInventoryService_CreateInventory(t *testing.T) {
	ctx := context.TODO()
	params := service.CreateInventoryParams{Name: "Widget", Quantity: ptr.New(5), Price: ptr.New(9.99)}
	stored := model.Inventory{Name: "Widget", Quantity: 5, Price: 9.99}

	t.Run("Successful creation", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Insert", ctx, stored).Return("id-1", nil).Once()
		f.publisher.On("PublishInventoryChanged", mock.Anything, changeOf(event.ChangeTypeCreated, "id-1")).Return(nil).Once()

		inv, err := f.svc.CreateInventory(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, model.Inventory{ID: "id-1", Name: "Widget", Quantity: 5, Price: 9.99}, inv)
		f.repo.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})

	t.Run("Invalid payload", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateInventory(ctx, service.CreateInventoryParams{Name: "", Quantity: ptr.New(-1)})
		require.Error(t, err)
		assert.True(t, zerror.HasCode(err, apperr.ValidationErrorCode))

		var verrs govalidator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Len(t, verrs, 3)
		f.repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Store unreachable", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Insert", ctx, stored).Return("", errors.New("connection refused")).Once()

		_, err := f.svc.CreateInventory(ctx, params)
		assert.True(t, zerror.HasCode(err, apperr.StoreErrorCode))
		assert.ErrorContains(t, err, "connection refused")
		f.publisher.AssertNotCalled(t, "PublishInventoryChanged", mock.Anything, mock.Anything)
	})

	t.Run("Publish failure does not fail the request", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Insert", ctx, stored).Return("id-2", nil).Once()
		f.publisher.On("PublishInventoryChanged", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		inv, err := f.svc.CreateInventory(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, "id-2", inv.ID)
		assert.Contains(t, f.logs.String(), "error publishing inventory changed event")
		assert.Contains(t, f.logs.String(), "id-2")
	})
}

func TestInventoryService_UpdateInventory(t *testing.T) {
	ctx := context.TODO()
	params := service.UpdateInventoryParams{ID: "id-1", Name: "Widget", Quantity: ptr.New(3), Price: ptr.New(9.99)}
	want := model.Inventory{ID: "id-1", Name: "Widget", Quantity: 3, Price: 9.99}

	t.Run("Successful update", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Replace", ctx, "id-1", want).Return(true, nil).Once()
		f.publisher.On("PublishInventoryChanged", mock.Anything, changeOf(event.ChangeTypeUpdated, "id-1")).Return(nil).Once()

		inv, err := f.svc.UpdateInventory(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, want, inv)
		f.repo.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})

	t.Run("Unknown id", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Replace", ctx, "id-1", want).Return(false, nil).Once()

		_, err := f.svc.UpdateInventory(ctx, params)
		assert.True(t, zerror.HasCode(err, apperr.InventoryNotFoundErrorCode))
		f.publisher.AssertNotCalled(t, "PublishInventoryChanged", mock.Anything, mock.Anything)
	})

	t.Run("Missing id", func(t *testing.T) {
		f := newFixture(t)
		noID := params
		noID.ID = ""

		_, err := f.svc.UpdateInventory(ctx, noID)
		assert.True(t, zerror.HasCode(err, apperr.ValidationErrorCode))
		f.repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store unreachable", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Replace", ctx, "id-1", want).Return(false, errors.New("timeout")).Once()

		_, err := f.svc.UpdateInventory(ctx, params)
		assert.True(t, zerror.HasCode(err, apperr.StoreErrorCode))
	})
}

func TestInventoryService_DeleteInventory(t *testing.T) {
	ctx := context.TODO()

	t.Run("Successful delete", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Delete", ctx, "id-1").Return(true, nil).Once()
		f.publisher.On("PublishInventoryChanged", mock.Anything, mock.MatchedBy(func(ev event.InventoryChangedEvent) bool {
			return ev.Type == event.ChangeTypeDeleted && ev.Inventory == nil
		})).Return(nil).Once()

		require.NoError(t, f.svc.DeleteInventory(ctx, "id-1"))
		f.repo.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})

	t.Run("Already deleted", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Delete", ctx, "id-1").Return(false, nil).Once()

		err := f.svc.DeleteInventory(ctx, "id-1")
		assert.True(t, zerror.HasCode(err, apperr.InventoryNotFoundErrorCode))
	})

	t.Run("Missing id", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.DeleteInventory(ctx, "")
		assert.True(t, zerror.HasCode(err, apperr.ValidationErrorCode))
	})

	t.Run("Store unreachable", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Delete", ctx, "id-1").Return(false, errors.New("timeout")).Once()

		err := f.svc.DeleteInventory(ctx, "id-1")
		assert.True(t, zerror.HasCode(err, apperr.StoreErrorCode))
	})
}

func TestInventoryService_ListInventory(t *testing.T) {
	ctx := context.TODO()

	t.Run("Returns all records", func(t *testing.T) {
		f := newFixture(t)
		items := []model.Inventory{{ID: "a"}, {ID: "b"}}
		f.repo.On("List", ctx).Return(items, nil).Once()

		got, err := f.svc.ListInventory(ctx)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("Never returns nil", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("List", ctx).Return(nil, nil).Once()

		got, err := f.svc.ListInventory(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Store unreachable", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("List", ctx).Return(nil, errors.New("timeout")).Once()

		_, err := f.svc.ListInventory(ctx)
		assert.True(t, zerror.HasCode(err, apperr.StoreErrorCode))
	})
}

func TestInventoryService_GetInventory(t *testing.T) {
	ctx := context.TODO()

	t.Run("Found", func(t *testing.T) {
		f := newFixture(t)
		want := model.Inventory{ID: "id-1", Name: "Widget"}
		f.repo.On("Get", ctx, "id-1").Return(want, true, nil).Once()

		got, err := f.svc.GetInventory(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Never issued", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Get", ctx, "nope").Return(model.Inventory{}, false, nil).Once()

		_, err := f.svc.GetInventory(ctx, "nope")
		assert.True(t, zerror.HasCode(err, apperr.InventoryNotFoundErrorCode))
	})

	t.Run("Store unreachable", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Get", ctx, "id-1").Return(model.Inventory{}, false, errors.New("timeout")).Once()

		_, err := f.svc.GetInventory(ctx, "id-1")
		assert.True(t, zerror.HasCode(err, apperr.StoreErrorCode))
	})
}

func TestInventoryService_PublishIsBounded(t *testing.T) {
	params := service.UpdateInventoryParams{ID: "id-1", Name: "Widget", Quantity: ptr.New(3), Price: ptr.New(9.99)}
	want := model.Inventory{ID: "id-1", Name: "Widget", Quantity: 3, Price: 9.99}

	t.Run("Should return once the publish timeout elapses", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t, service.WithPublishTimeout(50*time.Millisecond))
		f.repo.On("Replace", ctx, "id-1", want).Return(true, nil).Once()
		f.publisher.On("PublishInventoryChanged", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				<-args.Get(0).(context.Context).Done()
			}).
			Return(context.DeadlineExceeded).Once()

		start := time.Now()
		inv, err := f.svc.UpdateInventory(ctx, params)
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Equal(t, want, inv)
		assert.Less(t, elapsed, time.Second)
		assert.Contains(t, f.logs.String(), "error publishing inventory changed event")
	})

	t.Run("Should publish even when the request is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := newFixture(t)
		f.repo.On("Replace", ctx, "id-1", want).Return(true, nil).Once()
		f.publisher.On("PublishInventoryChanged", mock.MatchedBy(func(pubCtx context.Context) bool {
			_, hasDeadline := pubCtx.Deadline()
			return pubCtx.Err() == nil && hasDeadline
		}), mock.Anything).Return(nil).Once()

		_, err := f.svc.UpdateInventory(ctx, params)
		require.NoError(t, err)
		f.publisher.AssertExpectations(t)
	})
}
