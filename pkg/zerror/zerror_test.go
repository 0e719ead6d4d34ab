package zerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-service/pkg/zerror"
)

func TestZError(t *testing.T) {
	base := zerror.NewNotFound("INVENTORY_NOT_FOUND", "inventory not found")

	t.Run("Should format without parent", func(t *testing.T) {
		assert.Equal(t, "Code=INVENTORY_NOT_FOUND, Msg=inventory not found", base.Error())
		assert.Nil(t, base.Parent())
	})

	t.Run("Should wrap parent and keep the predefined error intact", func(t *testing.T) {
		parent := errors.New("boom")
		wrapped := base.WrapParent(parent)

		assert.ErrorIs(t, wrapped, parent)
		assert.Equal(t, "Code=INVENTORY_NOT_FOUND, Msg=inventory not found, Parent=(boom)", wrapped.Error())
		assert.Nil(t, base.Parent())
	})

	t.Run("Should ignore nil parent", func(t *testing.T) {
		assert.Equal(t, base, base.WrapParent(nil))
	})

	t.Run("Should find zerror in wrapped chain", func(t *testing.T) {
		err := fmt.Errorf("service: %w", base.WrapParent(errors.New("driver")))

		zErr, ok := zerror.As(err)
		require.True(t, ok)
		assert.Equal(t, zerror.StatusNotFound, zErr.Status())
		assert.Equal(t, "inventory not found", zErr.Msg())
		assert.True(t, zerror.HasCode(err, "INVENTORY_NOT_FOUND"))
		assert.False(t, zerror.HasCode(err, "OTHER"))
		assert.False(t, zerror.HasCode(errors.New("plain"), "INVENTORY_NOT_FOUND"))
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", zerror.StatusNotFound.String())
	assert.Equal(t, "VALIDATION_FAILED", zerror.StatusValidationFailed.String())
	assert.Equal(t, "UNKNOWN", zerror.Status(200).String())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err  zerror.ZError
		want zerror.Status
	}{
		{err: zerror.NewNotFound("C", "m"), want: zerror.StatusNotFound},
		{err: zerror.NewValidationFailed("C", "m"), want: zerror.StatusValidationFailed},
		{err: zerror.NewInternalServerError("C", "m"), want: zerror.StatusInternalServerError},
		{err: zerror.NewMethodNotAllowed("C", "m"), want: zerror.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status())
			assert.Equal(t, "C", tt.err.Code())
			assert.Nil(t, tt.err.Parent())
		})
	}
}
