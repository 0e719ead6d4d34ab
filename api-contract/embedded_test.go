package apicontract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/tuanvumaihuynh/inventory-service/api-contract"
)

func TestLoad(t *testing.T) {
	doc, err := apicontract.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Inventory API", doc.Info.Title)
	assert.NotNil(t, doc.Paths.Find("/inventory"))
	assert.NotNil(t, doc.Paths.Find("/inventory/{inventoryId}"))
	assert.NotEmpty(t, apicontract.GetSpecBytes())
}
