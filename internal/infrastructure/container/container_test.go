package container

import (
	"context"
	"testing"

	"shiv_accounts/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig(seedEnabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.DriverMemory
	cfg.Seed.Enabled = seedEnabled
	return cfg
}

func TestNew_MemorySeeded(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, memoryConfig(true))
	require.NoError(t, err)

	contacts, err := c.Contacts.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, contacts, 5)

	orders, err := c.PurchaseOrders.List(ctx, "wood supply")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "PO-001", orders[0].Order.PONumber)
}

func TestNew_MemoryEmpty(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, memoryConfig(false))
	require.NoError(t, err)

	products, err := c.Products.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := memoryConfig(false)
	cfg.Storage.Driver = "sqlite"

	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}
