package memory

import (
	"context"
	"testing"

	"shiv_accounts/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contact(id, name string) entities.Contact {
	return entities.Contact{Record: entities.Record{ID: id}, Name: name, Kind: entities.ContactKindCustomer}
}

func TestRepository_CreatePrependsAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[entities.Contact]()

	_, err := repo.Create(ctx, contact("1", "first"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, contact("2", "second"))
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].ID)
	assert.Equal(t, "1", list[1].ID)

	_, err = repo.Create(ctx, contact("1", "again"))
	assert.Error(t, err)
	_, err = repo.Create(ctx, contact("", "no id"))
	assert.Error(t, err)
	assert.Equal(t, 2, repo.Len())
}

func TestRepository_UpdateReplacesOnlyTarget(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[entities.Contact]()
	for _, c := range []entities.Contact{contact("1", "a"), contact("2", "b"), contact("3", "c")} {
		_, err := repo.Create(ctx, c)
		require.NoError(t, err)
	}

	updated, err := repo.Update(ctx, contact("2", "B"))
	require.NoError(t, err)
	assert.Equal(t, "B", updated.Name)

	list, _ := repo.List(ctx)
	assert.Equal(t, []string{"c", "B", "a"}, []string{list[0].Name, list[1].Name, list[2].Name})

	missing, err := repo.Update(ctx, contact("404", "x"))
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[entities.Contact]()
	_, _ = repo.Create(ctx, contact("1", "a"))
	_, _ = repo.Create(ctx, contact("2", "b"))

	removed, err := repo.Delete(ctx, "404")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 2, repo.Len())

	removed, err = repo.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 1, repo.Len())

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[entities.PurchaseOrder]()
	po := entities.PurchaseOrder{
		Record: entities.Record{ID: "po-1"},
		Items:  []entities.LineItem{{ID: "li-1", Quantity: decimal.NewFromInt(5)}},
	}
	_, err := repo.Create(ctx, po)
	require.NoError(t, err)

	list, _ := repo.List(ctx)
	list[0].Items[0].Quantity = decimal.NewFromInt(99)
	po.Items[0].Quantity = decimal.NewFromInt(42)

	got, _ := repo.GetByID(ctx, "po-1")
	assert.True(t, got.Items[0].Quantity.Equal(decimal.NewFromInt(5)))
}
