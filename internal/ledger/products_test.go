package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keoroanthony/bakery-ledger/internal/ledger"
	"github.com/Keoroanthony/bakery-ledger/internal/models"
)

func TestSeedCatalog(t *testing.T) {
	l, testDB := setupLedger(t)
	ctx := context.Background()

	seeded, err := l.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(ledger.DefaultProductNames())), seeded)

	var panettone models.Product
	require.NoError(t, testDB.Where("name = ?", "Panettone 500").First(&panettone).Error)
	assert.Equal(t, 70.0, panettone.Price)

	t.Run("Leaves a populated catalog alone", func(t *testing.T) {
		seeded, err := l.SeedCatalog(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), seeded)

		var count int64
		testDB.Model(&models.Product{}).Count(&count)
		assert.Equal(t, int64(len(ledger.DefaultProductNames())), count)
	})
}

func TestSeedCatalogSkipsNonEmptyTable(t *testing.T) {
	l, testDB := setupLedger(t)

	seedProduct(t, testDB, "Chałka", 9)

	seeded, err := l.SeedCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), seeded)
}

func TestEnsureDefaultProductsIsIdempotent(t *testing.T) {
	l, testDB := setupLedger(t)
	ctx := context.Background()

	seedProduct(t, testDB, "Strucla", 45)

	added, err := l.EnsureDefaultProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(ledger.DefaultProductNames())-1), added)

	added, err = l.EnsureDefaultProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), added)

	for _, name := range ledger.DefaultProductNames() {
		var count int64
		testDB.Model(&models.Product{}).Where("name = ?", name).Count(&count)
		assert.Equal(t, int64(1), count, name)
	}

	var strucla models.Product
	require.NoError(t, testDB.Where("name = ?", "Strucla").First(&strucla).Error)
	assert.Equal(t, 45.0, strucla.Price)

	var makowiec models.Product
	require.NoError(t, testDB.Where("name = ?", "Makowiec Austriacki").First(&makowiec).Error)
	assert.Equal(t, 0.0, makowiec.Price)
}

func TestListProductsWithDemand(t *testing.T) {
	l, testDB := setupLedger(t)
	ctx := context.Background()

	strucla := seedProduct(t, testDB, "Strucla", 45)
	bread := seedProduct(t, testDB, "Pszenny czysty", 12)
	seedProduct(t, testDB, "Ciasto pom.", 40)

	anna := seedCustomer(t, l, "Anna", "600100200", "23.12")
	ola := seedCustomer(t, l, "Ola", "700100200", "24.12")

	_, err := l.AddOrdersBatch(ctx, anna.ID, []ledger.BatchItem{
		{ProductID: strucla.ID, Quantity: 2},
		{ProductID: strucla.ID, Quantity: 4},
		{ProductID: bread.ID, Quantity: 1},
	})
	require.NoError(t, err)
	_, err = l.AddOrdersBatch(ctx, ola.ID, []ledger.BatchItem{{ProductID: strucla.ID, Quantity: 9}})
	require.NoError(t, err)

	var breadOrder models.Order
	require.NoError(t, testDB.Where("product_id = ?", bread.ID).First(&breadOrder).Error)
	require.NoError(t, l.MarkDelivered(ctx, breadOrder.ID))

	products, err := l.ListProductsWithDemand(ctx, "23.12")
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "Ciasto pom.", products[0].Name)
	assert.Equal(t, int64(0), products[0].TotalQuantity)
	assert.Equal(t, "Pszenny czysty", products[1].Name)
	assert.Equal(t, int64(0), products[1].TotalQuantity)
	assert.Equal(t, "Strucla", products[2].Name)
	assert.Equal(t, int64(6), products[2].TotalQuantity)
	assert.Equal(t, 45.0, products[2].Price)

	products, err = l.ListProductsWithDemand(ctx, "24.12")
	require.NoError(t, err)
	assert.Equal(t, int64(9), products[2].TotalQuantity)

	products, err = l.ListProductsWithDemand(ctx, "01.01")
	require.NoError(t, err)
	for _, p := range products {
		assert.Equal(t, int64(0), p.TotalQuantity)
	}
}
