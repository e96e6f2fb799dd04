package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krowne/krownebase/internal/apperr"
	"github.com/krowne/krownebase/internal/models"
	"github.com/krowne/krownebase/internal/repository"
	"github.com/krowne/krownebase/internal/utils"
)

func TestCreateProductValidatesBeforeStoreAccess(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewProductService(repo)

	for _, sku := range []string{"", "   ", "KR 1"} {
		_, err := svc.CreateProduct(context.Background(), &models.Product{SKU: sku})
		assert.True(t, apperr.Is(err, apperr.KindValidation), "sku=%q", sku)
	}

	count, _ := repo.Count(context.Background())
	assert.Zero(t, count)
}

func TestCreateProduct(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewProductService(repo)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &models.Product{SKU: " KR-1 ", Tags: pq.StringArray{" Sinks ", ""}})
	require.NoError(t, err)
	assert.Equal(t, "KR-1", created.SKU)
	assert.Equal(t, pq.StringArray{"Sinks"}, created.Tags)

	_, err = svc.CreateProduct(ctx, &models.Product{SKU: "KR-1"})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestUpdateProductPartial(t *testing.T) {
	repo := repository.NewMemoryProductRepository(models.Product{SKU: "KR-1", Family: "Sinks", ListPrice: 10})
	svc := NewProductService(repo)
	ctx := context.Background()

	price := 25.5
	updated, err := svc.UpdateProduct(ctx, "KR-1", &UpdateProductRequest{ListPrice: &price, Tags: []string{"Sinks"}})
	require.NoError(t, err)
	assert.Equal(t, 25.5, updated.ListPrice)
	assert.Equal(t, "Sinks", updated.Family)
	assert.Equal(t, pq.StringArray{"Sinks"}, updated.Tags)

	negative := -1.0
	_, err = svc.UpdateProduct(ctx, "KR-1", &UpdateProductRequest{MapPrice: &negative})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = svc.UpdateProduct(ctx, "nope", &UpdateProductRequest{})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestDeleteProduct(t *testing.T) {
	repo := repository.NewMemoryProductRepository(models.Product{SKU: "KR-1", Family: "Sinks"})
	svc := NewProductService(repo)
	ctx := context.Background()

	deleted, err := svc.DeleteProduct(ctx, "KR-1")
	require.NoError(t, err)
	assert.Equal(t, "Sinks", deleted.Family)

	_, err = svc.DeleteProduct(ctx, "KR-1")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestSearchProducts(t *testing.T) {
	repo := repository.NewMemoryProductRepository(
		models.Product{SKU: "KR-1", Family: "Sinks"},
		models.Product{SKU: "KR-2", Family: "Faucets"},
	)
	products, total, err := NewProductService(repo).SearchProducts(context.Background(), utils.PaginationParams{Family: "Sinks"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "KR-1", products[0].SKU)
}

func TestCheckDatabase(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewProductService(repo)

	health := svc.CheckDatabase(context.Background())
	assert.True(t, health.Healthy)

	repo.PingErr = errors.New("dial tcp: connection refused")
	health = svc.CheckDatabase(context.Background())
	assert.False(t, health.Healthy)
	assert.Equal(t, "Database connection failed", health.Message)
}
