package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krowne/krownebase/internal/apperr"
	"github.com/krowne/krownebase/internal/models"
	"github.com/krowne/krownebase/internal/utils"
)

func seedRepo() *MemoryProductRepository {
	return NewMemoryProductRepository(
		models.Product{SKU: "KR-300", Family: "Sinks", ProductDescription: "Hand sink", ListPrice: 300},
		models.Product{SKU: "KR-100", Family: "Faucets", ProductDescription: "Wall mount faucet", ListPrice: 120, Tags: pq.StringArray{"Faucets"}},
		models.Product{SKU: "KR-200", Family: "Faucets", ProductDescription: "Pre-rinse unit", ListPrice: 450},
	)
}

func TestMemoryListAllOrderedBySKU(t *testing.T) {
	products, err := seedRepo().ListAll(context.Background())
	require.NoError(t, err)

	var skus []string
	for _, p := range products {
		skus = append(skus, p.SKU)
	}
	assert.Equal(t, []string{"KR-100", "KR-200", "KR-300"}, skus)
}

func TestMemoryGetBySKUNotFound(t *testing.T) {
	_, err := seedRepo().GetBySKU(context.Background(), "missing")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestMemoryReturnsCopies(t *testing.T) {
	repo := seedRepo()
	ctx := context.Background()

	p, err := repo.GetBySKU(ctx, "KR-100")
	require.NoError(t, err)
	p.Tags[0] = "changed"

	again, err := repo.GetBySKU(ctx, "KR-100")
	require.NoError(t, err)
	assert.Equal(t, pq.StringArray{"Faucets"}, again.Tags)
}

func TestMemoryUpsertKeepsCreatedAt(t *testing.T) {
	repo := seedRepo()
	ctx := context.Background()

	first, err := repo.GetBySKU(ctx, "KR-100")
	require.NoError(t, err)

	_, err = repo.Upsert(ctx, &models.Product{SKU: "KR-100", ListPrice: 99})
	require.NoError(t, err)

	got, err := repo.GetBySKU(ctx, "KR-100")
	require.NoError(t, err)
	assert.Equal(t, 99.0, got.ListPrice)
	assert.Equal(t, first.CreatedAt, got.CreatedAt)
	assert.Empty(t, got.Tags)

	count, _ := repo.Count(ctx)
	assert.Equal(t, int64(3), count)
}

func TestMemoryCreateConflict(t *testing.T) {
	err := seedRepo().Create(context.Background(), &models.Product{SKU: "KR-100"})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestMemoryUpdateAndDeleteMissing(t *testing.T) {
	repo := seedRepo()
	ctx := context.Background()

	_, err := repo.Update(ctx, &models.Product{SKU: "nope"})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = repo.UpdateTags(ctx, "nope", []string{"Sinks"})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	assert.True(t, apperr.Is(repo.Delete(ctx, "nope"), apperr.KindNotFound))
	require.NoError(t, repo.Delete(ctx, "KR-300"))
	_, err = repo.GetBySKU(ctx, "KR-300")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestMemoryWithTxRollsBack(t *testing.T) {
	repo := seedRepo()
	ctx := context.Background()
	boom := errors.New("boom")

	err := repo.WithTx(ctx, func(tx ProductRepository) error {
		if _, err := tx.Upsert(ctx, &models.Product{SKU: "KR-900"}); err != nil {
			return err
		}
		if _, err := tx.UpdateTags(ctx, "KR-100", nil); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	count, _ := repo.Count(ctx)
	assert.Equal(t, int64(3), count)
	p, err := repo.GetBySKU(ctx, "KR-100")
	require.NoError(t, err)
	assert.Equal(t, pq.StringArray{"Faucets"}, p.Tags)
}

func TestMemorySearch(t *testing.T) {
	repo := seedRepo()
	ctx := context.Background()

	products, total, err := repo.Search(ctx, utils.PaginationParams{Family: "Faucets", Sort: "list_price", Order: "desc"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, products, 2)
	assert.Equal(t, "KR-200", products[0].SKU)

	products, total, err = repo.Search(ctx, utils.PaginationParams{Search: "SINK"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "KR-300", products[0].SKU)

	products, total, err = repo.Search(ctx, utils.PaginationParams{Tag: "Faucets"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "KR-100", products[0].SKU)

	products, total, err = repo.Search(ctx, utils.PaginationParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, products, 1)
	assert.Equal(t, "KR-300", products[0].SKU)
}

func TestMemoryHooksAreClassified(t *testing.T) {
	repo := seedRepo()
	repo.UpsertHook = func(*models.Product) error { return errors.New("disk full") }
	repo.PingErr = errors.New("down")

	_, err := repo.Upsert(context.Background(), &models.Product{SKU: "KR-1"})
	assert.True(t, apperr.Is(err, apperr.KindDatabase))
	assert.True(t, apperr.Is(repo.Ping(context.Background()), apperr.KindUnavailable))
}
