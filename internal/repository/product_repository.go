// internal/repository/product_repository.go
package repository

import (
	"context"

	"github.com/krowne/krownebase/internal/models"
	"github.com/krowne/krownebase/internal/utils"
)

// ProductRepository owns persistence of the product catalog. Every error it
// returns is an *apperr.Error whose Kind is one of NotFound, Conflict,
// Unavailable or Database.
type ProductRepository interface {
	GetBySKU(ctx context.Context, sku string) (*models.Product, error)
	// ListAll returns every product ordered by SKU.
	ListAll(ctx context.Context) ([]models.Product, error)
	Search(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error)
	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, product *models.Product) error
	// Update overwrites every schema column of an existing product.
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	// Upsert inserts product or, when its SKU exists, overwrites every
	// schema column and the update timestamp.
	Upsert(ctx context.Context, product *models.Product) (*models.Product, error)
	UpdateTags(ctx context.Context, sku string, tags []string) (*models.Product, error)
	Delete(ctx context.Context, sku string) error

	// WithTx runs fn against a repository bound to one transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(repo ProductRepository) error) error
	Ping(ctx context.Context) error
}

var searchSortFields = []string{"sku", "family", "type", "list_price", "product_status", "created_at", "updated_at"}
