// internal/repository/memory_repository.go
package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/krowne/krownebase/internal/apperr"
	"github.com/krowne/krownebase/internal/models"
	"github.com/krowne/krownebase/internal/utils"
)

// MemoryProductRepository is an in-process ProductRepository used by tests
// and by the CLI dry-run mode. WithTx snapshots the catalog and restores it
// when fn fails; it does not isolate concurrent writers.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
	now      func() time.Time

	// Failure hooks. A non-nil error returned by a hook aborts the call.
	UpsertHook     func(product *models.Product) error
	UpdateTagsHook func(sku string, tags []string) error
	ListErr        error
	PingErr        error
}

func NewMemoryProductRepository(products ...models.Product) *MemoryProductRepository {
	r := &MemoryProductRepository{
		products: make(map[string]models.Product, len(products)),
		now:      time.Now,
	}
	for _, p := range products {
		r.products[p.SKU] = cloneProduct(p)
	}
	return r
}

func (r *MemoryProductRepository) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[sku]
	if !ok {
		return nil, apperr.NotFound("get_product", sku)
	}
	product = cloneProduct(product)
	return &product, nil
}

func (r *MemoryProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	if r.ListErr != nil {
		return nil, classify("list_products", r.ListErr)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(), nil
}

func (r *MemoryProductRepository) Search(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error) {
	params = utils.NormalizePagination(params)
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	search := strings.ToLower(params.Search)
	var matched []models.Product
	for _, p := range all {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.SKU), search) &&
			!strings.Contains(strings.ToLower(p.ProductDescription), search) &&
			!strings.Contains(strings.ToLower(p.Family), search) {
			continue
		}
		if params.Tag != "" && !containsString(p.Tags, params.Tag) {
			continue
		}
		if params.Family != "" && p.Family != params.Family {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, utils.SortField(params, searchSortFields), params.Order == "desc")

	total := int64(len(matched))
	start := params.Offset()
	if start >= len(matched) {
		return []models.Product{}, total, nil
	}
	end := start + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *MemoryProductRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

func (r *MemoryProductRepository) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.SKU]; exists {
		return apperr.New(apperr.KindConflict, "create_product", "product already exists").WithSKU(product.SKU)
	}
	now := r.now()
	product.CreatedAt, product.UpdatedAt = now, now
	r.products[product.SKU] = cloneProduct(*product)
	return nil
}

func (r *MemoryProductRepository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.SKU]
	if !ok {
		return nil, apperr.NotFound("update_product", product.SKU)
	}
	updated := cloneProduct(*product)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = r.now()
	r.products[product.SKU] = updated

	updated = cloneProduct(updated)
	return &updated, nil
}

func (r *MemoryProductRepository) Upsert(ctx context.Context, product *models.Product) (*models.Product, error) {
	if r.UpsertHook != nil {
		if err := r.UpsertHook(product); err != nil {
			return nil, classify("upsert_product", err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	stored := cloneProduct(*product)
	stored.CreatedAt = now
	if existing, ok := r.products[product.SKU]; ok {
		stored.CreatedAt = existing.CreatedAt
	}
	stored.UpdatedAt = now
	r.products[product.SKU] = stored

	product.CreatedAt, product.UpdatedAt = stored.CreatedAt, stored.UpdatedAt
	return product, nil
}

func (r *MemoryProductRepository) UpdateTags(ctx context.Context, sku string, tags []string) (*models.Product, error) {
	if r.UpdateTagsHook != nil {
		if err := r.UpdateTagsHook(sku, tags); err != nil {
			return nil, classify("update_tags", err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[sku]
	if !ok {
		return nil, apperr.NotFound("update_tags", sku)
	}
	product.Tags = append(pq.StringArray(nil), tags...)
	product.UpdatedAt = r.now()
	r.products[sku] = product

	product = cloneProduct(product)
	return &product, nil
}

func (r *MemoryProductRepository) Delete(ctx context.Context, sku string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[sku]; !ok {
		return apperr.NotFound("delete_product", sku)
	}
	delete(r.products, sku)
	return nil
}

func (r *MemoryProductRepository) WithTx(ctx context.Context, fn func(repo ProductRepository) error) error {
	r.mu.RLock()
	snapshot := make(map[string]models.Product, len(r.products))
	for sku, p := range r.products {
		snapshot[sku] = cloneProduct(p)
	}
	r.mu.RUnlock()

	if err := fn(r); err != nil {
		r.mu.Lock()
		r.products = snapshot
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *MemoryProductRepository) Ping(ctx context.Context) error {
	if r.PingErr != nil {
		return apperr.Wrap(apperr.KindUnavailable, "ping", r.PingErr)
	}
	return nil
}

func (r *MemoryProductRepository) sortedLocked() []models.Product {
	products := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, cloneProduct(p))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].SKU < products[j].SKU })
	return products
}

func sortProducts(products []models.Product, field string, desc bool) {
	less := func(a, b models.Product) bool {
		switch field {
		case "family":
			return a.Family < b.Family
		case "type":
			return a.Type < b.Type
		case "list_price":
			return a.ListPrice < b.ListPrice
		case "product_status":
			return a.ProductStatus < b.ProductStatus
		case "created_at":
			return a.CreatedAt.Before(b.CreatedAt)
		case "updated_at":
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			return a.SKU < b.SKU
		}
	}
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}

func cloneProduct(p models.Product) models.Product {
	p.Images = cloneStrings(p.Images)
	p.Videos = cloneStrings(p.Videos)
	p.SpecSheet = cloneStrings(p.SpecSheet)
	p.Tags = cloneStrings(p.Tags)
	return p
}

func cloneStrings(values pq.StringArray) pq.StringArray {
	if values == nil {
		return nil
	}
	return append(pq.StringArray(nil), values...)
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
