// internal/repository/gorm_repository.go
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/krowne/krownebase/internal/apperr"
	"github.com/krowne/krownebase/internal/database"
	"github.com/krowne/krownebase/internal/models"
	"github.com/krowne/krownebase/internal/utils"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("get_product", sku)
		}
		return nil, classify("get_product", err)
	}
	return &product, nil
}

func (r *GormProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("sku asc").Find(&products).Error; err != nil {
		return nil, classify("list_products", err)
	}
	return products, nil
}

func (r *GormProductRepository) Search(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error) {
	params = utils.NormalizePagination(params)
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(sku) LIKE ? OR LOWER(product_description) LIKE ? OR LOWER(family) LIKE ?",
			searchTerm, searchTerm, searchTerm)
	}

	if params.Tag != "" {
		query = query.Where("? = ANY(tags)", params.Tag)
	}

	if params.Family != "" {
		query = query.Where("family = ?", params.Family)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, classify("search_products", err)
	}

	query = utils.ApplySort(query, params, searchSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, classify("search_products", err)
	}

	return products, total, nil
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, classify("count_products", err)
	}
	return total, nil
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		err = classify("create_product", err)
		if apperr.Is(err, apperr.KindConflict) {
			return apperr.New(apperr.KindConflict, "create_product", "product already exists").WithSKU(product.SKU)
		}
		return err
	}
	return nil
}

func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	result := updateProductQuery(r.db.WithContext(ctx), product)
	if result.Error != nil {
		return nil, classify("update_product", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperr.NotFound("update_product", product.SKU)
	}
	return r.GetBySKU(ctx, product.SKU)
}

func (r *GormProductRepository) Upsert(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := upsertProductQuery(r.db.WithContext(ctx), product).Error; err != nil {
		return nil, classify("upsert_product", err)
	}
	return product, nil
}

func (r *GormProductRepository) UpdateTags(ctx context.Context, sku string, tags []string) (*models.Product, error) {
	result := updateTagsQuery(r.db.WithContext(ctx), sku, tags)
	if result.Error != nil {
		return nil, classify("update_tags", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperr.NotFound("update_tags", sku)
	}
	return r.GetBySKU(ctx, sku)
}

// updateProductQuery rewrites every schema column of the row keyed by
// product.SKU. The key and created_at are never assigned.
func updateProductQuery(db *gorm.DB, product *models.Product) *gorm.DB {
	return db.Model(&models.Product{}).
		Where("sku = ?", product.SKU).
		Select(models.UpsertUpdateColumns()).
		Updates(product)
}

// upsertProductQuery inserts product or overwrites the schema columns of the
// existing row. RETURNING scans the stored row back into product so the
// caller sees the original created_at.
func upsertProductQuery(db *gorm.DB, product *models.Product) *gorm.DB {
	return db.Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns(models.UpsertUpdateColumns()),
		},
		clause.Returning{},
	).Create(product)
}

func updateTagsQuery(db *gorm.DB, sku string, tags []string) *gorm.DB {
	return db.Model(&models.Product{}).
		Where("sku = ?", sku).
		Update("tags", pq.StringArray(tags))
}

func (r *GormProductRepository) Delete(ctx context.Context, sku string) error {
	result := r.db.WithContext(ctx).Where("sku = ?", sku).Delete(&models.Product{})
	if result.Error != nil {
		return classify("delete_product", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("delete_product", sku)
	}
	return nil
}

func (r *GormProductRepository) WithTx(ctx context.Context, fn func(repo ProductRepository) error) error {
	err := database.WithTransaction(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		return fn(&GormProductRepository{db: tx})
	})
	return classify("transaction", err)
}

func (r *GormProductRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "ping", err)
	}
	return nil
}
