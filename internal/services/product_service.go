// internal/services/product_service.go
package services

import (
	"context"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/krowne/krownebase/internal/apperr"
	"github.com/krowne/krownebase/internal/models"
	"github.com/krowne/krownebase/internal/repository"
	"github.com/krowne/krownebase/internal/utils"
)

type ProductService struct {
	repo repository.ProductRepository
}

type productKey struct {
	SKU string `json:"sku" validate:"required,sku"`
}

// UpdateProductRequest changes only the fields that are present.
type UpdateProductRequest struct {
	ProductDescription *string  `json:"product_description,omitempty"`
	Family             *string  `json:"family,omitempty"`
	Type               *string  `json:"type,omitempty"`
	ListPrice          *float64 `json:"list_price,omitempty" validate:"omitempty,min=0"`
	MapPrice           *float64 `json:"map_price,omitempty" validate:"omitempty,min=0"`
	ProductStatus      *string  `json:"product_status,omitempty" validate:"omitempty,max=100"`
	Tags               []string `json:"tags,omitempty"`
	Images             []string `json:"images,omitempty"`
}

type DBHealth struct {
	Healthy   bool   `json:"healthy"`
	Message   string `json:"message"`
	LatencyMs int64  `json:"latency_ms"`
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) SearchProducts(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error) {
	return s.repo.Search(ctx, params)
}

func (s *ProductService) GetProduct(ctx context.Context, sku string) (*models.Product, error) {
	return s.repo.GetBySKU(ctx, sku)
}

func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	product.SKU = strings.TrimSpace(product.SKU)
	if err := utils.ValidateStruct(productKey{SKU: product.SKU}); err != nil {
		return nil, apperr.Validation("create_product", "validation failed", utils.GetValidationErrors(err))
	}

	product.Tags = normalizeList(product.Tags)
	product.Images = normalizeList(product.Images)

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	logrus.WithField("sku", product.SKU).Info("Product created")
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, sku string, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperr.Validation("update_product", "validation failed", utils.GetValidationErrors(err))
	}

	product, err := s.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	// Prepare updates
	if req.ProductDescription != nil {
		product.ProductDescription = *req.ProductDescription
	}
	if req.Family != nil {
		product.Family = *req.Family
	}
	if req.Type != nil {
		product.Type = *req.Type
	}
	if req.ListPrice != nil {
		product.ListPrice = *req.ListPrice
	}
	if req.MapPrice != nil {
		product.MapPrice = *req.MapPrice
	}
	if req.ProductStatus != nil {
		product.ProductStatus = *req.ProductStatus
	}
	if req.Tags != nil {
		product.Tags = normalizeList(req.Tags)
	}
	if req.Images != nil {
		product.Images = normalizeList(req.Images)
	}

	return s.repo.Update(ctx, product)
}

// DeleteProduct removes the product and returns it as it was.
func (s *ProductService) DeleteProduct(ctx context.Context, sku string) (*models.Product, error) {
	product, err := s.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, sku); err != nil {
		return nil, err
	}

	logrus.WithField("sku", sku).Info("Product deleted")
	return product, nil
}

func (s *ProductService) CheckDatabase(ctx context.Context) *DBHealth {
	start := time.Now()
	err := s.repo.Ping(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		logrus.WithError(err).Warn("Database health check failed")
		return &DBHealth{Healthy: false, Message: "Database connection failed", LatencyMs: latency}
	}
	return &DBHealth{Healthy: true, Message: "Database connection is healthy", LatencyMs: latency}
}

func normalizeList(values []string) pq.StringArray {
	var out pq.StringArray
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
