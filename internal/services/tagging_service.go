// internal/services/tagging_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/krowne/krownebase/internal/observability"
	"github.com/krowne/krownebase/internal/repository"
	"github.com/krowne/krownebase/internal/tagging"
)

type TaggingService struct {
	repo       repository.ProductRepository
	dictionary *tagging.Dictionary
}

type TagRunSummary struct {
	Tagged  int `json:"tagged"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
}

func NewTaggingService(repo repository.ProductRepository, dictionary *tagging.Dictionary) *TaggingService {
	if dictionary == nil {
		dictionary = tagging.Default()
	}
	return &TaggingService{repo: repo, dictionary: dictionary}
}

// TagAll recomputes tags for every product. A failed write is counted and
// logged and does not stop the run; only a failure to list products is
// returned.
func (s *TaggingService) TagAll(ctx context.Context) (*TagRunSummary, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	logrus.WithField("products", len(products)).Info("Starting auto-tagging run")

	summary := &TagRunSummary{}
	for i := range products {
		product := &products[i]
		tags := s.dictionary.Compute(product)

		if len(tags) == 0 {
			summary.Skipped++
			observability.TaggedProductsTotal.WithLabelValues("skipped").Inc()
			logrus.WithField("sku", product.SKU).Debug("No tags found")
			continue
		}

		if _, err := s.repo.UpdateTags(ctx, product.SKU, tags); err != nil {
			summary.Errors++
			observability.TaggedProductsTotal.WithLabelValues("error").Inc()
			logrus.WithError(err).WithField("sku", product.SKU).Error("Error tagging product")
			continue
		}

		summary.Tagged++
		observability.TaggedProductsTotal.WithLabelValues("tagged").Inc()
		logrus.WithFields(logrus.Fields{
			"sku":  product.SKU,
			"tags": tags,
		}).Debug("Tagged product")
	}

	logrus.WithFields(logrus.Fields{
		"tagged":  summary.Tagged,
		"skipped": summary.Skipped,
		"errors":  summary.Errors,
	}).Info("Auto-tagging complete")
	return summary, nil
}

// TagOne computes and stores tags for a single product. Existing tags are
// left untouched when nothing matches.
func (s *TaggingService) TagOne(ctx context.Context, sku string) ([]string, error) {
	product, err := s.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	tags := s.dictionary.Compute(product)
	if len(tags) == 0 {
		return tags, nil
	}

	if _, err := s.repo.UpdateTags(ctx, sku, tags); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"sku": sku, "tags": tags}).Info("Tagged product")
	return tags, nil
}

// PreviewTags returns the tags TagOne would store, without writing.
func (s *TaggingService) PreviewTags(ctx context.Context, sku string) ([]string, error) {
	product, err := s.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	return s.dictionary.Compute(product), nil
}

// KnownTags lists every tag in the dictionary.
func (s *TaggingService) KnownTags() []string {
	return s.dictionary.Tags()
}
