// internal/services/scrape_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"github.com/krowne/krownebase/internal/apperr"
	"github.com/krowne/krownebase/internal/cache"
	"github.com/krowne/krownebase/internal/observability"
	"github.com/krowne/krownebase/internal/utils"
)

// KeySpecLabels are looked up in the scraped specification table by
// case-insensitive containment.
var KeySpecLabels = []string{
	"Mounting Style",
	"Centers",
	"Spout Style",
	"Spout Size",
	"Outlet Type",
	"Handles",
	"Inlet",
	"Valves",
}

var backgroundURLPattern = regexp.MustCompile(`url\(['"]?(.*?)['"]?\)`)

type ScrapeService struct {
	client  *http.Client
	baseURL string
	cache   cache.Cache
	ttl     time.Duration
}

type ScrapedProduct struct {
	SKU            string            `json:"sku"`
	URL            string            `json:"url"`
	Name           string            `json:"name"`
	Price          string            `json:"price"`
	Image          string            `json:"image"`
	Features       []string          `json:"features"`
	Specifications []SpecRow         `json:"specifications"`
	KeySpecs       map[string]string `json:"keySpecs"`
	FetchedAt      time.Time         `json:"fetchedAt"`
}

// NewScrapeService builds a scraper for <baseURL>/<sku> pages. c may be nil.
func NewScrapeService(baseURL string, timeout time.Duration, c cache.Cache, ttl time.Duration) *ScrapeService {
	if c == nil {
		c = cache.Noop{}
	}
	return &ScrapeService{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   c,
		ttl:     ttl,
	}
}

func (s *ScrapeService) Scrape(ctx context.Context, sku string) (*ScrapedProduct, error) {
	sku = strings.TrimSpace(sku)
	if err := utils.ValidateStruct(productKey{SKU: sku}); err != nil {
		return nil, apperr.Validation("scrape", "Missing or invalid SKU parameter", utils.GetValidationErrors(err))
	}

	cacheKey := "scrape:" + sku
	var cached ScrapedProduct
	switch err := s.cache.Get(ctx, cacheKey, &cached); {
	case err == nil:
		observability.ScrapesTotal.WithLabelValues("cache", "success").Inc()
		return &cached, nil
	case !errors.Is(err, cache.ErrMiss):
		logrus.WithError(err).WithField("sku", sku).Warn("Scrape cache read failed")
	}

	product, err := s.fetch(ctx, sku)
	if err != nil {
		observability.ScrapesTotal.WithLabelValues("remote", string(apperr.KindOf(err))).Inc()
		return nil, err
	}
	observability.ScrapesTotal.WithLabelValues("remote", "success").Inc()

	if err := s.cache.Set(ctx, cacheKey, product, s.ttl); err != nil {
		logrus.WithError(err).WithField("sku", sku).Warn("Scrape cache write failed")
	}
	return product, nil
}

func (s *ScrapeService) fetch(ctx context.Context, sku string) (*ScrapedProduct, error) {
	pageURL := s.baseURL + "/" + url.PathEscape(sku)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "scrape", err)
	}
	req.Header.Set("User-Agent", "krownebase-scraper/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "scrape", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperr.New(apperr.KindNotFound, "scrape", "product page not found").WithSKU(sku)
	case resp.StatusCode != http.StatusOK:
		return nil, apperr.New(apperr.KindUnavailable, "scrape",
			fmt.Sprintf("product page returned status %d", resp.StatusCode)).WithSKU(sku)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "scrape", err)
	}

	product := ParseProductPage(doc, s.baseURL)
	product.SKU = sku
	product.URL = pageURL
	product.FetchedAt = time.Now().UTC()
	return product, nil
}

// ParseProductPage extracts the product details from a product page.
// Relative image URLs are resolved against baseURL.
func ParseProductPage(doc *goquery.Document, baseURL string) *ScrapedProduct {
	info := doc.Find("div.col-lg-6.order-lg-1.order-12").First()

	product := &ScrapedProduct{
		Name:     strings.TrimSpace(info.Find("h3 > strong").First().Text()),
		Price:    strings.TrimSpace(info.ChildrenFiltered("div").Find("span").First().Text()),
		Features: []string{},
		KeySpecs: map[string]string{},
	}

	if style, ok := doc.Find(".mainProductImage").First().Attr("style"); ok {
		product.Image = resolveImageURL(style, baseURL)
	}

	info.ChildrenFiltered("ul").First().Find("li").Each(func(_ int, li *goquery.Selection) {
		if text := strings.TrimSpace(li.Text()); text != "" {
			product.Features = append(product.Features, text)
		}
	})

	doc.Find("#product-detail-main table tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return
		}
		product.Specifications = append(product.Specifications, SpecRow{
			Label: strings.TrimSpace(cells.Eq(0).Text()),
			Value: strings.TrimSpace(cells.Eq(1).Text()),
		})
	})

	for _, label := range KeySpecLabels {
		want := strings.ToLower(label)
		for _, spec := range product.Specifications {
			if strings.Contains(strings.ToLower(spec.Label), want) {
				product.KeySpecs[label] = spec.Value
				break
			}
		}
	}

	return product
}

func resolveImageURL(style, baseURL string) string {
	match := backgroundURLPattern.FindStringSubmatch(style)
	if len(match) < 2 || match[1] == "" {
		return ""
	}
	if strings.HasPrefix(match[1], "http") {
		return match[1]
	}
	if !strings.HasPrefix(match[1], "/") {
		return baseURL + "/" + match[1]
	}
	return baseURL + match[1]
}
