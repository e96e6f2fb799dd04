package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krowne/krownebase/internal/apperr"
	"github.com/krowne/krownebase/internal/cache"
)

const productPage = `<html><body><div class="main-wrapper">
<div class="mainProductImage" style="background-image: url('/media/kr-1.jpg')"></div>
<section><div><div>
  <div class="col-lg-6 order-lg-1 order-12">
    <h3><strong> Royal Series Faucet </strong></h3>
    <p>intro</p>
    <div><span>$199.00</span></div>
    <ul><li> Lead free </li><li>Heavy duty</li><li> </li></ul>
  </div>
</div></div></section>
<div id="product-detail-main"><table><tbody>
  <tr><td>Mounting Style</td><td>Wall</td></tr>
  <tr><td>Centers (in)</td><td>8"</td></tr>
  <tr><td>Spout Size</td><td>12"</td></tr>
  <tr><td>Notes</td></tr>
</tbody></table></div>
</div></body></html>`

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (c *mapCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(b, dest)
}

func (c *mapCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *mapCache) Close() error { return nil }

func TestParseProductPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(productPage))
	require.NoError(t, err)

	product := ParseProductPage(doc, "https://krowne.example")
	assert.Equal(t, "Royal Series Faucet", product.Name)
	assert.Equal(t, "$199.00", product.Price)
	assert.Equal(t, "https://krowne.example/media/kr-1.jpg", product.Image)
	assert.Equal(t, []string{"Lead free", "Heavy duty"}, product.Features)
	assert.Len(t, product.Specifications, 3)
	assert.Equal(t, map[string]string{
		"Mounting Style": "Wall",
		"Centers":        `8"`,
		"Spout Size":     `12"`,
	}, product.KeySpecs)
}

func TestResolveImageURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example/a.png", resolveImageURL(`background: url("https://cdn.example/a.png")`, "https://b"))
	assert.Equal(t, "https://b/a.png", resolveImageURL("url(a.png)", "https://b"))
	assert.Empty(t, resolveImageURL("color: red", "https://b"))
}

func TestScrapeUsesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/KR-1" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(productPage))
	}))
	defer srv.Close()

	svc := NewScrapeService(srv.URL+"/", time.Second, &mapCache{data: map[string][]byte{}}, time.Minute)
	ctx := context.Background()

	first, err := svc.Scrape(ctx, "KR-1")
	require.NoError(t, err)
	assert.Equal(t, "Royal Series Faucet", first.Name)
	assert.Equal(t, srv.URL+"/KR-1", first.URL)

	second, err := svc.Scrape(ctx, "KR-1")
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, 1, hits)

	_, err = svc.Scrape(ctx, "KR-404")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestScrapeErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewScrapeService(srv.URL, time.Second, nil, time.Minute)

	_, err := svc.Scrape(context.Background(), "KR-1")
	assert.True(t, apperr.Is(err, apperr.KindUnavailable))

	_, err = svc.Scrape(context.Background(), " ")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
