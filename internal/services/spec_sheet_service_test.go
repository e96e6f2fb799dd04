package services

import (
	"context"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krowne/krownebase/internal/apperr"
	"github.com/krowne/krownebase/internal/models"
	"github.com/krowne/krownebase/internal/repository"
)

func TestFormatSpecSheet(t *testing.T) {
	sheet := FormatSpecSheet(&models.Product{
		SKU:              "KR-1",
		Type:             "Faucet",
		Features:         "Lead free, , 8\" centers",
		Images:           pq.StringArray{"https://img/1.png"},
		ProductLengthIn:  12.5,
		Voltage:          "115",
		ListPrice:        199,
		NSFCertification: "61",
		ADACompliance:    true,
	})

	assert.Equal(t, "Faucet", sheet.ProductName)
	assert.Equal(t, []string{"Lead free", "8\" centers"}, sheet.StandardFeatures)
	assert.Equal(t, []string{"https://img/1.png"}, sheet.Images)
	assert.Equal(t, []string{"NSF: 61", "ADA Compliant"}, sheet.Compliance)

	var keys []string
	for _, g := range sheet.Specifications {
		keys = append(keys, g.Key)
	}
	assert.Equal(t, []string{"dimensionsAndWeight", "technicalSpecifications", "featuresAndConstruction", "pricingAndPackaging"}, keys)
	assert.Equal(t, []SpecRow{{Label: "Length (in)", Value: "12.5"}}, sheet.Specifications[0].Rows)
	assert.Equal(t, []SpecRow{{Label: "List Price", Value: "$199.00"}}, sheet.Specifications[3].Rows)
}

func TestFormatSpecSheetPrefersDescription(t *testing.T) {
	sheet := FormatSpecSheet(&models.Product{SKU: "KR-1", Type: "Faucet", ProductDescription: "Wall faucet"})
	assert.Equal(t, "Wall faucet", sheet.ProductName)
	assert.Empty(t, sheet.StandardFeatures)
	assert.Empty(t, sheet.Compliance)
}

func TestRenderHTMLEscapes(t *testing.T) {
	repo := repository.NewMemoryProductRepository(models.Product{
		SKU:                "KR-1",
		ProductDescription: "<script>alert(1)</script>",
		Warranty:           "1 year",
	})
	svc := NewSpecSheetService(repo)

	html, err := svc.RenderHTML(context.Background(), "KR-1")
	require.NoError(t, err)
	body := string(html)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.True(t, strings.Contains(body, "<th>Warranty</th><td>1 year</td>"))

	_, err = svc.RenderHTML(context.Background(), "missing")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
