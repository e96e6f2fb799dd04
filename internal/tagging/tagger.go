package tagging

import (
	"sort"
	"strings"

	"github.com/krowne/krownebase/internal/models"
)

// SearchText is the lowercased text a product is matched against: its
// description followed by its SKU, skipping blanks.
func SearchText(product *models.Product) string {
	var parts []string
	for _, s := range []string{product.ProductDescription, product.SKU} {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Compute returns the sorted set of tags with at least one keyword occurring
// as a substring of the product's search text. Matching is plain substring
// containment, so "tap" also matches "tape".
func (d *Dictionary) Compute(product *models.Product) []string {
	text := SearchText(product)
	if text == "" {
		return []string{}
	}

	tags := []string{}
	for tag, keywords := range d.keywords {
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				tags = append(tags, tag)
				break
			}
		}
	}
	sort.Strings(tags)
	return tags
}
