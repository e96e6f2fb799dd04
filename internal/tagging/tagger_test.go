package tagging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krowne/krownebase/internal/models"
)

func TestComputeDefaultDictionary(t *testing.T) {
	d := Default()

	tests := []struct {
		name    string
		product models.Product
		want    []string
	}{
		{
			name:    "beer tower",
			product: models.Product{SKU: "KR-1", ProductDescription: "Beer tap system with draft tower"},
			want:    []string{"Beer Systems", "Faucets", "Towers"},
		},
		{
			name:    "beer tap system",
			product: models.Product{SKU: "KR-1", ProductDescription: "beer tap system"},
			want:    []string{"Beer Systems", "Faucets", "Towers"},
		},
		{
			name:    "hand sink",
			product: models.Product{SKU: "KR-2", ProductDescription: "Stainless HAND SINK"},
			want:    []string{"Hand Sinks", "Sinks"},
		},
		{
			name:    "no match",
			product: models.Product{SKU: "ZZ-9", ProductDescription: "Gizmo"},
			want:    []string{},
		},
		{
			name:    "sku only",
			product: models.Product{SKU: "FAUCET-12"},
			want:    []string{"Faucets"},
		},
		{
			name:    "substring match",
			product: models.Product{SKU: "ZZ-1", ProductDescription: "packing tape"},
			want:    []string{"Beer Systems", "Faucets"},
		},
		{
			name:    "blank",
			product: models.Product{SKU: "  "},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Compute(&tt.product))
		})
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	d := Default()
	p := &models.Product{SKU: "KR-7", ProductDescription: "Mobile underbar ice bin with drainboard and perforated insert"}

	first := d.Compute(p)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, d.Compute(p))
	}
	assert.IsIncreasing(t, first)
}

func TestSearchText(t *testing.T) {
	assert.Equal(t, "bar sink kr-1", SearchText(&models.Product{SKU: "KR-1", ProductDescription: "Bar Sink"}))
	assert.Equal(t, "kr-1", SearchText(&models.Product{SKU: "KR-1", ProductDescription: "  "}))
}

func TestDefaultTagsIncludeHandAssignedTags(t *testing.T) {
	tags := Default().Tags()
	assert.Contains(t, tags, "Alchemy")
	assert.Contains(t, tags, "Workstations")
	assert.Len(t, tags, len(builtinTags))
	assert.Empty(t, Default().Keywords("Alchemy"))
}

func TestLoadDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.yaml")
	content := `tags: [Clearance]
keywords:
  Glycol Systems: [Glycol, " power pack "]
  Empty: []
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	d, err := LoadDictionary(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Clearance", "Glycol Systems"}, d.Tags())
	assert.Equal(t, []string{"glycol", "power pack"}, d.Keywords("Glycol Systems"))
	assert.Equal(t, []string{"Glycol Systems"}, d.Compute(&models.Product{SKU: "GL-1", ProductDescription: "GLYCOL chiller"}))
}

func TestLoadDictionaryErrors(t *testing.T) {
	_, err := LoadDictionary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tags: [A]\n"), 0o600))
	_, err = LoadDictionary(path)
	assert.Error(t, err)
}
