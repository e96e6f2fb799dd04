package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/krowne/krownebase/internal/apperr"
	"github.com/krowne/krownebase/internal/models"
	"github.com/krowne/krownebase/internal/repository"
)

const sampleCSV = "sku , product_description,list_price,ada_compliance,tags\n" +
	"KR-1,Beer tower,12.5,yes,\"a, b\"\n" +
	" , , , , \n" +
	"\n" +
	"KR-2,Hand sink,,0,\n"

type recordingArchiver struct {
	calls []string
	err   error
}

func (a *recordingArchiver) ArchiveImport(ctx context.Context, filename string, data []byte) (*ArchiveResult, error) {
	a.calls = append(a.calls, filename)
	if a.err != nil {
		return nil, a.err
	}
	return &ArchiveResult{Key: "imports/" + filename, Size: int64(len(data)), Stored: true}, nil
}

func importCSV(t *testing.T, svc *ImportService, content string) (*ImportResult, error) {
	t.Helper()
	return svc.Import(context.Background(), "products.csv", strings.NewReader(content))
}

func TestImportCountsRowsAndCoercesValues(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewImportService(repo, nil, 0)

	result, err := importCSV(t, svc, sampleCSV)
	require.NoError(t, err)
	assert.Equal(t, "CSV uploaded successfully", result.Message)
	assert.Equal(t, 2, result.RecordsProcessed)
	assert.Equal(t, 1, result.SkippedRows)

	p, err := repo.GetBySKU(context.Background(), "KR-1")
	require.NoError(t, err)
	assert.Equal(t, "Beer tower", p.ProductDescription)
	assert.Equal(t, 12.5, p.ListPrice)
	assert.True(t, p.ADACompliance)
	assert.Equal(t, pq.StringArray{"a", "b"}, p.Tags)

	p, err = repo.GetBySKU(context.Background(), "KR-2")
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.ListPrice)
	assert.False(t, p.ADACompliance)
	assert.Nil(t, p.Tags)
}

func TestImportIsIdempotent(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewImportService(repo, nil, 0)
	ctx := context.Background()

	_, err := importCSV(t, svc, sampleCSV)
	require.NoError(t, err)
	first, _ := repo.ListAll(ctx)

	_, err = importCSV(t, svc, sampleCSV)
	require.NoError(t, err)
	second, _ := repo.ListAll(ctx)

	require.Len(t, second, len(first))
	for i := range first {
		first[i].CreatedAt, first[i].UpdatedAt = second[i].CreatedAt, second[i].UpdatedAt
		assert.Equal(t, first[i], second[i])
	}
}

func TestImportOverwritesEveryColumn(t *testing.T) {
	repo := repository.NewMemoryProductRepository(models.Product{
		SKU:    "KR-1",
		Family: "Legacy",
		Tags:   pq.StringArray{"old"},
	})
	svc := NewImportService(repo, nil, 0)

	_, err := importCSV(t, svc, "sku,list_price\nKR-1,99\n")
	require.NoError(t, err)

	p, err := repo.GetBySKU(context.Background(), "KR-1")
	require.NoError(t, err)
	assert.Equal(t, 99.0, p.ListPrice)
	assert.Empty(t, p.Family)
	assert.Nil(t, p.Tags)
}

func TestImportMalformedRowLeavesStoreUnchanged(t *testing.T) {
	repo := repository.NewMemoryProductRepository(models.Product{SKU: "KR-0"})
	svc := NewImportService(repo, nil, 0)
	ctx := context.Background()

	before, _ := repo.Count(ctx)
	_, err := importCSV(t, svc, "sku,a,b,c,d,e\nKR-1,1,2,3,4,5\nKR-2,1,2,3,4\nKR-3,1,2\n")
	require.Error(t, err)
	assert.Equal(t, apperr.KindParse, apperr.KindOf(err))

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	details, ok := appErr.Details.([]RowError)
	require.True(t, ok)
	require.Len(t, details, 2)
	assert.Equal(t, 3, details[0].Row)
	assert.Equal(t, 4, details[1].Row)

	after, _ := repo.Count(ctx)
	assert.Equal(t, before, after)
}

func TestImportAcceptsInchMarks(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewImportService(repo, nil, 0)

	result, err := importCSV(t, svc, "sku,product_description,spout_size_in,centers\n"+
		"KR-1,12\" swing spout faucet,12\",8\"\n")
	require.NoError(t, err)
	assert.Equal(t, 1, result.RecordsProcessed)

	p, err := repo.GetBySKU(context.Background(), "KR-1")
	require.NoError(t, err)
	assert.Equal(t, `12" swing spout faucet`, p.ProductDescription)
	assert.Equal(t, 12.0, p.SpoutSizeIn)
	assert.Equal(t, `8"`, p.Centers)
}

func TestImportEmptyInput(t *testing.T) {
	svc := NewImportService(repository.NewMemoryProductRepository(), nil, 0)

	for _, content := range []string{"", "sku,family\n", "\n\n"} {
		_, err := importCSV(t, svc, content)
		assert.True(t, apperr.Is(err, apperr.KindEmptyInput), "content=%q", content)
	}
}

func TestImportOnlyBlankRowsCommitsNothing(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewImportService(repo, nil, 0)

	result, err := importCSV(t, svc, "sku,family\n , \n,\n")
	require.NoError(t, err)
	assert.Equal(t, 0, result.RecordsProcessed)
	assert.Equal(t, 2, result.SkippedRows)
}

func TestImportRowFailureRollsBack(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	cause := errors.New("value too long for type character varying(64)")
	repo.UpsertHook = func(p *models.Product) error {
		if p.SKU == "KR-2" {
			return cause
		}
		return nil
	}
	svc := NewImportService(repo, nil, 0)

	_, err := importCSV(t, svc, sampleCSV)
	require.Error(t, err)
	assert.Equal(t, apperr.KindDatabase, apperr.KindOf(err))
	assert.ErrorIs(t, err, cause)

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "KR-2", appErr.SKU)

	count, _ := repo.Count(context.Background())
	assert.Zero(t, count)
}

func TestImportMissingSKU(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewImportService(repo, nil, 0)

	_, err := importCSV(t, svc, "sku,family\nKR-1,Sinks\n  ,Faucets\n")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, []RowError{{Row: 3, Message: "sku is required"}}, appErr.Details)

	count, _ := repo.Count(context.Background())
	assert.Zero(t, count)
}

func TestImportTrimsSKUAndHandlesBOM(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	svc := NewImportService(repo, nil, 0)

	_, err := importCSV(t, svc, "\ufeffsku,family\n KR-9 ,Sinks\n")
	require.NoError(t, err)

	p, err := repo.GetBySKU(context.Background(), "KR-9")
	require.NoError(t, err)
	assert.Equal(t, "Sinks", p.Family)
}

func TestImportRejectsOversizedUpload(t *testing.T) {
	svc := NewImportService(repository.NewMemoryProductRepository(), nil, 10)

	_, err := importCSV(t, svc, sampleCSV)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestImportRejectsInvalidEncoding(t *testing.T) {
	svc := NewImportService(repository.NewMemoryProductRepository(), nil, 0)

	_, err := importCSV(t, svc, "sku\n\xff\xfe\n")
	assert.True(t, apperr.Is(err, apperr.KindParse))
}

func TestImportXLSX(t *testing.T) {
	book := excelize.NewFile()
	defer book.Close()
	sheet := book.GetSheetName(0)
	require.NoError(t, book.SetSheetRow(sheet, "A1", &[]interface{}{"sku", "list_price", "images"}))
	require.NoError(t, book.SetSheetRow(sheet, "A2", &[]interface{}{"KR-10", "42", "a.png, b.png"}))
	require.NoError(t, book.SetSheetRow(sheet, "A4", &[]interface{}{"KR-11"}))
	buf, err := book.WriteToBuffer()
	require.NoError(t, err)

	repo := repository.NewMemoryProductRepository()
	svc := NewImportService(repo, nil, 0)

	result, err := svc.Import(context.Background(), "catalog.XLSX", buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordsProcessed)

	p, err := repo.GetBySKU(context.Background(), "KR-10")
	require.NoError(t, err)
	assert.Equal(t, 42.0, p.ListPrice)
	assert.Equal(t, pq.StringArray{"a.png", "b.png"}, p.Images)
}

func TestImportArchivesCommittedFiles(t *testing.T) {
	archiver := &recordingArchiver{}
	svc := NewImportService(repository.NewMemoryProductRepository(), archiver, 0)

	result, err := importCSV(t, svc, sampleCSV)
	require.NoError(t, err)
	assert.Equal(t, "imports/products.csv", result.ArchiveKey)

	_, err = importCSV(t, svc, "sku,a\nKR-1\n")
	require.Error(t, err)
	assert.Len(t, archiver.calls, 1)

	archiver.err = errors.New("s3 down")
	result, err = importCSV(t, svc, sampleCSV)
	require.NoError(t, err)
	assert.Empty(t, result.ArchiveKey)
}

func TestImportTemplate(t *testing.T) {
	svc := NewImportService(repository.NewMemoryProductRepository(), nil, 0)

	header, err := svc.Template()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(header), "sku,family,"))
	assert.True(t, strings.HasSuffix(string(header), ",tags\n"))
	assert.Equal(t, len(models.ProductSchema), strings.Count(string(header), ",")+1)
}
