// internal/services/import_service.go
package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/krowne/krownebase/internal/apperr"
	"github.com/krowne/krownebase/internal/models"
	"github.com/krowne/krownebase/internal/observability"
	"github.com/krowne/krownebase/internal/repository"
)

const importSuccessMessage = "CSV uploaded successfully"

type ImportService struct {
	repo     repository.ProductRepository
	archiver ImportArchiver
	maxBytes int64
}

type ImportResult struct {
	Message          string `json:"message"`
	RecordsProcessed int    `json:"recordsProcessed"`
	SkippedRows      int    `json:"skippedRows"`
	ArchiveKey       string `json:"archiveKey,omitempty"`
}

// NewImportService builds the ingestion pipeline. archiver may be nil.
func NewImportService(repo repository.ProductRepository, archiver ImportArchiver, maxBytes int64) *ImportService {
	return &ImportService{
		repo:     repo,
		archiver: archiver,
		maxBytes: maxBytes,
	}
}

// Import reads an uploaded file and upserts every non-blank row inside a
// single transaction. Either every row is applied or none is.
func (s *ImportService) Import(ctx context.Context, filename string, r io.Reader) (*ImportResult, error) {
	start := time.Now()
	result, err := s.importFile(ctx, filename, r)
	observability.ImportDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		observability.ImportsTotal.WithLabelValues(string(apperr.KindOf(err))).Inc()
		logrus.WithFields(logrus.Fields{
			"file": filename,
			"kind": apperr.KindOf(err),
		}).WithError(err).Warn("Product import failed")
		return nil, err
	}

	observability.ImportsTotal.WithLabelValues("success").Inc()
	observability.ImportedRowsTotal.Add(float64(result.RecordsProcessed))
	logrus.WithFields(logrus.Fields{
		"file":      filename,
		"processed": result.RecordsProcessed,
		"skipped":   result.SkippedRows,
		"duration":  time.Since(start).Milliseconds(),
	}).Info("Product import committed")
	return result, nil
}

func (s *ImportService) importFile(ctx context.Context, filename string, r io.Reader) (*ImportResult, error) {
	data, err := s.readLimited(r)
	if err != nil {
		return nil, err
	}

	rows, err := ReadImportRows(data, FormatFromFilename(filename))
	if err != nil {
		return nil, err
	}

	result, err := s.Ingest(ctx, rows)
	if err != nil {
		return nil, err
	}

	if s.archiver != nil {
		archived, err := s.archiver.ArchiveImport(ctx, filename, data)
		if err != nil {
			// the import is already committed
			logrus.WithError(err).WithField("file", filename).Warn("Failed to archive import file")
		} else if archived.Stored {
			result.ArchiveKey = archived.Key
		}
	}

	return result, nil
}

func (s *ImportService) readLimited(r io.Reader) ([]byte, error) {
	if s.maxBytes <= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindParse, "read_upload", err)
		}
		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindParse, "read_upload", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, apperr.Validation("read_upload",
			fmt.Sprintf("file exceeds the %d byte upload limit", s.maxBytes), nil)
	}
	return data, nil
}

// Ingest validates and upserts already parsed rows. Rows whose values are
// all blank are skipped and not counted.
func (s *ImportService) Ingest(ctx context.Context, rows []ImportRow) (*ImportResult, error) {
	if len(rows) == 0 {
		return nil, apperr.New(apperr.KindEmptyInput, "import", "No data found in CSV")
	}

	var missing []RowError
	skipped := 0
	for _, row := range rows {
		if models.IsBlankRow(row.Values) {
			skipped++
			continue
		}
		if strings.TrimSpace(row.Values["sku"]) == "" {
			missing = append(missing, RowError{Row: row.Line, Message: "sku is required"})
		}
	}
	if len(missing) > 0 {
		return nil, apperr.Validation("import",
			fmt.Sprintf("%d row(s) are missing a SKU", len(missing)), missing)
	}

	processed := 0
	err := s.repo.WithTx(ctx, func(tx repository.ProductRepository) error {
		for _, row := range rows {
			if models.IsBlankRow(row.Values) {
				continue
			}

			product := models.ProductFromRow(row.Values)
			product.SKU = strings.TrimSpace(product.SKU)

			if _, err := tx.Upsert(ctx, product); err != nil {
				return &apperr.Error{
					Kind:    apperr.KindDatabase,
					Op:      "import",
					SKU:     product.SKU,
					Message: fmt.Sprintf("Database error occurred at row %d", row.Line),
					Details: RowError{Row: row.Line, Message: err.Error()},
					Err:     err,
				}
			}
			processed++
		}
		return nil
	})
	if err != nil {
		if apperr.Is(err, apperr.KindDatabase) {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.KindDatabase, "import", err)
	}

	return &ImportResult{
		Message:          importSuccessMessage,
		RecordsProcessed: processed,
		SkippedRows:      skipped,
	}, nil
}

// Template returns a CSV header row listing every recognised column in
// schema order.
func (s *ImportService) Template() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(models.ProductColumns()); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
