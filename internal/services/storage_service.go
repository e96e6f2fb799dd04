// internal/services/storage_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/krowne/krownebase/internal/config"
	"github.com/krowne/krownebase/internal/utils"
)

// ImportArchiver keeps a copy of every committed import file.
type ImportArchiver interface {
	ArchiveImport(ctx context.Context, filename string, data []byte) (*ArchiveResult, error)
}

type ArchiveResult struct {
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	Checksum string `json:"checksum"`
	Stored   bool   `json:"stored"`
}

type StorageService struct {
	s3Client s3iface.S3API
	bucket   string
	prefix   string
	now      func() time.Time
}

func NewStorageService(cfg config.AWSConfig) (*StorageService, error) {
	s := &StorageService{
		bucket: cfg.S3Bucket,
		prefix: strings.Trim(cfg.ArchivePrefix, "/"),
		now:    time.Now,
	}

	if cfg.AccessKeyID == "" {
		// Archiving is skipped for local development
		return s, nil
	}

	// Create AWS session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	s.s3Client = s3.New(sess)
	return s, nil
}

// NewStorageServiceWithClient is used when the S3 client is built elsewhere.
func NewStorageServiceWithClient(client s3iface.S3API, bucket, prefix string) *StorageService {
	return &StorageService{
		s3Client: client,
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
		now:      time.Now,
	}
}

func (s *StorageService) Enabled() bool {
	return s.s3Client != nil
}

func (s *StorageService) ArchiveImport(ctx context.Context, filename string, data []byte) (*ArchiveResult, error) {
	key := s.generateKey(filename)
	result := &ArchiveResult{Key: key, Size: int64(len(data)), Checksum: utils.SHA256Hex(data)}

	if s.s3Client == nil {
		logrus.WithField("key", key).Debug("Import archive skipped, S3 not configured")
		return result, nil
	}

	_, err := s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentTypeFor(filename)),
		ContentLength: aws.Int64(int64(len(data))),
		Metadata:      map[string]*string{"sha256": aws.String(result.Checksum)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	result.Stored = true
	return result, nil
}

// generateKey builds <prefix>/<yyyy>/<mm>/<yyyymmdd-hhmmss>_<id><ext>.
func (s *StorageService) generateKey(originalName string) string {
	now := s.now().UTC()
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("%s_%s%s", now.Format("20060102-150405"), uuid.New().String()[:8], ext)

	key := fmt.Sprintf("%s/%s", now.Format("2006/01"), name)
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}
	return key
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}
