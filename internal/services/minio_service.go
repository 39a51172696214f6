package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-feels-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// PosterResolver turns a stored poster reference into a URL a browser can load.
type PosterResolver interface {
	ResolvePosterURL(ctx context.Context, ref string) string
}

// PassthroughPosters returns references unchanged. Used when no object
// storage is configured.
type PassthroughPosters struct{}

func (PassthroughPosters) ResolvePosterURL(_ context.Context, ref string) string {
	return ref
}

// PosterService resolves poster references that are object keys in a MinIO
// bucket. Absolute http(s) references are returned as is.
type PosterService struct {
	client        *minio.Client
	bucket        string
	publicURL     string
	presign       bool
	presignExpiry time.Duration
	logger        *logrus.Logger
}

func NewPosterService(cfg *config.MinIOConfig, logger *logrus.Logger) (*PosterService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http://"
		if cfg.UseSSL {
			scheme = "https://"
		}
		publicURL = scheme + endpoint + "/" + cfg.BucketName
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
		"presign":  cfg.PresignPosters,
	}).Info("MinIO client initialized successfully")

	service := &PosterService{
		client:        minioClient,
		bucket:        cfg.BucketName,
		publicURL:     strings.TrimSuffix(publicURL, "/"),
		presign:       cfg.PresignPosters,
		presignExpiry: cfg.PresignExpiry,
		logger:        logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := service.checkBucket(ctx); err != nil {
		logger.WithError(err).Warn("Poster bucket is not reachable, but continuing...")
	}

	return service, nil
}

func (s *PosterService) checkBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}

func (s *PosterService) ResolvePosterURL(ctx context.Context, ref string) string {
	key := objectKey(ref, s.bucket)
	if key == "" {
		return ref
	}

	if !s.presign {
		return s.publicURL + "/" + key
	}

	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.presignExpiry, nil)
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", key).Warn("Failed to presign poster URL")
		return ref
	}
	return presignedURL.String()
}

// objectKey returns the bucket object key a poster reference points to, or
// "" when the reference is already an absolute URL or empty.
func objectKey(ref, bucket string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ""
	}
	ref = strings.TrimPrefix(ref, "/")
	return strings.TrimPrefix(ref, bucket+"/")
}
