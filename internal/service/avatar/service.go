package avatar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"careshift/internal/config"
	"careshift/internal/repository"
)

var (
	ErrStorageUnavailable = errors.New("object storage is not available")
	ErrUnsupportedType    = errors.New("unsupported image type")
)

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type Service interface {
	Upload(ctx context.Context, userID uuid.UUID, filename string, size int64, reader io.Reader) (string, error)
}

type service struct {
	userRepo    repository.UserRepository
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(userRepo repository.UserRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		userRepo:    userRepo,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) Upload(ctx context.Context, userID uuid.UUID, filename string, size int64, reader io.Reader) (string, error) {
	if s.minioClient == nil {
		return "", ErrStorageUnavailable
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return "", ErrUnsupportedType
	}

	objectName := fmt.Sprintf("avatars/%s%s", userID, ext)

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	photoURL := fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, objectName)

	if err := s.userRepo.SetPhotoURL(ctx, userID, photoURL); err != nil {
		return "", err
	}

	return photoURL, nil
}
