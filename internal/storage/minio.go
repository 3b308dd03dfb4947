package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/talentform/docextract/internal/common"
	"github.com/talentform/docextract/internal/entity"
)

// MinioGateway implements Gateway against an S3-compatible store.
type MinioGateway struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func NewMinioGateway(cfg MinioConfig, logger *slog.Logger) (*MinioGateway, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init object store client: %w", err)
	}
	return &MinioGateway{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

// Head stats the object and maps store metadata to a SourceDocument.
// Owner and document identity ride on user metadata set at upload time; the
// fingerprint is the object's ETag.
func (g *MinioGateway) Head(ctx context.Context, key string) (*entity.SourceDocument, error) {
	info, err := g.client.StatObject(ctx, g.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			g.logger.Warn("storage.head.not_found", "key", key)
			return nil, fmt.Errorf("head %q: %w", key, common.ErrNotFound)
		}
		g.logger.Error("storage.head.error", "key", key, "error", err)
		return nil, fmt.Errorf("head %q: %w", key, err)
	}

	doc := &entity.SourceDocument{
		StoreKey:    key,
		OwnerID:     info.UserMetadata["Owner-Id"],
		DocumentID:  info.UserMetadata["Document-Id"],
		ContentType: info.ContentType,
		Size:        info.Size,
		Fingerprint: strings.Trim(info.ETag, `"`),
	}
	return doc, nil
}

func (g *MinioGateway) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := g.client.GetObject(ctx, g.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	defer func() {
		if cerr := obj.Close(); cerr != nil {
			g.logger.Warn("storage.get.close_error", "key", key, "error", cerr)
		}
	}()

	data, err := io.ReadAll(obj)
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return nil, fmt.Errorf("get %q: %w", key, common.ErrNotFound)
		}
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return data, nil
}

func (g *MinioGateway) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := g.client.PutObject(ctx, g.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		g.logger.Error("storage.put.error", "key", key, "bytes", len(data), "error", err)
		return fmt.Errorf("put %q: %w", key, err)
	}
	g.logger.Info("storage.put.ok", "key", key, "bytes", len(data))
	return nil
}

func (g *MinioGateway) Delete(ctx context.Context, key string) error {
	if err := g.client.RemoveObject(ctx, g.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		g.logger.Error("storage.delete.error", "key", key, "error", err)
		return fmt.Errorf("delete %q: %w", key, err)
	}
	g.logger.Info("storage.delete.ok", "key", key)
	return nil
}
