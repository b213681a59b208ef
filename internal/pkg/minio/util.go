package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
)

var errNotInitialized = errors.New("minio client is not initialized")

// ReportStore 报表导出桶的读写
type ReportStore struct {
	client *minio.Client
	bucket string
}

// NewReportStore 使用 Init 建立的全局客户端
func NewReportStore() *ReportStore {
	return &ReportStore{client: Client, bucket: ReportBucket}
}

// UploadFile 返回对象在桶内的 key
func (s *ReportStore) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if s.client == nil {
		return "", errNotInitialized
	}

	info, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectName, err)
	}
	return info.Key, nil
}

// PresignedGetURL 生成限时下载链接，浏览器打开时按附件下载
func (s *ReportStore) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	if s.client == nil {
		return "", errNotInitialized
	}

	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", path.Base(objectName)))

	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, expiry, params)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", objectName, err)
	}
	return u.String(), nil
}
