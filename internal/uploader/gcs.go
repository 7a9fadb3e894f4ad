package uploader

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	cfg "jozsa/internal/config"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// GCSUploader uploads run directories to Google Cloud Storage.
type GCSUploader struct {
	cfg    cfg.GCSConfig
	client *storage.Client
}

// NewGCS constructs an uploader from GCS configuration.
func NewGCS(cfg cfg.GCSConfig) (*GCSUploader, error) {
	if !cfg.Enabled {
		return &GCSUploader{cfg: cfg}, nil
	}
	opts := []option.ClientOption{}
	if strings.TrimSpace(cfg.CredentialsFile) != "" {
		opts = append(opts, option.WithCredentialsFile(strings.TrimSpace(cfg.CredentialsFile)))
	}
	client, err := storage.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create gcs client")
	}
	return &GCSUploader{cfg: cfg, client: client}, nil
}

// Enabled reports whether GCS uploads are configured.
func (u *GCSUploader) Enabled() bool {
	return u.cfg.Enabled
}

// UploadDir uploads a run directory and returns its GCS URL prefix.
func (u *GCSUploader) UploadDir(ctx context.Context, dir string) (string, error) {
	if !u.cfg.Enabled {
		return "", nil
	}
	if u.client == nil {
		return "", errors.New("gcs uploader is not initialized")
	}
	keyPrefix, err := uploadFiles(ctx, dir, u.cfg.Prefix, u.put)
	if err != nil {
		return "", errors.Wrapf(err, "upload %s to gcs", dir)
	}
	return fmt.Sprintf("gs://%s/%s", u.cfg.Bucket, keyPrefix), nil
}

func (u *GCSUploader) put(ctx context.Context, file *os.File, _ int64, key string) error {
	writer := u.client.Bucket(u.cfg.Bucket).Object(key).NewWriter(ctx)
	if _, err := io.Copy(writer, file); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}
