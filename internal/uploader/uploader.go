// Package uploader copies run directories to object storage.
package uploader

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	cfg "jozsa/internal/config"
	"jozsa/internal/util"
)

// Uploader pushes a run directory to remote storage.
type Uploader interface {
	Enabled() bool
	UploadDir(ctx context.Context, dir string) (string, error)
}

// NoopUploader discards uploads.
type NoopUploader struct{}

// Enabled implements Uploader.
func (NoopUploader) Enabled() bool {
	return false
}

// UploadDir implements Uploader.
func (NoopUploader) UploadDir(context.Context, string) (string, error) {
	return "", nil
}

// New picks the configured backend: GCS first, then S3, else a no-op.
func New(storage cfg.StorageConfig) (Uploader, error) {
	if storage.GCS.Enabled {
		up, err := NewGCS(storage.GCS)
		if err != nil {
			return nil, err
		}
		return up, nil
	}
	if storage.S3.Enabled {
		up, err := NewS3(storage.S3)
		if err != nil {
			return nil, err
		}
		return up, nil
	}
	return NoopUploader{}, nil
}

type putFunc func(ctx context.Context, file *os.File, size int64, key string) error

// objectPrefix joins a configured prefix and a run directory name into a key prefix.
func objectPrefix(prefix, dir string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return prefix + filepath.Base(dir) + "/"
}

// uploadFiles sends every regular file directly inside dir to put and
// returns the key prefix used.
func uploadFiles(ctx context.Context, dir, prefix string, put putFunc) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	keyPrefix := objectPrefix(prefix, dir)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := uploadOne(ctx, filepath.Join(dir, entry.Name()), keyPrefix+entry.Name(), put); err != nil {
			return "", err
		}
	}
	return keyPrefix, nil
}

func uploadOne(ctx context.Context, path, key string, put putFunc) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer util.CloseWithErr(file, "upload file")
	info, err := file.Stat()
	if err != nil {
		return err
	}
	return put(ctx, file, info.Size(), key)
}
