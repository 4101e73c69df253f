package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Driver is implemented by every backend.
type Driver interface {
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Options selects and configures a backend.
type Options struct {
	Driver    string // "local" or "s3"
	LocalDir  string
	PublicURL string
	S3        S3Config
}

func New(ctx context.Context, opts Options) (Driver, error) {
	switch opts.Driver {
	case "", "local":
		return NewLocalStorage(opts.LocalDir, opts.PublicURL)
	case "s3":
		return NewS3Storage(ctx, opts.S3)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", opts.Driver)
	}
}

// NewKey builds a collision free object key such as "resumes/resume-<uuid>.pdf".
func NewKey(folder, prefix, ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return path.Join(folder, fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), ext))
}
