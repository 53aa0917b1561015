package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
)

// FileStore persists registry attachments (vector maps, expression data and
// the like) under stable keys. Keys are produced by NewKey and stored on the
// owning row together with the upstream fingerprint.
type FileStore interface {
	Save(ctx context.Context, key string, file io.Reader) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// NewKey builds an object key of the form
// <kind>/<yyyy>/<mm>/<dd>/<uuid>/<filename>.
func NewKey(kind, filename string, now time.Time) string {
	return path.Join(
		kind,
		fmt.Sprintf("%04d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
		fmt.Sprintf("%02d", now.Day()),
		uuid.New().String(),
		filename,
	)
}
