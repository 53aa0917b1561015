package registry

import (
	"context"
	"net/url"
	"path"
	"time"

	"github.com/stemlab/biobank-backend/internal/platform/storage"
	"github.com/stemlab/biobank-backend/internal/types"
)

// syncAttachment applies the fingerprint policy to one file field:
// a matching fingerprint keeps the stored file untouched, a differing one
// replaces it, and an absent fingerprint deletes whatever was stored.
// Returns whether the attachment changed.
func (imp *Importer) syncAttachment(ctx context.Context, att *types.Attachment, kind, enc, fileURL string) (bool, error) {
	if enc == "" {
		if att.Empty() {
			return false, nil
		}
		imp.log.Info("Deleting obsolete attachment", "kind", kind, "path", att.Path)
		if err := imp.store.Delete(ctx, att.Path); err != nil {
			return false, err
		}
		*att = types.Attachment{}
		return true, nil
	}

	if enc == att.Enc {
		return false, nil
	}

	body, err := imp.source.Download(ctx, fileURL)
	if err != nil {
		imp.log.Warn("Failed to download attachment", "kind", kind, "url", fileURL, "error", err)
		return false, err
	}
	defer body.Close()

	key := storage.NewKey(kind, attachmentFilename(fileURL), time.Now())
	if err := imp.store.Save(ctx, key, body); err != nil {
		return false, err
	}

	if att.Path != "" {
		if err := imp.store.Delete(ctx, att.Path); err != nil {
			return false, err
		}
	}

	att.Path = key
	att.Enc = enc
	return true, nil
}

func attachmentFilename(fileURL string) string {
	parsed, err := url.Parse(fileURL)
	if err != nil || parsed.Path == "" {
		return "attachment"
	}
	name := path.Base(parsed.Path)
	if name == "." || name == "/" {
		return "attachment"
	}
	return name
}
