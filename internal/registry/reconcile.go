package registry

import (
	"context"

	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/platform/logger"
)

// Reconciler brings a parent's persisted child set into agreement with the
// freshly parsed payload. Parse upserts one incoming item and reports
// whether it created or changed a record; children whose keys are absent
// from the new payload are deleted. The same engine drives diseases,
// disease variants, culture supplements and reprogramming factor sets.
type Reconciler[S any, C any, K comparable] struct {
	Label string
	Log   *logger.Logger

	// Old is the currently persisted child set.
	Old []C
	// Items is the incoming payload.
	Items []S

	Key func(*C) K
	// Parse upserts one incoming item. A nil record (with nil error) means
	// the item carries no usable data and is skipped; an error skips the
	// item without aborting its siblings.
	Parse  func(S) (*C, bool, error)
	Delete func(*C) error
}

// Run returns whether anything changed: membership differed, or a field of
// a surviving child was rewritten.
func (r *Reconciler[S, C, K]) Run() (bool, error) {
	dirty := false
	newKeys := make(map[K]bool, len(r.Items))

	for _, item := range r.Items {
		rec, changed, err := r.Parse(item)
		if err != nil {
			r.Log.Warn("Skipping unparsable record", "label", r.Label, "error", err)
			continue
		}
		if rec == nil {
			continue
		}
		newKeys[r.Key(rec)] = true
		if changed {
			dirty = true
		}
	}

	for i := range r.Old {
		old := &r.Old[i]
		if newKeys[r.Key(old)] {
			continue
		}
		r.Log.Info("Deleting obsolete record", "label", r.Label)
		if err := r.Delete(old); err != nil {
			return dirty, err
		}
		dirty = true
	}

	return dirty, nil
}

// syncSet replaces a many-to-many association when its membership changed,
// reporting whether it did. Membership is compared by key; field updates on
// the member rows themselves are the resolver's business.
func syncSet[T any](ctx context.Context, tx *gorm.DB, owner interface{}, assoc string, want []*T, key func(*T) string) (bool, error) {
	var current []*T
	if err := tx.WithContext(ctx).Model(owner).Association(assoc).Find(&current); err != nil {
		return false, err
	}

	currentKeys := make(map[string]bool, len(current))
	for _, c := range current {
		currentKeys[key(c)] = true
	}
	wantKeys := make(map[string]bool, len(want))
	for _, w := range want {
		wantKeys[key(w)] = true
	}

	same := len(currentKeys) == len(wantKeys)
	if same {
		for k := range wantKeys {
			if !currentKeys[k] {
				same = false
				break
			}
		}
	}
	if same {
		return false, nil
	}

	if err := tx.WithContext(ctx).Model(owner).Association(assoc).Replace(want); err != nil {
		return false, err
	}
	return true, nil
}
