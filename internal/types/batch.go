package types

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CelllineBatch is keyed by (cell line, batch id). Batches and aliquots are
// additive: the batch importer never deletes them.
type CelllineBatch struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex:idx_cellline_batch,priority:1" json:"cell_line_id"`

	BatchID      string `gorm:"column:batch_id;not null;uniqueIndex:idx_cellline_batch,priority:2" json:"batch_id"`
	BiosamplesID string `gorm:"column:biosamples_id" json:"biosamples_id"`

	Aliquots []*CelllineAliquot `gorm:"foreignKey:BatchID;references:ID" json:"aliquots,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (CelllineBatch) TableName() string { return "cellline_batch" }

type CelllineAliquot struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BatchID uuid.UUID `gorm:"type:uuid;column:batch_id;not null;uniqueIndex:idx_cellline_aliquot,priority:1" json:"batch_id"`

	BiosamplesID string `gorm:"column:biosamples_id;not null;uniqueIndex:idx_cellline_aliquot,priority:2" json:"biosamples_id"`
}

func (CelllineAliquot) TableName() string { return "cellline_aliquot" }

// LatestBatch returns the batch whose id has the highest numeric suffix
// (P3 < P12); ids with equal numeric parts fall back to lexicographic
// order. Returns nil for an empty slice.
func LatestBatch(batches []CelllineBatch) *CelllineBatch {
	var latest *CelllineBatch
	for i := range batches {
		b := &batches[i]
		if latest == nil || batchIDLess(latest.BatchID, b.BatchID) {
			latest = b
		}
	}
	return latest
}

func batchIDLess(a, b string) bool {
	na, oka := batchIDNumber(a)
	nb, okb := batchIDNumber(b)
	if oka && okb && na != nb {
		return na < nb
	}
	return a < b
}

func batchIDNumber(id string) (int, bool) {
	trimmed := strings.TrimLeftFunc(id, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if trimmed == "" {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return n, true
}
