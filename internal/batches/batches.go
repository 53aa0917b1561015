// Package batches imports batch and vial biosamples ids from the
// tab-separated export the biosamples archive provides.
package batches

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/platform/logger"
	"github.com/stemlab/biobank-backend/internal/repos"
)

// Column positions in the archive export.
const (
	colVialBiosamplesID     = 0
	colCelllineBiosamplesID = 3
	colBatchBiosamplesID    = 8

	columnCount = 9
)

type Importer struct {
	db        *gorm.DB
	celllines repos.CelllineRepo
	batches   repos.BatchRepo
	log       *logger.Logger
}

func NewImporter(db *gorm.DB, celllines repos.CelllineRepo, batches repos.BatchRepo, log *logger.Logger) *Importer {
	return &Importer{
		db:        db,
		celllines: celllines,
		batches:   batches,
		log:       log.With("component", "BatchImporter"),
	}
}

// RunFile imports one export file.
func (imp *Importer) RunFile(ctx context.Context, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open batches file: %w", err)
	}
	defer f.Close()

	return imp.Run(ctx, f)
}

// Run walks the export row by row. Rows referencing cell lines that have
// not been imported yet are skipped; batches and aliquots are only ever
// added, never removed.
func (imp *Importer) Run(ctx context.Context, r io.Reader) error {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	// Header row.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("read batches header: %w", err)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read batches row: %w", err)
		}
		if len(row) < columnCount {
			imp.log.Warn("Skipping short row", "columns", len(row))
			continue
		}

		if err := imp.importRow(ctx, row[colVialBiosamplesID], row[colCelllineBiosamplesID], row[colBatchBiosamplesID]); err != nil {
			return err
		}
	}
}

func (imp *Importer) importRow(ctx context.Context, vialBiosamplesID, celllineBiosamplesID, batchBiosamplesID string) error {
	return imp.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		line, err := imp.celllines.GetByBiosamplesID(ctx, tx, celllineBiosamplesID)
		if err != nil {
			return err
		}
		if line == nil {
			return nil
		}

		batch, created, err := imp.batches.GetOrCreateBatch(ctx, tx, line.ID, batchBiosamplesID)
		if err != nil {
			return err
		}
		if created {
			imp.log.Info("Created batch", "batch", batch.BatchID, "cellline", line.Name)
		}

		aliquot, created, err := imp.batches.GetOrCreateAliquot(ctx, tx, batch.ID, vialBiosamplesID)
		if err != nil {
			return err
		}
		if created {
			imp.log.Info("Created aliquot", "aliquot", aliquot.BiosamplesID, "batch", batch.BatchID, "cellline", line.Name)
		}

		return nil
	})
}
