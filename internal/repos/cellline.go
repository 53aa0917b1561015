package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/platform/logger"
	"github.com/stemlab/biobank-backend/internal/types"
)

type CelllineRepo interface {
	GetByBiosamplesID(ctx context.Context, tx *gorm.DB, biosamplesID string) (*types.Cellline, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Cellline, error)
	ListBiosamplesIDs(ctx context.Context, tx *gorm.DB) ([]string, error)
	Save(ctx context.Context, tx *gorm.DB, line *types.Cellline) error
}

type celllineRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCelllineRepo(db *gorm.DB, baseLog *logger.Logger) CelllineRepo {
	repoLog := baseLog.With("repo", "CelllineRepo")
	return &celllineRepo{db: db, log: repoLog}
}

func (cr *celllineRepo) GetByBiosamplesID(ctx context.Context, tx *gorm.DB, biosamplesID string) (*types.Cellline, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return GetBy[types.Cellline](ctx, transaction, map[string]interface{}{"biosamples_id": biosamplesID})
}

func (cr *celllineRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Cellline, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return GetBy[types.Cellline](ctx, transaction, map[string]interface{}{"name": name})
}

func (cr *celllineRepo) ListBiosamplesIDs(ctx context.Context, tx *gorm.DB) ([]string, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var ids []string
	err := transaction.WithContext(ctx).
		Model(&types.Cellline{}).
		Order("biosamples_id").
		Pluck("biosamples_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (cr *celllineRepo) Save(ctx context.Context, tx *gorm.DB, line *types.Cellline) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Save(line).Error
}

type DonorRepo interface {
	GetByBiosamplesID(ctx context.Context, tx *gorm.DB, biosamplesID string) (*types.Donor, error)
}

type donorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDonorRepo(db *gorm.DB, baseLog *logger.Logger) DonorRepo {
	repoLog := baseLog.With("repo", "DonorRepo")
	return &donorRepo{db: db, log: repoLog}
}

func (dr *donorRepo) GetByBiosamplesID(ctx context.Context, tx *gorm.DB, biosamplesID string) (*types.Donor, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	return GetBy[types.Donor](ctx, transaction, map[string]interface{}{"biosamples_id": biosamplesID})
}

type BatchRepo interface {
	GetOrCreateBatch(ctx context.Context, tx *gorm.DB, lineID uuid.UUID, batchID string) (*types.CelllineBatch, bool, error)
	GetOrCreateAliquot(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, biosamplesID string) (*types.CelllineAliquot, bool, error)
	ListByCellline(ctx context.Context, tx *gorm.DB, lineID uuid.UUID) ([]types.CelllineBatch, error)
}

type batchRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBatchRepo(db *gorm.DB, baseLog *logger.Logger) BatchRepo {
	repoLog := baseLog.With("repo", "BatchRepo")
	return &batchRepo{db: db, log: repoLog}
}

func (br *batchRepo) GetOrCreateBatch(ctx context.Context, tx *gorm.DB, lineID uuid.UUID, batchID string) (*types.CelllineBatch, bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	return GetOrCreate(ctx, transaction, map[string]interface{}{
		"cell_line_id": lineID,
		"batch_id":     batchID,
	}, func() *types.CelllineBatch {
		return &types.CelllineBatch{ID: uuid.New(), CelllineID: lineID, BatchID: batchID, BiosamplesID: batchID}
	})
}

func (br *batchRepo) GetOrCreateAliquot(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, biosamplesID string) (*types.CelllineAliquot, bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	return GetOrCreate(ctx, transaction, map[string]interface{}{
		"batch_id":      batchID,
		"biosamples_id": biosamplesID,
	}, func() *types.CelllineAliquot {
		return &types.CelllineAliquot{ID: uuid.New(), BatchID: batchID, BiosamplesID: biosamplesID}
	})
}

func (br *batchRepo) ListByCellline(ctx context.Context, tx *gorm.DB, lineID uuid.UUID) ([]types.CelllineBatch, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	return ListBy[types.CelllineBatch](ctx, transaction, map[string]interface{}{"cell_line_id": lineID}, "batch_id")
}
