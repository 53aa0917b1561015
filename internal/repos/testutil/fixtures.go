package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/types"
)

func SeedDonor(tb testing.TB, ctx context.Context, tx *gorm.DB, biosamplesID string) *types.Donor {
	tb.Helper()
	d := &types.Donor{
		ID:           uuid.New(),
		BiosamplesID: biosamplesID,
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed donor: %v", err)
	}
	return d
}

func SeedCellline(tb testing.TB, ctx context.Context, tx *gorm.DB, biosamplesID, name string) *types.Cellline {
	tb.Helper()
	donor := SeedDonor(tb, ctx, tx, "SAMD-"+biosamplesID)
	c := &types.Cellline{
		ID:           uuid.New(),
		BiosamplesID: biosamplesID,
		Name:         name,
		DonorID:      &donor.ID,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed cell line: %v", err)
	}
	c.Donor = donor
	return c
}

func SeedDisease(tb testing.TB, ctx context.Context, tx *gorm.DB, xpurl, name string) *types.Disease {
	tb.Helper()
	d := &types.Disease{
		ID:    uuid.New(),
		Xpurl: xpurl,
		Name:  name,
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed disease: %v", err)
	}
	return d
}
