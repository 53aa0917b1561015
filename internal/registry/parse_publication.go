package registry

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/types"
)

// parsePublications keeps the registration reference in step with the
// record: present references are upserted, a retracted reference deletes
// the stored publication.
func (imp *Importer) parsePublications(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	pubmedID := v.Int("registration_reference_publication_pubmed_id")
	title := v.Text("registration_reference")

	if pubmedID == nil || title == "" {
		return deleteByCellline[types.CelllinePublication](ctx, tx, line.ID)
	}

	referenceID := strconv.Itoa(*pubmedID)

	_, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
		"reference_id": referenceID,
	}, func() *types.CelllinePublication {
		return &types.CelllinePublication{ID: uuid.New(), CelllineID: line.ID, ReferenceID: referenceID}
	}, func(p *types.CelllinePublication) {
		p.ReferenceType = "pubmed"
		p.ReferenceURL = types.PubmedURL(*pubmedID)
		p.ReferenceTitle = title
	})
	if err != nil {
		return false, err
	}

	return created || changed, nil
}
