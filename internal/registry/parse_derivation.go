package registry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/types"
)

func (imp *Importer) parseDerivation(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	cellType, err := imp.res.CellType(ctx, tx, v.Text("primary_celltype_name"), v.Text("primary_celltype_ont_id"))
	if err != nil {
		return false, err
	}

	_, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.CelllineDerivation {
		return &types.CelllineDerivation{ID: uuid.New(), CelllineID: line.ID}
	}, func(d *types.CelllineDerivation) {
		if cellType != nil {
			d.PrimaryCellTypeID = &cellType.ID
		} else {
			d.PrimaryCellTypeID = nil
		}
		d.PrimaryCellTypeNotNormalised = v.String("primary_celltype_name_freetext")
		d.PrimaryCellline = v.String("primary_cell_line_name")
		d.PrimaryCelllineVendor = v.String("primary_cell_line_vendor")

		// "0" is the registry placeholder for an unselected stage.
		if stage := v.Text("dev_stage_primary_cell"); stage != "" && stage != "0" {
			d.PrimaryCellDevelopmentalStage = stage
		} else {
			d.PrimaryCellDevelopmentalStage = ""
		}

		d.TissueProcurementLocation = v.String("location_primary_tissue_procurement")
		d.TissueCollectionDate = v.String("collection_date")
		d.ReprogrammingPassageNumber = v.String("passage_number_reprogrammed")
		d.SelectionCriteriaForClones = v.String("selection_of_clones")

		d.XenoFreeConditions = v.Bool("derivation_xeno_graft_free_flag")
		d.DerivedUnderGmp = v.Bool("derivation_gmp_ips_flag")
		d.AvailableAsClinicalGrade = v.Bool("available_clinical_grade_ips_flag")
	})
	if err != nil {
		return false, err
	}

	return created || changed, nil
}
