package registry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/types"
)

func (imp *Importer) parseCharacterization(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	certificate := v.NullBool("certificate_of_analysis_flag")
	certificatePassage := v.String("certificate_of_analysis_passage_number")
	virology := v.NullBool("virology_screening_flag")
	hiv1 := v.String("virology_screening_hiv_1_result")
	hiv2 := v.String("virology_screening_hiv_2_result")
	hepB := v.String("virology_screening_hbv_result")
	hepC := v.String("virology_screening_hcv_result")
	mycoplasma := v.String("virology_screening_mycoplasma_result")

	answered := certificate != nil || certificatePassage != nil || virology != nil ||
		hiv1 != nil || hiv2 != nil || hepB != nil || hepC != nil || mycoplasma != nil

	_, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.CelllineCharacterization {
		return &types.CelllineCharacterization{ID: uuid.New(), CelllineID: line.ID}
	}, func(c *types.CelllineCharacterization) {
		if !answered {
			return
		}
		c.CertificateOfAnalysis = certificate
		c.CertificateOfAnalysisPassageNumber = certificatePassage
		c.VirologyScreening = virology
		c.ScreeningHiv1 = hiv1
		c.ScreeningHiv2 = hiv2
		c.ScreeningHepatitisB = hepB
		c.ScreeningHepatitisC = hepC
		c.ScreeningMycoplasma = mycoplasma
	})
	if err != nil {
		return false, err
	}

	return created || changed, nil
}

// parsePluritest keeps the pluritest record only while the registry flag is
// present; a retracted flag deletes it.
func (imp *Importer) parsePluritest(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	if !v.Has("characterisation_pluritest_flag") {
		return deleteByCellline[types.CelllineCharacterizationPluritest](ctx, tx, line.ID)
	}

	_, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.CelllineCharacterizationPluritest {
		return &types.CelllineCharacterizationPluritest{ID: uuid.New(), CelllineID: line.ID}
	}, func(p *types.CelllineCharacterizationPluritest) {
		p.PluritestFlag = v.NullBool("characterisation_pluritest_flag")
		p.PluripotencyScore = v.String("characterisation_pluritest_data", "pluripotency_score")
		p.NoveltyScore = v.String("characterisation_pluritest_data", "novelty_score")
		p.MicroarrayURL = v.String("characterisation_pluritest_data", "microarray_url")
	})
	if err != nil {
		return false, err
	}

	return created || changed, nil
}
