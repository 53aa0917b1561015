package registry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/types"
)

// parseMarkers imports the undifferentiated-state marker families: the
// imune/RT-PCR/FACS result sets, the morphology record and the expression
// profile.
func (imp *Importer) parseMarkers(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	dirty := false

	imune, err := parseResultMarker(imp, ctx, tx, v, line.ID,
		"undiff_immstain_marker", "undiff_immstain_marker_passage_number",
		func() *types.MarkerImune {
			return &types.MarkerImune{ID: uuid.New(), CelllineID: line.ID}
		},
		func(m *types.MarkerImune, passage *string) { m.PassageNumber = passage },
		func(m *types.MarkerImune) uuid.UUID { return m.ID },
		func(markerID uuid.UUID, name string) *types.MarkerImuneMolecule {
			return &types.MarkerImuneMolecule{ID: uuid.New(), MarkerID: markerID, Molecule: name}
		},
		func(m *types.MarkerImuneMolecule, result string) { m.Result = result })
	if err != nil {
		return dirty, err
	}
	dirty = dirty || imune

	rtpcr, err := parseResultMarker(imp, ctx, tx, v, line.ID,
		"undiff_rtpcr_marker", "undiff_rtpcr_marker_passage_number",
		func() *types.MarkerRtPcr {
			return &types.MarkerRtPcr{ID: uuid.New(), CelllineID: line.ID}
		},
		func(m *types.MarkerRtPcr, passage *string) { m.PassageNumber = passage },
		func(m *types.MarkerRtPcr) uuid.UUID { return m.ID },
		func(markerID uuid.UUID, name string) *types.MarkerRtPcrMolecule {
			return &types.MarkerRtPcrMolecule{ID: uuid.New(), MarkerID: markerID, Molecule: name}
		},
		func(m *types.MarkerRtPcrMolecule, result string) { m.Result = result })
	if err != nil {
		return dirty, err
	}
	dirty = dirty || rtpcr

	facs, err := parseResultMarker(imp, ctx, tx, v, line.ID,
		"undiff_facs_marker", "undiff_facs_marker_passage_number",
		func() *types.MarkerFacs {
			return &types.MarkerFacs{ID: uuid.New(), CelllineID: line.ID}
		},
		func(m *types.MarkerFacs, passage *string) { m.PassageNumber = passage },
		func(m *types.MarkerFacs) uuid.UUID { return m.ID },
		func(markerID uuid.UUID, name string) *types.MarkerFacsMolecule {
			return &types.MarkerFacsMolecule{ID: uuid.New(), MarkerID: markerID, Molecule: name}
		},
		func(m *types.MarkerFacsMolecule, result string) { m.Result = result })
	if err != nil {
		return dirty, err
	}
	dirty = dirty || facs

	morphology, err := imp.parseMarkerMorphology(ctx, tx, v, line)
	if err != nil {
		return dirty, err
	}
	dirty = dirty || morphology

	profile, err := imp.parseMarkerExpressionProfile(ctx, tx, v, line)
	if err != nil {
		return dirty, err
	}

	return dirty || profile, nil
}

// parseResultMarker drives one family of per-molecule marker results; the
// three families share the exact same shape and differ only in their model
// types.
func parseResultMarker[M any, R any](
	imp *Importer,
	ctx context.Context,
	tx *gorm.DB,
	v Values,
	lineID uuid.UUID,
	listKey, passageKey string,
	buildMarker func() *M,
	setPassage func(*M, *string),
	markerID func(*M) uuid.UUID,
	buildMolecule func(uuid.UUID, string) *R,
	setResult func(*R, string),
) (bool, error) {
	if !v.Has(listKey) {
		return false, nil
	}

	marker, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": lineID,
	}, buildMarker, func(m *M) {
		setPassage(m, v.String(passageKey))
	})
	if err != nil {
		return false, err
	}
	dirty := created || changed

	for _, encoded := range v.StringList(listKey) {
		name, result, err := DecodeMarkerResult(encoded)
		if err != nil {
			imp.log.Warn("Skipping invalid marker result", "value", encoded, "error", err)
			continue
		}

		_, moleculeCreated, moleculeChanged, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
			"marker_id": markerID(marker),
			"molecule":  name,
		}, func() *R {
			return buildMolecule(markerID(marker), name)
		}, func(r *R) {
			setResult(r, result)
		})
		if err != nil {
			return dirty, err
		}
		if moleculeCreated || moleculeChanged {
			dirty = true
		}
	}

	return dirty, nil
}

func (imp *Importer) parseMarkerMorphology(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	passage := v.String("undiff_morphology_markers_passage_number")
	description := v.String("undiff_morphology_markers_description")
	dataURL := v.String("undiff_morphology_markers_enc_filename")

	if passage == nil && description == nil && dataURL == nil {
		return deleteByCellline[types.MarkerMorphology](ctx, tx, line.ID)
	}

	_, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.MarkerMorphology {
		return &types.MarkerMorphology{ID: uuid.New(), CelllineID: line.ID}
	}, func(m *types.MarkerMorphology) {
		m.PassageNumber = passage
		m.Description = description
		m.DataURL = dataURL
	})
	if err != nil {
		return false, err
	}

	return created || changed, nil
}

func (imp *Importer) parseMarkerExpressionProfile(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	method := v.String("undiff_exprof_markers_method_name")
	dataURL := v.String("undiff_exprof_markers_weblink")
	uploadedDataURL := v.String("undiff_exprof_markers_enc_filename")
	passage := v.String("undiff_exprof_markers_passage_number")

	if method == nil && dataURL == nil && uploadedDataURL == nil && passage == nil {
		return false, nil
	}

	profile, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.MarkerExpressionProfile {
		return &types.MarkerExpressionProfile{ID: uuid.New(), CelllineID: line.ID}
	}, func(p *types.MarkerExpressionProfile) {
		p.Method = method
		p.PassageNumber = passage
		p.DataURL = dataURL
		p.UploadedDataURL = uploadedDataURL
	})
	if err != nil {
		return false, err
	}
	dirty := created || changed

	// The profile carries at most one result, from whichever assay the
	// registry reported.
	encoded := v.Text("undiff_exprof_expression_array_marker")
	if encoded == "" {
		encoded = v.Text("undiff_exprof_rna_sequencing_marker")
	}
	if encoded == "" {
		encoded = v.Text("undiff_exprof_proteomics_marker")
	}
	if encoded != "" {
		name, result, err := DecodeMarkerResult(encoded)
		if err != nil {
			imp.log.Warn("Skipping invalid marker result", "value", encoded, "error", err)
			return dirty, nil
		}

		_, moleculeCreated, moleculeChanged, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
			"marker_id": profile.ID,
			"molecule":  name,
		}, func() *types.MarkerExpressionProfileMolecule {
			return &types.MarkerExpressionProfileMolecule{ID: uuid.New(), MarkerID: profile.ID, Molecule: name}
		}, func(m *types.MarkerExpressionProfileMolecule) {
			m.Result = result
		})
		if err != nil {
			return dirty, err
		}
		dirty = dirty || moleculeCreated || moleculeChanged
	}

	return dirty, nil
}
