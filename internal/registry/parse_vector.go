package registry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/types"
)

// parseReprogrammingVector dispatches on the declared vector class. A line
// carries at most one of the two vector records; switching class deletes
// the record of the other class.
func (imp *Importer) parseReprogrammingVector(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	switch v.Text("vector_type") {
	case "Integrating":
		deleted, err := deleteByCellline[types.CelllineNonIntegratingVector](ctx, tx, line.ID)
		if err != nil {
			return false, err
		}
		dirty, err := imp.parseIntegratingVector(ctx, tx, v, line)
		return deleted || dirty, err

	case "Non-integrating":
		deleted, err := deleteByCellline[types.CelllineIntegratingVector](ctx, tx, line.ID)
		if err != nil {
			return false, err
		}
		dirty, err := imp.parseNonIntegratingVector(ctx, tx, v, line)
		return deleted || dirty, err

	default:
		return false, nil
	}
}

func (imp *Importer) parseIntegratingVector(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	name := otherFallback(v, "integrating_vector", "integrating_vector_other")
	if name == nil {
		imp.log.Warn("Missing name for integrating reprogramming vector", "cellline", line.Name)
		return false, nil
	}

	vectorType, err := imp.res.IntegratingVectorType(ctx, tx, *name)
	if err != nil {
		return false, err
	}
	virus, err := imp.res.Virus(ctx, tx, v.Text("integrating_vector_virus_type"))
	if err != nil {
		return false, err
	}
	transposon, err := imp.res.Transposon(ctx, tx, v.Text("integrating_vector_transposon_type"))
	if err != nil {
		return false, err
	}

	vector, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.CelllineIntegratingVector {
		return &types.CelllineIntegratingVector{ID: uuid.New(), CelllineID: line.ID}
	}, func(iv *types.CelllineIntegratingVector) {
		iv.VectorTypeID = &vectorType.ID
		iv.VirusID = virusID(virus)
		iv.TransposonID = transposonID(transposon)
		iv.Excisable = v.Bool("excisable_vector_flag")
		iv.AbsenceReprogrammingVectors = v.Bool("reprogramming_vectors_absence_flag")
		if v.Has("reprogramming_vector_integrating_silenced_flag") {
			iv.Silenced = v.ExtendedBool("reprogramming_vector_integrating_silenced_flag")
		}
		iv.Methods = v.String("reprogramming_vector_integrating_method")
		iv.SilencedNotes = v.String("reprogramming_vector_integrating_silencing_notes")
	})
	if err != nil {
		return false, err
	}
	dirty := created || changed

	filesDirty, err := imp.syncVectorFiles(ctx, tx, vector,
		&vector.ExpressedSilencedFile,
		v.Text("reprogramming_vector_integrating_silencing_file_enc"),
		v.Text("reprogramming_vector_integrating_silencing_file"),
		&vector.VectorMapFile, v)
	if err != nil {
		return dirty, err
	}
	dirty = dirty || filesDirty

	genes, err := imp.decodeGenes(ctx, tx, v.StringList("integrating_vector_gene_list"))
	if err != nil {
		return dirty, err
	}
	genesDirty, err := syncSet(ctx, tx, vector, "Genes", genes, moleculeKey)
	if err != nil {
		return dirty, err
	}

	return dirty || genesDirty, nil
}

func (imp *Importer) parseNonIntegratingVector(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	name := otherFallback(v, "non_integrating_vector", "non_integrating_vector_other")
	if name == nil {
		imp.log.Warn("Missing name for non-integrating reprogramming vector", "cellline", line.Name)
		return false, nil
	}

	vectorType, err := imp.res.NonIntegratingVectorType(ctx, tx, *name)
	if err != nil {
		return false, err
	}

	vector, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.CelllineNonIntegratingVector {
		return &types.CelllineNonIntegratingVector{ID: uuid.New(), CelllineID: line.ID}
	}, func(nv *types.CelllineNonIntegratingVector) {
		nv.VectorTypeID = &vectorType.ID
		if v.Has("reprogramming_vector_non_integrating_detectable_flag") {
			nv.Detectable = v.ExtendedBool("reprogramming_vector_non_integrating_detectable_flag")
		}
		nv.Methods = v.String("reprogramming_vector_non_integrating_method")
		nv.DetectableNotes = v.String("reprogramming_vector_non_integrating_detection_notes")
	})
	if err != nil {
		return false, err
	}
	dirty := created || changed

	filesDirty, err := imp.syncVectorFiles(ctx, tx, vector,
		&vector.ExpressedSilencedFile,
		v.Text("reprogramming_vector_non_integrating_detection_file_enc"),
		v.Text("reprogramming_vector_non_integrating_detection_file"),
		&vector.VectorMapFile, v)
	if err != nil {
		return dirty, err
	}
	dirty = dirty || filesDirty

	genes, err := imp.decodeGenes(ctx, tx, v.StringList("non_integrating_vector_gene_list"))
	if err != nil {
		return dirty, err
	}
	genesDirty, err := syncSet(ctx, tx, vector, "Genes", genes, moleculeKey)
	if err != nil {
		return dirty, err
	}

	return dirty || genesDirty, nil
}

func (imp *Importer) parseReprogrammingFactors(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	names := v.StringList("vector_free_types")
	if len(names) == 0 {
		return false, nil
	}

	record, created, err := repos.GetOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.CelllineReprogrammingFactors {
		return &types.CelllineReprogrammingFactors{ID: uuid.New(), CelllineID: line.ID}
	})
	if err != nil {
		return false, err
	}

	factors := make([]*types.ReprogrammingFactor, 0, len(names))
	for _, name := range names {
		factor, err := imp.res.ReprogrammingFactor(ctx, tx, name)
		if err != nil {
			return created, err
		}
		if factor != nil {
			factors = append(factors, factor)
		}
	}

	changed, err := syncSet(ctx, tx, record, "Factors", factors, func(f *types.ReprogrammingFactor) string {
		return f.Name
	})
	if err != nil {
		return created, err
	}

	return created || changed, nil
}

// syncVectorFiles applies the fingerprint policy to the two attachments a
// vector record carries and saves the record when either changed.
func (imp *Importer) syncVectorFiles(ctx context.Context, tx *gorm.DB, record interface{}, silenced *types.Attachment, silencedEnc, silencedURL string, vectorMap *types.Attachment, v Values) (bool, error) {
	silencedDirty, err := imp.syncAttachment(ctx, silenced, "vector_silencing", silencedEnc, silencedURL)
	if err != nil {
		return false, err
	}

	mapDirty, err := imp.syncAttachment(ctx, vectorMap, "vector_map",
		v.Text("vector_map_file_enc"), v.Text("vector_map_file"))
	if err != nil {
		return silencedDirty, err
	}

	if silencedDirty || mapDirty {
		if err := tx.WithContext(ctx).Save(record).Error; err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

func (imp *Importer) decodeGenes(ctx context.Context, tx *gorm.DB, encoded []string) ([]*types.Molecule, error) {
	genes := make([]*types.Molecule, 0, len(encoded))
	for _, enc := range encoded {
		gene, err := imp.res.DecodeMolecule(ctx, tx, enc)
		if err != nil {
			imp.log.Warn("Skipping invalid gene", "value", enc, "error", err)
			continue
		}
		if gene != nil {
			genes = append(genes, gene)
		}
	}
	return genes, nil
}

func moleculeKey(m *types.Molecule) string {
	return m.Name + "|" + m.Kind
}

// deleteByCellline removes a line's one-to-one child record when present.
func deleteByCellline[T any](ctx context.Context, tx *gorm.DB, lineID uuid.UUID) (bool, error) {
	rec, err := repos.GetBy[T](ctx, tx, map[string]interface{}{"cell_line_id": lineID})
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, nil
	}
	if err := repos.Delete(ctx, tx, rec); err != nil {
		return false, err
	}
	return true, nil
}
