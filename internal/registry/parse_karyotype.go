package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/types"
)

func (imp *Importer) parseKaryotype(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	if !v.Bool("karyotyping_flag") {
		return false, nil
	}
	if v.Text("karyotyping_karyotype") == "" && v.Text("karyotyping_method") == "" && v.Text("karyotyping_number_passages") == "" {
		return false, nil
	}

	_, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.CelllineKaryotype {
		return &types.CelllineKaryotype{ID: uuid.New(), CelllineID: line.ID}
	}, func(k *types.CelllineKaryotype) {
		k.Karyotype = v.String("karyotyping_karyotype")
		k.KaryotypeMethod = otherFallback(v, "karyotyping_method", "karyotyping_method_other")
		k.PassageNumber = v.String("karyotyping_number_passages")
	})
	if err != nil {
		return false, err
	}

	return created || changed, nil
}

// hlaLoci pairs each typed locus with its class and allele source keys.
var hlaLoci = []struct {
	locus, class, allele1, allele2 string
}{
	{"A", "I", "hla_i_a_all1", "hla_i_a_all2"},
	{"B", "I", "hla_i_b_all1", "hla_i_b_all2"},
	{"C", "I", "hla_i_c_all1", "hla_i_c_all2"},
	{"DP", "II", "hla_ii_dp_all1", "hla_ii_dp_all2"},
	{"DM", "II", "hla_ii_dm_all1", "hla_ii_dm_all2"},
	{"DOA", "II", "hla_ii_doa_all1", "hla_ii_doa_all2"},
	{"DQ", "II", "hla_ii_dq_all1", "hla_ii_dq_all2"},
	{"DR", "II", "hla_ii_dr_all1", "hla_ii_dr_all2"},
}

func (imp *Importer) parseHlaTyping(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	if !v.Bool("hla_flag") {
		return false, nil
	}

	dirty := false
	for _, l := range hlaLoci {
		if v.Text(l.allele1) == "" && v.Text(l.allele2) == "" {
			continue
		}

		_, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
			"cell_line_id": line.ID,
			"hla":          l.locus,
		}, func() *types.CelllineHlaTyping {
			return &types.CelllineHlaTyping{ID: uuid.New(), CelllineID: line.ID, Hla: l.locus}
		}, func(h *types.CelllineHlaTyping) {
			h.HlaClass = l.class
			h.HlaAllele1 = v.String(l.allele1)
			h.HlaAllele2 = v.String(l.allele2)
		})
		if err != nil {
			return dirty, err
		}
		if created || changed {
			dirty = true
		}
	}

	return dirty, nil
}

func (imp *Importer) parseStrFingerprinting(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	if !v.Bool("fingerprinting_flag") {
		return false, nil
	}

	dirty := false
	for _, encoded := range v.StringList("fingerprinting") {
		parts := strings.Split(encoded, compoundDelimiter)
		if len(parts) != 3 {
			imp.log.Warn("Skipping malformed STR locus", "value", encoded)
			continue
		}
		locus, allele1, allele2 := parts[0], parts[1], parts[2]

		_, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
			"cell_line_id": line.ID,
			"locus":        locus,
		}, func() *types.CelllineStrFingerprinting {
			return &types.CelllineStrFingerprinting{ID: uuid.New(), CelllineID: line.ID, Locus: locus}
		}, func(s *types.CelllineStrFingerprinting) {
			s.Allele1 = allele1
			s.Allele2 = allele2
		})
		if err != nil {
			return dirty, err
		}
		if created || changed {
			dirty = true
		}
	}

	if dirty {
		imp.log.Info(fmt.Sprintf("Modified STR fingerprinting for %s", line.Name))
	}
	return dirty, nil
}

func (imp *Importer) parseGenomeAnalysis(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	if !v.Bool("genome_wide_genotyping_flag") {
		return false, nil
	}

	dataType := otherFallback(v, "genome_wide_genotyping_ega", "genome_wide_genotyping_ega_other")
	link := v.String("genome_wide_genotyping_ega_url")
	if dataType == nil && link == nil {
		return false, nil
	}

	_, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.CelllineGenomeAnalysis {
		return &types.CelllineGenomeAnalysis{ID: uuid.New(), CelllineID: line.ID}
	}, func(g *types.CelllineGenomeAnalysis) {
		g.Data = dataType
		g.Link = link
	})
	if err != nil {
		return false, err
	}

	return created || changed, nil
}
