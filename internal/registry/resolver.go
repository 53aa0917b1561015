package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/platform/logger"
	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/types"
)

// ErrInvalidMolecule marks unusable molecule data (missing name, unknown
// kind or catalog synonym). Callers catch it per record so one bad gene
// reference does not abort the rest of a gene list.
var ErrInvalidMolecule = errors.New("invalid molecule data")

const compoundDelimiter = "###"

var moleculeKinds = map[string]string{
	"id_type_gene":    types.MoleculeKindGene,
	"gene":            types.MoleculeKindGene,
	"id_type_protein": types.MoleculeKindProtein,
	"protein":         types.MoleculeKindProtein,
}

var moleculeCatalogs = map[string]string{
	"entrez_id":  types.MoleculeCatalogEntrez,
	"entrez":     types.MoleculeCatalogEntrez,
	"ensembl_id": types.MoleculeCatalogEnsembl,
	"ensembl":    types.MoleculeCatalogEnsembl,
}

// Resolver turns raw registry values into normalized catalog rows,
// get-or-creating them on first sighting. Catalog rows are never deleted.
type Resolver struct {
	log *logger.Logger
}

func NewResolver(log *logger.Logger) *Resolver {
	return &Resolver{log: log.With("component", "Resolver")}
}

// Molecule normalizes kind and catalog through their synonym tables and
// get-or-creates the molecule by (name, kind). A cross-reference row is
// maintained only when both catalog and catalog id are present; an existing
// reference with a different id is updated in place.
func (r *Resolver) Molecule(ctx context.Context, tx *gorm.DB, name, kind, catalog, catalogID string) (*types.Molecule, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		r.log.Warn("Missing molecule name")
		return nil, ErrInvalidMolecule
	}

	normKind, ok := moleculeKinds[kind]
	if !ok {
		r.log.Warn("Invalid molecule kind", "kind", kind)
		return nil, ErrInvalidMolecule
	}

	normCatalog := ""
	if catalog != "" {
		normCatalog, ok = moleculeCatalogs[catalog]
		if !ok {
			r.log.Warn("Invalid molecule catalog", "catalog", catalog)
			return nil, ErrInvalidMolecule
		}
	}

	molecule, created, err := repos.GetOrCreate(ctx, tx, map[string]interface{}{
		"name": name,
		"kind": normKind,
	}, func() *types.Molecule {
		return &types.Molecule{ID: uuid.New(), Name: name, Kind: normKind}
	})
	if err != nil {
		return nil, err
	}
	if created {
		r.log.Info("Created new molecule", "name", name, "kind", normKind)
	}

	if normCatalog != "" && catalogID != "" {
		_, _, _, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
			"molecule_id": molecule.ID,
			"catalog":     normCatalog,
		}, func() *types.MoleculeReference {
			return &types.MoleculeReference{ID: uuid.New(), MoleculeID: molecule.ID, Catalog: normCatalog}
		}, func(ref *types.MoleculeReference) {
			ref.CatalogID = catalogID
		})
		if err != nil {
			return nil, err
		}
	}

	return molecule, nil
}

// DecodeMolecule splits the registry's compound molecule encoding
// "catalog_id###name###catalog###kind" and resolves it.
func (r *Resolver) DecodeMolecule(ctx context.Context, tx *gorm.DB, encoded string) (*types.Molecule, error) {
	parts := strings.Split(encoded, compoundDelimiter)
	if len(parts) != 4 {
		r.log.Warn("Invalid compound molecule encoding", "value", encoded)
		return nil, ErrInvalidMolecule
	}
	return r.Molecule(ctx, tx, parts[1], parts[3], parts[2], parts[0])
}

// DecodeMarkerResult handles the two marker result encodings:
// "name###result" and "catalog_id###result###name###catalog###kind".
func DecodeMarkerResult(encoded string) (name, result string, err error) {
	parts := strings.Split(encoded, compoundDelimiter)
	switch len(parts) {
	case 2:
		return parts[0], parts[1], nil
	case 5:
		return parts[2], parts[1], nil
	default:
		return "", "", fmt.Errorf("%w: marker result %q", ErrInvalidMolecule, encoded)
	}
}

// term get-or-creates a single-name catalog row.
func term[T any](ctx context.Context, tx *gorm.DB, name string, build func() *T) (*T, error) {
	rec, _, err := repos.GetOrCreate(ctx, tx, map[string]interface{}{"name": name}, build)
	return rec, err
}

func (r *Resolver) Virus(ctx context.Context, tx *gorm.DB, name string) (*types.Virus, error) {
	if name == "" {
		return nil, nil
	}
	return term(ctx, tx, name, func() *types.Virus {
		return &types.Virus{ID: uuid.New(), Name: name}
	})
}

func (r *Resolver) Transposon(ctx context.Context, tx *gorm.DB, name string) (*types.Transposon, error) {
	if name == "" {
		return nil, nil
	}
	return term(ctx, tx, name, func() *types.Transposon {
		return &types.Transposon{ID: uuid.New(), Name: name}
	})
}

func (r *Resolver) Unit(ctx context.Context, tx *gorm.DB, name string) (*types.Unit, error) {
	if name == "" {
		return nil, nil
	}
	return term(ctx, tx, name, func() *types.Unit {
		return &types.Unit{ID: uuid.New(), Name: name}
	})
}

func (r *Resolver) Country(ctx context.Context, tx *gorm.DB, name string) (*types.Country, error) {
	if name == "" {
		return nil, nil
	}
	return term(ctx, tx, name, func() *types.Country {
		return &types.Country{ID: uuid.New(), Name: name}
	})
}

func (r *Resolver) Gender(ctx context.Context, tx *gorm.DB, name string) (*types.Gender, error) {
	if name == "" {
		return nil, nil
	}
	return term(ctx, tx, name, func() *types.Gender {
		return &types.Gender{ID: uuid.New(), Name: name}
	})
}

// AgeRange is a lookup into the controlled age-range catalog. "---" and
// unknown ranges are treated as absent; unknown values are logged.
func (r *Resolver) AgeRange(ctx context.Context, tx *gorm.DB, name string) (*types.AgeRange, error) {
	if name == "" || name == "---" {
		return nil, nil
	}
	rec, err := repos.GetBy[types.AgeRange](ctx, tx, map[string]interface{}{"name": name})
	if err != nil {
		return nil, err
	}
	if rec == nil {
		r.log.Warn("Invalid age range", "value", name)
	}
	return rec, nil
}

func (r *Resolver) IntegratingVectorType(ctx context.Context, tx *gorm.DB, name string) (*types.IntegratingVectorType, error) {
	if name == "" {
		return nil, nil
	}
	return term(ctx, tx, name, func() *types.IntegratingVectorType {
		return &types.IntegratingVectorType{ID: uuid.New(), Name: name}
	})
}

func (r *Resolver) NonIntegratingVectorType(ctx context.Context, tx *gorm.DB, name string) (*types.NonIntegratingVectorType, error) {
	if name == "" {
		return nil, nil
	}
	return term(ctx, tx, name, func() *types.NonIntegratingVectorType {
		return &types.NonIntegratingVectorType{ID: uuid.New(), Name: name}
	})
}

func (r *Resolver) ReprogrammingFactor(ctx context.Context, tx *gorm.DB, name string) (*types.ReprogrammingFactor, error) {
	if name == "" {
		return nil, nil
	}
	return term(ctx, tx, name, func() *types.ReprogrammingFactor {
		return &types.ReprogrammingFactor{ID: uuid.New(), Name: name}
	})
}

func (r *Resolver) Organization(ctx context.Context, tx *gorm.DB, name string) (*types.Organization, error) {
	if name == "" {
		return nil, nil
	}
	org, created, err := repos.GetOrCreate(ctx, tx, map[string]interface{}{"name": name}, func() *types.Organization {
		return &types.Organization{ID: uuid.New(), Name: name}
	})
	if err != nil {
		return nil, err
	}
	if created {
		r.log.Info("Found new organization", "name", name)
	}
	return org, nil
}

func (r *Resolver) OrgRole(ctx context.Context, tx *gorm.DB, name string) (*types.OrgRole, error) {
	if name == "" {
		return nil, nil
	}
	role, created, err := repos.GetOrCreate(ctx, tx, map[string]interface{}{"name": name}, func() *types.OrgRole {
		return &types.OrgRole{ID: uuid.New(), Name: name}
	})
	if err != nil {
		return nil, err
	}
	if created {
		r.log.Info("Found new organization role", "name", name)
	}
	return role, nil
}

// CellType is keyed by name; the ontology purl is refreshed on every
// sighting.
func (r *Resolver) CellType(ctx context.Context, tx *gorm.DB, name, purl string) (*types.CellType, error) {
	if name == "" {
		return nil, nil
	}
	cellType, created, _, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{"name": name}, func() *types.CellType {
		return &types.CellType{ID: uuid.New(), Name: name}
	}, func(ct *types.CellType) {
		ct.Purl = purl
	})
	if err != nil {
		return nil, err
	}
	if created {
		r.log.Info("Found new cell type", "name", name)
	}
	return cellType, nil
}

// Disease upserts the disease catalog row keyed by its ontology purl.
// Synonyms are stored comma-joined.
func (r *Resolver) Disease(ctx context.Context, tx *gorm.DB, purl, name string, synonyms []string) (*types.Disease, error) {
	if purl == "" {
		r.log.Warn("Missing disease purl")
		return nil, nil
	}
	disease, created, _, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{"xpurl": purl}, func() *types.Disease {
		return &types.Disease{ID: uuid.New(), Xpurl: purl}
	}, func(d *types.Disease) {
		d.Name = name
		d.Synonyms = strings.Join(synonyms, ", ")
	})
	if err != nil {
		return nil, err
	}
	if created {
		r.log.Info("Created new disease", "purl", purl, "name", name)
	}
	return disease, nil
}
