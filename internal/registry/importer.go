package registry

import (
	"context"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/platform/logger"
	"github.com/stemlab/biobank-backend/internal/platform/storage"
	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/types"
)

// Importer drives the full registry import: list ids, fetch each record,
// reconcile it into the schema. One record is processed at a time; each is
// wrapped in its own transaction so a crash never leaves a cell line
// half-reconciled.
type Importer struct {
	db     *gorm.DB
	source RecordSource
	store  storage.FileStore
	res    *Resolver
	log    *logger.Logger
}

func NewImporter(db *gorm.DB, source RecordSource, store storage.FileStore, log *logger.Logger) *Importer {
	importerLog := log.With("component", "Importer")
	return &Importer{
		db:     db,
		source: source,
		store:  store,
		res:    NewResolver(log),
		log:    importerLog,
	}
}

// Run imports every cell line the registry lists. A list failure aborts the
// run before anything is touched; a single bad record is logged and
// skipped.
func (imp *Importer) Run(ctx context.Context) error {
	ids, err := imp.source.ListIDs(ctx)
	if err != nil {
		imp.log.Error("Cannot fetch registry id list", "error", err)
		return err
	}

	for _, id := range ids {
		imp.log.Info("Importing data for cell line", "id", id)

		record, err := imp.source.Record(ctx, id)
		if err != nil {
			imp.log.Warn("Invalid cell line data", "id", id, "error", err)
			continue
		}

		if err := imp.ImportRecord(ctx, record); err != nil {
			imp.log.Warn("Failed to import cell line", "id", id, "error", err)
		}
	}

	return nil
}

// ImportRecord reconciles one decoded registry record inside a single
// transaction.
func (imp *Importer) ImportRecord(ctx context.Context, record map[string]interface{}) error {
	return imp.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return imp.importCellline(ctx, tx, record)
	})
}

func (imp *Importer) importCellline(ctx context.Context, tx *gorm.DB, record map[string]interface{}) error {
	v := NewValues(record, imp.log)

	biosamplesID := v.Text("biosamples_id")
	if biosamplesID == "" {
		imp.log.Warn("Missing biosamples id", "name", v.Text("name"))
		return nil
	}

	generator, owner, others, err := imp.parseProviders(ctx, tx, v)
	if err != nil {
		return err
	}

	line, created, err := repos.GetOrCreate(ctx, tx, map[string]interface{}{
		"biosamples_id": biosamplesID,
	}, func() *types.Cellline {
		rec := &types.Cellline{ID: uuid.New(), BiosamplesID: biosamplesID, Name: v.Text("name"), Accepted: "pending"}
		if generator != nil {
			rec.GeneratorID = &generator.ID
		}
		return rec
	})
	if err != nil {
		return err
	}
	if created {
		imp.log.Info("Found new cell line", "name", v.Text("name"))
	}

	before := *line

	line.HescregID = v.String("id")
	line.Name = v.Text("name")
	line.AlternativeNames = strings.Join(v.StringList("alternate_name"), ", ")

	donor, err := imp.parseDonor(ctx, tx, donorSource(v, record))
	if err != nil {
		return err
	}
	if donor != nil {
		line.DonorID = &donor.ID
	}

	if age, err := imp.res.AgeRange(ctx, tx, v.Text("donor_age")); err != nil {
		return err
	} else if age != nil {
		line.DonorAgeID = &age.ID
	} else {
		line.DonorAgeID = nil
	}

	line.GeneratorID = orgID(generator)
	line.OwnerID = orgID(owner)

	if country, err := imp.res.Country(ctx, tx, v.Text("derivation_country")); err != nil {
		return err
	} else if country != nil {
		line.DerivationCountryID = &country.ID
	}

	if _, err := imp.res.Disease(ctx, tx, v.Text("purl"), v.Text("purl_name"), v.StringList("synonyms")); err != nil {
		return err
	}

	line.PrimaryDiseaseDiagnosis = v.String("disease_flag")
	line.PrimaryDiseaseStage = v.String("disease_stage")
	line.DiseaseAssociatedPhenotypes = v.String("disease_associated_phenotypes")
	line.AffectedStatus = v.String("disease_affected_flag")
	line.FamilyHistory = v.String("family_history")
	line.MedicalHistory = v.String("medical_history")
	line.ClinicalInformation = v.String("clinical_information")

	dirty := fieldsChanged(before, *line)

	if changed, err := imp.syncOrganizations(ctx, tx, line, others); err != nil {
		return err
	} else if changed {
		dirty = true
	}

	subParsers := []func(context.Context, *gorm.DB, Values, *types.Cellline) (bool, error){
		imp.parseCelllineDiseases,
		imp.parseEthics,
		imp.parseDerivation,
		imp.parseCultureConditions,
		imp.parseReprogrammingVector,
		imp.parseReprogrammingFactors,
		imp.parseKaryotype,
		imp.parseHlaTyping,
		imp.parseStrFingerprinting,
		imp.parseGenomeAnalysis,
		imp.parseGeneticModifications,
		imp.parseDiseaseGenotype,
		imp.parseCharacterization,
		imp.parsePluritest,
		imp.parseMarkers,
		imp.parsePublications,
	}
	for _, parse := range subParsers {
		changed, err := parse(ctx, tx, v, line)
		if err != nil {
			return err
		}
		if changed {
			dirty = true
		}
	}

	if created || dirty {
		if created {
			imp.log.Info("Saving new cell line", "name", line.Name)
		} else {
			imp.log.Info("Updating cell line", "name", line.Name)
		}
		if err := tx.WithContext(ctx).Save(line).Error; err != nil {
			return err
		}
	}

	return nil
}

// parseProviders resolves the record's provider organizations into the
// generator, the owner, and any other (organization, role) pairs.
func (imp *Importer) parseProviders(ctx context.Context, tx *gorm.DB, v Values) (generator, owner *types.Organization, others []orgWithRole, err error) {
	for _, provider := range v.List("providers") {
		pv := v.Sub(provider)

		org, err := imp.res.Organization(ctx, tx, pv.Text("name"))
		if err != nil {
			return nil, nil, nil, err
		}
		if org == nil {
			continue
		}

		switch pv.Text("role") {
		case "Generator":
			generator = org
		case "Owner":
			owner = org
		default:
			role, err := imp.res.OrgRole(ctx, tx, pv.Text("role"))
			if err != nil {
				return nil, nil, nil, err
			}
			if role != nil {
				others = append(others, orgWithRole{org: org, role: role})
			}
		}
	}
	return generator, owner, others, nil
}

type orgWithRole struct {
	org  *types.Organization
	role *types.OrgRole
}

func (imp *Importer) syncOrganizations(ctx context.Context, tx *gorm.DB, line *types.Cellline, others []orgWithRole) (bool, error) {
	dirty := false
	for _, pair := range others {
		_, created, err := repos.GetOrCreate(ctx, tx, map[string]interface{}{
			"cell_line_id":    line.ID,
			"organization_id": pair.org.ID,
			"role_id":         pair.role.ID,
		}, func() *types.CelllineOrganization {
			return &types.CelllineOrganization{
				ID:             uuid.New(),
				CelllineID:     line.ID,
				OrganizationID: pair.org.ID,
				RoleID:         pair.role.ID,
			}
		})
		if err != nil {
			return dirty, err
		}
		if created {
			imp.log.Info("Added organization to cell line", "organization", pair.org.Name, "role", pair.role.Name)
			dirty = true
		}
	}
	return dirty, nil
}

// donorSource returns the nested donor sub-record when the export carries
// one, falling back to the record root for legacy exports that keep donor
// fields inline.
func donorSource(v Values, record map[string]interface{}) Values {
	if sub, ok := record["donor"].(map[string]interface{}); ok {
		return v.Sub(sub)
	}
	return v
}

func orgID(org *types.Organization) *uuid.UUID {
	if org == nil {
		return nil
	}
	return &org.ID
}

// fieldsChanged compares two pre-save snapshots of the same row.
func fieldsChanged[T any](before, after T) bool {
	return !reflect.DeepEqual(before, after)
}
