package types

import (
	"github.com/google/uuid"
)

// NormalPurl is the ontology term for an unaffected/normal phenotype. It is
// skipped when deriving the primary disease of a cell line.
const NormalPurl = "http://www.ebi.ac.uk/efo/EFO_0000761"

// Disease is an ontology-backed catalog entity keyed by its purl. Catalog
// rows are never deleted by the importer.
type Disease struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Xpurl    string    `gorm:"column:xpurl;not null;uniqueIndex" json:"xpurl"`
	Name     string    `gorm:"column:name" json:"name"`
	Synonyms string    `gorm:"column:synonyms" json:"synonyms"`
}

func (Disease) TableName() string { return "disease" }

// DonorDisease ties a donor to a disease. The identity key is
// (donor, disease, disease_not_normalised) and is immutable across
// reconciliation passes.
type DonorDisease struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DonorID uuid.UUID `gorm:"type:uuid;column:donor_id;not null;index" json:"donor_id"`

	DiseaseID            *uuid.UUID `gorm:"type:uuid;column:disease_id" json:"disease_id,omitempty"`
	Disease              *Disease   `gorm:"foreignKey:DiseaseID;references:ID" json:"disease,omitempty"`
	DiseaseNotNormalised *string    `gorm:"column:disease_not_normalised" json:"disease_not_normalised,omitempty"`

	Primary        bool    `gorm:"column:primary_disease;not null;default:false" json:"primary_disease"`
	DiseaseStage   *string `gorm:"column:disease_stage" json:"disease_stage,omitempty"`
	AffectedStatus *string `gorm:"column:affected_status" json:"affected_status,omitempty"`
	Carrier        *string `gorm:"column:carrier" json:"carrier,omitempty"`
	Notes          *string `gorm:"column:notes" json:"notes,omitempty"`
}

func (DonorDisease) TableName() string { return "donor_disease" }

func (d DonorDisease) DiseaseRef() *Disease { return d.Disease }
func (d DonorDisease) IsPrimary() bool      { return d.Primary }

// CelllineDisease ties a cell line to a disease, keyed like DonorDisease.
type CelllineDisease struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;index" json:"cell_line_id"`

	DiseaseID            *uuid.UUID `gorm:"type:uuid;column:disease_id" json:"disease_id,omitempty"`
	Disease              *Disease   `gorm:"foreignKey:DiseaseID;references:ID" json:"disease,omitempty"`
	DiseaseNotNormalised *string    `gorm:"column:disease_not_normalised" json:"disease_not_normalised,omitempty"`

	Primary bool    `gorm:"column:primary_disease;not null;default:false" json:"primary_disease"`
	Notes   *string `gorm:"column:notes" json:"notes,omitempty"`
}

func (CelllineDisease) TableName() string { return "cellline_disease" }

func (d CelllineDisease) DiseaseRef() *Disease { return d.Disease }
func (d CelllineDisease) IsPrimary() bool      { return d.Primary }

// DiseaseRecord is the read-only view shared by donor and cell line disease
// rows, used for primary-disease selection.
type DiseaseRecord interface {
	DiseaseRef() *Disease
	IsPrimary() bool
}

// PrimaryDisease picks the primary disease from the combined donor-first,
// cell-line-second record order: an explicitly flagged record wins; failing
// that, the first record whose normalized term is not the normal/unaffected
// ontology term; failing that, the first record. Returns nil when the list
// is empty.
func PrimaryDisease(records []DiseaseRecord) DiseaseRecord {
	for _, r := range records {
		if r.IsPrimary() {
			return r
		}
	}
	for _, r := range records {
		if d := r.DiseaseRef(); d != nil && d.Xpurl != NormalPurl {
			return r
		}
	}
	if len(records) > 0 {
		return records[0]
	}
	return nil
}
