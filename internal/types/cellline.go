package types

import (
	"time"

	"github.com/google/uuid"
)

// Cellline is the root aggregate of the imported registry data. It is keyed
// by the stable biosamples identifier; the registry id is unique but may be
// missing on legacy rows.
type Cellline struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BiosamplesID string    `gorm:"column:biosamples_id;not null;uniqueIndex" json:"biosamples_id"`
	HescregID    *string   `gorm:"column:hescreg_id;uniqueIndex" json:"hescreg_id,omitempty"`

	Name             string `gorm:"column:name;not null" json:"name"`
	AlternativeNames string `gorm:"column:alternative_names" json:"alternative_names"`

	// Curated by operators, never touched on re-import.
	Accepted string `gorm:"column:accepted;not null;default:pending" json:"accepted"`

	DonorID *uuid.UUID `gorm:"type:uuid;column:donor_id" json:"donor_id,omitempty"`
	Donor   *Donor     `gorm:"foreignKey:DonorID;references:ID" json:"donor,omitempty"`

	DonorAgeID *uuid.UUID `gorm:"type:uuid;column:donor_age_id" json:"donor_age_id,omitempty"`
	DonorAge   *AgeRange  `gorm:"foreignKey:DonorAgeID;references:ID" json:"donor_age,omitempty"`

	GeneratorID *uuid.UUID    `gorm:"type:uuid;column:generator_id" json:"generator_id,omitempty"`
	Generator   *Organization `gorm:"foreignKey:GeneratorID;references:ID" json:"generator,omitempty"`

	OwnerID *uuid.UUID    `gorm:"type:uuid;column:owner_id" json:"owner_id,omitempty"`
	Owner   *Organization `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`

	DerivationCountryID *uuid.UUID `gorm:"type:uuid;column:derivation_country_id" json:"derivation_country_id,omitempty"`
	DerivationCountry   *Country   `gorm:"foreignKey:DerivationCountryID;references:ID" json:"derivation_country,omitempty"`

	PrimaryDiseaseDiagnosis     *string `gorm:"column:primary_disease_diagnosis" json:"primary_disease_diagnosis,omitempty"`
	PrimaryDiseaseStage         *string `gorm:"column:primary_disease_stage" json:"primary_disease_stage,omitempty"`
	DiseaseAssociatedPhenotypes *string `gorm:"column:disease_associated_phenotypes" json:"disease_associated_phenotypes,omitempty"`
	AffectedStatus              *string `gorm:"column:affected_status" json:"affected_status,omitempty"`
	FamilyHistory               *string `gorm:"column:family_history" json:"family_history,omitempty"`
	MedicalHistory              *string `gorm:"column:medical_history" json:"medical_history,omitempty"`
	ClinicalInformation         *string `gorm:"column:clinical_information" json:"clinical_information,omitempty"`

	Diseases []*CelllineDisease `gorm:"foreignKey:CelllineID;references:ID" json:"diseases,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Cellline) TableName() string { return "cellline" }

// DiseaseRecords returns the donor-first, cell-line-second disease order
// used by primary-disease selection.
func (c *Cellline) DiseaseRecords() []DiseaseRecord {
	var records []DiseaseRecord
	if c.Donor != nil {
		for _, d := range c.Donor.Diseases {
			records = append(records, *d)
		}
	}
	for _, d := range c.Diseases {
		records = append(records, *d)
	}
	return records
}
