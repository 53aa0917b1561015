package types

import (
	"github.com/google/uuid"
)

// Disease variant kinds. A single tagged table replaces the per-kind table
// family of the registry schema.
const (
	VariantKindVariant             = "variant"
	VariantKindIsogenic            = "isogenic"
	VariantKindTransgeneExpression = "transgene_expression"
	VariantKindGeneKnockOut        = "gene_knock_out"
	VariantKindGeneKnockIn         = "gene_knock_in"
)

// Variant owner discriminators.
const (
	VariantOwnerDonorDisease    = "donor_disease"
	VariantOwnerCelllineDisease = "cellline_disease"
)

// DiseaseVariant is a variant or genetic modification attached to a donor or
// cell line disease record. The owner is discriminated by an explicit kind
// column rather than by which foreign key happens to be set. The identity
// key is (owner_kind, owner_id, kind, gene).
type DiseaseVariant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerKind string    `gorm:"column:owner_kind;not null;uniqueIndex:idx_disease_variant,priority:1" json:"owner_kind"`
	OwnerID   uuid.UUID `gorm:"type:uuid;column:owner_id;not null;uniqueIndex:idx_disease_variant,priority:2" json:"owner_id"`
	Kind      string    `gorm:"column:kind;not null;uniqueIndex:idx_disease_variant,priority:3" json:"kind"`

	GeneID *uuid.UUID `gorm:"type:uuid;column:gene_id;uniqueIndex:idx_disease_variant,priority:4" json:"gene_id,omitempty"`
	Gene   *Molecule  `gorm:"foreignKey:GeneID;references:ID" json:"gene,omitempty"`

	TransgeneID *uuid.UUID `gorm:"type:uuid;column:transgene_id" json:"transgene_id,omitempty"`
	Transgene   *Molecule  `gorm:"foreignKey:TransgeneID;references:ID" json:"transgene,omitempty"`

	ChromosomeLocation          *string `gorm:"column:chromosome_location" json:"chromosome_location,omitempty"`
	ChromosomeLocationTransgene *string `gorm:"column:chromosome_location_transgene" json:"chromosome_location_transgene,omitempty"`
	NucleotideSequenceHgvs      *string `gorm:"column:nucleotide_sequence_hgvs" json:"nucleotide_sequence_hgvs,omitempty"`
	ProteinSequenceHgvs         *string `gorm:"column:protein_sequence_hgvs" json:"protein_sequence_hgvs,omitempty"`
	ZygosityStatus              *string `gorm:"column:zygosity_status" json:"zygosity_status,omitempty"`

	ClinvarID       *string `gorm:"column:clinvar_id" json:"clinvar_id,omitempty"`
	DbsnpID         *string `gorm:"column:dbsnp_id" json:"dbsnp_id,omitempty"`
	DbvarID         *string `gorm:"column:dbvar_id" json:"dbvar_id,omitempty"`
	PublicationPmid *string `gorm:"column:publication_pmid" json:"publication_pmid,omitempty"`

	ModificationType *string `gorm:"column:modification_type" json:"modification_type,omitempty"`
	DeliveryMethod   *string `gorm:"column:delivery_method" json:"delivery_method,omitempty"`

	VirusID *uuid.UUID `gorm:"type:uuid;column:virus_id" json:"virus_id,omitempty"`
	Virus   *Virus     `gorm:"foreignKey:VirusID;references:ID" json:"virus,omitempty"`

	TransposonID *uuid.UUID  `gorm:"type:uuid;column:transposon_id" json:"transposon_id,omitempty"`
	Transposon   *Transposon `gorm:"foreignKey:TransposonID;references:ID" json:"transposon,omitempty"`

	Notes *string `gorm:"column:notes" json:"notes,omitempty"`
}

func (DiseaseVariant) TableName() string { return "disease_variant" }
