package types

import (
	"github.com/google/uuid"
)

// CelllineDiseaseGenotype records disease/phenotype associated variant
// details, one-to-one with a cell line.
type CelllineDiseaseGenotype struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	CarriesDiseaseAssociatedVariants *bool   `gorm:"column:carries_disease_associated_variants" json:"carries_disease_associated_variants,omitempty"`
	VariantOfInterest                *bool   `gorm:"column:variant_of_interest" json:"variant_of_interest,omitempty"`
	AlleleCarried                    *string `gorm:"column:allele_carried" json:"allele_carried,omitempty"`
	CellLineForm                     *string `gorm:"column:cell_line_form" json:"cell_line_form,omitempty"`
	Chromosome                       *string `gorm:"column:chromosome" json:"chromosome,omitempty"`
	Coordinate                       *string `gorm:"column:coordinate" json:"coordinate,omitempty"`
	ReferenceAllele                  *string `gorm:"column:reference_allele" json:"reference_allele,omitempty"`
	AlternativeAllele                *string `gorm:"column:alternative_allele" json:"alternative_allele,omitempty"`
	ProteinSequenceVariants          *string `gorm:"column:protein_sequence_variants" json:"protein_sequence_variants,omitempty"`
	Assembly                         *string `gorm:"column:assembly" json:"assembly,omitempty"`

	SNPs      []*GenotypingSNP      `gorm:"foreignKey:DiseaseGenotypeID;references:ID" json:"snps,omitempty"`
	RsNumbers []*GenotypingRsNumber `gorm:"foreignKey:DiseaseGenotypeID;references:ID" json:"rs_numbers,omitempty"`
}

func (CelllineDiseaseGenotype) TableName() string { return "cellline_disease_genotype" }

type GenotypingSNP struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DiseaseGenotypeID uuid.UUID `gorm:"type:uuid;column:disease_genotype_id;not null;index" json:"disease_genotype_id"`

	GeneName            string `gorm:"column:gene_name" json:"gene_name"`
	ChromosomalPosition string `gorm:"column:chromosomal_position" json:"chromosomal_position"`
}

func (GenotypingSNP) TableName() string { return "genotyping_snp" }

type GenotypingRsNumber struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DiseaseGenotypeID uuid.UUID `gorm:"type:uuid;column:disease_genotype_id;not null;index" json:"disease_genotype_id"`

	RsNumber string `gorm:"column:rs_number" json:"rs_number"`
	Link     string `gorm:"column:link" json:"link"`
}

func (GenotypingRsNumber) TableName() string { return "genotyping_rs_number" }
