package types

import (
	"github.com/google/uuid"
)

type CelllineCharacterization struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	CertificateOfAnalysis              *bool   `gorm:"column:certificate_of_analysis" json:"certificate_of_analysis,omitempty"`
	CertificateOfAnalysisPassageNumber *string `gorm:"column:certificate_of_analysis_passage_number" json:"certificate_of_analysis_passage_number,omitempty"`

	VirologyScreening   *bool   `gorm:"column:virology_screening" json:"virology_screening,omitempty"`
	ScreeningHiv1       *string `gorm:"column:screening_hiv1" json:"screening_hiv1,omitempty"`
	ScreeningHiv2       *string `gorm:"column:screening_hiv2" json:"screening_hiv2,omitempty"`
	ScreeningHepatitisB *string `gorm:"column:screening_hepatitis_b" json:"screening_hepatitis_b,omitempty"`
	ScreeningHepatitisC *string `gorm:"column:screening_hepatitis_c" json:"screening_hepatitis_c,omitempty"`
	ScreeningMycoplasma *string `gorm:"column:screening_mycoplasma" json:"screening_mycoplasma,omitempty"`
}

func (CelllineCharacterization) TableName() string { return "cellline_characterization" }

// CelllineCharacterizationPluritest exists only while the registry flag is
// set; it is deleted when the flag disappears.
type CelllineCharacterizationPluritest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	PluritestFlag     *bool   `gorm:"column:pluritest_flag" json:"pluritest_flag,omitempty"`
	PluripotencyScore *string `gorm:"column:pluripotency_score" json:"pluripotency_score,omitempty"`
	NoveltyScore      *string `gorm:"column:novelty_score" json:"novelty_score,omitempty"`
	MicroarrayURL     *string `gorm:"column:microarray_url" json:"microarray_url,omitempty"`
}

func (CelllineCharacterizationPluritest) TableName() string {
	return "cellline_characterization_pluritest"
}
