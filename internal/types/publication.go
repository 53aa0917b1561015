package types

import (
	"fmt"

	"github.com/google/uuid"
)

// CelllinePublication is keyed by (cell line, reference id) and removed
// when the registry record no longer carries a registration reference.
type CelllinePublication struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex:idx_cellline_publication,priority:1" json:"cell_line_id"`

	ReferenceID    string `gorm:"column:reference_id;not null;uniqueIndex:idx_cellline_publication,priority:2" json:"reference_id"`
	ReferenceType  string `gorm:"column:reference_type" json:"reference_type"`
	ReferenceURL   string `gorm:"column:reference_url" json:"reference_url"`
	ReferenceTitle string `gorm:"column:reference_title" json:"reference_title"`
}

func (CelllinePublication) TableName() string { return "cellline_publication" }

func PubmedURL(pubmedID int) string {
	return fmt.Sprintf("http://www.ncbi.nlm.nih.gov/pubmed/%d", pubmedID)
}
