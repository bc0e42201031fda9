package schema

import (
	"context"
	"fmt"

	"github.com/andrewpaige1/studynote-api/models"
	"gorm.io/gorm"
)

// MarkerColumn decides whether the evolution already ran.
const MarkerColumn = "analysis_type"

const evolvedIndex = "idx_user_analysis_type"

// Added in this order; the marker goes first.
var evolvedFields = []string{"AnalysisType", "OCRText", "LengthOption"}

const mysqlEvolve = `ALTER TABLE study_materials
	ADD COLUMN analysis_type ENUM('summary', 'note_analysis', 'ocr_only') NOT NULL DEFAULT 'summary',
	ADD COLUMN ocr_text TEXT NULL,
	ADD COLUMN length_option VARCHAR(20) NULL,
	ADD INDEX idx_user_analysis_type (user_id, analysis_type)`

// EvolveStudyMaterials adds analysis_type, ocr_text, length_option and the
// (user_id, analysis_type) index to study_materials when the marker column is
// absent. It reports whether anything changed.
//
// The existence check and the ALTER are not locked together: two concurrent
// first calls can both see the column missing and the loser fails with a
// duplicate column error.
func EvolveStudyMaterials(ctx context.Context, db *gorm.DB) (bool, error) {
	db = db.WithContext(ctx)
	m := db.Migrator()
	model := &models.StudyMaterial{}

	if m.HasColumn(model, MarkerColumn) {
		return false, nil
	}

	// MySQL takes everything in one statement.
	if db.Dialector.Name() == "mysql" {
		if err := db.Exec(mysqlEvolve).Error; err != nil {
			return false, fmt.Errorf("alter study_materials: %w", err)
		}
		return true, nil
	}

	for _, field := range evolvedFields {
		if err := m.AddColumn(model, field); err != nil {
			return false, fmt.Errorf("add column %s: %w", field, err)
		}
	}
	if !m.HasIndex(model, evolvedIndex) {
		if err := m.CreateIndex(model, evolvedIndex); err != nil {
			return false, fmt.Errorf("create index %s: %w", evolvedIndex, err)
		}
	}
	return true, nil
}
