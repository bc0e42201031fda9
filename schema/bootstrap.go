package schema

import (
	"context"
	"time"

	"github.com/andrewpaige1/studynote-api/models"
	"gorm.io/gorm"
)

// legacyStudyMaterial is the study_materials layout before evolution.
type legacyStudyMaterial struct {
	MaterialID  uint      `gorm:"column:material_id;primaryKey;autoIncrement"`
	UserID      int       `gorm:"not null"`
	FileName    string    `gorm:"size:255;not null"`
	Summary     *string   `gorm:"type:text"`
	TTSAudioURL *string   `gorm:"column:tts_audio_url;size:500"`
	VoiceStyle  *string   `gorm:"size:50"`
	Speed       *string   `gorm:"size:20"`
	Duration    *int
	UploadedAt  time.Time `gorm:"autoCreateTime"`
}

func (legacyStudyMaterial) TableName() string { return "study_materials" }

// Bootstrap creates the base tables when missing. It never adds the evolved
// study_materials columns; that is EvolveStudyMaterials' job.
func Bootstrap(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&legacyStudyMaterial{},
		&models.Question{},
		&models.UserAnswer{},
	)
}
