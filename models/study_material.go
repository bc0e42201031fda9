package models

import (
	"time"
)

// Analysis types stored in study_materials.analysis_type.
const (
	AnalysisSummary      = "summary"
	AnalysisNoteAnalysis = "note_analysis"
	AnalysisOCROnly      = "ocr_only"
)

// StudyMaterial is one generated summary or note analysis owned by a user.
// AnalysisType, OCRText and LengthOption are added to older tables by the
// schema package.
type StudyMaterial struct {
	MaterialID   uint      `gorm:"column:material_id;primaryKey;autoIncrement" json:"material_id"`
	UserID       int       `gorm:"not null;index:idx_user_analysis_type,priority:1" json:"user_id"`
	FileName     string    `gorm:"size:255;not null" json:"file_name"`
	Summary      *string   `gorm:"type:text" json:"summary"`
	TTSAudioURL  *string   `gorm:"column:tts_audio_url;size:500" json:"tts_audio_url"`
	VoiceStyle   *string   `gorm:"size:50" json:"voice_style"`
	Speed        *string   `gorm:"size:20" json:"speed"`
	Duration     *int      `json:"duration"`
	AnalysisType string    `gorm:"size:20;default:'summary';index:idx_user_analysis_type,priority:2" json:"analysis_type"`
	OCRText      *string   `gorm:"column:ocr_text;type:text" json:"ocr_text"`
	LengthOption *string   `gorm:"size:20" json:"length_option"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (StudyMaterial) TableName() string { return "study_materials" }
