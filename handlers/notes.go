package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/andrewpaige1/studynote-api/models"
	"github.com/andrewpaige1/studynote-api/utils"
	"gorm.io/gorm"
)

const defaultNoteAnalysisLimit = 5

// noteAnalysisFromForm reads the fields shared by both note analysis saves.
func noteAnalysisFromForm(form *utils.Form) models.StudyMaterial {
	return models.StudyMaterial{
		UserID:       form.Int("user_id"),
		FileName:     form.String("file_name"),
		Summary:      ptr(form.String("summary")),
		TTSAudioURL:  form.OptionalString("tts_audio_url"),
		VoiceStyle:   form.OptionalString("voice_style"),
		Speed:        form.OptionalString("speed"),
		Duration:     form.OptionalInt("duration"),
		AnalysisType: models.AnalysisNoteAnalysis,
		OCRText:      form.OptionalString("ocr_text"),
		LengthOption: form.OptionalString("length_option"),
	}
}

type materialSavedResponse struct {
	Status     string `json:"status"`
	MaterialID uint   `json:"material_id"`
	Message    string `json:"message,omitempty"`
}

func (db *DBHandler) SaveNoteAnalysis(r *http.Request) (any, error) {
	form, err := utils.ParseForm(r)
	if err != nil {
		return nil, badInput(err)
	}
	material := noteAnalysisFromForm(form)
	if err := form.Err(); err != nil {
		return nil, badInput(err)
	}

	if err := db.WithContext(r.Context()).Create(&material).Error; err != nil {
		return nil, storeFailure(err)
	}
	return materialSavedResponse{Status: "success", MaterialID: material.MaterialID}, nil
}

// SaveNoteAnalysisComplete stores a finished analysis; a missing audio URL is
// kept as "" instead of NULL.
func (db *DBHandler) SaveNoteAnalysisComplete(r *http.Request) (any, error) {
	form, err := utils.ParseForm(r)
	if err != nil {
		return nil, badInput(err)
	}
	material := noteAnalysisFromForm(form)
	if err := form.Err(); err != nil {
		return nil, badInput(err)
	}
	if material.TTSAudioURL == nil {
		material.TTSAudioURL = ptr("")
	}

	if err := db.WithContext(r.Context()).Create(&material).Error; err != nil {
		return nil, storeFailure(err)
	}
	return materialSavedResponse{
		Status:     "success",
		MaterialID: material.MaterialID,
		Message:    "note analysis saved",
	}, nil
}

type analysisResultsResponse struct {
	AnalysisResults []models.StudyMaterial `json:"analysis_results"`
}

func (db *DBHandler) GetNoteAnalysis(r *http.Request) (any, error) {
	form, err := utils.ParseForm(r)
	if err != nil {
		return nil, badInput(err)
	}
	userID := form.Int("user_id")
	limit := form.IntDefault("limit", defaultNoteAnalysisLimit)
	if err := form.Err(); err != nil {
		return nil, badInput(err)
	}
	// gorm reads a negative limit as no limit at all.
	if limit < 0 {
		return nil, badInput(&utils.FieldError{Field: "limit", Reason: "ensure this value is greater than or equal to 0"})
	}

	results := []models.StudyMaterial{}
	err = db.WithContext(r.Context()).
		Where("user_id = ? AND analysis_type = ?", userID, models.AnalysisNoteAnalysis).
		Order("uploaded_at DESC").
		Order("material_id DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, storeFailure(err)
	}
	return analysisResultsResponse{AnalysisResults: results}, nil
}

func materialIDFromPath(r *http.Request) (uint, error) {
	raw := r.PathValue("material_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &utils.FieldError{Field: "material_id", Reason: "value is not a valid integer"}
	}
	return uint(id), nil
}

type analysisDetailResponse struct {
	AnalysisDetail models.StudyMaterial `json:"analysis_detail"`
}

func (db *DBHandler) GetNoteAnalysisDetail(r *http.Request) (any, error) {
	id, err := materialIDFromPath(r)
	if err != nil {
		return nil, badInput(err)
	}

	var material models.StudyMaterial
	err = db.WithContext(r.Context()).
		Where("material_id = ? AND analysis_type = ?", id, models.AnalysisNoteAnalysis).
		First(&material).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(fmt.Sprintf("note analysis %d not found", id))
	}
	if err != nil {
		return nil, storeFailure(err)
	}
	return analysisDetailResponse{AnalysisDetail: material}, nil
}

type messageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DeleteNoteAnalysis only removes rows whose analysis_type is note_analysis.
func (db *DBHandler) DeleteNoteAnalysis(r *http.Request) (any, error) {
	id, err := materialIDFromPath(r)
	if err != nil {
		return nil, badInput(err)
	}

	result := db.WithContext(r.Context()).
		Where("material_id = ? AND analysis_type = ?", id, models.AnalysisNoteAnalysis).
		Delete(&models.StudyMaterial{})
	if result.Error != nil {
		return nil, storeFailure(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, notFound(fmt.Sprintf("note analysis %d not found", id))
	}
	return messageResponse{Status: "success", Message: fmt.Sprintf("note analysis %d deleted", id)}, nil
}
