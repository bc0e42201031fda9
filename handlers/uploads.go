package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/andrewpaige1/studynote-api/models"
	"github.com/andrewpaige1/studynote-api/utils"
)

type imageUploadResponse struct {
	Status    string `json:"status"`
	FileName  string `json:"file_name"`
	SavedPath string `json:"saved_path"`
	FullPath  string `json:"full_path"`
}

func (db *DBHandler) UploadNoteImage(r *http.Request) (any, error) {
	form, err := utils.ParseForm(r)
	if err != nil {
		return nil, badInput(err)
	}
	userID := form.Int("user_id")
	if err := form.Err(); err != nil {
		return nil, badInput(err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, badInput(fileFieldError(err))
	}
	defer file.Close()

	saved, err := db.Media.SaveImage(userID, header.Filename, file)
	if err != nil {
		return nil, ioFailure(fmt.Errorf("image upload failed: %w", err))
	}
	return imageUploadResponse{
		Status:    "success",
		FileName:  saved.FileName,
		SavedPath: saved.SavedPath,
		FullPath:  saved.FullPath,
	}, nil
}

type audioUploadResponse struct {
	Status   string `json:"status"`
	AudioURL string `json:"audio_url"`
	FileName string `json:"filename"`
}

func (db *DBHandler) UploadTTSAudio(r *http.Request) (any, error) {
	if _, err := utils.ParseForm(r); err != nil {
		return nil, badInput(err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, badInput(fileFieldError(err))
	}
	defer file.Close()

	saved, err := db.Media.SaveAudio(header.Filename, file)
	if err != nil {
		return nil, ioFailure(fmt.Errorf("audio upload failed: %w", err))
	}
	return audioUploadResponse{Status: "success", AudioURL: saved.URL, FileName: saved.FileName}, nil
}

type ocrSavedResponse struct {
	Status     string `json:"status"`
	MaterialID uint   `json:"material_id"`
	OCRText    string `json:"ocr_text"`
}

// SaveNoteOCR keeps OCR output as a draft row before any analysis exists.
func (db *DBHandler) SaveNoteOCR(r *http.Request) (any, error) {
	form, err := utils.ParseForm(r)
	if err != nil {
		return nil, badInput(err)
	}
	material := models.StudyMaterial{
		UserID:       form.Int("user_id"),
		FileName:     form.String("file_name"),
		OCRText:      ptr(form.String("ocr_text")),
		AnalysisType: models.AnalysisOCROnly,
	}
	if err := form.Err(); err != nil {
		return nil, badInput(err)
	}

	err = db.WithContext(r.Context()).
		Select("UserID", "FileName", "OCRText", "AnalysisType", "UploadedAt").
		Create(&material).Error
	if err != nil {
		return nil, storeFailure(fmt.Errorf("OCR save failed: %w", err))
	}
	return ocrSavedResponse{Status: "success", MaterialID: material.MaterialID, OCRText: *material.OCRText}, nil
}

func fileFieldError(err error) error {
	if errors.Is(err, http.ErrMissingFile) {
		return &utils.FieldError{Field: "file", Reason: "field required"}
	}
	return err
}
