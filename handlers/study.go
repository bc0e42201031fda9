package handlers

import (
	"context"
	"net/http"

	"github.com/andrewpaige1/studynote-api/models"
	"github.com/andrewpaige1/studynote-api/utils"
	"gorm.io/gorm"
)

// Columns present before the study_materials evolution.
var summaryColumns = []string{
	"UserID", "FileName", "Summary", "TTSAudioURL", "VoiceStyle", "Speed", "Duration", "UploadedAt",
}

func (db *DBHandler) SaveSummary(r *http.Request) (any, error) {
	form, err := utils.ParseForm(r)
	if err != nil {
		return nil, badInput(err)
	}

	material := models.StudyMaterial{
		UserID:      form.Int("user_id"),
		FileName:    form.String("file_name"),
		Summary:     ptr(form.String("summary")),
		TTSAudioURL: ptr(form.String("tts_audio_url")),
		VoiceStyle:  ptr(form.String("voice_style")),
		Speed:       ptr(form.String("speed")),
		Duration:    ptr(form.Int("duration")),
	}
	if err := form.Err(); err != nil {
		return nil, badInput(err)
	}

	if err := db.WithContext(r.Context()).Select(summaryColumns).Create(&material).Error; err != nil {
		return nil, storeFailure(err)
	}
	return statusResponse{Status: "saved"}, nil
}

type questionSavedResponse struct {
	Status     string `json:"status"`
	QuestionID uint   `json:"question_id"`
}

func (db *DBHandler) SaveQuestion(r *http.Request) (any, error) {
	form, err := utils.ParseForm(r)
	if err != nil {
		return nil, badInput(err)
	}

	question := models.Question{
		MaterialID:   form.Int("material_id"),
		QuestionText: form.String("question_text"),
		Choice1:      form.String("choice1"),
		Choice2:      form.String("choice2"),
		Choice3:      form.String("choice3"),
		Choice4:      form.String("choice4"),
		Answer:       form.Int("answer"),
		Explanation:  form.String("explanation"),
	}
	if err := form.Err(); err != nil {
		return nil, badInput(err)
	}

	if err := db.WithContext(r.Context()).Create(&question).Error; err != nil {
		return nil, storeFailure(err)
	}
	return questionSavedResponse{Status: "question saved", QuestionID: question.QuestionID}, nil
}

func (db *DBHandler) SaveAnswer(r *http.Request) (any, error) {
	form, err := utils.ParseForm(r)
	if err != nil {
		return nil, badInput(err)
	}

	answer := models.UserAnswer{
		UserID:     form.Int("user_id"),
		QuestionID: form.Int("question_id"),
		UserChoice: form.Int("user_choice"),
		IsCorrect:  form.Bool("is_correct"),
	}
	if err := form.Err(); err != nil {
		return nil, badInput(err)
	}

	if err := db.WithContext(r.Context()).Create(&answer).Error; err != nil {
		return nil, storeFailure(err)
	}
	return statusResponse{Status: "answer saved"}, nil
}

// SaveWrongAnswer records an answer as incorrect whatever the client sent.
func (db *DBHandler) SaveWrongAnswer(r *http.Request) (any, error) {
	form, err := utils.ParseForm(r)
	if err != nil {
		return nil, badInput(err)
	}

	answer := models.UserAnswer{
		UserID:     form.Int("user_id"),
		QuestionID: form.Int("question_id"),
		UserChoice: form.Int("user_choice"),
		IsCorrect:  false,
	}
	if err := form.Err(); err != nil {
		return nil, badInput(err)
	}

	if err := db.WithContext(r.Context()).Create(&answer).Error; err != nil {
		return nil, storeFailure(err)
	}
	return statusResponse{Status: "wrong answer saved"}, nil
}

func (db *DBHandler) wrongAnswers(ctx context.Context, userID int) *gorm.DB {
	return db.WithContext(ctx).
		Table("user_answers AS ua").
		Select("ua.answer_id, q.question_id, q.question_text, q.choice1, q.choice2, q.choice3, q.choice4, " +
			"q.answer, q.explanation, ua.user_choice").
		Joins("JOIN questions q ON ua.question_id = q.question_id").
		Where("ua.user_id = ? AND ua.is_correct = ?", userID, false)
}

type wrongAnswersResponse struct {
	WrongAnswers []models.WrongAnswer `json:"wrong_answers"`
}

func (db *DBHandler) GetWrongAnswers(r *http.Request) (any, error) {
	form, err := utils.ParseForm(r)
	if err != nil {
		return nil, badInput(err)
	}
	userID := form.Int("user_id")
	if err := form.Err(); err != nil {
		return nil, badInput(err)
	}

	rows := []models.WrongAnswer{}
	if err := db.wrongAnswers(r.Context(), userID).Scan(&rows).Error; err != nil {
		return nil, storeFailure(err)
	}
	if rows == nil {
		rows = []models.WrongAnswer{}
	}
	return wrongAnswersResponse{WrongAnswers: rows}, nil
}

type nextWrongResponse struct {
	Question *models.WrongAnswer `json:"question,omitempty"`
	Message  string              `json:"message,omitempty"`
}

// GetNextWrongQuestion returns the most recently recorded wrong answer. An
// empty history is a normal answer, not an error.
func (db *DBHandler) GetNextWrongQuestion(r *http.Request) (any, error) {
	form, err := utils.ParseForm(r)
	if err != nil {
		return nil, badInput(err)
	}
	userID := form.Int("user_id")
	if err := form.Err(); err != nil {
		return nil, badInput(err)
	}

	var rows []models.WrongAnswer
	if err := db.wrongAnswers(r.Context(), userID).Order("ua.answer_id DESC").Limit(1).Scan(&rows).Error; err != nil {
		return nil, storeFailure(err)
	}
	if len(rows) == 0 {
		return nextWrongResponse{Message: "no more wrong answers"}, nil
	}
	return nextWrongResponse{Question: &rows[0]}, nil
}
