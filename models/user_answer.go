package models

// UserAnswer is append-only history. AnswerID grows with insertion order.
type UserAnswer struct {
	AnswerID   uint `gorm:"column:answer_id;primaryKey;autoIncrement" json:"answer_id"`
	UserID     int  `gorm:"not null;index" json:"user_id"`
	QuestionID int  `gorm:"not null;index" json:"question_id"`
	UserChoice int  `json:"user_choice"`
	IsCorrect  bool `json:"is_correct"`
}

func (UserAnswer) TableName() string { return "user_answers" }

// WrongAnswer is one row of user_answers joined to its question.
type WrongAnswer struct {
	AnswerID     uint   `gorm:"column:answer_id" json:"answer_id"`
	QuestionID   uint   `gorm:"column:question_id" json:"question_id"`
	QuestionText string `gorm:"column:question_text" json:"question_text"`
	Choice1      string `gorm:"column:choice1" json:"choice1"`
	Choice2      string `gorm:"column:choice2" json:"choice2"`
	Choice3      string `gorm:"column:choice3" json:"choice3"`
	Choice4      string `gorm:"column:choice4" json:"choice4"`
	Answer       int    `gorm:"column:answer" json:"answer"`
	Explanation  string `gorm:"column:explanation" json:"explanation"`
	UserChoice   int    `gorm:"column:user_choice" json:"user_choice"`
}
