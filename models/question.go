package models

// Question is a multiple-choice item generated from a StudyMaterial.
// Answer is the 1-based index of the correct choice.
type Question struct {
	QuestionID   uint   `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	MaterialID   int    `gorm:"not null;index" json:"material_id"`
	QuestionText string `gorm:"type:text;not null" json:"question_text"`
	Choice1      string `gorm:"column:choice1;size:500" json:"choice1"`
	Choice2      string `gorm:"column:choice2;size:500" json:"choice2"`
	Choice3      string `gorm:"column:choice3;size:500" json:"choice3"`
	Choice4      string `gorm:"column:choice4;size:500" json:"choice4"`
	Answer       int    `json:"answer"`
	Explanation  string `gorm:"type:text" json:"explanation"`
}

func (Question) TableName() string { return "questions" }
