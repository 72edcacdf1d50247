package model

import (
	"gorm.io/datatypes"
)

// swagger:model Quiz
type Quiz struct {
	QuizID            uint           `gorm:"primaryKey;column:quiz_id" json:"quiz_id"`
	CreatedBy         uint           `gorm:"index;not null" json:"created_by"`
	SubjectID         uint           `gorm:"index;not null" json:"subject_id"`
	Chapter           datatypes.JSON `json:"chapter"`
	IsActive          bool           `gorm:"not null" json:"is_active"`
	Class             string         `gorm:"column:class;size:100" json:"class"`
	NumberOfQuestions int            `json:"number_of_questions"`
	Duration          int            `json:"duration"`
	QuestionsTypes    string         `gorm:"size:100" json:"questions_types"`
	Difficulty        string         `gorm:"size:50" json:"difficulty"`
	ClassID           uint           `json:"class_id"`
	Code              string         `gorm:"size:100" json:"code"`
	TermID            uint           `json:"term_id"`
	Language          string         `gorm:"size:10;default:'en'" json:"language"`
	Timestamps
}

func (Quiz) TableName() string {
	return "quizzes"
}
