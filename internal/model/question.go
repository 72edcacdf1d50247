package model

// swagger:model Question
type Question struct {
	QuestionID   uint     `gorm:"primaryKey;column:question_id" json:"question_id"`
	QuizID       uint     `gorm:"index;not null" json:"quiz_id"`
	QuestionText string   `gorm:"type:text;not null" json:"question_text"`
	QuestionType string   `gorm:"size:20;not null" json:"question_type"`
	Options      []Option `gorm:"foreignKey:QuestionID;references:QuestionID" json:"options,omitempty"`
	Timestamps
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model Option
type Option struct {
	OptionID   uint   `gorm:"primaryKey;column:option_id" json:"option_id"`
	QuestionID uint   `gorm:"index;not null" json:"question_id"`
	OptionText string `gorm:"type:text;not null" json:"option_text"`
	IsCorrect  bool   `gorm:"not null" json:"is_correct"`
	Timestamps
}

func (Option) TableName() string {
	return "options"
}
