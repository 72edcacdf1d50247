package model

// Answer holds one student's answer to one question within an attempt.
// (user_id, question_id, attempt_id) is unique; IsCorrect is always copied
// from the chosen option.
type Answer struct {
	AnswerID   uint     `gorm:"primaryKey;column:answer_id" json:"answer_id"`
	UserID     uint     `gorm:"not null;uniqueIndex:idx_answers_natural_key,priority:1" json:"user_id"`
	QuestionID uint     `gorm:"not null;uniqueIndex:idx_answers_natural_key,priority:2" json:"question_id"`
	AttemptID  uint     `gorm:"not null;uniqueIndex:idx_answers_natural_key,priority:3;index" json:"attempt_id"`
	OptionID   uint     `gorm:"not null" json:"option_id"`
	AnswerText *string  `gorm:"type:text" json:"answer_text"`
	Score      *float64 `json:"score"`
	IsCorrect  bool     `gorm:"not null" json:"is_correct"`
	Comment    *string  `gorm:"type:text" json:"comment"`
	Timestamps
}

func (Answer) TableName() string {
	return "answers"
}

// Attempt is one student's run through a quiz. The tallies are overwritten
// after every answer batch.
type Attempt struct {
	AttemptID    uint `gorm:"primaryKey;column:attempt_id" json:"attempt_id"`
	QuizID       uint `gorm:"index;not null" json:"quiz_id"`
	UserID       uint `gorm:"index;not null" json:"user_id"`
	RightAnswers int  `gorm:"not null" json:"right_answers"`
	FalseAnswers int  `gorm:"not null" json:"false_answers"`
	Timestamps
}

func (Attempt) TableName() string {
	return "attempts"
}

// AttemptSummary is the derived view of an attempt's answers.
type AttemptSummary struct {
	TotalQuestions      int64 `json:"total_questions"`
	CorrectAnswers      int64 `json:"correct_answers"`
	WrongAnswers        int64 `json:"wrong_answers"`
	UnansweredQuestions int64 `json:"unanswered_questions"`
}
