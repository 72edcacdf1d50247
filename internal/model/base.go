package model

import (
	"time"
)

// Timestamps is embedded by every table. Primary keys are declared per model
// because the store names them after the table (quiz_id, question_id, ...).
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	QuestionTypeMCQ       = "mcq"
	QuestionTypeTrueFalse = "true_false"

	OptionTrue  = "True"
	OptionFalse = "False"
)
