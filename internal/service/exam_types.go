package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FlexString accepts a JSON string, number or boolean and keeps its text.
// Callers send identifiers such as academic_year and attempt either way.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	if len(b) == 0 || b[0] == '{' || b[0] == '[' {
		return fmt.Errorf("expected a scalar, got %s", string(b))
	}
	*f = FlexString(b)
	return nil
}

func (f *FlexString) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Chapter is either a single chapter name or a list of names. It marshals
// back in the shape it arrived in.
type Chapter struct {
	Names  []string
	single bool
}

func (c *Chapter) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		c.single = false
		return json.Unmarshal(b, &c.Names)
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("chapter must be a string or an array of strings")
	}
	c.Names, c.single = []string{s}, true
	return nil
}

func (c Chapter) MarshalJSON() ([]byte, error) {
	if c.single && len(c.Names) == 1 {
		return json.Marshal(c.Names[0])
	}
	if c.Names == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.Names)
}

// Sanitized trims every name and drops the empty ones. A chapter given as a
// single string keeps that form.
func (c Chapter) Sanitized() Chapter {
	var names []string
	for _, n := range c.Names {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return Chapter{Names: names, single: c.single && len(names) == 1}
}

// GenerationParams is what the exam-authoring API needs.
type GenerationParams struct {
	ExamDifficultyLevel        *FlexString `json:"exam_difficulty_level" validate:"required"`
	EducationalSystem          *FlexString `json:"educational_system" validate:"required"`
	AcademicYear               *FlexString `json:"academic_year" validate:"required"`
	Semester                   *FlexString `json:"semester" validate:"required"`
	Subject                    *FlexString `json:"subject" validate:"required"`
	Chapter                    *Chapter    `json:"chapter" validate:"required"`
	NumberOfMCQQuestions       *int        `json:"number_of_mcq_questions" validate:"required,min=0"`
	NumberOfTrueFalseQuestions *int        `json:"number_of_true_false_questions" validate:"required,min=0"`
}

// QuizParams populate the quiz row.
type QuizParams struct {
	CreatedBy      *uint       `json:"created_by" validate:"required"`
	SubjectID      *uint       `json:"subject_id" validate:"required"`
	IsActive       *bool       `json:"is_active" validate:"required"`
	Class          *FlexString `json:"class" validate:"required"`
	Duration       *int        `json:"duration" validate:"required,min=0"`
	QuestionsTypes *FlexString `json:"questions_types" validate:"required"`
	Difficulty     *FlexString `json:"difficulty" validate:"required"`
	ClassID        *uint       `json:"class_id" validate:"required"`
	Code           *FlexString `json:"code" validate:"required"`
	TermID         *uint       `json:"term_id" validate:"required"`
}

// WorkflowParams correlate the quiz with the caller's workflow run.
type WorkflowParams struct {
	Attempt      *FlexString `json:"attempt" validate:"required"`
	VersionTest  *FlexString `json:"version_test" validate:"required"`
	BubbleQuizID *FlexString `json:"bubble_quiz_id" validate:"required"`
}

// ExamRequest is the full checklist for a live generation.
type ExamRequest struct {
	GenerationParams
	QuizParams
	WorkflowParams
}

// ExamV2Request adds a mode switch and language selection. In test mode only
// GenerationParams are required; AttemptID and BubbleQuizID are echoed back.
type ExamV2Request struct {
	Mode      string      `json:"mode"`
	Language  string      `json:"language"`
	AttemptID *FlexString `json:"attempt_id"`
	ExamRequest
}

// GenerationRequest is the body sent to the exam-authoring API.
type GenerationRequest struct {
	ExamDifficultyLevel        string  `json:"exam_difficulty_level"`
	EducationalSystem          string  `json:"educational_system"`
	AcademicYear               string  `json:"academic_year"`
	Semester                   string  `json:"semester"`
	Subject                    string  `json:"subject"`
	Chapter                    Chapter `json:"chapter"`
	NumberOfMCQQuestions       int     `json:"number_of_mcq_questions"`
	NumberOfTrueFalseQuestions int     `json:"number_of_true_false_questions"`
}

func (p GenerationParams) request(chapter Chapter) GenerationRequest {
	return GenerationRequest{
		ExamDifficultyLevel:        p.ExamDifficultyLevel.String(),
		EducationalSystem:          p.EducationalSystem.String(),
		AcademicYear:               p.AcademicYear.String(),
		Semester:                   p.Semester.String(),
		Subject:                    p.Subject.String(),
		Chapter:                    chapter,
		NumberOfMCQQuestions:       *p.NumberOfMCQQuestions,
		NumberOfTrueFalseQuestions: *p.NumberOfTrueFalseQuestions,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// invalidFields lists the json names of the fields that failed validation.
func invalidFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
