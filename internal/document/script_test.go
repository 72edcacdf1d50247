package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsArabic(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"latin", "Algebra", false},
		{"below block", string(rune(0x05FF)), false},
		{"block start", string(rune(0x0600)), true},
		{"block end", string(rune(0x06FF)), true},
		{"above block", string(rune(0x0700)), false},
		{"mixed", "Chapter ١", true},
		{"arabic word", "الرياضيات", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsArabic(tt.text))
		})
	}
}

func TestIsArabicExamThresholdIsStrict(t *testing.T) {
	// 2 of 5 fragments are Arabic: exactly 40%.
	exam := Exam{
		Subject:    "رياضيات",
		Instructor: "Ahmed",
		Questions: []Question{
			{Text: "ما الناتج؟", Options: []string{"1", "2"}},
		},
	}
	assert.False(t, IsArabicExam(exam))

	// 3 of 6.
	exam.Questions[0].Options = append(exam.Questions[0].Options, "ثلاثة")
	assert.True(t, IsArabicExam(exam))
}

func TestIsArabicExamWithoutQuestions(t *testing.T) {
	assert.True(t, IsArabicExam(Exam{Subject: "علوم", Instructor: "Sara"}))
	assert.False(t, IsArabicExam(Exam{Subject: "Science", Instructor: "Sara"}))
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "A", OptionLabel(false, 0))
	assert.Equal(t, "H", OptionLabel(false, 7))
	assert.Equal(t, "9", OptionLabel(false, 8))
	assert.Equal(t, "أ", OptionLabel(true, 0))
	assert.Equal(t, "هـ", OptionLabel(true, 4))
}
