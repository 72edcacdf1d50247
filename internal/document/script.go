// Package document lays out exam papers and serialises them as .docx files.
//
// Layout decisions are pure functions of the text: a fragment is Arabic when it
// contains any rune in the Arabic block (U+0600 to U+06FF), and an exam is
// primarily Arabic when more than 40% of its fragments are.
package document

import "strconv"

const arabicExamThreshold = 0.4

var (
	arabicLabels = []string{"أ", "ب", "ج", "د", "هـ", "و", "ز", "ح"}
	latinLabels  = []string{"A", "B", "C", "D", "E", "F", "G", "H"}
)

// ContainsArabic reports whether text has at least one rune in U+0600–U+06FF.
func ContainsArabic(text string) bool {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}

// OptionLabels returns the alphabet used to label choices.
func OptionLabels(arabic bool) []string {
	if arabic {
		return arabicLabels
	}
	return latinLabels
}

// OptionLabel labels the i-th choice, numbering past the end of the alphabet.
func OptionLabel(arabic bool, i int) string {
	labels := OptionLabels(arabic)
	if i < len(labels) {
		return labels[i]
	}
	return strconv.Itoa(i + 1)
}

// IsArabicExam classifies the exam from the subject, the instructor and every
// question and option text. The threshold is strict.
func IsArabicExam(exam Exam) bool {
	arabic, total := 0, 0
	count := func(text string) {
		total++
		if ContainsArabic(text) {
			arabic++
		}
	}

	count(exam.Subject)
	count(exam.Instructor)
	for _, q := range exam.Questions {
		count(q.Text)
		for _, o := range q.Options {
			count(o)
		}
	}

	return float64(arabic)/float64(total) > arabicExamThreshold
}
