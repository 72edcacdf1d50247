package document

import "fmt"

// Exam is everything printed on the paper.
type Exam struct {
	Subject    string
	Instructor string
	Duration   int
	Questions  []Question
}

type Question struct {
	Text    string
	Options []string
}

type Alignment string

const (
	AlignLeft  Alignment = "left"
	AlignRight Alignment = "right"
)

// Measurements in twentieths of a point, as WordprocessingML expects.
const (
	headerSpacingAfter   = 400
	questionSpacingAfter = 200
	optionSpacingAfter   = 120
	optionIndent         = 720
	rightTabPosition     = 9026
)

type Run struct {
	Text string
	Bold bool
}

type Paragraph struct {
	Runs         []Run
	RTL          bool
	Align        Alignment
	SpacingAfter int
	IndentLeft   int
	RightTab     bool
	BorderBottom bool
}

// Layout is the paper after every orientation decision has been made.
type Layout struct {
	RTL        bool
	Paragraphs []Paragraph
}

// Plan decides document and paragraph orientation. Each question and option
// is re-evaluated on its own text, so a mixed exam interleaves RTL and LTR
// paragraphs regardless of the document-level flag.
func Plan(exam Exam) Layout {
	arabicExam := IsArabicExam(exam)
	layout := Layout{RTL: arabicExam}

	layout.Paragraphs = append(layout.Paragraphs, Paragraph{
		Runs: []Run{
			{Text: "Subject: " + exam.Subject, Bold: true},
			{Text: fmt.Sprintf("\tInstructor: %s | Duration: %d minutes", exam.Instructor, exam.Duration)},
		},
		RTL:          ContainsArabic(exam.Subject) || ContainsArabic(exam.Instructor),
		Align:        AlignLeft,
		SpacingAfter: headerSpacingAfter,
		RightTab:     true,
		BorderBottom: true,
	})

	for i, q := range exam.Questions {
		qArabic := ContainsArabic(q.Text)
		layout.Paragraphs = append(layout.Paragraphs, Paragraph{
			Runs:         []Run{{Text: fmt.Sprintf("%d. %s", i+1, q.Text), Bold: true}},
			RTL:          qArabic,
			Align:        alignFor(qArabic),
			SpacingAfter: questionSpacingAfter,
		})

		arabicLabels := qArabic || arabicExam
		for j, o := range q.Options {
			rtl := ContainsArabic(o) || qArabic
			layout.Paragraphs = append(layout.Paragraphs, Paragraph{
				Runs:         []Run{{Text: fmt.Sprintf("%s. %s", OptionLabel(arabicLabels, j), o)}},
				RTL:          rtl,
				Align:        alignFor(rtl),
				SpacingAfter: optionSpacingAfter,
				IndentLeft:   optionIndent,
			})
		}

		layout.Paragraphs = append(layout.Paragraphs, Paragraph{SpacingAfter: questionSpacingAfter})
	}

	return layout
}

func alignFor(rtl bool) Alignment {
	if rtl {
		return AlignRight
	}
	return AlignLeft
}
