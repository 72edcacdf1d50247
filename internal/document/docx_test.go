package document

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedExam() Exam {
	return Exam{
		Subject:    "الفيزياء",
		Instructor: "أحمد",
		Duration:   45,
		Questions: []Question{
			{Text: "ما وحدة القوة؟", Options: []string{"نيوتن", "جول"}},
			{Text: "Unit of energy?", Options: []string{"Joule", "Watt"}},
		},
	}
}

func TestPlanMixedExam(t *testing.T) {
	layout := Plan(mixedExam())
	require.True(t, layout.RTL)

	// header, then per question: question + options + spacer.
	require.Len(t, layout.Paragraphs, 1+4+4)

	header := layout.Paragraphs[0]
	assert.True(t, header.RTL)
	assert.Equal(t, AlignLeft, header.Align)
	assert.True(t, header.RightTab)
	assert.True(t, header.BorderBottom)
	assert.Equal(t, "Subject: الفيزياء", header.Runs[0].Text)
	assert.Equal(t, "\tInstructor: أحمد | Duration: 45 minutes", header.Runs[1].Text)

	arabicQuestion := layout.Paragraphs[1]
	assert.True(t, arabicQuestion.RTL)
	assert.Equal(t, AlignRight, arabicQuestion.Align)
	assert.Equal(t, "1. ما وحدة القوة؟", arabicQuestion.Runs[0].Text)
	assert.Equal(t, "أ. نيوتن", layout.Paragraphs[2].Runs[0].Text)

	englishQuestion := layout.Paragraphs[5]
	assert.False(t, englishQuestion.RTL)
	assert.Equal(t, AlignLeft, englishQuestion.Align)

	// Latin options under an English question still take Arabic labels in an Arabic exam.
	option := layout.Paragraphs[6]
	assert.False(t, option.RTL)
	assert.Equal(t, "أ. Joule", option.Runs[0].Text)
	assert.Equal(t, optionIndent, option.IndentLeft)
}

func TestPlanEnglishExam(t *testing.T) {
	layout := Plan(Exam{
		Subject:    "Physics",
		Instructor: "Jane",
		Duration:   30,
		Questions:  []Question{{Text: "Unit of force?", Options: []string{"Newton", "Pascal"}}},
	})
	assert.False(t, layout.RTL)
	assert.False(t, layout.Paragraphs[0].RTL)
	assert.Equal(t, "B. Pascal", layout.Paragraphs[3].Runs[0].Text)
}

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}
	t.Fatalf("part %s missing", name)
	return ""
}

func TestRenderPackage(t *testing.T) {
	data, err := Render(mixedExam())
	require.NoError(t, err)

	assert.Contains(t, readPart(t, data, "[Content_Types].xml"), "/word/document.xml")
	assert.Contains(t, readPart(t, data, "_rels/.rels"), "word/document.xml")

	doc := readPart(t, data, "word/document.xml")
	assert.Contains(t, doc, `<w:tab w:val="right" w:pos="9026"/>`)
	assert.Contains(t, doc, `<w:tab/><w:t xml:space="preserve">Instructor: أحمد | Duration: 45 minutes</w:t>`)
	assert.Contains(t, doc, `<w:ind w:left="720"/>`)
	assert.True(t, strings.HasSuffix(doc, `<w:bidi/></w:sectPr></w:body></w:document>`))
}

func TestRenderEscapesText(t *testing.T) {
	data, err := Render(Exam{
		Subject:    "Logic & <Sets>",
		Instructor: "Jane",
		Duration:   10,
	})
	require.NoError(t, err)

	doc := readPart(t, data, "word/document.xml")
	assert.Contains(t, doc, "Subject: Logic &amp; &lt;Sets&gt;")
	assert.NotContains(t, doc, "<w:bidi/>")
}
