package app

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"exam_backend/internal/config"
	"exam_backend/internal/testutil"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const upstreamExam = `{"exam":{
  "mcq_questions":[{"question":"2+2?","options":["3","4"],"correct_answer":"4"}],
  "true_false_questions":[{"question":"Water is wet","correct_answer":"true"}]
}}`

func newTestApp(t *testing.T) (*App, *gorm.DB) {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			io.WriteString(w, `{"status":"success"}`)
			return
		}
		io.WriteString(w, upstreamExam)
	}))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		Storage: config.StorageConfig{
			Type:          "local",
			LocalPath:     t.TempDir(),
			PublicBaseURL: "http://exam.test",
		},
		GenExam: config.GenExamConfig{
			Timeout:    5 * time.Second,
			SandboxURL: upstream.URL + "/sandbox",
			Languages: map[string]config.GenExamLanguageConfig{
				"en": {BaseURL: upstream.URL + "/en", KeyHeader: "X-API-Key", APIKey: "k"},
			},
		},
		Workflow: config.WorkflowConfig{BaseURL: upstream.URL, Key: "wf", Timeout: 5 * time.Second},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	db := testutil.NewDB(t)
	return New(cfg, db, nil), db
}

func doJSON(t *testing.T, a *App, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 && bytes.HasPrefix(bytes.TrimSpace(w.Body.Bytes()), []byte("{")) {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestHealth(t *testing.T) {
	a, _ := newTestApp(t)

	w, body := doJSON(t, a, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAnswerThenResults(t *testing.T) {
	a, db := newTestApp(t)
	fx := testutil.SeedQuiz(t, db, "Math", "instructor", map[string][]string{
		"2+2?": {"4", "5"},
		"3+3?": {"6", "7"},
	}, "2+2?", "3+3?")
	q := fx.Questions[0]

	w, body := doJSON(t, a, http.MethodPost, "/api/answers", map[string]interface{}{
		"answers": []map[string]interface{}{{
			"user_id":     fx.Attempt.UserID,
			"option_id":   q.Options[0].OptionID,
			"question_id": q.QuestionID,
			"attempt_id":  fx.Attempt.AttemptID,
			"quiz_id":     fx.Quiz.QuizID,
		}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "success", body["status"])
	assert.Len(t, body["results"], 1)

	w, body = doJSON(t, a, http.MethodPost, "/api/results", map[string]interface{}{
		"user_id":    fx.Attempt.UserID,
		"quiz_id":    fx.Quiz.QuizID,
		"attempt_id": fx.Attempt.AttemptID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["total_questions"])
	assert.EqualValues(t, 1, data["correct_answers"])
	assert.EqualValues(t, 0, data["wrong_answers"])
	assert.EqualValues(t, 1, data["unanswered_questions"])
}

func TestAnswersRejectEmptyBatch(t *testing.T) {
	a, _ := newTestApp(t)

	w, body := doJSON(t, a, http.MethodPost, "/api/answers", map[string]interface{}{"answers": []interface{}{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", body["status"])
}

func TestCommentRoundTrip(t *testing.T) {
	a, _ := newTestApp(t)
	comment := map[string]interface{}{
		"question_id":  1,
		"attempt_id":   2,
		"student_id":   3,
		"comment_text": "check the sign",
	}

	comment["is_insert"] = false
	w, _ := doJSON(t, a, http.MethodPost, "/api/comments", comment)
	assert.Equal(t, http.StatusNotFound, w.Code)

	comment["is_insert"] = true
	w, body := doJSON(t, a, http.MethodPost, "/api/comments", comment)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Comment saved successfully.", body["message"])

	comment["is_insert"] = false
	w, body = doJSON(t, a, http.MethodPost, "/api/comments", comment)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Comments fetched successfully.", body["message"])
}

func TestGenerateExam(t *testing.T) {
	a, _ := newTestApp(t)

	w, body := doJSON(t, a, http.MethodPost, "/api/exams/generate", map[string]interface{}{
		"exam_difficulty_level":          "easy",
		"educational_system":             "national",
		"academic_year":                  "2024",
		"semester":                       "1",
		"subject":                        "Math",
		"chapter":                        "Arithmetic",
		"number_of_mcq_questions":        1,
		"number_of_true_false_questions": 1,
		"created_by":                     1,
		"subject_id":                     1,
		"is_active":                      true,
		"class":                          "10A",
		"duration":                       30,
		"questions_types":                "mixed",
		"difficulty":                     "easy",
		"class_id":                       1,
		"code":                           "M1",
		"term_id":                        1,
		"attempt":                        "1",
		"version_test":                   "version-test",
		"bubble_quiz_id":                 "bq",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := body["data"].(map[string]interface{})
	assert.NotZero(t, data["quiz_id"])
	assert.EqualValues(t, 2, data["questions_created"])
	assert.EqualValues(t, 4, data["options_created"])
}

func TestDocumentRoute(t *testing.T) {
	a, db := newTestApp(t)
	fx := testutil.SeedQuiz(t, db, "Physics", "Dr. Noor", map[string][]string{
		"Unit of force?": {"Newton", "Joule"},
	})

	w, _ := doJSON(t, a, http.MethodGet, "/api/documents/exam", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w, _ = doJSON(t, a, http.MethodPost, "/api/documents/exam", map[string]interface{}{"quiz_id": "abc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body := doJSON(t, a, http.MethodPost, "/api/documents/exam", map[string]interface{}{"quiz_id": fx.Quiz.QuizID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	link := body["data"].(map[string]interface{})["docx_url"].(string)
	name := fmt.Sprintf("quiz_%d.docx", fx.Quiz.QuizID)
	assert.Equal(t, "http://exam.test/uploads/"+name, link)

	w, _ = doJSON(t, a, http.MethodGet, "/uploads/"+name, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PK", w.Body.String()[:2])
}

func TestHandleFunctionURL(t *testing.T) {
	a, _ := newTestApp(t)

	resp, err := a.HandleFunctionURL(context.Background(), events.LambdaFunctionURLRequest{
		RawPath: "/api/health",
		RequestContext: events.LambdaFunctionURLRequestContext{
			HTTP: events.LambdaFunctionURLRequestContextHTTPDescription{Method: http.MethodGet},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Headers["Content-Type"], "application/json")

	body := base64.StdEncoding.EncodeToString([]byte(`{"is_insert":true,"question_id":1,"attempt_id":1,"student_id":1,"comment_text":"ok"}`))
	resp, err = a.HandleFunctionURL(context.Background(), events.LambdaFunctionURLRequest{
		RawPath:         "/api/comments",
		Headers:         map[string]string{"content-type": "application/json"},
		Body:            body,
		IsBase64Encoded: true,
		RequestContext: events.LambdaFunctionURLRequestContext{
			HTTP: events.LambdaFunctionURLRequestContextHTTPDescription{Method: http.MethodPost},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)
	assert.Contains(t, resp.Body, "Comment saved successfully.")

	resp, err = a.HandleFunctionURL(context.Background(), events.LambdaFunctionURLRequest{
		RawPath:         "/api/comments",
		Body:            "%%%",
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
