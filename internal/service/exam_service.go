package service

import (
	"bytes"
	"context"
	"encoding/json"
	"exam_backend/internal/config"
	"exam_backend/internal/model"
	"exam_backend/internal/repository"
	"exam_backend/internal/util"
	"exam_backend/pkg/logger"
	"exam_backend/pkg/monitoring"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ExamGenerator produces questions for an exam.
type ExamGenerator interface {
	Generate(ctx context.Context, lang string, sandbox bool, req GenerationRequest) ([]byte, error)
}

// StatusNotifier reports a finished quiz back to the caller's workflow.
type StatusNotifier interface {
	Notify(ctx context.Context, u WorkflowUpdate) (interface{}, error)
}

type ExamService struct {
	Quizzes   *repository.QuizRepository
	Questions *repository.QuestionRepository
	Generator ExamGenerator
	Notifier  StatusNotifier
}

func NewExamService(quizzes *repository.QuizRepository, questions *repository.QuestionRepository, generator ExamGenerator, notifier StatusNotifier) *ExamService {
	return &ExamService{Quizzes: quizzes, Questions: questions, Generator: generator, Notifier: notifier}
}

type GeneratedMCQ struct {
	Question      string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer FlexString `json:"correct_answer"`
}

type GeneratedTrueFalse struct {
	Question      string     `json:"question"`
	CorrectAnswer FlexString `json:"correct_answer"`
}

type GeneratedExam struct {
	MCQQuestions       []GeneratedMCQ
	TrueFalseQuestions []GeneratedTrueFalse
}

// ExamResult is returned by a live generation.
type ExamResult struct {
	QuizID            uint        `json:"quiz_id"`
	NumberOfQuestions int         `json:"number_of_questions"`
	QuestionsCreated  int         `json:"questions_created"`
	OptionsCreated    int         `json:"options_created"`
	SkippedQuestions  []uint      `json:"skipped_questions,omitempty"`
	WorkflowResponse  interface{} `json:"workflow_response"`
}

const examGeneratedMessage = "Quiz, questions, options inserted, and exam status updated successfully"

// Generate runs the live pipeline for the fixed checklist in English.
func (s *ExamService) Generate(ctx context.Context, req ExamRequest) (*ExamResult, error) {
	if err := validate.Struct(req); err != nil {
		err = invalidParameters(err)
		observeGeneration(util.ModeLive, err)
		return nil, err
	}
	res, err := s.runLive(ctx, req, *req.Chapter, config.LanguageEnglish)
	observeGeneration(util.ModeLive, err)
	return res, err
}

// GenerateV2 validates per mode. Test mode persists nothing and returns the
// sandbox output; live mode sanitises chapters before running the pipeline.
func (s *ExamService) GenerateV2(ctx context.Context, req ExamV2Request) (interface{}, error) {
	req.Mode = strings.ToLower(strings.TrimSpace(req.Mode))
	if req.Mode == "" {
		req.Mode = util.ModeLive
	}
	req.Language = strings.ToLower(strings.TrimSpace(req.Language))
	if req.Language == "" {
		req.Language = config.LanguageEnglish
	}

	if err := validate.Var(req.Mode, "oneof=test live"); err != nil {
		return nil, util.NewValidationError("mode must be one of: test, live")
	}
	if err := validate.Var(req.Language, "oneof=ar en"); err != nil {
		return nil, util.NewValidationError("language must be one of: ar, en")
	}

	if req.Mode == util.ModeTest {
		out, err := s.runTest(ctx, req)
		observeGeneration(req.Mode, err)
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	res, err := s.generateLiveV2(ctx, req)
	observeGeneration(req.Mode, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ExamService) generateLiveV2(ctx context.Context, req ExamV2Request) (*ExamResult, error) {
	if err := validate.Struct(req.ExamRequest); err != nil {
		return nil, invalidParameters(err)
	}

	chapter := req.Chapter.Sanitized()
	if len(chapter.Names) == 0 {
		return nil, util.NewValidationError("chapter must contain at least one non-empty entry")
	}
	return s.runLive(ctx, req.ExamRequest, chapter, req.Language)
}

func (s *ExamService) runTest(ctx context.Context, req ExamV2Request) (map[string]interface{}, error) {
	if err := validate.Struct(req.GenerationParams); err != nil {
		return nil, invalidParameters(err)
	}

	chapter := req.Chapter.Sanitized()
	if len(chapter.Names) == 0 {
		return nil, util.NewValidationError("chapter must contain at least one non-empty entry")
	}

	body, err := s.Generator.Generate(ctx, req.Language, true, req.GenerationParams.request(chapter))
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, util.NewUpstreamError("Exam generation failed: response is not a JSON object", err)
	}
	if out == nil {
		return nil, util.NewUpstreamError("Exam generation failed: response is not a JSON object", nil)
	}
	out["attempt_id"] = req.AttemptID.String()
	out["bubble_quiz_id"] = req.BubbleQuizID.String()
	out["mode"] = util.ModeTest
	return out, nil
}

// runLive creates the quiz, generates and stores its questions, then notifies
// the workflow. Nothing is rolled back if a later step fails.
func (s *ExamService) runLive(ctx context.Context, req ExamRequest, chapter Chapter, lang string) (*ExamResult, error) {
	chapterJSON, err := json.Marshal(chapter)
	if err != nil {
		return nil, util.NewInternalError(err)
	}

	quiz := &model.Quiz{
		CreatedBy:         *req.CreatedBy,
		SubjectID:         *req.SubjectID,
		Chapter:           datatypes.JSON(chapterJSON),
		IsActive:          *req.IsActive,
		Class:             req.Class.String(),
		NumberOfQuestions: *req.NumberOfMCQQuestions + *req.NumberOfTrueFalseQuestions,
		Duration:          *req.Duration,
		QuestionsTypes:    req.QuestionsTypes.String(),
		Difficulty:        req.Difficulty.String(),
		ClassID:           *req.ClassID,
		Code:              req.Code.String(),
		TermID:            *req.TermID,
		Language:          lang,
	}
	if err := s.Quizzes.Create(ctx, quiz); err != nil {
		return nil, util.NewStoreError("Failed to insert quiz into database", err)
	}

	body, err := s.Generator.Generate(ctx, lang, false, req.GenerationParams.request(chapter))
	if err != nil {
		return nil, err
	}
	exam, err := ParseGeneratedExam(body)
	if err != nil {
		return nil, err
	}

	questions, options, skipped := buildQuestions(quiz.QuizID, exam)
	if len(questions) > 0 {
		if err := s.Questions.CreateQuestions(ctx, questions); err != nil {
			return nil, util.NewStoreError("Failed to insert questions into database", err)
		}
	}
	bound := bindOptions(questions, options)
	if len(bound) > 0 {
		if err := s.Questions.CreateOptions(ctx, bound); err != nil {
			return nil, util.NewStoreError("Failed to insert options into database", err)
		}
	}

	result := &ExamResult{
		QuizID:            quiz.QuizID,
		NumberOfQuestions: len(exam.MCQQuestions) + len(exam.TrueFalseQuestions),
		QuestionsCreated:  len(questions),
		OptionsCreated:    len(bound),
	}
	for _, i := range skipped {
		result.SkippedQuestions = append(result.SkippedQuestions, questions[i].QuestionID)
	}

	resp, err := s.Notifier.Notify(ctx, WorkflowUpdate{
		VersionTest:       req.VersionTest.String(),
		BubbleQuizID:      req.BubbleQuizID.String(),
		Attempt:           req.Attempt.String(),
		QuizID:            quiz.QuizID,
		NumberOfQuestions: result.NumberOfQuestions,
	})
	if err != nil {
		return nil, err
	}
	result.WorkflowResponse = resp
	return result, nil
}

// ParseGeneratedExam requires exam.mcq_questions and exam.true_false_questions
// to both be arrays.
func ParseGeneratedExam(body []byte) (*GeneratedExam, error) {
	var envelope struct {
		Exam *struct {
			MCQQuestions       json.RawMessage `json:"mcq_questions"`
			TrueFalseQuestions json.RawMessage `json:"true_false_questions"`
		} `json:"exam"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, util.NewUpstreamError("Exam generation failed: malformed response", err)
	}
	if envelope.Exam == nil || !isJSONArray(envelope.Exam.MCQQuestions) || !isJSONArray(envelope.Exam.TrueFalseQuestions) {
		return nil, util.NewUpstreamError("Exam generation failed: response has no question arrays", nil).
			WithDetails(string(body))
	}

	exam := &GeneratedExam{}
	if err := json.Unmarshal(envelope.Exam.MCQQuestions, &exam.MCQQuestions); err != nil {
		return nil, util.NewUpstreamError("Exam generation failed: malformed mcq_questions", err)
	}
	if err := json.Unmarshal(envelope.Exam.TrueFalseQuestions, &exam.TrueFalseQuestions); err != nil {
		return nil, util.NewUpstreamError("Exam generation failed: malformed true_false_questions", err)
	}
	return exam, nil
}

func isJSONArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

// pendingOption is an option waiting for its question's id.
type pendingOption struct {
	question int
	option   model.Option
}

// buildQuestions turns the generated exam into question rows (mcq first) and
// their options. Options are paired with questions by position. A question
// whose correct answer cannot be matched keeps its row but gets no options;
// its index is returned in skipped.
func buildQuestions(quizID uint, exam *GeneratedExam) ([]model.Question, []pendingOption, []int) {
	var (
		questions []model.Question
		options   []pendingOption
		skipped   []int
	)

	for _, q := range exam.MCQQuestions {
		idx := len(questions)
		questions = append(questions, model.Question{QuizID: quizID, QuestionText: q.Question, QuestionType: model.QuestionTypeMCQ})

		correct := string(q.CorrectAnswer)
		if correct == "" || !containsString(q.Options, correct) {
			logger.Log.Error("generated mcq question has no matching correct_answer, options skipped",
				zap.String("question", q.Question), zap.String("correct_answer", correct))
			skipped = append(skipped, idx)
			continue
		}
		for _, text := range q.Options {
			options = append(options, pendingOption{question: idx, option: model.Option{OptionText: text, IsCorrect: text == correct}})
		}
	}

	for _, q := range exam.TrueFalseQuestions {
		idx := len(questions)
		questions = append(questions, model.Question{QuizID: quizID, QuestionText: q.Question, QuestionType: model.QuestionTypeTrueFalse})

		answer, ok := parseTrueFalse(string(q.CorrectAnswer))
		if !ok {
			logger.Log.Error("generated true/false question has no usable correct_answer, options skipped",
				zap.String("question", q.Question), zap.String("correct_answer", string(q.CorrectAnswer)))
			skipped = append(skipped, idx)
			continue
		}
		options = append(options,
			pendingOption{question: idx, option: model.Option{OptionText: model.OptionTrue, IsCorrect: answer}},
			pendingOption{question: idx, option: model.Option{OptionText: model.OptionFalse, IsCorrect: !answer}},
		)
	}

	return questions, options, skipped
}

// bindOptions stamps the ids assigned to the inserted questions onto their options.
func bindOptions(questions []model.Question, pending []pendingOption) []model.Option {
	options := make([]model.Option, 0, len(pending))
	for _, p := range pending {
		o := p.option
		o.QuestionID = questions[p.question].QuestionID
		options = append(options, o)
	}
	return options
}

func parseTrueFalse(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

func invalidParameters(err error) error {
	fields := invalidFields(err)
	if fields == nil {
		return util.NewValidationError("Invalid or missing parameters").WithDetails(err.Error())
	}
	return util.NewValidationError("Invalid or missing parameters").
		WithDetails(map[string]interface{}{"missing_or_invalid": fields})
}

func observeGeneration(mode string, err error) {
	outcome := "success"
	if err != nil {
		outcome = string(util.AsAppError(err).Kind)
	}
	monitoring.ExamsGenerated.WithLabelValues(mode, outcome).Inc()
}
