package service

import (
	"bytes"
	"context"
	"errors"
	"exam_backend/internal/document"
	"exam_backend/internal/repository"
	"exam_backend/internal/util"
	"exam_backend/pkg/logger"
	"exam_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type DocumentService struct {
	Quizzes   *repository.QuizRepository
	Questions *repository.QuestionRepository
	Storage   StorageProvider
	// Links is nil when Redis is disabled.
	Links *repository.DocumentLinkRepository
}

func NewDocumentService(quizzes *repository.QuizRepository, questions *repository.QuestionRepository, storage StorageProvider, links *repository.DocumentLinkRepository) *DocumentService {
	return &DocumentService{Quizzes: quizzes, Questions: questions, Storage: storage, Links: links}
}

type DocumentLink struct {
	DocxURL string `json:"docx_url"`
	Cached  bool   `json:"cached"`
}

// Generate returns the link to the quiz's exam paper, rendering and uploading
// it only when no copy is stored yet. A stored copy is never refreshed.
func (s *DocumentService) Generate(ctx context.Context, quizID uint) (*DocumentLink, error) {
	if quizID == 0 {
		return nil, util.NewValidationError("Invalid quiz_id. Must be a number.")
	}
	key := util.DocumentKey(quizID)

	if link, ok := s.cachedLink(ctx, quizID, key); ok {
		monitoring.DocumentsServed.WithLabelValues("true").Inc()
		return &DocumentLink{DocxURL: link, Cached: true}, nil
	}

	exam, err := s.loadExam(ctx, quizID)
	if err != nil {
		return nil, err
	}

	data, err := document.Render(*exam)
	if err != nil {
		return nil, util.NewInternalError(err)
	}

	link, err := s.Storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), document.MimeType)
	if err != nil {
		return nil, util.NewStoreError("Failed to upload exam document", err)
	}
	s.rememberLink(ctx, quizID, link)

	logger.Log.Info("exam document generated",
		zap.Uint("quiz_id", quizID), zap.Int("bytes", len(data)), zap.Int("questions", len(exam.Questions)))
	monitoring.DocumentsServed.WithLabelValues("false").Inc()
	return &DocumentLink{DocxURL: link}, nil
}

// cachedLink consults Redis, then the object store. Lookup failures are
// logged and treated as a miss.
func (s *DocumentService) cachedLink(ctx context.Context, quizID uint, key string) (string, bool) {
	if s.Links != nil {
		link, err := s.Links.Get(ctx, quizID)
		if err != nil {
			logger.Log.Warn("document link cache unavailable", zap.Error(err))
		} else if link != "" {
			return link, true
		}
	}

	exists, err := s.Storage.Exists(ctx, key)
	if err != nil {
		logger.Log.Warn("document lookup failed, regenerating", zap.String("key", key), zap.Error(err))
		return "", false
	}
	if !exists {
		return "", false
	}

	link := s.Storage.GetURL(key)
	s.rememberLink(ctx, quizID, link)
	return link, true
}

func (s *DocumentService) rememberLink(ctx context.Context, quizID uint, link string) {
	if s.Links == nil {
		return
	}
	if err := s.Links.Set(ctx, quizID, link); err != nil {
		logger.Log.Warn("failed to cache document link", zap.Uint("quiz_id", quizID), zap.Error(err))
	}
}

// loadExam reads the quiz, its instructor and subject, then each question's
// options with one query per question.
func (s *DocumentService) loadExam(ctx context.Context, quizID uint) (*document.Exam, error) {
	quiz, err := s.Quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, lookupError(err, util.ErrQuizNotFound, "Quiz not found")
	}
	instructor, err := s.Quizzes.FindUsername(ctx, quiz.CreatedBy)
	if err != nil {
		return nil, lookupError(err, util.ErrUserNotFound, "Instructor not found")
	}
	subject, err := s.Quizzes.FindSubjectName(ctx, quiz.SubjectID)
	if err != nil {
		return nil, lookupError(err, util.ErrSubjectNotFound, "Subject not found")
	}

	questions, err := s.Questions.ListByQuiz(ctx, quizID)
	if err != nil {
		return nil, util.NewStoreError("Questions not found", err)
	}

	exam := &document.Exam{Subject: subject, Instructor: instructor, Duration: quiz.Duration}
	for _, q := range questions {
		opts, err := s.Questions.ListOptions(ctx, q.QuestionID)
		if err != nil {
			return nil, util.NewStoreError("Options not found for question "+util.Uitoa(q.QuestionID), err)
		}
		item := document.Question{Text: q.QuestionText}
		for _, o := range opts {
			item.Options = append(item.Options, o.OptionText)
		}
		exam.Questions = append(exam.Questions, item)
	}
	return exam, nil
}

func lookupError(err, notFound error, message string) error {
	if errors.Is(err, notFound) {
		return util.NewNotFoundError(message)
	}
	return util.NewStoreError(message, err)
}
