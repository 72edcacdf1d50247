package service

import (
	"context"
	"exam_backend/internal/model"
	"exam_backend/internal/repository"
	"exam_backend/internal/util"
	"net/http"
	"strings"
)

type CommentService struct {
	Repo *repository.CommentRepository
}

func NewCommentService(repo *repository.CommentRepository) *CommentService {
	return &CommentService{Repo: repo}
}

// CommentRequest selects between writing (IsInsert true) and fetching.
// IsInsert is a pointer so that an absent flag can be told apart from false.
type CommentRequest struct {
	IsInsert    *bool  `json:"is_insert"`
	QuestionID  uint   `json:"question_id"`
	AttemptID   uint   `json:"attempt_id"`
	StudentID   uint   `json:"student_id"`
	CommentText string `json:"comment_text"`
}

type CommentResult struct {
	Message string
	Data    interface{}
}

func (s *CommentService) Handle(ctx context.Context, req CommentRequest) (*CommentResult, error) {
	if req.IsInsert == nil {
		return nil, util.NewValidationError("Missing required field: is_insert (true for insert/update, false for fetch).")
	}
	if *req.IsInsert {
		return s.save(ctx, req)
	}
	return s.fetch(ctx, req)
}

func (s *CommentService) save(ctx context.Context, req CommentRequest) (*CommentResult, error) {
	if req.QuestionID == 0 || req.AttemptID == 0 || req.StudentID == 0 || strings.TrimSpace(req.CommentText) == "" {
		return nil, util.NewValidationError("Missing required fields for insert/update: question_id, attempt_id, student_id, or comment_text.")
	}

	stored, err := s.Repo.Upsert(ctx, &model.Comment{
		QuestionID:  req.QuestionID,
		AttemptID:   req.AttemptID,
		StudentID:   req.StudentID,
		CommentText: req.CommentText,
	})
	if err != nil {
		return nil, util.NewStoreError("Failed to save the comment.", err)
	}
	return &CommentResult{Message: "Comment saved successfully.", Data: stored}, nil
}

func (s *CommentService) fetch(ctx context.Context, req CommentRequest) (*CommentResult, error) {
	if req.QuestionID == 0 || req.AttemptID == 0 || req.StudentID == 0 {
		return nil, util.NewValidationError("All parameters (question_id, attempt_id, student_id) are required for fetching data.")
	}

	comments, err := s.Repo.FindByKey(ctx, req.QuestionID, req.AttemptID, req.StudentID)
	if err != nil {
		return nil, util.NewStoreError("Failed to fetch comments from the database.", err)
	}
	if len(comments) == 0 {
		return nil, util.NewNotFoundError("No comments found for the provided parameters.").WithStatus(http.StatusNotFound)
	}
	return &CommentResult{Message: "Comments fetched successfully.", Data: comments}, nil
}
