// Package testutil builds throwaway stores for package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"exam_backend/internal/config"
	"exam_backend/internal/model"
	"exam_backend/pkg/database"

	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory sqlite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.InitDB(&config.DatabaseConfig{
		Driver:      "sqlite",
		DSN:         fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		AutoMigrate: true,
	}, "release")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Fixture is a quiz with questions and options, an attempt and the users
// and subject a document needs.
type Fixture struct {
	Quiz      model.Quiz
	Questions []model.Question
	Attempt   model.Attempt
}

// SeedQuiz creates a quiz owned by an instructor with the given questions.
// Each question's options are created with it; the first option is correct.
func SeedQuiz(t *testing.T, db *gorm.DB, subject, instructor string, questions map[string][]string, order ...string) Fixture {
	t.Helper()

	user := model.User{Username: instructor}
	must(t, db.Create(&user).Error)
	subj := model.Subject{SubjectName: subject}
	must(t, db.Create(&subj).Error)

	quiz := model.Quiz{CreatedBy: user.UserID, SubjectID: subj.SubjectID, Duration: 45, IsActive: true}
	must(t, db.Create(&quiz).Error)

	if len(order) == 0 {
		for text := range questions {
			order = append(order, text)
		}
	}

	fx := Fixture{Quiz: quiz}
	for _, text := range order {
		q := model.Question{QuizID: quiz.QuizID, QuestionText: text, QuestionType: model.QuestionTypeMCQ}
		must(t, db.Create(&q).Error)
		for i, opt := range questions[text] {
			o := model.Option{QuestionID: q.QuestionID, OptionText: opt, IsCorrect: i == 0}
			must(t, db.Create(&o).Error)
			q.Options = append(q.Options, o)
		}
		fx.Questions = append(fx.Questions, q)
	}

	fx.Attempt = model.Attempt{QuizID: quiz.QuizID, UserID: 1}
	must(t, db.Create(&fx.Attempt).Error)
	return fx
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}
