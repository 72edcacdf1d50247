package model

type Comment struct {
	CommentID   uint   `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	QuestionID  uint   `gorm:"not null;uniqueIndex:idx_comments_natural_key,priority:1" json:"question_id"`
	AttemptID   uint   `gorm:"not null;uniqueIndex:idx_comments_natural_key,priority:2" json:"attempt_id"`
	StudentID   uint   `gorm:"not null;uniqueIndex:idx_comments_natural_key,priority:3" json:"student_id"`
	CommentText string `gorm:"type:text;not null" json:"comment_text"`
	Timestamps
}

func (Comment) TableName() string {
	return "answers_comment"
}
