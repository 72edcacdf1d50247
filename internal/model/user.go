package model

// Subject and User are owned by other services; exam documents only read their names.
type Subject struct {
	SubjectID   uint   `gorm:"primaryKey;column:subject_id" json:"subject_id"`
	SubjectName string `gorm:"size:200;not null" json:"subject_name"`
}

func (Subject) TableName() string {
	return "subjects"
}

type User struct {
	UserID   uint   `gorm:"primaryKey;column:user_id" json:"user_id"`
	Username string `gorm:"size:100;not null" json:"username"`
}

func (User) TableName() string {
	return "users"
}
