package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	ModeTest = "test"
	ModeLive = "live"
)

// DocumentKey is the storage name of the rendered paper for a quiz.
func DocumentKey(quizID uint) string {
	return "quiz_" + Uitoa(quizID) + ".docx"
}
