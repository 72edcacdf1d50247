package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DocumentLinkRepository remembers the public link of each generated exam
// document so repeat requests skip the object-store lookup.
type DocumentLinkRepository struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewDocumentLinkRepository(rdb *redis.Client, ttl time.Duration) *DocumentLinkRepository {
	return &DocumentLinkRepository{Redis: rdb, TTL: ttl}
}

func documentLinkKey(quizID uint) string {
	return fmt.Sprintf("exam:docx:quiz_%d", quizID)
}

// Get returns "" without error when no link is cached.
func (r *DocumentLinkRepository) Get(ctx context.Context, quizID uint) (string, error) {
	url, err := r.Redis.Get(ctx, documentLinkKey(quizID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return url, err
}

func (r *DocumentLinkRepository) Set(ctx context.Context, quizID uint, url string) error {
	return r.Redis.Set(ctx, documentLinkKey(quizID), url, r.TTL).Err()
}
