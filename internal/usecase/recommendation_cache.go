package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RecommendationCache fronts the course and career-path ranking reads.
// Implementations must treat unavailability as a miss, not an error.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type recommendationCacheKeyInput struct {
	Kind   string    `json:"kind"`
	UserID uuid.UUID `json:"user_id"`
	Limit  int       `json:"limit"`
}

func recommendationCacheKey(kind string, userID uuid.UUID, limit int) string {
	b, _ := json.Marshal(recommendationCacheKeyInput{
		Kind:   kind,
		UserID: userID,
		Limit:  limit,
	})
	sum := sha256.Sum256(b)
	return "reco:" + kind + ":" + hex.EncodeToString(sum[:])
}
