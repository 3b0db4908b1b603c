package suggestioninfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/careergist/careergist/career/suggestion"
	"github.com/careergist/careergist/pkg/kernel"
)

// DefaultSuggestionTTL bounds how long a computed suggestion stays valid;
// the catalog changes rarely, resumes change on upload (new hash, new key).
const DefaultSuggestionTTL = 24 * time.Hour

// RedisSuggestionCache implements suggestion.Cache on Redis
type RedisSuggestionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSuggestionCache creates a new Redis suggestion cache. A
// non-positive ttl falls back to DefaultSuggestionTTL.
func NewRedisSuggestionCache(client *redis.Client, ttl time.Duration) *RedisSuggestionCache {
	if ttl <= 0 {
		ttl = DefaultSuggestionTTL
	}
	return &RedisSuggestionCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(userID kernel.UserID, resumeHash string) string {
	return fmt.Sprintf("suggestion:%s:%s", userID.String(), resumeHash)
}

// Get retrieves a cached response; a miss is (nil, false, nil)
func (c *RedisSuggestionCache) Get(ctx context.Context, userID kernel.UserID, resumeHash string) (*suggestion.SuggestResponse, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(userID, resumeHash)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var resp suggestion.SuggestResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, false, err
	}
	return &resp, true, nil
}

// Set stores a computed response under the user/resume-hash key
func (c *RedisSuggestionCache) Set(ctx context.Context, userID kernel.UserID, resumeHash string, resp *suggestion.SuggestResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(userID, resumeHash), raw, c.ttl).Err()
}
