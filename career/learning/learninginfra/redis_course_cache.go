package learninginfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/careergist/careergist/career/learning"
)

// DefaultCourseTTL bounds how long a computed recommendation stays
// valid; the same skill set keeps the same courses for half a day.
const DefaultCourseTTL = 12 * time.Hour

// RedisCourseCache implements learning.Cache on Redis
type RedisCourseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCourseCache creates a new Redis course cache. A non-positive
// ttl falls back to DefaultCourseTTL.
func NewRedisCourseCache(client *redis.Client, ttl time.Duration) *RedisCourseCache {
	if ttl <= 0 {
		ttl = DefaultCourseTTL
	}
	return &RedisCourseCache{
		client: client,
		ttl:    ttl,
	}
}

func courseCacheKey(skillsHash string) string {
	return fmt.Sprintf("learning:%s", skillsHash)
}

// Get retrieves a cached recommendation; a miss is (nil, false, nil)
func (c *RedisCourseCache) Get(ctx context.Context, skillsHash string) (*learning.ResourcesResponse, bool, error) {
	raw, err := c.client.Get(ctx, courseCacheKey(skillsHash)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var resp learning.ResourcesResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, false, err
	}
	return &resp, true, nil
}

// Set stores a computed recommendation under the skills fingerprint
func (c *RedisCourseCache) Set(ctx context.Context, skillsHash string, resp *learning.ResourcesResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, courseCacheKey(skillsHash), raw, c.ttl).Err()
}
