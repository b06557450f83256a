package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"flower_shop/internal/models"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Address suggestion caching. Queries are normalized so that repeated
// lookups with different casing share one entry.

func suggestionKey(query string) string {
	return "suggest:" + strings.ToLower(strings.TrimSpace(query))
}

func (c *Client) SetSuggestions(ctx context.Context, query string, suggestions []models.AddressSuggestionDTO, ttl time.Duration) error {
	jsonData, err := json.Marshal(suggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	return c.rdb.Set(ctx, suggestionKey(query), jsonData, ttl).Err()
}

func (c *Client) GetSuggestions(ctx context.Context, query string) ([]models.AddressSuggestionDTO, error) {
	val, err := c.rdb.Get(ctx, suggestionKey(query)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get suggestions: %w", err)
	}

	var suggestions []models.AddressSuggestionDTO
	if err := json.Unmarshal([]byte(val), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suggestions: %w", err)
	}

	return suggestions, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
