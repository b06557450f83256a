package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"flower_shop/internal/models"
	"flower_shop/internal/redis"
)

const (
	dadataAPIURL       = "https://suggestions.dadata.ru/suggestions/api/4_1/rs/suggest/address"
	suggestionCacheTTL = 5 * time.Minute
)

var (
	// ErrSuggestNotConfigured means no DaData API key is set.
	ErrSuggestNotConfigured = errors.New("dadata api key is not configured")
	// ErrSuggestTimeout means the upstream did not answer in time.
	ErrSuggestTimeout = errors.New("dadata api timeout")
	// ErrSuggestUpstream means the upstream answered with a non-2xx status.
	ErrSuggestUpstream = errors.New("dadata api error")
)

type SuggestService interface {
	Suggest(ctx context.Context, query string) ([]models.AddressSuggestionDTO, error)
}

type suggestService struct {
	apiKey     string
	cache      *redis.Client
	httpClient *http.Client
}

func NewSuggestService(apiKey string, cache *redis.Client) SuggestService {
	return &suggestService{
		apiKey: apiKey,
		cache:  cache,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type dadataSuggestion struct {
	Value string `json:"value"`
	Data  struct {
		GeoLat *string `json:"geo_lat"`
		GeoLon *string `json:"geo_lon"`
	} `json:"data"`
}

type dadataResponse struct {
	Suggestions []dadataSuggestion `json:"suggestions"`
}

// Suggest proxies an address query to DaData. Results are cached for five
// minutes to save API limits.
func (s *suggestService) Suggest(ctx context.Context, query string) ([]models.AddressSuggestionDTO, error) {
	if s.apiKey == "" {
		return nil, ErrSuggestNotConfigured
	}

	if s.cache != nil {
		cached, err := s.cache.GetSuggestions(ctx, query)
		if err != nil {
			log.Printf("Suggestion cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	requestBody, err := json.Marshal(map[string]interface{}{
		"query": query,
		"count": 5,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal suggest request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, dadataAPIURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create suggest request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrSuggestTimeout
		}
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, ErrSuggestTimeout
		}
		return nil, fmt.Errorf("dadata request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("DaData API error: %d", resp.StatusCode)
		return nil, ErrSuggestUpstream
	}

	var data dadataResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode dadata response: %w", err)
	}

	result := make([]models.AddressSuggestionDTO, 0, len(data.Suggestions))
	for _, item := range data.Suggestions {
		result = append(result, models.AddressSuggestionDTO{
			Value:  item.Value,
			GeoLat: item.Data.GeoLat,
			GeoLon: item.Data.GeoLon,
		})
	}

	if s.cache != nil {
		if err := s.cache.SetSuggestions(ctx, query, result, suggestionCacheTTL); err != nil {
			log.Printf("Suggestion cache write failed: %v", err)
		}
	}

	return result, nil
}
