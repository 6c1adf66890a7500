package tourguide

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type PointsResponse struct {
	Points int `json:"points"`
}

// HTTP клиент провайдера баллов
type RewardCentralClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// rps <= 0 без ограничения частоты
func NewRewardCentralClient(baseURL string, rps int, timeout time.Duration) *RewardCentralClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &RewardCentralClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, max(rps, 1)),
	}
}

func (r *RewardCentralClient) GetAttractionRewardPoints(ctx context.Context, attractionId uuid.UUID, userId uuid.UUID) (points int, err error) {
	// ограничение частоты запросов
	if err := r.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	params := url.Values{
		"attractionId": {attractionId.String()},
		"userId":       {userId.String()},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/points?"+params.Encode(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("RewardCentral service HTTP error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	pointsResponse := &PointsResponse{}
	err = json.Unmarshal(body, pointsResponse)
	if err != nil {
		return 0, err
	}

	return pointsResponse.Points, nil
}
