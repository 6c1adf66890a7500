package tourguide

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	models "github.com/glkeru/tourguide/internal/models"
	"github.com/google/uuid"
)

type locationResponse struct {
	UserID   uuid.UUID `json:"userId"`
	Location struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
	TimeVisited time.Time `json:"timeVisited"`
}

type attractionResponse struct {
	AttractionID   uuid.UUID `json:"attractionId"`
	AttractionName string    `json:"attractionName"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
}

// HTTP клиент провайдера геолокации
type GpsClient struct {
	baseURL string
	client  *http.Client
}

func NewGpsClient(baseURL string, timeout time.Duration) *GpsClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GpsClient{strings.TrimRight(baseURL, "/"), &http.Client{Timeout: timeout}}
}

func (g *GpsClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("gps %s: %w", path, models.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GPS service HTTP error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (g *GpsClient) GetUserLocation(ctx context.Context, userId uuid.UUID) (models.VisitRecord, error) {
	var loc locationResponse
	if err := g.get(ctx, "/location/"+userId.String(), &loc); err != nil {
		return models.VisitRecord{}, err
	}
	visit := models.VisitRecord{
		UserID:    userId,
		Location:  models.GeoPoint{Latitude: loc.Location.Latitude, Longitude: loc.Location.Longitude},
		VisitedAt: loc.TimeVisited,
	}
	if visit.VisitedAt.IsZero() {
		visit.VisitedAt = time.Now()
	}
	return visit, nil
}

func (g *GpsClient) GetAttractions(ctx context.Context) ([]models.Attraction, error) {
	var list []attractionResponse
	if err := g.get(ctx, "/attractions", &list); err != nil {
		return nil, err
	}
	attractions := make([]models.Attraction, 0, len(list))
	for _, a := range list {
		attractions = append(attractions, models.Attraction{
			ID:       a.AttractionID,
			Name:     a.AttractionName,
			City:     a.City,
			State:    a.State,
			Location: models.GeoPoint{Latitude: a.Latitude, Longitude: a.Longitude},
		})
	}
	return attractions, nil
}
