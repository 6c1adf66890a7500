package tourguide

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Координаты точки
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Широта в [-90, 90], долгота в [-180, 180]
func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude %v: %w", p.Latitude, ErrInvalidPoint)
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude %v: %w", p.Longitude, ErrInvalidPoint)
	}
	return nil
}

// Достопримечательность
type Attraction struct {
	ID       uuid.UUID `bson:"id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	City     string    `bson:"city" json:"city"`
	State    string    `bson:"state" json:"state"`
	Location GeoPoint  `bson:"location" json:"location"`
}

// Посещенная пользователем точка
type VisitRecord struct {
	UserID    uuid.UUID `json:"userId"`
	Location  GeoPoint  `json:"location"`
	VisitedAt time.Time `json:"visitedAt"`
}

// Награда за посещение достопримечательности
type Reward struct {
	Visit      VisitRecord `json:"visit"`
	Attraction Attraction  `json:"attraction"`
	Points     int         `json:"points"`
}

// Ближайшая достопримечательность для пользователя
type NearbyAttraction struct {
	AttractionName string  `json:"attractionName"`
	AttractionLat  float64 `json:"attractionLat"`
	AttractionLon  float64 `json:"attractionLon"`
	UserLat        float64 `json:"userLat"`
	UserLon        float64 `json:"userLon"`
	DistanceMiles  float64 `json:"distanceMiles"`
	RewardPoints   int     `json:"rewardPoints"`
}

// Пользователь. Посещения и награды только добавляются.
type User struct {
	ID    uuid.UUID
	Name  string
	Phone string
	Email string

	mu      sync.RWMutex
	visits  []VisitRecord
	rewards []Reward
}

func NewUser(id uuid.UUID, name, phone, email string) *User {
	return &User{ID: id, Name: name, Phone: phone, Email: email}
}

func (u *User) AddVisit(visit VisitRecord) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.visits = append(u.visits, visit)
}

// копия истории посещений
func (u *User) VisitedLocations() []VisitRecord {
	u.mu.RLock()
	defer u.mu.RUnlock()
	visits := make([]VisitRecord, len(u.visits))
	copy(visits, u.visits)
	return visits
}

func (u *User) LastVisitedLocation() (VisitRecord, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if len(u.visits) == 0 {
		return VisitRecord{}, false
	}
	return u.visits[len(u.visits)-1], true
}

// Добавляет награду, если награды с таким же названием достопримечательности еще нет.
// Сравнение по названию, а не по ID.
func (u *User) AddReward(reward Reward) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, r := range u.rewards {
		if r.Attraction.Name == reward.Attraction.Name {
			return false
		}
	}
	u.rewards = append(u.rewards, reward)
	return true
}

func (u *User) HasReward(attractionName string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, r := range u.rewards {
		if r.Attraction.Name == attractionName {
			return true
		}
	}
	return false
}

// копия наград
func (u *User) Rewards() []Reward {
	u.mu.RLock()
	defer u.mu.RUnlock()
	rewards := make([]Reward, len(u.rewards))
	copy(rewards, u.rewards)
	return rewards
}

func (u *User) TotalRewardPoints() (points int) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, r := range u.rewards {
		points += r.Points
	}
	return points
}
