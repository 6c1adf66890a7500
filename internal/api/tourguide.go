package tourguide

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/glkeru/tourguide/internal/config"
	models "github.com/glkeru/tourguide/internal/models"
	service "github.com/glkeru/tourguide/internal/services"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type TourGuideHandler struct {
	router    *mux.Router
	tourGuide *service.TourGuideService
	batch     *service.RewardProcessingService
	logger    *zap.Logger
}

type DistanceResponse struct {
	Miles float64 `json:"miles"`
}

type ProximityResponse struct {
	AttractionName string  `json:"attractionName"`
	DistanceMiles  float64 `json:"distanceMiles"`
	Within         bool    `json:"within"`
}

type BufferRequest struct {
	Miles *float64 `json:"miles"`
}

type CalculateResponse struct {
	Mode   string            `json:"mode"`
	Users  int               `json:"users"`
	Failed map[string]string `json:"failed,omitempty"`
}

func NewHandler(tourGuide *service.TourGuideService, batch *service.RewardProcessingService, logger *zap.Logger) *TourGuideHandler {
	router := mux.NewRouter()
	handler := &TourGuideHandler{router, tourGuide, batch, logger}
	router.HandleFunc("/location", handler.GetLocationHandler).Methods(http.MethodGet)
	router.HandleFunc("/nearby", handler.GetNearbyAttractionsHandler).Methods(http.MethodGet)
	router.HandleFunc("/rewards", handler.GetRewardsHandler).Methods(http.MethodGet)
	router.HandleFunc("/distance", handler.GetDistanceHandler).Methods(http.MethodGet)
	router.HandleFunc("/proximity", handler.GetProximityHandler).Methods(http.MethodGet)
	router.HandleFunc("/proximity-buffer", handler.SetProximityBufferHandler).Methods(http.MethodPut)
	router.HandleFunc("/proximity-buffer", handler.ResetProximityBufferHandler).Methods(http.MethodDelete)
	router.HandleFunc("/rewards/calculate", handler.CalculateRewardsHandler).Methods(http.MethodPost)
	router.Use(MiddlewareLog())

	return handler
}

// /metrics и прочие маршруты вне API
func (r *TourGuideHandler) Handle(path string, h http.Handler) {
	r.router.Handle(path, h)
}

func (r *TourGuideHandler) ServeHTTP(w http.ResponseWriter, res *http.Request) {
	r.router.ServeHTTP(w, res)
}

func (r *TourGuideHandler) Log(msg string, service string, err error) {
	r.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

func (r *TourGuideHandler) writeJSON(w http.ResponseWriter, service string, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		r.Log("Marshal", service, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(j)
}

// пользователь из параметра userName
func (r *TourGuideHandler) user(w http.ResponseWriter, req *http.Request, service string) (*models.User, bool) {
	name := req.URL.Query().Get("userName")
	if name == "" {
		http.Error(w, "userName is required", http.StatusBadRequest)
		return nil, false
	}
	user, err := r.tourGuide.GetUser(req.Context(), name)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return nil, false
		}
		r.Log("DB get", service, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return user, true
}

// Текущее местоположение пользователя
func (r *TourGuideHandler) GetLocationHandler(w http.ResponseWriter, req *http.Request) {
	user, ok := r.user(w, req, "GetLocationHandler")
	if !ok {
		return
	}
	visit, err := r.tourGuide.GetUserLocation(req.Context(), user)
	if err != nil {
		r.Log("Get location", "GetLocationHandler", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	r.writeJSON(w, "GetLocationHandler", visit)
}

// Ближайшие достопримечательности
func (r *TourGuideHandler) GetNearbyAttractionsHandler(w http.ResponseWriter, req *http.Request) {
	limit := config.DefaultNearbyLimit
	if l := req.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}
	user, ok := r.user(w, req, "GetNearbyAttractionsHandler")
	if !ok {
		return
	}
	nearby, err := r.tourGuide.GetNearbyAttractions(req.Context(), user, limit)
	if err != nil {
		r.Log("Nearby attractions", "GetNearbyAttractionsHandler", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	r.writeJSON(w, "GetNearbyAttractionsHandler", nearby)
}

// Награды пользователя
func (r *TourGuideHandler) GetRewardsHandler(w http.ResponseWriter, req *http.Request) {
	user, ok := r.user(w, req, "GetRewardsHandler")
	if !ok {
		return
	}
	r.writeJSON(w, "GetRewardsHandler", r.tourGuide.GetUserRewards(user))
}

func parsePoint(req *http.Request, lat, lon string) (models.GeoPoint, error) {
	q := req.URL.Query()
	la, err := strconv.ParseFloat(q.Get(lat), 64)
	if err != nil {
		return models.GeoPoint{}, errors.Join(models.ErrInvalidPoint, err)
	}
	lo, err := strconv.ParseFloat(q.Get(lon), 64)
	if err != nil {
		return models.GeoPoint{}, errors.Join(models.ErrInvalidPoint, err)
	}
	point := models.GeoPoint{Latitude: la, Longitude: lo}
	return point, point.Validate()
}

// Расстояние между точками в милях
func (r *TourGuideHandler) GetDistanceHandler(w http.ResponseWriter, req *http.Request) {
	a, err := parsePoint(req, "lat1", "lon1")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	b, err := parsePoint(req, "lat2", "lon2")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	r.writeJSON(w, "GetDistanceHandler", &DistanceResponse{r.tourGuide.Rewards().GetDistance(a, b)})
}

// Находится ли пользователь в радиусе достопримечательности
func (r *TourGuideHandler) GetProximityHandler(w http.ResponseWriter, req *http.Request) {
	name := req.URL.Query().Get("attractionName")
	if name == "" {
		http.Error(w, "attractionName is required", http.StatusBadRequest)
		return
	}
	rewards := r.tourGuide.Rewards()
	var attraction *models.Attraction
	for _, a := range rewards.Attractions() {
		if a.Name == name {
			attraction = &a
			break
		}
	}
	if attraction == nil {
		http.Error(w, "Attraction not found", http.StatusNotFound)
		return
	}
	user, ok := r.user(w, req, "GetProximityHandler")
	if !ok {
		return
	}
	visit, err := r.tourGuide.GetUserLocation(req.Context(), user)
	if err != nil {
		r.Log("Get location", "GetProximityHandler", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	r.writeJSON(w, "GetProximityHandler", &ProximityResponse{
		AttractionName: attraction.Name,
		DistanceMiles:  rewards.GetDistance(visit.Location, attraction.Location),
		Within:         rewards.IsWithinAttractionProximity(*attraction, visit.Location),
	})
}

// Новый радиус близости
func (r *TourGuideHandler) SetProximityBufferHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		r.Log("Get request body", "SetProximityBufferHandler", err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	buffer := &BufferRequest{}
	err = json.Unmarshal(body, buffer)
	if err != nil || buffer.Miles == nil || *buffer.Miles < 0 {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	rewards := r.tourGuide.Rewards()
	rewards.SetProximityBuffer(*buffer.Miles)
	r.logger.Info("Proximity buffer changed", zap.Float64("miles", *buffer.Miles))
	r.writeJSON(w, "SetProximityBufferHandler", &DistanceResponse{rewards.ProximityBuffer()})
}

// Сброс радиуса близости
func (r *TourGuideHandler) ResetProximityBufferHandler(w http.ResponseWriter, req *http.Request) {
	rewards := r.tourGuide.Rewards()
	rewards.SetDefaultProximityBuffer()
	r.writeJSON(w, "ResetProximityBufferHandler", &DistanceResponse{rewards.ProximityBuffer()})
}

// Пакетный пересчет наград всех пользователей
func (r *TourGuideHandler) CalculateRewardsHandler(w http.ResponseWriter, req *http.Request) {
	mode := req.URL.Query().Get("mode")
	if mode == "" {
		mode = config.ModeParallel
	}
	if mode != config.ModeParallel && mode != config.ModeSequential {
		http.Error(w, "mode must be parallel or sequential", http.StatusBadRequest)
		return
	}
	ctx := req.Context()
	users, err := r.tourGuide.GetAllUsers(ctx)
	if err != nil {
		r.Log("DB get", "CalculateRewardsHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := &CalculateResponse{Mode: mode, Users: len(users)}
	batchErr := models.NewBatchError()
	for _, err := range []error{
		r.batch.Process(ctx, mode, users),
		r.tourGuide.SaveAllRewards(ctx, users),
	} {
		var be *models.BatchError
		if errors.As(err, &be) {
			for id, e := range be.Failed {
				batchErr.Add(id, e)
			}
		} else if err != nil {
			r.Log("Calculate", "CalculateRewardsHandler", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	if len(batchErr.Failed) > 0 {
		response.Failed = make(map[string]string, len(batchErr.Failed))
		for id, e := range batchErr.Failed {
			response.Failed[id.String()] = e.Error()
		}
	}
	r.writeJSON(w, "CalculateRewardsHandler", response)
}
