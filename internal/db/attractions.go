package tourguide

import (
	"context"
	"fmt"
	"os"
	"time"

	interf "github.com/glkeru/tourguide/internal/interfaces"
	models "github.com/glkeru/tourguide/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Каталог достопримечательностей в MongoDB
type AttractionsDB struct {
	mgo  *mongo.Client
	coll *mongo.Collection
}

func NewAttractionsDB() (*AttractionsDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mng := os.Getenv("TOURGUIDE_MONGO")
	if mng == "" {
		return nil, fmt.Errorf("env TOURGUIDE_MONGO is not set")
	}

	options := options.Client().ApplyURI("mongodb://" + mng)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	db := client.Database("tourguideDB")
	coll := db.Collection("attractions")

	return &AttractionsDB{client, coll}, nil
}

func (a *AttractionsDB) Close(ctx context.Context) error {
	return a.mgo.Disconnect(ctx)
}

func (a *AttractionsDB) GetAttractions(ctx context.Context) ([]models.Attraction, error) {
	var attractions []models.Attraction
	result, err := a.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer result.Close(ctx)

	for result.Next(ctx) {
		var attraction models.Attraction
		if err := result.Decode(&attraction); err != nil {
			return nil, err
		}
		attractions = append(attractions, attraction)
	}
	return attractions, result.Err()
}

// Загрузка каталога, существующие записи заменяются по id
func (a *AttractionsDB) SaveAttractions(ctx context.Context, attractions []models.Attraction) error {
	for _, attraction := range attractions {
		filter := bson.M{"id": attraction.ID}
		_, err := a.coll.ReplaceOne(ctx, filter, attraction, options.Replace().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("save attraction %s: %w", attraction.Name, err)
		}
	}
	return nil
}

type attractionStore interface {
	GetAttractions(ctx context.Context) ([]models.Attraction, error)
	SaveAttractions(ctx context.Context, attractions []models.Attraction) error
}

// Каталог из хранилища. Пустое хранилище заполняется из провайдера.
type SeededCatalog struct {
	store  attractionStore
	seed   interf.AttractionSource
	logger *zap.Logger
}

func NewSeededCatalog(store attractionStore, seed interf.AttractionSource, logger *zap.Logger) *SeededCatalog {
	return &SeededCatalog{store, seed, logger}
}

func (s *SeededCatalog) GetAttractions(ctx context.Context) ([]models.Attraction, error) {
	attractions, err := s.store.GetAttractions(ctx)
	if err != nil {
		return nil, err
	}
	if len(attractions) > 0 {
		return attractions, nil
	}

	attractions, err = s.seed.GetAttractions(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveAttractions(ctx, attractions); err != nil {
		// каталог уже получен, сохранение повторится при следующем запуске
		s.logger.Warn("Seed attractions",
			zap.String("service", "SeededCatalog"),
			zap.Error(err),
		)
	} else {
		s.logger.Info("Attractions seeded", zap.Int("count", len(attractions)))
	}
	return attractions, nil
}
