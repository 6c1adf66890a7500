package tourguide

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	models "github.com/glkeru/tourguide/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id    UUID PRIMARY KEY,
	name  TEXT NOT NULL UNIQUE,
	phone TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS visits (
	user_id    UUID NOT NULL REFERENCES users(id),
	latitude   DOUBLE PRECISION NOT NULL,
	longitude  DOUBLE PRECISION NOT NULL,
	visited_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS visits_user_idx ON visits (user_id, visited_at);
CREATE TABLE IF NOT EXISTS rewards (
	user_id         UUID NOT NULL REFERENCES users(id),
	attraction_id   UUID NOT NULL,
	attraction_name TEXT NOT NULL,
	attraction_lat  DOUBLE PRECISION NOT NULL,
	attraction_lon  DOUBLE PRECISION NOT NULL,
	visit_lat       DOUBLE PRECISION NOT NULL,
	visit_lon       DOUBLE PRECISION NOT NULL,
	visited_at      TIMESTAMPTZ NOT NULL,
	points          INTEGER NOT NULL,
	UNIQUE (user_id, attraction_name)
);`

// *pgxpool.Pool или pgxmock
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type UsersDB struct {
	pool   pgxPool
	logger *zap.Logger
}

func NewUsersDB(ctx context.Context, logger *zap.Logger) (db *UsersDB, closeFn func(), err error) {
	// config
	purl := os.Getenv("TOURGUIDE_DB")
	if purl == "" {
		return nil, nil, fmt.Errorf("env TOURGUIDE_DB is not set")
	}
	port := os.Getenv("TOURGUIDE_DB_PORT")
	if port == "" {
		return nil, nil, fmt.Errorf("env TOURGUIDE_DB_PORT is not set")
	}
	user := os.Getenv("TOURGUIDE_DB_USER")
	if user == "" {
		return nil, nil, fmt.Errorf("env TOURGUIDE_DB_USER is not set")
	}
	password := os.Getenv("TOURGUIDE_DB_PASSWORD")
	if password == "" {
		return nil, nil, fmt.Errorf("env TOURGUIDE_DB_PASSWORD is not set")
	}
	database := os.Getenv("TOURGUIDE_DB_BASE")
	if database == "" {
		return nil, nil, fmt.Errorf("env TOURGUIDE_DB_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	return NewUsersDBWithPool(pool, logger), pool.Close, nil
}

func NewUsersDBWithPool(pool pgxPool, logger *zap.Logger) *UsersDB {
	return &UsersDB{pool, logger}
}

func (p *UsersDB) logSQL(err error, sql string, args []any) {
	p.logger.Error("SQL error",
		zap.Error(err),
		zap.String("query", sql),
		zap.Any("args", args),
	)
}

// Создание таблиц
func (p *UsersDB) Migrate(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, schema)
	return err
}

// Пользователь по имени, с историей посещений и наградами
func (p *UsersDB) GetUser(ctx context.Context, userName string) (*models.User, error) {
	sql, args, err := sq.Select("id", "name", "phone", "email").
		From("users").
		Where(sq.Eq{"name": userName}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var id, name, phone, email string
	err = p.pool.QueryRow(ctx, sql, args...).Scan(&id, &name, &phone, &email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", userName, models.ErrUserNotFound)
		}
		p.logSQL(err, sql, args)
		return nil, err
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	user := models.NewUser(uid, name, phone, email)
	if err := p.loadHistory(ctx, map[uuid.UUID]*models.User{uid: user}); err != nil {
		return nil, err
	}
	return user, nil
}

func (p *UsersDB) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	sql, args, err := sq.Select("id", "name", "phone", "email").
		From("users").
		OrderBy("name").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	byID := make(map[uuid.UUID]*models.User)
	for rows.Next() {
		var id, name, phone, email string
		if err := rows.Scan(&id, &name, &phone, &email); err != nil {
			return nil, err
		}
		uid, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		user := models.NewUser(uid, name, phone, email)
		users = append(users, user)
		byID[uid] = user
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return users, nil
	}
	if err := p.loadHistory(ctx, byID); err != nil {
		return nil, err
	}
	return users, nil
}

// Посещения и награды для набора пользователей
func (p *UsersDB) loadHistory(ctx context.Context, users map[uuid.UUID]*models.User) error {
	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id.String())
	}

	// посещения
	sql, args, err := sq.Select("user_id", "latitude", "longitude", "visited_at").
		From("visits").
		Where(sq.Eq{"user_id": ids}).
		OrderBy("user_id", "visited_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return err
	}
	for rows.Next() {
		var id string
		var visit models.VisitRecord
		if err := rows.Scan(&id, &visit.Location.Latitude, &visit.Location.Longitude, &visit.VisitedAt); err != nil {
			rows.Close()
			return err
		}
		if user := users[uuid.MustParse(id)]; user != nil {
			visit.UserID = user.ID
			user.AddVisit(visit)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	// награды
	sql, args, err = sq.Select("user_id", "attraction_id", "attraction_name", "attraction_lat", "attraction_lon",
		"visit_lat", "visit_lon", "visited_at", "points").
		From("rewards").
		Where(sq.Eq{"user_id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	rows, err = p.pool.Query(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id, attractionID string
		var r models.Reward
		err := rows.Scan(&id, &attractionID, &r.Attraction.Name, &r.Attraction.Location.Latitude, &r.Attraction.Location.Longitude,
			&r.Visit.Location.Latitude, &r.Visit.Location.Longitude, &r.Visit.VisitedAt, &r.Points)
		if err != nil {
			return err
		}
		if r.Attraction.ID, err = uuid.Parse(attractionID); err != nil {
			return err
		}
		if user := users[uuid.MustParse(id)]; user != nil {
			r.Visit.UserID = user.ID
			user.AddReward(r)
		}
	}
	return rows.Err()
}

// Создание пользователя, повторное создание игнорируется
func (p *UsersDB) AddUser(ctx context.Context, user *models.User) error {
	sql, args, err := sq.Insert("users").
		Columns("id", "name", "phone", "email").
		Values(user.ID, user.Name, user.Phone, user.Email).
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	if _, err = p.pool.Exec(ctx, sql, args...); err != nil {
		p.logSQL(err, sql, args)
		return err
	}
	return nil
}

func (p *UsersDB) AddVisit(ctx context.Context, visit models.VisitRecord) error {
	visitedAt := visit.VisitedAt
	if visitedAt.IsZero() {
		visitedAt = time.Now()
	}
	sql, args, err := sq.Insert("visits").
		Columns("user_id", "latitude", "longitude", "visited_at").
		Values(visit.UserID, visit.Location.Latitude, visit.Location.Longitude, visitedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	if _, err = p.pool.Exec(ctx, sql, args...); err != nil {
		p.logSQL(err, sql, args)
		return err
	}
	return nil
}

// Сохранение наград пользователя. Уже сохраненные награды не дублируются.
func (p *UsersDB) SaveRewards(ctx context.Context, user *models.User) error {
	rewards := user.Rewards()
	if len(rewards) == 0 {
		return nil
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("Begin tx error", zap.Error(err))
		return err
	}
	for _, r := range rewards {
		sql, args, err := sq.Insert("rewards").
			Columns("user_id", "attraction_id", "attraction_name", "attraction_lat", "attraction_lon",
				"visit_lat", "visit_lon", "visited_at", "points").
			Values(user.ID, r.Attraction.ID, r.Attraction.Name, r.Attraction.Location.Latitude, r.Attraction.Location.Longitude,
				r.Visit.Location.Latitude, r.Visit.Location.Longitude, r.Visit.VisitedAt, r.Points).
			Suffix("ON CONFLICT (user_id, attraction_name) DO NOTHING").
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			p.logSQL(err, sql, args)
			_ = tx.Rollback(ctx)
			return err
		}
	}
	return tx.Commit(ctx)
}
