package storage

import (
	"context"
	"fmt"
	"log/slog"
	"newsfeed/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresArchive struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPostgresArchive(pool *pgxpool.Pool, log *slog.Logger) *PostgresArchive {
	log.Info("Initializing Postgres record archive")
	return &PostgresArchive{
		pool: pool,
		log:  log,
	}
}
func (db *PostgresArchive) Close() {
	db.log.Info("Closing database connection pool")
	db.pool.Close()
}

// SaveRecord
func (db *PostgresArchive) SaveRecord(ctx context.Context, record domain.Record) error {
	const op = "storage.postgres.SaveRecord"
	query := `
	INSERT INTO records (kind, body, created_at)
	VALUES ($1, $2, $3);
	`
	kind := recordKind(record)
	if _, err := db.pool.Exec(ctx, query, kind, record.Format(), time.Now()); err != nil {
		db.log.Error(
			"Failed to archive record",
			slog.String("kind", kind),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s: failed to insert record: %w", op, err)
	}
	db.log.Debug("Record archived", slog.String("kind", kind))
	return nil
}

// recordKind возвращает строковое имя варианта записи для колонки kind.
func recordKind(record domain.Record) string {
	switch record.(type) {
	case *domain.News:
		return "news"
	case *domain.PrivateAd:
		return "private_ad"
	case *domain.WeatherReport:
		return "weather_report"
	default:
		return "unknown"
	}
}
