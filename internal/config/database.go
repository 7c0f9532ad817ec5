package config

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
)

// ConnectPostgres opens the message store database, retrying a few times so
// the server survives the database coming up after it in compose setups.
func ConnectPostgres(cfg PostgresConfig, log *slog.Logger) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	log.Info("connecting to database", "host", cfg.Host, "db", cfg.DBName)
	for attempt := 1; ; attempt++ {
		db, err := sql.Open("pgx", dsn)
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err = db.PingContext(ctx)
			cancel()
			if err == nil {
				log.Info("database connected")
				return db, nil
			}
			db.Close()
		}

		if attempt >= 5 {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Warn("retrying database connection", "attempt", attempt, "error", err)
		time.Sleep(2 * time.Second)
	}
}

// NewRedisClient builds the client used by the history cache.
func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}
