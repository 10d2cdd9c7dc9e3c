package repository

import (
	"context"
	"fmt"

	"mentorly/internal/config"
	"mentorly/internal/database"
)

// Open connects to the store selected by cfg.DBDriver and returns its
// repository together with a function releasing the connection.
func Open(ctx context.Context, cfg *config.Config) (AchievementPostRepository, func(context.Context) error, error) {
	if cfg.DBDriver == config.DriverMongo {
		client, db, err := database.ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection failed: %w", err)
		}
		return NewMongoRepository(db), client.Disconnect, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}
	closeFn := func(context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return NewGormRepository(db), closeFn, nil
}
