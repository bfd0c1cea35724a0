package app

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/lib/pq"
	"github.com/linemk/storefront/internal/config"
	"github.com/linemk/storefront/internal/media"
)

type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	DB       *sql.DB
	Uploader media.Uploader
}

// NewApp создаёт новый экземпляр App: открывает пул соединений к БД,
// проверяет его и настраивает загрузчик медиахранилища. Учетные данные
// загрузчика фиксируются здесь один раз и дальше не меняются.
func NewApp(log *slog.Logger, cfg *config.Config) (*App, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN(cfg.Env))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	uploader, err := media.NewCloudinaryUploader(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		cfg.Cloudinary.Folder,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init media uploader: %w", err)
	}

	// scratch-каталог нужен до первого запроса: в него пишет multipart-декодер
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	app := &App{
		Config:   cfg,
		Logger:   log,
		DB:       db,
		Uploader: uploader,
	}

	return app, nil
}
