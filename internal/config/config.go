package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string           `yaml:"env" env-default:"local"` // environment
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	Database   DatabaseConfig   `yaml:"database"`
	Cloudinary CloudinaryConfig `yaml:"cloudinary"`
	Upload     UploadConfig     `yaml:"upload"`
	Migrations MigrationsConfig `yaml:"migrations"`
}

// HTTPServerConfig структура http сервера
type HTTPServerConfig struct {
	Address     string        `yaml:"address" env-default:"localhost:3000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// DatabaseConfig структура по работе с БД.
// DATABASE_URL, если задан, имеет приоритет над отдельными полями.
type DatabaseConfig struct {
	URL      string `yaml:"-" env:"DATABASE_URL"`
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-default:"postgres"`
	Password string `yaml:"-" env:"DB_PASSWORD"`
	Name     string `yaml:"name" env-default:"storefront"`
}

// CloudinaryConfig — учетные данные и параметры медиахранилища.
// Ключ и секрет читаются только из окружения.
type CloudinaryConfig struct {
	CloudName     string        `yaml:"cloud_name" env:"CLOUD_NAME"`
	APIKey        string        `yaml:"-" env:"CLOUD_API_KEY"`
	APISecret     string        `yaml:"-" env:"CLOUD_API_SECRET"`
	Folder        string        `yaml:"folder" env-default:"my_images"`
	UploadTimeout time.Duration `yaml:"upload_timeout" env-default:"30s"`
}

// UploadConfig — каталог для временных файлов между приемом и отправкой
// в медиахранилище; он же отдается статикой по /uploads.
type UploadConfig struct {
	Dir string `yaml:"dir" env-default:"./uploads"`
}

type MigrationsConfig struct {
	Path string `yaml:"path" env-default:"./migrations"`
}

// DSN собирает строку подключения к Postgres. В prod-окружении соединение
// шифруется без проверки сертификата (sslmode=require), иначе TLS выключен.
func (d DatabaseConfig) DSN(env string) string {
	if d.URL != "" {
		return d.URL
	}
	sslmode := "disable"
	if env == EnvProd {
		sslmode = "require"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

const EnvProd = "prod"

// MustLoad - если не загружаем - паникуем
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal("CONFIG_PATH not exists")
	}
	return MustLoadByPath(configPath)
}

func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}

func MustLoadByPath(configPath string) *Config {
	// секреты могут лежать в .env рядом с бинарем; отсутствие файла не ошибка
	if err := godotenv.Load(); err != nil {
		log.Printf("notice: .env file not found, using system environment")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file not found: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can't read config file %s", configPath)
	}

	return &cfg
}
