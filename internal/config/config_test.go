package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/linemk/storefront/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestMustLoadByPath_Success(t *testing.T) {
	// Секреты приходят только из окружения
	os.Setenv("DB_PASSWORD", "mypassword")
	os.Setenv("CLOUD_API_KEY", "key")
	os.Setenv("CLOUD_API_SECRET", "secret")
	defer os.Unsetenv("DB_PASSWORD")
	defer os.Unsetenv("CLOUD_API_KEY")
	defer os.Unsetenv("CLOUD_API_SECRET")

	// Пример содержимого конфигурационного файла
	content := `
env: "local"
http_server:
  address: "localhost:3000"
  timeout: "4s"
  idle_timeout: "60s"
database:
  host: "localhost"
  port: 5432
  user: "postgres"
  name: "storefront"
cloudinary:
  cloud_name: "demo"
  folder: "my_images"
  upload_timeout: "30s"
upload:
  dir: "./uploads"
migrations:
  path: "./migrations"
`
	// Создаем временный файл с конфигурацией
	tmpFile, err := os.CreateTemp("", "config_test_*.yaml")
	assert.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString(content)
	assert.NoError(t, err)
	assert.NoError(t, tmpFile.Close())

	// Загружаем конфигурацию из временного файла
	cfg := config.MustLoadByPath(tmpFile.Name())

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "localhost:3000", cfg.HTTPServer.Address)
	assert.Equal(t, 4*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "mypassword", cfg.Database.Password)
	assert.Equal(t, "storefront", cfg.Database.Name)
	assert.Equal(t, "demo", cfg.Cloudinary.CloudName)
	assert.Equal(t, "key", cfg.Cloudinary.APIKey)
	assert.Equal(t, "secret", cfg.Cloudinary.APISecret)
	assert.Equal(t, "my_images", cfg.Cloudinary.Folder)
	assert.Equal(t, 30*time.Second, cfg.Cloudinary.UploadTimeout)
	assert.Equal(t, "./uploads", cfg.Upload.Dir)
	assert.Equal(t, "./migrations", cfg.Migrations.Path)
}

func TestMustLoadByPath_FileNotFound(t *testing.T) {
	// Ожидаем панику, если файла не существует
	assert.Panics(t, func() {
		config.MustLoadByPath("non_existent_config.yaml")
	})
}

func TestDatabaseDSN_SSLModeByEnv(t *testing.T) {
	db := config.DatabaseConfig{
		Host: "localhost", Port: 5432, User: "postgres", Password: "pw", Name: "storefront",
	}

	// вне prod TLS выключен, в prod шифруем без проверки сертификата
	assert.Contains(t, db.DSN("local"), "sslmode=disable")
	assert.Contains(t, db.DSN(config.EnvProd), "sslmode=require")
}

func TestDatabaseDSN_URLOverride(t *testing.T) {
	db := config.DatabaseConfig{URL: "postgres://u:p@db:5432/x?sslmode=disable"}
	assert.Equal(t, "postgres://u:p@db:5432/x?sslmode=disable", db.DSN("local"))
}
