package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string

	DatabaseURL string

	// import engine tuning
	BatchSize   int
	BatchDelay  time.Duration
	PreviewRows int
	AliasFile   string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getenv("PORT", "8084"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	batch, _ := strconv.Atoi(getenv("IMPORT_BATCH_SIZE", "10"))
	preview, _ := strconv.Atoi(getenv("IMPORT_PREVIEW_ROWS", "5"))
	delay, err := time.ParseDuration(getenv("IMPORT_BATCH_DELAY", "800ms"))
	if err != nil {
		delay = 800 * time.Millisecond
	}
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		MaxUploadMB:  mb,
		LogFile:      getenv("LOG_FILE", "logs/caseimport-service.log"),
		DatabaseURL:  getenv("DATABASE_URL", "postgres://localhost:5432/caseimport?sslmode=disable"),
		BatchSize:    batch,
		BatchDelay:   delay,
		PreviewRows:  preview,
		AliasFile:    getenv("ALIAS_FILE", ""),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
