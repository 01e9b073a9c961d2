package config

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/phambaophuc/logo-gilding/internal/models"
)

const defaultGoldOutput = "brand-logo-gold.png"

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Supabase SupabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Logo     LogoConfig
	Crop     CropConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level       string
	Development bool
}

type SupabaseConfig struct {
	URL    string
	KEY    string
	BUCKET string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type StorageConfig struct {
	MaxFileSize   int64
	CacheDuration time.Duration
}

// LogoConfig drives the gradient recolorer.
type LogoConfig struct {
	SourcePath string
	OutputPath string
	Threshold  int
	Stops      models.StopTable
}

func (c LogoConfig) RecolorOptions() models.RecolorOptions {
	return models.RecolorOptions{Threshold: c.Threshold, Stops: c.Stops}
}

// CropConfig drives the bounding-box cropper. By default it crops the
// recolorer output in place.
type CropConfig struct {
	SourcePath string
	OutputPath string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	stops := models.DefaultGoldStops()
	if raw := os.Getenv("LOGO_GRADIENT_STOPS"); raw != "" {
		parsed, err := ParseStops(raw)
		if err != nil {
			return nil, fmt.Errorf("LOGO_GRADIENT_STOPS: %w", err)
		}
		stops = parsed
	}

	goldOutput := getEnv("LOGO_OUTPUT_PATH", defaultGoldOutput)
	cropSource := getEnv("CROP_SOURCE_PATH", goldOutput)

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("WRITE_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
		Supabase: SupabaseConfig{
			URL:    getEnv("SUPABASE_URL", ""),
			KEY:    getEnv("SUPABASE_KEY", ""),
			BUCKET: getEnv("SUPABASE_BUCKET", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			MaxFileSize:   getEnvAsInt64("MAX_FILE_SIZE", 10*1024*1024), // 10MB
			CacheDuration: getDuration("CACHE_DURATION", 24*time.Hour),
		},
		Logo: LogoConfig{
			SourcePath: getEnv("LOGO_SOURCE_PATH", "logo.png"),
			OutputPath: goldOutput,
			Threshold:  getEnvAsInt("LOGO_DARK_THRESHOLD", models.DefaultDarkThreshold),
			Stops:      stops,
		},
		Crop: CropConfig{
			SourcePath: cropSource,
			OutputPath: getEnv("CROP_OUTPUT_PATH", cropSource),
		},
	}

	if err := cfg.Logo.RecolorOptions().Validate(); err != nil {
		return nil, fmt.Errorf("logo config: %w", err)
	}

	return cfg, nil
}

// ParseStops reads a gradient written as comma separated "#rrggbb@position"
// entries, for example "#f5e6a0@0,#d4af37@0.5,#a06e14@1".
func ParseStops(raw string) (models.StopTable, error) {
	var stops models.StopTable
	for i, entry := range strings.Split(raw, ",") {
		hex, pos, found := strings.Cut(strings.TrimSpace(entry), "@")
		if !found {
			return nil, fmt.Errorf("stop %d %q: missing @position", i, entry)
		}

		c, err := colorful.Hex(strings.TrimSpace(hex))
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}

		p, err := strconv.ParseFloat(strings.TrimSpace(pos), 64)
		if err != nil {
			return nil, fmt.Errorf("stop %d: invalid position %q", i, pos)
		}

		r, g, b := c.RGB255()
		stops = append(stops, models.GradientStop{
			Position: p,
			Color:    color.NRGBA{R: r, G: g, B: b, A: 255},
		})
	}

	if err := stops.Validate(); err != nil {
		return nil, err
	}
	return stops, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}
