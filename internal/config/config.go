package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	DatabaseURL          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	// Identity provider + object storage.
	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseJWTSecret  string // when set, tokens are verified locally
	StorageBucket      string

	// Third-party suggestion backends.
	GeminiAPIURL string
	GeminiAPIKey string
	MapsAPIURL   string
	MapsAPIKey   string

	// Timeout applied to every external HTTP call.
	ExternalTimeout time.Duration
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var missing []string
	need := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          need("DATABASE_URL"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",

		SupabaseURL:        need("SUPABASE_URL"),
		SupabaseServiceKey: need("SUPABASE_SERVICE_ROLE_KEY"),
		SupabaseJWTSecret:  getenv("SUPABASE_JWT_SECRET", ""),
		StorageBucket:      getenv("STORAGE_BUCKET", "wave_app"),

		GeminiAPIURL: getenv("GEMINI_API_URL", "https://api.gemini.com/v1/generate"),
		GeminiAPIKey: getenv("GEMINI_API_KEY", ""),
		MapsAPIURL:   getenv("MAPS_API_URL", "https://maps.googleapis.com/maps/api/geocode/json"),
		MapsAPIKey:   getenv("MAPS_API_KEY", ""),

		ExternalTimeout: getdur("EXTERNAL_TIMEOUT", 10*time.Second),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", "*"), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing env: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getdur(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
