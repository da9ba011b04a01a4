package config

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/linesmerrill/medical-record-api/logging"
	"github.com/linesmerrill/medical-record-api/models"
)

// Config holds the project config values
type Config struct {
	URL            string
	DatabaseName   string
	BaseURL        string
	Port           string
	APIPrefix      string
	DocsDir        string
	Environment    string
	AllowedOrigins []string
	RateLimit      int
}

// New sets up all config related services
func New() *Config {
	// a missing .env is fine, the environment wins anyway
	_ = godotenv.Load()

	env := getEnv("ENVIRONMENT", "local")

	//setup zap logger and replace default logger
	logger, err := logging.New(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	rateLimit, err := strconv.Atoi(getEnv("RATE_LIMIT", "0"))
	if err != nil {
		zap.S().Warnw("invalid RATE_LIMIT, rate limiting disabled", "error", err)
		rateLimit = 0
	}

	return &Config{
		URL:            getEnv("DB_URI", "mongodb://127.0.0.1:27017"),
		DatabaseName:   getEnv("DB_NAME", "medical-records"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:8080"),
		Port:           getEnv("PORT", "8080"),
		APIPrefix:      strings.Trim(getEnv("API_PREFIX", "api"), "/"),
		DocsDir:        getEnv("DOCS_DIR", "./docs"),
		Environment:    env,
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RateLimit:      rateLimit,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With("error", err).Error(message)

	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	b, _ := json.Marshal(models.ErrorMessageResponse{
		Response: models.MessageError{Message: message, Error: errMsg},
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}
