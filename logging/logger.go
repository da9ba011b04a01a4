package logging

import "go.uber.org/zap"

// New creates a new zap logger for the given environment. production logs JSON
// at info level, development logs human readable output at debug level and
// everything else falls back to the example logger used when running locally.
func New(environment string) (*zap.Logger, error) {
	switch environment {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}
