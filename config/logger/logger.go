package logger

import (
	"PlanMate/config/environment"
	"log"

	"go.uber.org/zap"
)

var zapLogger *zap.Logger

// InitLogger builds the global zap logger. Development mode gets the
// human-readable console encoder, everything else JSON.
func InitLogger() {
	var err error
	if environment.GetEnv("GO_ENV", "development") == "development" {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(zapLogger)
}

// GetLogger returns the shared logger instance. Falls back to a no-op
// logger when InitLogger was never called (unit tests).
func GetLogger() *zap.Logger {
	if zapLogger == nil {
		return zap.NewNop()
	}
	return zapLogger
}
