package utils

import (
	"go.uber.org/zap"
)

var appLogger *zap.Logger

// InitLogger builds the application logger. Development gets the
// human-readable console encoder, everything else structured JSON.
func InitLogger(environment string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if environment == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	appLogger = logger
	return logger, nil
}

// Logger returns the shared application logger. Falls back to a no-op logger
// when InitLogger has not run, so tests stay quiet.
func Logger() *zap.Logger {
	if appLogger == nil {
		return zap.NewNop()
	}
	return appLogger
}
