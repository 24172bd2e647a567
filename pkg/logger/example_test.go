package logger_test

import (
	"errors"

	"github.com/wonny/betahedge/pkg/config"
	"github.com/wonny/betahedge/pkg/logger"
)

// Example_basic demonstrates basic logger usage
func Example_basic() {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "info",
		LogFormat: "console",
	}

	// Create logger (SSOT)
	log := logger.New(cfg)

	log.Debug("This won't appear (level is info)")
	log.Info("Application started")
	log.Infof("Parsed %d prices", 30)
}

// Example_withFields demonstrates structured logging with fields
func Example_withFields() {
	cfg := &config.Config{
		Env:       "production",
		LogLevel:  "info",
		LogFormat: "json",
	}

	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"asset1":      "ETH",
		"asset2":      "SOL",
		"beta":        1.32,
		"correlation": 0.81,
	}).Info("Pair analysis completed")
}

// Example_withError demonstrates error logging
func Example_withError() {
	cfg := &config.Config{
		Env:       "production",
		LogLevel:  "error",
		LogFormat: "json",
	}

	log := logger.New(cfg)

	err := errors.New("degenerate input: beta of -1 makes the hedge ratio undefined")
	log.WithError(err).
		WithField("capital", 10000).
		Error("Hedge sizing rejected")
}
