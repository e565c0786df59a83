package logging

import (
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger initializes the global logger with the given configuration.
// Calling it again replaces the previous instance.
func InitLogger(config *LogConfig) error {
	mu.Lock()
	defer mu.Unlock()

	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	if instance != nil {
		instance.Close()
	}
	instance = logger
	return nil
}

// GetGlobalLogger returns the singleton logger instance.
// It panics if InitLogger has not been called.
func GetGlobalLogger() *Logger {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("logger not initialized - call logging.InitLogger() first")
	}
	return instance
}
