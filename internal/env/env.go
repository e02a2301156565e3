// Package env reads optional settings from environment variables.
package env

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Get returns the value of the environment variable key, or def if the
// variable is not set.
func Get(key string, def string) string {
	if value, ok := os.LookupEnv(key); ok {
		logrus.Debugf("env var '%s' set to '%s'", key, value)
		return value
	}
	return def
}

// Level returns the logging level named by the environment variable
// key, or def if the variable is unset or names no level.
func Level(key string, def logrus.Level) logrus.Level {
	unparsed, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	level, err := logrus.ParseLevel(unparsed)
	if err != nil {
		logrus.Warnf("env var '%s' not converted: %v", key, err)
		return def
	}
	return level
}
