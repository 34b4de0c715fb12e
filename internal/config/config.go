package config

import (
	"os"

	"github.com/abhisek/daycheck/internal/logging"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvQuestions = "DAYCHECK_QUESTIONS"
	EnvLogFile   = "DAYCHECK_LOG"
)

// Config holds everything needed to start a survey run.
type Config struct {
	// QuestionsPath is a question set file. Empty selects the built-in set.
	QuestionsPath string

	// Plain forces the line-oriented renderer.
	Plain bool

	Log logging.Config
}

// DefaultConfig returns a Config with the built-in set and logging off.
func DefaultConfig() Config {
	return Config{
		Log: logging.DefaultConfig(),
	}
}

// ApplyEnv fills fields left empty from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if c.QuestionsPath == "" {
		c.QuestionsPath = getenv(EnvQuestions)
	}
	if c.Log.File == "" {
		c.Log.File = getenv(EnvLogFile)
	}
}
