package config

import "os"

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

type Logging struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func NewLogging() (*Logging, error) {
	maxSize, err := lookupInt("MINES_LOG_MAX_SIZE_MB", 10)
	if err != nil {
		return nil, err
	}
	maxBackups, err := lookupInt("MINES_LOG_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}
	maxAge, err := lookupInt("MINES_LOG_MAX_AGE_DAYS", 28)
	if err != nil {
		return nil, err
	}

	logging := &Logging{
		File:       lookupString("MINES_LOG_FILE", "minesweeper.log"),
		MaxSizeMB:  maxSize,
		MaxBackups: maxBackups,
		MaxAgeDays: maxAge,
	}

	return logging, nil
}
