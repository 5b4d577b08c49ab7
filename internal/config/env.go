package config

import (
	"fmt"
	"os"
	"strconv"
)

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

func lookupFloat(key string, fallback float64) (float64, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to float: %w", key, err)
	}
	return v, nil
}

func lookupString(key string, fallback string) string {
	if s, ok := os.LookupEnv(key); ok && s != "" {
		return s
	}
	return fallback
}

func requireString(key string) (string, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf("no %s env variable set", key)
	}
	return s, nil
}
