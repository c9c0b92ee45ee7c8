// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API credentials from .env files and from a directory
// of plain-text key files. In the directory form each file is one secret: the
// filename is the key name and the trimmed file contents are the value.
//
// Supported key files: nyc-council-token, nys-senate-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Key file names understood by billquery.
const (
	CityToken   = "nyc-council-token"
	StateAPIKey = "nys-senate-api-key"
)

// EnvFiles lists the .env files LoadEnv reads, highest priority first.
// Variables already present in the environment are never overwritten.
var EnvFiles = []string{".env.local", ".env"}

// LoadEnv loads the given .env files into the process environment. When
// ENV_FILE is set only that file is read. Missing files are not errors.
func LoadEnv(files ...string) error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		files = []string{envFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", entry.Name(), err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[entry.Name()] = value
		}
	}

	return secrets, nil
}

// First returns the first non-blank value, trimmed.
func First(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
