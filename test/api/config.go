/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL = "https://reqres.in"
)

type TestConfig struct {
	BaseURL         string
	APIKey          string
	RequestTimeout  time.Duration
	UsersPage       int
	UserID          string
	MissingUserID   string
	SkipIntegration bool
	LogRequests     bool
	LogResponses    bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if any configuration value is invalid.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	return LoadTestConfigFrom(os.Getenv)
}

// LoadTestConfigFrom builds configuration using the supplied lookup in place of
// the process environment.
func LoadTestConfigFrom(getenv func(string) string) (*TestConfig, error) {
	env := &envReader{getenv: getenv}

	config := &TestConfig{
		BaseURL:         env.stringWithDefault("API_BASE_URL", DefaultBaseURL),
		APIKey:          getenv("API_KEY"),
		RequestTimeout:  env.durationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		UsersPage:       env.intWithDefault("TEST_USERS_PAGE", 2),
		UserID:          env.stringWithDefault("TEST_USER_ID", "2"),
		MissingUserID:   env.stringWithDefault("TEST_MISSING_USER_ID", "999"),
		SkipIntegration: env.boolWithDefault("SKIP_INTEGRATION", false),
		LogRequests:     env.boolWithDefault("LOG_REQUESTS", false),
		LogResponses:    env.boolWithDefault("LOG_RESPONSES", false),
	}

	if err := validateFields(config, env.invalid); err != nil {
		return nil, err
	}

	return config, nil
}

// envReader reads typed values from the environment, recording any value
// that fails to parse so it can be reported with the rest.
type envReader struct {
	getenv  func(string) string
	invalid []string
}

func (e *envReader) stringWithDefault(key, defaultValue string) string {
	if value := e.getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// durationWithDefault gets a duration from environment variable or returns default.
func (e *envReader) durationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := e.getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		e.invalid = append(e.invalid, fmt.Sprintf("%s must be a duration such as 30s, got %q", key, value))
		return defaultValue
	}

	return duration
}

// boolWithDefault gets a boolean from environment variable or returns default.
func (e *envReader) boolWithDefault(key string, defaultValue bool) bool {
	value := e.getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		e.invalid = append(e.invalid, fmt.Sprintf("%s must be a boolean, got %q", key, value))
		return defaultValue
	}

	return boolValue
}

// intWithDefault gets an integer from environment variable or returns default.
func (e *envReader) intWithDefault(key string, defaultValue int) int {
	value := e.getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		e.invalid = append(e.invalid, fmt.Sprintf("%s must be an integer, got %q", key, value))
		return defaultValue
	}

	return intValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../.env",            // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateFields checks that all configuration values are usable, adding
// any problems to those already found while parsing.
func validateFields(config *TestConfig, invalid []string) error {

	if u, err := url.Parse(config.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		invalid = append(invalid, "API_BASE_URL must be an absolute http(s) URL")
	}

	if config.RequestTimeout < 0 {
		invalid = append(invalid, "REQUEST_TIMEOUT must not be negative")
	}

	if config.UsersPage < 1 {
		invalid = append(invalid, "TEST_USERS_PAGE must be a positive integer")
	}

	if strings.TrimSpace(config.UserID) == "" {
		invalid = append(invalid, "TEST_USER_ID must not be blank")
	}

	if strings.TrimSpace(config.MissingUserID) == "" {
		invalid = append(invalid, "TEST_MISSING_USER_ID must not be blank")
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid configuration: %s. Please fix these environment variables or the .env file", strings.Join(invalid, ", "))
	}

	return nil
}
