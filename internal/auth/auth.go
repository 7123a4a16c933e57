package auth

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// EnvAPIKey is checked before any stored credential.
const EnvAPIKey = "OPENAI_API_KEY"

type Credentials struct {
	APIKey  string    `json:"api_key"`
	Updated time.Time `json:"updated"`
}

func authPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chlog", "auth.json"), nil
}

// SaveAPIKey persists an API key for later use by the CLI.
func SaveAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("empty API key")
	}
	path, err := authPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(Credentials{APIKey: key, Updated: time.Now()}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadAPIKey loads the stored API key, returning an empty string when none is present.
func LoadAPIKey() (string, error) {
	path, err := authPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", err
	}
	return strings.TrimSpace(creds.APIKey), nil
}

// Clear removes any stored credentials.
func Clear() error {
	path, err := authPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// ErrNoCredential is returned when no API key can be found anywhere.
var ErrNoCredential = errors.New("no API key found: set " + EnvAPIKey + " or run `chlog login <api-key>`")

// Resolve returns the API key to use: the environment wins, then the
// config token, then the stored keyfile.
func Resolve(configToken string) (string, error) {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(configToken); key != "" {
		return key, nil
	}
	key, err := LoadAPIKey()
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", ErrNoCredential
	}
	return key, nil
}
