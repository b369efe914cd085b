package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Dir is the local directory holding configuration and state, relative to
// the working directory so each project can carry its own setup.
const Dir = ".narutils"

const fileName = "config.json"

// ErrMissing reports that no config file exists yet. Commands render this
// as an instruction to create one rather than as a failure.
var ErrMissing = errors.New("config file not found")

// ErrTempoNotConfigured reports that a Tempo operation was invoked but the
// optional tempo block is absent from the config file.
var ErrTempoNotConfigured = errors.New(`tempo is not configured, add a "tempo" block to the config file`)

// Config is the root configuration, stored in .narutils/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// JiraHost is the base URL of the Jira instance, e.g. "https://example.atlassian.net".
	JiraHost     string `json:"jira_host"`
	JiraUsername string `json:"jira_username"`
	JiraPassword string `json:"jira_password"`
	// Tempo holds time-tracking credentials; nil when Tempo is unused.
	Tempo *TempoConfig `json:"tempo,omitempty"`
}

// TempoConfig holds Tempo time-tracking API settings.
type TempoConfig struct {
	Token     string `json:"token"`
	APIURL    string `json:"api_url"`
	ProjectID string `json:"project_id"`
}

// RequireTempo returns the tempo block or ErrTempoNotConfigured.
func (c Config) RequireTempo() (TempoConfig, error) {
	if c.Tempo == nil {
		return TempoConfig{}, ErrTempoNotConfigured
	}
	return *c.Tempo, nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads the config file from the default directory.
func Load() (Config, error) {
	return LoadFrom(Dir)
}

// LoadFrom reads and validates <dir>/config.json. A missing file yields
// ErrMissing; malformed JSON or an unusable jira_host is a hard error.
func LoadFrom(dir string) (Config, error) {
	path := filepath.Join(dir, fileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, ErrMissing
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.JiraHost == "" {
		return errors.New("jira_host is required")
	}
	u, err := url.Parse(cfg.JiraHost)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("jira_host %q is not a valid URL", cfg.JiraHost)
	}
	if cfg.JiraUsername == "" {
		return errors.New("jira_username is required")
	}
	if cfg.JiraPassword == "" {
		return errors.New("jira_password is required")
	}
	return nil
}
