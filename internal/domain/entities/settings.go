package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the top-level configuration for docbatch: an optional
// commit-message prefix plus the phase plan to execute.
type Settings struct {
	// MessagePrefix is prepended to every commit message (e.g. a ticket tag).
	// Supports ${ENV_VAR} expansion.
	MessagePrefix string `yaml:"message_prefix"`
	Plan          Plan   `yaml:",inline"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a settings file, expanding environment
// variables in the message prefix and validating the resulting plan.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
	}

	settings.MessagePrefix = expandEnvVars(settings.MessagePrefix)

	if validateErr := settings.Plan.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// DefaultSettings returns the built-in plan used when no settings file exists:
// the standard cleanup sequence for a documentation-site repository.
func DefaultSettings() *Settings {
	return &Settings{
		Plan: Plan{
			Phases: []Phase{
				{
					Name:    "site-config",
					Mode:    ModeSingle,
					Message: "chore: update site configuration and navigation",
					Paths:   []string{"docs.json"},
				},
				{
					Name:    "readme",
					Mode:    ModeSingle,
					Message: "docs: refresh repository README",
					Paths:   []string{"README.md"},
				},
				{
					Name:    "guides",
					Mode:    ModeGroup,
					Message: "docs: update guide pages",
					Paths: []string{
						"index.mdx",
						"quickstart.mdx",
						"installation.mdx",
						"configuration.mdx",
						"development.mdx",
					},
				},
				{
					Name:    "api-reference",
					Mode:    ModeGroup,
					Message: "docs: update API reference pages",
					Paths: []string{
						"api-reference/openapi.json",
						"api-reference/introduction.mdx",
						"api-reference/authentication.mdx",
					},
				},
				{
					Name:    "sdk-docs",
					Mode:    ModeGroup,
					Message: "docs: update SDK documentation",
					Paths: []string{
						"sdk/overview.mdx",
						"sdk/go.mdx",
						"sdk/python.mdx",
						"sdk/typescript.mdx",
					},
				},
				{
					Name:    "favicon-removal",
					Mode:    ModeRemove,
					Message: "chore: remove unused favicon asset",
					Paths:   []string{"favicon.svg"},
				},
				{
					Name:    "legacy-pages-removal",
					Mode:    ModeRemove,
					Message: "chore: drop legacy essentials pages",
					Paths:   []string{"essentials"},
				},
			},
			CatchAll: CatchAll{
				Enabled: true,
				Message: "chore: commit remaining working tree changes",
			},
		},
	}
}

// FindSettingsFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindSettingsFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".docbatch.yaml",
		".docbatch.yml",
		"docbatch.yaml",
		"docbatch.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("settings file not found in default locations")
}

// FullMessage applies the configured prefix to a phase commit message.
func (s *Settings) FullMessage(message string) string {
	if s.MessagePrefix == "" {
		return message
	}
	return strings.TrimSpace(s.MessagePrefix) + " " + message
}

// expandEnvVars replaces ${VAR} references with their environment values.
func expandEnvVars(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
