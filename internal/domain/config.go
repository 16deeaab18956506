package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config defaults.
const (
	DefaultTreeFile        = "task_tree.json"
	DefaultTaskName        = "New task"
	DefaultLogLevel        = "info"
	DefaultRecoveryPolicy  = RecoveryPolicyPrompt
	RecoveryPolicyPrompt   = "prompt"
	RecoveryPolicyRecreate = "recreate"
	RecoveryPolicyInspect  = "inspect"
)

// Config represents the application configuration.
type Config struct {
	Warnings []string       `toml:"-"`
	LogLevel string         `toml:"log_level,omitempty"`
	Tree     TreeConfig     `toml:"tree"`
	Recovery RecoveryConfig `toml:"recovery"`
}

// TreeConfig holds settings from the [tree] section.
type TreeConfig struct {
	File            string `toml:"file,omitempty"`              // Snapshot file, relative to the state dir
	DefaultTaskName string `toml:"default_task_name,omitempty"` // Name used by "add" without an argument
}

// RecoveryConfig holds settings from the [recovery] section.
type RecoveryConfig struct {
	Policy string `toml:"policy,omitempty"` // prompt, recreate, or inspect
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Tree: TreeConfig{
			File:            DefaultTreeFile,
			DefaultTaskName: DefaultTaskName,
		},
		Recovery: RecoveryConfig{
			Policy: DefaultRecoveryPolicy,
		},
	}
}

// ValidateRecoveryPolicy checks that policy is a known value.
func ValidateRecoveryPolicy(policy string) error {
	switch policy {
	case RecoveryPolicyPrompt, RecoveryPolicyRecreate, RecoveryPolicyInspect:
		return nil
	}
	return fmt.Errorf("%q (want prompt, recreate, or inspect): %w", policy, ErrInvalidRecovery)
}

// RenderConfigTemplate renders the commented config file written by "config --init".
func RenderConfigTemplate(cfg *Config) string {
	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return ""
	}
	return buf.String()
}
