package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.Tree.File != DefaultTreeFile {
		t.Errorf("Tree.File = %q, want %q", cfg.Tree.File, DefaultTreeFile)
	}
	if cfg.Tree.DefaultTaskName != DefaultTaskName {
		t.Errorf("Tree.DefaultTaskName = %q, want %q", cfg.Tree.DefaultTaskName, DefaultTaskName)
	}
	if cfg.Recovery.Policy != RecoveryPolicyPrompt {
		t.Errorf("Recovery.Policy = %q, want %q", cfg.Recovery.Policy, RecoveryPolicyPrompt)
	}
}

func TestValidateRecoveryPolicy(t *testing.T) {
	for _, p := range []string{RecoveryPolicyPrompt, RecoveryPolicyRecreate, RecoveryPolicyInspect} {
		if err := ValidateRecoveryPolicy(p); err != nil {
			t.Errorf("ValidateRecoveryPolicy(%q) = %v, want nil", p, err)
		}
	}
	for _, p := range []string{"", "Recreate", "ask"} {
		if err := ValidateRecoveryPolicy(p); !errors.Is(err, ErrInvalidRecovery) {
			t.Errorf("ValidateRecoveryPolicy(%q) = %v, want ErrInvalidRecovery", p, err)
		}
	}
}

func TestRenderConfigTemplate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Tree.DefaultTaskName = "Untitled"

	content := RenderConfigTemplate(cfg)
	if content == "" {
		t.Fatal("RenderConfigTemplate() returned empty string")
	}
	if !strings.Contains(content, "[tree]") || !strings.Contains(content, "[recovery]") {
		t.Errorf("template missing sections:\n%s", content)
	}

	// The rendered template must parse back to the same values.
	var parsed Config
	if err := toml.Unmarshal([]byte(content), &parsed); err != nil {
		t.Fatalf("rendered template is not valid TOML: %v", err)
	}
	if parsed.Tree.DefaultTaskName != "Untitled" {
		t.Errorf("default_task_name = %q, want %q", parsed.Tree.DefaultTaskName, "Untitled")
	}
	if parsed.Recovery.Policy != cfg.Recovery.Policy {
		t.Errorf("policy = %q, want %q", parsed.Recovery.Policy, cfg.Recovery.Policy)
	}
}
