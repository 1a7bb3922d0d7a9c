package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/forge-lab/daedalus/pkg/cli"
)

func TestRun_ValidateCommand_ValidCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	catalogPath := filepath.Join(tmpDir, "catalog.toml")
	content := `
[[agent]]
id = "agent-010"
token_id = "#0010"
name = "Daedalus"
role = "Architect"
xp = 120
max_xp = 1000
status = "idle"

[agent.stats]
tasks_completed = 12
success_rate = 98
avg_response_time = "1.2s"
total_runtime = "32h"

[[agent.skill]]
name = "Planning"
level = 6
max_level = 10

[[agent.task]]
id = "task-101"
name = "Generate Component"
description = "Generate a UI component"
function = "generateComponent"
estimated_time = "20s"
difficulty = "easy"

  [[agent.task.parameter]]
  name = "componentName"
  type = "string"
  required = true
`
	err := os.WriteFile(catalogPath, []byte(content), 0o600)
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{"daedalus", "validate", "--agent-catalog", catalogPath}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_InvalidCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	catalogPath := filepath.Join(tmpDir, "catalog.toml")

	// Invalid: duplicate agent IDs
	content := `
[[agent]]
id = "agent-010"
name = "Daedalus"
role = "Architect"

[[agent]]
id = "agent-010"
name = "Icarus"
role = "Pilot"
`
	err := os.WriteFile(catalogPath, []byte(content), 0o600)
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{"daedalus", "validate", "--agent-catalog", catalogPath}, "test")
	gt.Error(t, err)
}

func TestRun_ValidateCommand_MissingFile(t *testing.T) {
	err := cli.Run(context.Background(), []string{"daedalus", "validate", "--agent-catalog", "/no/such/catalog.toml"}, "test")
	gt.Error(t, err)
}
